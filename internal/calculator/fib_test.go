package calculator

import (
	"testing"
	"time"

	"TradeSentinel/internal/model"
)

func swingBars(high, low float64, count int) []model.OHLCBar {
	bars := make([]model.OHLCBar, count)
	for i := range bars {
		bars[i] = model.OHLCBar{
			Time:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i),
			Open:  low,
			High:  high,
			Low:   low,
			Close: low,
		}
	}
	return bars
}

func TestFibonacciLevels_KnownSwing(t *testing.T) {
	levels := FibonacciLevels(swingBars(110, 100, 30))
	if len(levels) != 5 {
		t.Fatalf("expected 5 levels, got %d", len(levels))
	}

	want := map[string]float64{
		"23.6%": 110 - 0.236*10,
		"38.2%": 110 - 0.382*10,
		"50%":   105.0,
		"61.8%": 103.82,
		"78.6%": 110 - 0.786*10,
	}
	for _, lvl := range levels {
		exp, ok := want[lvl.Label]
		if !ok {
			t.Errorf("unexpected label %q", lvl.Label)
			continue
		}
		if !relClose(lvl.Price, exp) {
			t.Errorf("level %s = %v, want %v", lvl.Label, lvl.Price, exp)
		}
	}
}

func TestFibonacciLevels_DisplayOrder(t *testing.T) {
	levels := FibonacciLevels(swingBars(110, 100, 30))
	order := []string{"23.6%", "38.2%", "50%", "61.8%", "78.6%"}
	for i, lvl := range levels {
		if lvl.Label != order[i] {
			t.Errorf("level %d = %s, want %s", i, lvl.Label, order[i])
		}
	}
}

func TestFibonacciLevels_Undefined(t *testing.T) {
	if got := FibonacciLevels(nil); got != nil {
		t.Error("expected nil for empty window")
	}
	// Flat swing: high equals low.
	if got := FibonacciLevels(swingBars(100, 100, 30)); got != nil {
		t.Error("expected nil when swing high equals swing low")
	}
}

func TestFibonacciLevels_TrailingWindow(t *testing.T) {
	// An old extreme outside the 25-bar window must be ignored.
	bars := swingBars(500, 1, 10)
	bars = append(bars, swingBars(110, 100, 25)...)
	levels := FibonacciLevels(bars)
	if len(levels) != 5 {
		t.Fatalf("expected 5 levels, got %d", len(levels))
	}
	for _, lvl := range levels {
		if lvl.Label == "50%" && !relClose(lvl.Price, 105.0) {
			t.Errorf("50%% level = %v, want 105 (old extremes must be excluded)", lvl.Price)
		}
	}
}
