package calculator

import (
	"math"

	"TradeSentinel/internal/model"
)

// fibSwingWindow is the number of trailing bars scanned for the swing high/low.
const fibSwingWindow = 25

// fibRatios are the fixed retracement ratios, in display order.
var fibRatios = []struct {
	label string
	ratio float64
}{
	{"23.6%", 0.236},
	{"38.2%", 0.382},
	{"50%", 0.5},
	{"61.8%", 0.618},
	{"78.6%", 0.786},
}

// FibonacciLevels computes retracement levels from the most recent swing:
// swing high = max(High) and swing low = min(Low) over the trailing 25 bars.
// Returns nil when the window is empty or the swing has no range.
func FibonacciLevels(bars []model.OHLCBar) []model.FibLevel {
	if len(bars) == 0 {
		return nil
	}
	start := len(bars) - fibSwingWindow
	if start < 0 {
		start = 0
	}

	swingHigh := math.Inf(-1)
	swingLow := math.Inf(1)
	for i := start; i < len(bars); i++ {
		if bars[i].High > swingHigh {
			swingHigh = bars[i].High
		}
		if bars[i].Low < swingLow {
			swingLow = bars[i].Low
		}
	}
	if swingHigh == swingLow {
		return nil
	}

	diff := swingHigh - swingLow
	levels := make([]model.FibLevel, 0, len(fibRatios))
	for _, f := range fibRatios {
		levels = append(levels, model.FibLevel{
			Label: f.label,
			Price: swingHigh - diff*f.ratio,
		})
	}
	return levels
}
