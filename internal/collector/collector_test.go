package collector

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCollect_FetchErrorClassified(t *testing.T) {
	c := NewCollector(&MockFetcher{Err: errors.New("connection refused")}, 0)
	_, err := c.Collect(context.Background(), "SOL-USD", "1d")
	if !errors.Is(err, ErrDataUnavailable) {
		t.Errorf("got %v, want ErrDataUnavailable", err)
	}
}

func TestCollect_EmptySeriesClassified(t *testing.T) {
	c := NewCollector(&MockFetcher{}, 0)
	_, err := c.Collect(context.Background(), "SOL-USD", "1d")
	if !errors.Is(err, ErrDataUnavailable) {
		t.Errorf("got %v, want ErrDataUnavailable for an empty series", err)
	}
}

func TestCollect_Success(t *testing.T) {
	bars := GenerateMockBars(100, 250)
	c := NewCollector(&MockFetcher{Bars: bars}, 0)

	series, err := c.Collect(context.Background(), "SOL-USD", "1d")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if series.Symbol != "SOL-USD" || series.Timeframe != "1d" {
		t.Errorf("series tagged %s/%s, want SOL-USD/1d", series.Symbol, series.Timeframe)
	}
	if series.Len() != 250 {
		t.Errorf("series has %d bars, want 250", series.Len())
	}
	if series.FetchedAt.IsZero() {
		t.Error("FetchedAt must be stamped")
	}
}

func TestRESTFetcher_FetchBars(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer sekrit" {
			t.Errorf("Authorization = %q", got)
		}
		if got := r.URL.Query().Get("symbol"); got != "SOL-USD" {
			t.Errorf("symbol = %q", got)
		}
		if got := r.URL.Query().Get("days"); got != "60" {
			t.Errorf("days = %q, want the 60-day lookback", got)
		}
		// Out of order on purpose; the fetcher must sort chronologically.
		w.Write([]byte(`[
			{"timestamp": 1700000600, "open": 101, "high": 102, "low": 100, "close": 101.5, "volume": 10},
			{"timestamp": 1700000000, "open": 100, "high": 101, "low": 99, "close": 100.5, "volume": 20}
		]`))
	}))
	defer srv.Close()

	f := &RESTFetcher{BaseURL: srv.URL, APIKey: "sekrit", Client: srv.Client()}
	bars, err := f.FetchBars(context.Background(), "SOL-USD", "1d")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bars) != 2 {
		t.Fatalf("got %d bars, want 2", len(bars))
	}
	if !bars[0].Time.Before(bars[1].Time) {
		t.Error("bars not sorted chronologically")
	}
	if bars[0].Close != 100.5 || bars[1].Close != 101.5 {
		t.Errorf("closes = %v, %v", bars[0].Close, bars[1].Close)
	}
}

func TestRESTFetcher_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	f := &RESTFetcher{BaseURL: srv.URL, Client: srv.Client()}
	if _, err := f.FetchBars(context.Background(), "SOL-USD", "1d"); err == nil {
		t.Error("expected error for non-200 status")
	}
}

func TestParseChart(t *testing.T) {
	// Middle bar is a null (non-trading day) and must be dropped.
	body := []byte(`{"chart":{"result":[{
		"timestamp":[1700000000,1700086400,1700172800],
		"indicators":{"quote":[{
			"open":[100,null,102],
			"high":[101,null,103],
			"low":[99,null,101],
			"close":[100.5,null,102.5],
			"volume":[10,null,30]
		}]}}],"error":null}}`)

	bars, err := parseChart(body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bars) != 2 {
		t.Fatalf("got %d bars, want 2 (null bar dropped)", len(bars))
	}
	if bars[0].Close != 100.5 || bars[1].Close != 102.5 {
		t.Errorf("closes = %v, %v", bars[0].Close, bars[1].Close)
	}
}

func TestParseChart_APIError(t *testing.T) {
	body := []byte(`{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found"}}}`)
	if _, err := parseChart(body); err == nil {
		t.Error("expected error from chart error payload")
	}
}

func TestToFloat(t *testing.T) {
	if got := toFloat(nil); got != 0 {
		t.Errorf("toFloat(nil) = %v, want 0", got)
	}
	if got := toFloat(12.5); got != 12.5 {
		t.Errorf("toFloat(12.5) = %v", got)
	}
	if got := toFloat("garbage"); got != 0 {
		t.Errorf("toFloat(string) = %v, want 0", got)
	}
}
