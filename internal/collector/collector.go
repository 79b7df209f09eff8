package collector

import (
	"context"
	"fmt"
	"time"

	"TradeSentinel/internal/model"
)

// DefaultFetchTimeout bounds a single data-source request. A timed-out
// fetch is classified as data-unavailable; there is no retry.
const DefaultFetchTimeout = 30 * time.Second

// Collector wraps a Fetcher and turns raw bars into a validated TimeSeries.
type Collector struct {
	Fetcher Fetcher
	Timeout time.Duration
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher, timeout time.Duration) *Collector {
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	return &Collector{Fetcher: fetcher, Timeout: timeout}
}

// Collect fetches the bar series for symbol at the given timeframe. Any
// fetch failure or an empty result surfaces as ErrDataUnavailable.
func (c *Collector) Collect(ctx context.Context, symbol, timeframe string) (*model.TimeSeries, error) {
	ctx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()

	bars, err := c.Fetcher.FetchBars(ctx, symbol, timeframe)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %v", ErrDataUnavailable, symbol, timeframe, err)
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("%w: %s %s: empty series (market closed?)", ErrDataUnavailable, symbol, timeframe)
	}

	return &model.TimeSeries{
		Symbol:    symbol,
		Timeframe: timeframe,
		Bars:      bars,
		FetchedAt: time.Now(),
	}, nil
}

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Bars []model.OHLCBar
	Err  error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchBars(_ context.Context, _, _ string) ([]model.OHLCBar, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Bars, nil
}

// GenerateMockBars builds a gently trending series around basePrice.
func GenerateMockBars(basePrice float64, count int) []model.OHLCBar {
	bars := make([]model.OHLCBar, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.OHLCBar{
			Time:   time.Now().AddDate(0, 0, -(count - i)),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}
