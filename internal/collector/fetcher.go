package collector

import (
	"context"
	"errors"

	"TradeSentinel/internal/model"
)

// LookbackDays is the fixed trailing window requested from every data
// source. Sized so at least 200 bars are available on the supported
// intervals when the underlying market was active.
const LookbackDays = 60

// ErrDataUnavailable indicates an empty or failed fetch (closed market,
// invalid symbol, transport error, timeout). Non-fatal: the caller skips
// the instrument for the current cycle. No retries within a cycle.
var ErrDataUnavailable = errors.New("market data unavailable")

// Fetcher defines the interface for fetching an ordered bar series.
// Interval follows the timeframe vocabulary ("1d", "1h", "5m").
type Fetcher interface {
	FetchBars(ctx context.Context, symbol, interval string) ([]model.OHLCBar, error)
	Name() string
}
