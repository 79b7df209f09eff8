package calculator

import (
	"errors"
	"fmt"

	"TradeSentinel/internal/model"
)

// Indicator windows. SMA200 is the largest window and therefore the
// minimum series length for a full snapshot.
const (
	EMAFastPeriod = 9
	EMASlowPeriod = 21
	RSIPeriod     = 14
	BBPeriod      = 20
	BBStdDevs     = 2.0
	SMAMidPeriod  = 50
	SMALongPeriod = 200
)

// ErrInsufficientData indicates the series is shorter than an indicator
// window needs. Callers must treat it as "no signal", never as a failure.
var ErrInsufficientData = errors.New("insufficient data for indicators")

// Compute derives the full indicator snapshot from the close-price column
// of the series. The previous-bar SMA values feed cross detection; when a
// previous window is unavailable the previous value falls back to the
// current one, which can never satisfy a strict cross comparison.
func Compute(series *model.TimeSeries) (*model.IndicatorSet, error) {
	closes := series.Closes()
	if len(closes) < 2 || len(closes) < SMALongPeriod {
		return nil, fmt.Errorf("%w: have %d bars, need %d", ErrInsufficientData, len(closes), SMALongPeriod)
	}

	ind := &model.IndicatorSet{Price: series.LastClose()}

	var err error
	if ind.EMA9, err = CalculateEMA(closes, EMAFastPeriod); err != nil {
		return nil, fmt.Errorf("%w: ema%d: %v", ErrInsufficientData, EMAFastPeriod, err)
	}
	if ind.EMA21, err = CalculateEMA(closes, EMASlowPeriod); err != nil {
		return nil, fmt.Errorf("%w: ema%d: %v", ErrInsufficientData, EMASlowPeriod, err)
	}
	if ind.RSI, err = CalculateRSI(closes, RSIPeriod); err != nil {
		return nil, fmt.Errorf("%w: rsi: %v", ErrInsufficientData, err)
	}
	if ind.BBHigh, ind.BBLow, err = CalculateBollinger(closes, BBPeriod, BBStdDevs); err != nil {
		return nil, fmt.Errorf("%w: bollinger: %v", ErrInsufficientData, err)
	}
	if ind.SMA50, err = CalculateSMA(closes, SMAMidPeriod); err != nil {
		return nil, fmt.Errorf("%w: sma%d: %v", ErrInsufficientData, SMAMidPeriod, err)
	}
	if ind.SMA200, err = CalculateSMA(closes, SMALongPeriod); err != nil {
		return nil, fmt.Errorf("%w: sma%d: %v", ErrInsufficientData, SMALongPeriod, err)
	}

	prev := closes[:len(closes)-1]
	if v, err := CalculateSMA(prev, SMAMidPeriod); err == nil {
		ind.SMA50Prev = v
	} else {
		ind.SMA50Prev = ind.SMA50
	}
	if v, err := CalculateSMA(prev, SMALongPeriod); err == nil {
		ind.SMA200Prev = v
	} else {
		ind.SMA200Prev = ind.SMA200
	}

	return ind, nil
}
