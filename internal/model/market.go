package model

import "time"

// OHLCBar represents a single candlestick bar. Immutable once fetched.
type OHLCBar struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// TimeSeries holds the ordered bar sequence for one symbol and timeframe.
// Timestamps are strictly increasing. The series belongs to the pipeline
// invocation that fetched it and is discarded after use.
type TimeSeries struct {
	Symbol    string
	Timeframe string
	Bars      []OHLCBar
	FetchedAt time.Time
}

// Len returns the number of bars in the series.
func (s *TimeSeries) Len() int { return len(s.Bars) }

// Closes extracts the close-price column.
func (s *TimeSeries) Closes() []float64 {
	closes := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		closes[i] = b.Close
	}
	return closes
}

// LastClose returns the most recent close price, or 0 for an empty series.
func (s *TimeSeries) LastClose() float64 {
	if len(s.Bars) == 0 {
		return 0
	}
	return s.Bars[len(s.Bars)-1].Close
}
