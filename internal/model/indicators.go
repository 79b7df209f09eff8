package model

// IndicatorSet is a scalar snapshot of all indicators at the latest bar.
// Recomputed on every evaluation, never cached across invocations.
type IndicatorSet struct {
	Price      float64
	EMA9       float64
	EMA21      float64
	RSI        float64
	BBHigh     float64
	BBLow      float64
	SMA50      float64
	SMA200     float64
	SMA50Prev  float64
	SMA200Prev float64
}

// FibLevel pairs a Fibonacci retracement label with its price.
type FibLevel struct {
	Label string
	Price float64
}
