package calculator

import (
	"errors"
	"math"
)

// CalculateBollinger computes the upper and lower Bollinger Bands at the
// latest price: SMA ± k standard deviations over the trailing window.
func CalculateBollinger(prices []float64, period int, k float64) (high, low float64, err error) {
	if period <= 0 {
		return 0, 0, errors.New("period must be positive")
	}
	if len(prices) < period {
		return 0, 0, errors.New("not enough data for Bollinger calculation")
	}

	window := prices[len(prices)-period:]
	sum := 0.0
	for _, p := range window {
		sum += p
	}
	sma := sum / float64(period)

	squareSum := 0.0
	for _, p := range window {
		diff := p - sma
		squareSum += diff * diff
	}
	stdDev := math.Sqrt(squareSum / float64(period))

	return sma + k*stdDev, sma - k*stdDev, nil
}
