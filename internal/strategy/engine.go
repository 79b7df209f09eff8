package strategy

import (
	"math"
	"time"

	"TradeSentinel/internal/model"
)

// Decision thresholds for the pro-trade ruleset.
const (
	RSIOversold   = 35.0
	RSIOverbought = 65.0

	// Relative distance below which price counts as sitting on a Fib level.
	FibProximity = 0.005

	BuyStopLoss    = 0.98
	BuyTakeProfit  = 1.04
	SellStopLoss   = 1.02
	SellTakeProfit = 0.96
)

// Evaluate applies the decision ruleset to the indicator snapshot and
// Fibonacci levels. Steps run in a fixed order: cross detection, Fib
// proximity, then the directional setup check (buy before sell). A nil
// return means no confluence accumulated and the evaluation is suppressed;
// any non-empty confluence yields a deliverable plan, even a HOLD.
func Evaluate(symbol, timeframe string, ind *model.IndicatorSet, fibs []model.FibLevel) *model.TradePlan {
	price := ind.Price
	var confluence []string

	// Golden / Death cross: SMA50 crossing SMA200 between the previous
	// and current bar. Mutually exclusive by construction.
	if ind.SMA50 > ind.SMA200 && ind.SMA50Prev < ind.SMA200Prev {
		confluence = append(confluence, "Golden Cross (Bullish)")
	} else if ind.SMA50 < ind.SMA200 && ind.SMA50Prev > ind.SMA200Prev {
		confluence = append(confluence, "Death Cross (Bearish)")
	}

	// Fibonacci proximity: several levels may tag at once.
	for _, lvl := range fibs {
		if math.Abs(price-lvl.Price)/price < FibProximity {
			confluence = append(confluence, "Price at "+lvl.Label+" Fib Level")
		}
	}

	// Primary setup, buy checked before sell.
	kind := model.SignalHold
	var stopLoss, takeProfit float64
	switch {
	case ind.EMA9 > ind.EMA21 && ind.RSI < RSIOversold && price <= ind.BBLow:
		kind = model.SignalProBuy
		stopLoss = price * BuyStopLoss
		takeProfit = price * BuyTakeProfit
		confluence = append(confluence, "RSI oversold", "Price at Lower BB", "EMA9 > EMA21")
	case ind.EMA9 < ind.EMA21 && ind.RSI > RSIOverbought && price >= ind.BBHigh:
		kind = model.SignalProSell
		stopLoss = price * SellStopLoss
		takeProfit = price * SellTakeProfit
		confluence = append(confluence, "RSI overbought", "Price at Upper BB", "EMA9 < EMA21")
	}

	if len(confluence) == 0 {
		return nil
	}

	return &model.TradePlan{
		Symbol:     symbol,
		Timeframe:  timeframe,
		Kind:       kind,
		Price:      price,
		Entry:      price,
		StopLoss:   stopLoss,
		TakeProfit: takeProfit,
		Confluence: confluence,
		CreatedAt:  time.Now(),
	}
}
