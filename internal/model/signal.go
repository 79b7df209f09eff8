package model

import "time"

// SignalKind classifies the outcome of one evaluation.
type SignalKind string

const (
	SignalHold    SignalKind = "HOLD"
	SignalProBuy  SignalKind = "PRO_BUY"
	SignalProSell SignalKind = "PRO_SELL"
)

// TradePlan is the final output of the strategy engine: a deliverable
// trade setup with supporting evidence. StopLoss and TakeProfit are only
// set for directional (PRO_BUY / PRO_SELL) plans and stay zero for HOLD.
type TradePlan struct {
	Symbol     string
	Timeframe  string
	Kind       SignalKind
	Price      float64
	Entry      float64
	StopLoss   float64
	TakeProfit float64
	Confluence []string
	CreatedAt  time.Time
}

// Directional reports whether the plan carries a buy or sell setup.
func (p *TradePlan) Directional() bool {
	return p.Kind == SignalProBuy || p.Kind == SignalProSell
}
