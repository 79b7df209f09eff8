package notifier

import (
	"fmt"
	"strings"

	"TradeSentinel/internal/model"
)

// signalLabel maps a signal kind to its display line.
func signalLabel(kind model.SignalKind) string {
	switch kind {
	case model.SignalProBuy:
		return "✅ PRO-BUY Setup"
	case model.SignalProSell:
		return "❌ PRO-SELL Setup"
	default:
		return "🤝 HOLD / WAIT (no directional setup)"
	}
}

// FormatTradePlan renders a trade plan into a message title and body.
func FormatTradePlan(plan *model.TradePlan) (title, body string) {
	title = fmt.Sprintf("%s Trade Plan (%s)", plan.Symbol, plan.Timeframe)

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Price: %.2f\n\n", plan.Price))
	b.WriteString(fmt.Sprintf("Signal: %s\n", signalLabel(plan.Kind)))
	b.WriteString(fmt.Sprintf("Entry: %.2f\n", plan.Entry))
	if plan.Directional() {
		b.WriteString(fmt.Sprintf("Stop Loss: %.2f\n", plan.StopLoss))
		b.WriteString(fmt.Sprintf("Take Profit: %.2f\n", plan.TakeProfit))
	} else {
		b.WriteString("Stop Loss: —\n")
		b.WriteString("Take Profit: —\n")
	}
	b.WriteString(fmt.Sprintf("\nConfluence: %s", strings.Join(plan.Confluence, ", ")))
	return title, b.String()
}
