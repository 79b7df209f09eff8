package scheduler

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"TradeSentinel/internal/calculator"
	"TradeSentinel/internal/collector"
	"TradeSentinel/internal/config"
	"TradeSentinel/internal/markethours"
	"TradeSentinel/internal/metrics"
	"TradeSentinel/internal/model"
	"TradeSentinel/internal/notifier"
	"TradeSentinel/internal/strategy"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Scheduler drives the periodic alert scan and serves manual queries
// through the same pipeline. Instruments are processed sequentially in
// configuration order; a failure in one never aborts its siblings.
type Scheduler struct {
	Cron      *cron.Cron
	Collector *collector.Collector
	Notifier  notifier.Notifier
	Watchlist []config.SymbolConfig
	Metrics   *metrics.Metrics
	Ctx       context.Context

	now func() time.Time
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, col *collector.Collector, n notifier.Notifier, watchlist []config.SymbolConfig, m *metrics.Metrics) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Collector: col,
		Notifier:  n,
		Watchlist: watchlist,
		Metrics:   m,
		Ctx:       ctx,
		now:       time.Now,
	}
}

// Register adds the recurring alert task under the given cron spec.
func (s *Scheduler) Register(alertCron string) error {
	if _, err := s.Cron.AddFunc(alertCron, s.Tick); err != nil {
		return fmt.Errorf("register alert task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	zap.L().Info("scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	zap.L().Info("scheduler stopped")
}

// Tick runs one full scan over the watchlist in configuration order.
func (s *Scheduler) Tick() {
	s.Metrics.TicksTotal.Inc()
	for _, sc := range s.Watchlist {
		if !markethours.IsOpen(sc.Symbol, s.now()) {
			s.Metrics.ClosedSkips.Inc()
			zap.L().Info("market closed, skipping", zap.String("symbol", sc.Symbol))
			continue
		}
		s.processSymbol(sc)
	}
}

// processSymbol evaluates one instrument and delivers the result. Panics
// and unexpected errors are contained here so sibling instruments and
// future ticks keep running.
func (s *Scheduler) processSymbol(sc config.SymbolConfig) {
	defer func() {
		if r := recover(); r != nil {
			zap.L().Error("recovered while processing symbol",
				zap.String("symbol", sc.Symbol), zap.Any("panic", r))
		}
	}()

	plan, err := s.Evaluate(s.Ctx, sc.Symbol, sc.Timeframe)
	switch {
	case errors.Is(err, collector.ErrDataUnavailable):
		s.Metrics.FetchFailures.Inc()
		zap.L().Info("data unavailable, skipping", zap.String("symbol", sc.Symbol), zap.Error(err))
		return
	case errors.Is(err, calculator.ErrInsufficientData):
		s.Metrics.InsufficientData.Inc()
		zap.L().Info("insufficient data, skipping", zap.String("symbol", sc.Symbol), zap.Error(err))
		return
	case err != nil:
		zap.L().Error("evaluation failed", zap.String("symbol", sc.Symbol), zap.Error(err))
		return
	}
	if plan == nil {
		s.Metrics.NoSignal.Inc()
		zap.L().Info("no strong signal", zap.String("symbol", sc.Symbol))
		return
	}

	s.Metrics.PlansEmitted.WithLabelValues(sc.Symbol, string(plan.Kind)).Inc()
	title, body := notifier.FormatTradePlan(plan)
	if err := s.Notifier.Send(s.Ctx, sc.ChatID, title, body, notifier.AccentScheduled); err != nil {
		s.Metrics.NotifyFailures.Inc()
		zap.L().Error("send notification", zap.String("symbol", sc.Symbol), zap.Error(err))
		return
	}
	zap.L().Info("trade plan sent", zap.String("symbol", sc.Symbol), zap.String("kind", string(plan.Kind)))
}

// Evaluate runs the full pipeline once for one instrument: fetch, compute
// indicators, apply the ruleset. A nil plan with nil error means the
// evaluation was suppressed for lack of confluence.
func (s *Scheduler) Evaluate(ctx context.Context, symbol, timeframe string) (*model.TradePlan, error) {
	s.Metrics.Evaluations.WithLabelValues(symbol).Inc()

	series, err := s.Collector.Collect(ctx, symbol, timeframe)
	if err != nil {
		return nil, err
	}
	ind, err := calculator.Compute(series)
	if err != nil {
		return nil, err
	}
	fibs := calculator.FibonacciLevels(series.Bars)
	return strategy.Evaluate(symbol, timeframe, ind, fibs), nil
}

// HandleCommand processes a user command from the polling loop and returns
// a reply for the originating chat. Failures never propagate to the caller.
func (s *Scheduler) HandleCommand(chatID, text string) (reply string) {
	defer func() {
		if r := recover(); r != nil {
			zap.L().Error("recovered in command handler", zap.String("text", text), zap.Any("panic", r))
			reply = "❌ Something went wrong handling that command."
		}
	}()

	fields := strings.Fields(text)
	if len(fields) == 0 {
		return ""
	}

	switch fields[0] {
	case "/plan":
		if len(fields) < 2 {
			return "Usage: /plan SYMBOL [timeframe]"
		}
		symbol := fields[1]
		timeframe := "1d"
		if len(fields) >= 3 {
			timeframe = fields[2]
		}
		return s.manualPlan(chatID, symbol, timeframe)
	case "/status":
		var b strings.Builder
		b.WriteString("Market status:\n")
		for _, sc := range s.Watchlist {
			b.WriteString("• " + markethours.Status(sc.Symbol, s.now()) + "\n")
		}
		return b.String()
	default:
		return "Available commands:\n• /plan SYMBOL [timeframe]\n• /status"
	}
}

// manualPlan runs the pipeline once for an on-demand query.
func (s *Scheduler) manualPlan(chatID, symbol, timeframe string) string {
	plan, err := s.Evaluate(s.Ctx, symbol, timeframe)
	if err != nil {
		zap.L().Error("manual query failed",
			zap.String("symbol", symbol), zap.String("timeframe", timeframe), zap.Error(err))
		return fmt.Sprintf("❌ Error analyzing %s", symbol)
	}
	if plan == nil {
		return fmt.Sprintf("➖ No strong signal for %s on %s at the moment.", symbol, timeframe)
	}

	title, body := notifier.FormatTradePlan(plan)
	if err := s.Notifier.Send(s.Ctx, chatID, title, body, notifier.AccentManual); err != nil {
		s.Metrics.NotifyFailures.Inc()
		zap.L().Error("send manual reply", zap.String("symbol", symbol), zap.Error(err))
		return fmt.Sprintf("❌ Error analyzing %s", symbol)
	}
	return ""
}
