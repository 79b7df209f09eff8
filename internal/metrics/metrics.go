package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus counters for the alert pipeline.
type Metrics struct {
	TicksTotal       prometheus.Counter
	Evaluations      *prometheus.CounterVec // labels: symbol
	PlansEmitted     *prometheus.CounterVec // labels: symbol, kind
	FetchFailures    prometheus.Counter
	InsufficientData prometheus.Counter
	ClosedSkips      prometheus.Counter
	NoSignal         prometheus.Counter
	NotifyFailures   prometheus.Counter
}

// New registers the pipeline metrics with reg and returns them.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		TicksTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "sentinel_ticks_total",
			Help: "Number of scheduler ticks executed.",
		}),
		Evaluations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "sentinel_evaluations_total",
			Help: "Number of pipeline evaluations per symbol.",
		}, []string{"symbol"}),
		PlansEmitted: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "sentinel_plans_emitted_total",
			Help: "Number of trade plans delivered, by symbol and signal kind.",
		}, []string{"symbol", "kind"}),
		FetchFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "sentinel_fetch_failures_total",
			Help: "Number of evaluations skipped because market data was unavailable.",
		}),
		InsufficientData: factory.NewCounter(prometheus.CounterOpts{
			Name: "sentinel_insufficient_data_total",
			Help: "Number of evaluations skipped because the series was too short.",
		}),
		ClosedSkips: factory.NewCounter(prometheus.CounterOpts{
			Name: "sentinel_closed_market_skips_total",
			Help: "Number of evaluations skipped because the market was closed.",
		}),
		NoSignal: factory.NewCounter(prometheus.CounterOpts{
			Name: "sentinel_no_signal_total",
			Help: "Number of evaluations suppressed for lack of confluence.",
		}),
		NotifyFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "sentinel_notify_failures_total",
			Help: "Number of failed notification deliveries.",
		}),
	}
}
