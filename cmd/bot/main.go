package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"TradeSentinel/internal/collector"
	"TradeSentinel/internal/config"
	"TradeSentinel/internal/metrics"
	"TradeSentinel/internal/notifier"
	"TradeSentinel/internal/probe"
	"TradeSentinel/internal/scheduler"
	"TradeSentinel/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load(".env")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		// Logger is not up yet; stderr is all we have.
		os.Stderr.WriteString("load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.File); err != nil {
		os.Stderr.WriteString("init logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer logger.Sync()
	zap.L().Info("TradeSentinel starting...")

	// A missing credential halts the process before any scheduling begins.
	if err := cfg.Validate(); err != nil {
		zap.L().Fatal("config validation", zap.Error(err))
	}

	// Init fetcher
	var fetcher collector.Fetcher
	if cfg.DataSource.BaseURL != "" {
		fetcher = collector.NewRESTFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy)
	} else {
		fetcher = collector.NewYahooFetcher(cfg.Proxy)
	}
	zap.L().Info("data source selected", zap.String("source", fetcher.Name()))

	col := collector.NewCollector(fetcher, cfg.FetchTimeout)
	tn := notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Proxy)
	m := metrics.New(prometheus.DefaultRegisterer)

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Liveness probe for external uptime monitoring
	srv := probe.NewServer(cfg.Probe.Addr)
	go func() {
		zap.L().Info("probe listening", zap.String("addr", cfg.Probe.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.L().Error("probe server", zap.Error(err))
		}
	}()
	defer srv.Close()

	// Init scheduler
	sched := scheduler.NewScheduler(ctx, col, tn, cfg.Watchlist, m)
	if err := sched.Register(cfg.Schedule.AlertCron); err != nil {
		zap.L().Fatal("register alert task", zap.Error(err))
	}
	sched.Start()
	defer sched.Stop()

	// Start Telegram polling for manual queries
	go tn.StartPolling(ctx, sched.HandleCommand)
	zap.L().Info("telegram polling started")

	// Optional: run immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		zap.L().Info("RUN_ON_START enabled, scanning now")
		go sched.Tick()
	}

	zap.L().Info("TradeSentinel is running", zap.Int("symbols", len(cfg.Watchlist)))

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	zap.L().Info("shutdown signal received, stopping...")
	cancel()
	zap.L().Info("TradeSentinel stopped")
}
