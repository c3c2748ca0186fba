package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/okian/tombola/internal/adapters/http/api"
	app "github.com/okian/tombola/internal/app"
	"github.com/okian/tombola/internal/config"
	"github.com/okian/tombola/pkg/logger"
	"github.com/okian/tombola/pkg/metrics"
)

// HTTP server timeout constants.
const (
	readTimeout            = 10 * time.Second
	idleTimeout            = 60 * time.Second
	readHeaderTimeout      = 5 * time.Second
	shutdownTimeout        = 30 * time.Second
	serviceMetricsInterval = 5 * time.Second
)

func main() {
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env).
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}

	// Apply configured log level (fallback to info on invalid input).
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	svc := app.New(
		app.WithLogger(log),
		app.WithSpinDuration(time.Duration(cfg.SpinDurationMS)*time.Millisecond),
		app.WithSpinInterval(time.Duration(cfg.SpinIntervalMS)*time.Millisecond),
		app.WithMaxHistory(cfg.MaxHistory),
		app.WithDefaultCategories(cfg.DefaultCategories),
	)
	if err := svc.Start(ctx); err != nil {
		os.Stderr.WriteString("failed to start service: " + err.Error() + "\n")
		return
	}
	defer svc.Stop()

	go startServiceMetricsUpdater(ctx, svc)

	mux := http.NewServeMux()
	apiServer := api.NewServer(svc, svc, cfg.MaxGroupSize)
	apiServer.Register(ctx, mux)

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: mux,
		ReadTimeout: readTimeout,
		// No WriteTimeout: a draw response legitimately blocks for the
		// full cosmetic spin duration.
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		log.Info(ctx, "starting HTTP server", logger.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			os.Stderr.WriteString("HTTP server failed: " + err.Error() + "\n")
			return
		}
	}()

	<-ctx.Done()
	log.Info(ctx, "shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "server shutdown failed", logger.Error(err))
	}

	log.Info(ctx, "server stopped")
}

// startServiceMetricsUpdater refreshes service-level gauges on a fixed
// interval so they stay current between mutating commands.
func startServiceMetricsUpdater(ctx context.Context, svc *app.Service) {
	ticker := time.NewTicker(serviceMetricsInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			updateServiceMetrics(svc)
		}
	}
}

// updateServiceMetrics pushes the current inventory counts to Prometheus.
func updateServiceMetrics(svc *app.Service) {
	stats := svc.GetStats()

	if n, ok := stats["tickets"].(int); ok {
		metrics.UpdateTicketsAvailable(n)
	}
	if n, ok := stats["prizes"].(int); ok {
		metrics.UpdatePrizesTotal(n)
	}
	if n, ok := stats["prizesAvailable"].(int); ok {
		metrics.UpdatePrizesAvailable(n)
	}
	if n, ok := stats["owners"].(int); ok {
		metrics.UpdateOwnersTotal(n)
	}
	if n, ok := stats["historyEntries"].(int); ok {
		metrics.UpdateHistoryEntries(n)
	}
}
