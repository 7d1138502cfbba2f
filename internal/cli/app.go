// Package cli assembles the league console: provider, cache, exporter, metrics and menu.
package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/football-leagues/internal/app/leagues"
	"github.com/preston-bernstein/football-leagues/internal/config"
	"github.com/preston-bernstein/football-leagues/internal/console"
	"github.com/preston-bernstein/football-leagues/internal/i18n"
	"github.com/preston-bernstein/football-leagues/internal/metrics"
)

var metricsSetup = metrics.Setup

// menuRunner is the interactive loop driven by App.
type menuRunner interface {
	Run(ctx context.Context) error
}

// App runs one console on the given input and output.
type App struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	menu          menuRunner
	metricsServer httpServer
	metricsStop   func(context.Context) error
}

// New constructs an App reading answers from in and writing the menu to out.
func New(cfg config.Config, logger *slog.Logger, in io.Reader, out io.Writer) *App {
	return newAppWithMetrics(cfg, logger, in, out, nil)
}

func newAppWithMetrics(cfg config.Config, logger *slog.Logger, in io.Reader, out io.Writer, recorder *metrics.Recorder) *App {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	text := i18n.New(cfg.Language)
	provider := newProviderFactory(logger, recorder).build(cfg)
	storage := buildStorage(cfg, text)
	svc := leagues.NewService(leagues.Options{
		CatalogPath: cfg.CatalogPath,
		Provider:    provider,
		Store:       storage.store,
		Exporter:    storage.exporter,
		Metrics:     recorder,
		Logger:      logger,
	})
	menu := console.NewMenu(svc, console.Config{
		In:      in,
		Out:     out,
		Text:    text,
		Metrics: recorder,
		Logger:  logger,
	})

	return &App{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		menu:          menu,
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
	}
}

// newAppWithDeps is used for testing to inject custom components.
func newAppWithDeps(cfg config.Config, logger *slog.Logger, menu menuRunner, metricsSrv httpServer) *App {
	return &App{
		cfg:           cfg,
		logger:        logger,
		metrics:       metrics.NewRecorder(),
		menu:          menu,
		metricsServer: metricsSrv,
	}
}

// Run serves the menu until the user leaves, input ends or ctx is cancelled, then stops telemetry.
// Cancellation counts as a normal shutdown.
func (a *App) Run(ctx context.Context) error {
	a.startMetrics()

	err := a.menu.Run(ctx)
	if errors.Is(err, context.Canceled) {
		if a.logger != nil {
			a.logger.Info("shutdown signal received")
		}
		err = nil
	}

	a.gracefulShutdown()
	return err
}

func (a *App) startMetrics() {
	if a.metricsServer == nil {
		return
	}
	launchServer("metrics", a.metricsServer, a.logger, nil)
}

func (a *App) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if a.metricsStop != nil {
		if err := a.metricsStop(shutdownCtx); err != nil && a.logger != nil {
			a.logger.Warn("metrics shutdown failed", "error", err)
		}
	}

	if a.metricsServer != nil {
		if err := a.metricsServer.Shutdown(shutdownCtx); err != nil && a.logger != nil {
			a.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if a.logger != nil {
		a.logger.Info("shutdown complete")
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "err", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		mux := http.NewServeMux()
		mux.Handle(metricsPath, handler)
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:              ":" + cfg.Metrics.Port,
				Handler:           mux,
				ReadHeaderTimeout: readHeaderTimeout,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
			if onError != nil {
				onError(err)
			}
		}
	}()
}
