package cli

import (
	"log/slog"

	"github.com/preston-bernstein/football-leagues/internal/config"
	"github.com/preston-bernstein/football-leagues/internal/metrics"
	"github.com/preston-bernstein/football-leagues/internal/providers"
)

// providerFactory assembles the configured provider behind the shared retry wrapper.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.LeagueProvider {
	base := selectProvider(cfg, f.logger)
	return providers.NewRetryingProvider(base, f.logger, f.metrics, normalizeProviderName(cfg.Fetch.Provider, base), cfg.Fetch.MaxAttempts, cfg.Fetch.Backoff)
}
