package cli

import (
	"log/slog"
	"strings"

	"github.com/preston-bernstein/football-leagues/internal/config"
	"github.com/preston-bernstein/football-leagues/internal/providers"
	"github.com/preston-bernstein/football-leagues/internal/providers/fixture"
	"github.com/preston-bernstein/football-leagues/internal/providers/httpjson"
)

func selectProvider(cfg config.Config, logger *slog.Logger) providers.LeagueProvider {
	switch strings.ToLower(cfg.Fetch.Provider) {
	case "http", "":
		return httpjson.NewClient(httpjson.Config{Timeout: cfg.Fetch.Timeout})
	case "fixture":
		return fixture.New()
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to http", slog.String("provider", cfg.Fetch.Provider))
		}
		return httpjson.NewClient(httpjson.Config{Timeout: cfg.Fetch.Timeout})
	}
}
