package providers

import (
	"context"

	"github.com/preston-bernstein/football-leagues/internal/domain/league"
)

// LeagueProvider fetches one league document from a catalog URL.
type LeagueProvider interface {
	FetchLeague(ctx context.Context, url string) (league.Document, error)
}

// ProviderFunc adapts a function to LeagueProvider.
type ProviderFunc func(ctx context.Context, url string) (league.Document, error)

func (f ProviderFunc) FetchLeague(ctx context.Context, url string) (league.Document, error) {
	return f(ctx, url)
}
