package testutil

import (
	"context"

	"github.com/preston-bernstein/football-leagues/internal/domain/league"
	"github.com/preston-bernstein/football-leagues/internal/providers"
)

// StaticProvider returns doc for every URL.
func StaticProvider(doc league.Document) providers.LeagueProvider {
	return providers.ProviderFunc(func(context.Context, string) (league.Document, error) {
		return doc, nil
	})
}

// ErrProvider always returns the provided error.
type ErrProvider struct {
	Err error
}

func (p ErrProvider) FetchLeague(ctx context.Context, url string) (league.Document, error) {
	return league.Document{}, p.Err
}

// UnavailableProvider returns ErrProviderUnavailable.
type UnavailableProvider struct{}

func (UnavailableProvider) FetchLeague(ctx context.Context, url string) (league.Document, error) {
	return league.Document{}, providers.ErrProviderUnavailable
}

// RecordingProvider returns Doc and remembers every requested URL.
type RecordingProvider struct {
	Doc  league.Document
	URLs []string
}

func (p *RecordingProvider) FetchLeague(ctx context.Context, url string) (league.Document, error) {
	_ = ctx
	p.URLs = append(p.URLs, url)
	return p.Doc, nil
}
