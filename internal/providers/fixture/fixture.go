package fixture

import (
	"context"

	"github.com/preston-bernstein/football-leagues/internal/domain/league"
)

const providerName = "fixture"

// sampleLeague is served for every URL so the console can be tried offline.
const sampleLeague = `{
  "name": "Primera División 2023/24",
  "clubs": [
    {"key": "realmadrid", "name": "Real Madrid CF", "code": "RMA", "country": "Spain"},
    {"key": "barcelona", "name": "FC Barcelona", "code": "FCB", "country": "Spain"},
    {"key": "atletico", "name": "Club Atlético de Madrid", "code": "ATM", "country": "Spain"},
    {"key": "girona", "name": "Girona FC", "country": "Spain"},
    {"key": "athletic", "name": "Athletic Club", "code": "ATH"}
  ]
}`

// Provider returns a static league document useful for local testing and demos.
type Provider struct {
	payload string
}

// New creates a fixture provider serving the built-in sample league.
func New() *Provider {
	return &Provider{payload: sampleLeague}
}

// Name identifies the provider in logs and metrics.
func (p *Provider) Name() string {
	return providerName
}

// FetchLeague ignores url and returns the sample league.
func (p *Provider) FetchLeague(ctx context.Context, url string) (league.Document, error) {
	_ = url
	if err := ctx.Err(); err != nil {
		return league.Document{}, err
	}
	return league.Unmarshal([]byte(p.payload))
}
