package cli

import (
	"fmt"
	"strings"

	"github.com/preston-bernstein/football-leagues/internal/providers"
)

// normalizeProviderName returns a lower-cased provider name for metrics and logs. The provider's
// own Name wins over the configured value, which may be an unknown alias.
func normalizeProviderName(raw string, provider providers.LeagueProvider) string {
	if named, ok := provider.(interface{ Name() string }); ok && named.Name() != "" {
		return strings.ToLower(named.Name())
	}
	if raw != "" {
		return strings.ToLower(raw)
	}
	if provider != nil {
		return strings.ToLower(fmt.Sprintf("%T", provider))
	}
	return "provider"
}
