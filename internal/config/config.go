package config

// Config holds runtime configuration for the league console.
type Config struct {
	CatalogPath string
	CachePath   string
	ExportDir   string
	Language    string
	Fetch       FetchConfig
	Metrics     MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		CatalogPath: envOrDefault(envCatalogPath, defaultCatalogPath),
		CachePath:   envOrDefault(envCachePath, defaultCachePath),
		ExportDir:   envOrDefault(envExportDir, defaultExportDir),
		Language:    envOrDefault(envLanguage, defaultLanguage),
		Fetch:       loadFetch(),
		Metrics:     loadMetrics(),
	}
}
