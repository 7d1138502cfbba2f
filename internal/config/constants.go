package config

import "time"

const (
	envCatalogPath      = "CATALOG_PATH"
	envCachePath        = "CACHE_PATH"
	envExportDir        = "EXPORT_DIR"
	envLanguage         = "LEAGUES_LANG"
	envProvider         = "PROVIDER"
	envHTTPTimeout      = "HTTP_TIMEOUT"
	envFetchMaxAttempts = "FETCH_MAX_ATTEMPTS"
	envFetchBackoff     = "FETCH_BACKOFF"
	envMetricsPort      = "METRICS_PORT"
	envMetricsOn        = "METRICS_ENABLED"
	envOtelEndpoint     = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService      = "OTEL_SERVICE_NAME"
	envOtelInsecure     = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultCatalogPath = "ligas_urls.txt"
	defaultCachePath   = "data_base.json"
	defaultExportDir   = "."
	defaultLanguage    = "es"
	defaultProvider    = "http"
	// Some league feeds are large static files on slow CDNs.
	defaultHTTPTimeout      = 15 * Duration(time.Second)
	defaultFetchMaxAttempts = 3
	defaultFetchBackoff     = 500 * Duration(time.Millisecond)
	defaultMetricsPort      = "9090"
	defaultMetricsOn        = false
	defaultServiceName      = "football-leagues"
)
