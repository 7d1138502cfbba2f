package cli

import "time"

const (
	metricsPath       = "/metrics"
	readHeaderTimeout = 5 * time.Second
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second
