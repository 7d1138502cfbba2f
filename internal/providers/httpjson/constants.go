package httpjson

import "time"

const (
	providerName       = "http"
	defaultHTTPTimeout = 15 * time.Second
	defaultUserAgent   = "football-leagues/dev"
	maxErrorBody       = 512
)
