package config

import "time"

// FetchConfig controls how league documents are downloaded.
type FetchConfig struct {
	Provider    string
	Timeout     time.Duration
	MaxAttempts int
	Backoff     time.Duration
}

func loadFetch() FetchConfig {
	return FetchConfig{
		Provider:    envOrDefault(envProvider, defaultProvider),
		Timeout:     durationEnvOrDefault(envHTTPTimeout, defaultHTTPTimeout),
		MaxAttempts: intEnvOrDefault(envFetchMaxAttempts, defaultFetchMaxAttempts),
		Backoff:     durationEnvOrDefault(envFetchBackoff, defaultFetchBackoff),
	}
}
