package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Duration is the time unit used by the fetch settings.
type Duration = time.Duration

// lookup returns the trimmed value of key, or "" when it is unset or blank.
func lookup(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

// envOrDefault reads a path or name setting such as CATALOG_PATH or LEAGUES_LANG.
func envOrDefault(key, defaultValue string) string {
	if val := lookup(key); val != "" {
		return val
	}
	return defaultValue
}

// positiveEnvOrDefault parses key with parse and keeps defaultValue for blank,
// unparsable or non-positive input.
func positiveEnvOrDefault[T int | time.Duration](key string, defaultValue T, parse func(string) (T, error)) T {
	raw := lookup(key)
	if raw == "" {
		return defaultValue
	}
	val, err := parse(raw)
	if err != nil || val <= 0 {
		return defaultValue
	}
	return val
}

// durationEnvOrDefault reads fetch timings like HTTP_TIMEOUT=15s.
func durationEnvOrDefault(key string, defaultValue time.Duration) time.Duration {
	return positiveEnvOrDefault(key, defaultValue, time.ParseDuration)
}

// intEnvOrDefault reads counts like FETCH_MAX_ATTEMPTS.
func intEnvOrDefault(key string, defaultValue int) int {
	return positiveEnvOrDefault(key, defaultValue, strconv.Atoi)
}

// boolEnvOrDefault reads switches like METRICS_ENABLED. Unknown words keep the default.
func boolEnvOrDefault(key string, defaultValue bool) bool {
	switch strings.ToLower(lookup(key)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return defaultValue
	}
}
