package testutil

import (
	"context"
	"net/http"

	"github.com/preston-bernstein/football-leagues/internal/metrics"
)

// NewRecorderWithShutdown mirrors metrics.Setup's signature with an in-memory recorder and no handler.
func NewRecorderWithShutdown(context.Context, metrics.TelemetryConfig) (*metrics.Recorder, http.Handler, func(context.Context) error, error) {
	return metrics.NewRecorder(), nil, func(context.Context) error { return nil }, nil
}
