package cli

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/preston-bernstein/football-leagues/internal/config"
	"github.com/preston-bernstein/football-leagues/internal/metrics"
	"github.com/preston-bernstein/football-leagues/internal/testutil"
)

func TestBuildMetricsHandlesSetupFailure(t *testing.T) {
	orig := metricsSetup
	defer func() { metricsSetup = orig }()
	metricsSetup = func(ctx context.Context, cfg metrics.TelemetryConfig) (*metrics.Recorder, http.Handler, func(context.Context) error, error) {
		return nil, nil, nil, errors.New("fail")
	}

	rec, srv, stop := buildMetrics(config.Config{Metrics: config.MetricsConfig{Enabled: true}}, nil, nil)
	if rec == nil || srv != nil || stop != nil {
		t.Fatalf("expected fallback recorder only")
	}
}

func TestBuildMetricsDisabledSkipsServer(t *testing.T) {
	rec, srv, stop := buildMetrics(config.Config{}, nil, nil)
	if rec == nil || srv != nil || stop == nil {
		t.Fatalf("expected recorder and no-op shutdown without a listener")
	}
}

func TestBuildMetricsUsesInjectedRecorder(t *testing.T) {
	rec := metrics.NewRecorder()
	got, srv, stop := buildMetrics(config.Config{Metrics: config.MetricsConfig{Enabled: true}}, nil, rec)
	if got != rec || srv != nil || stop != nil {
		t.Fatalf("expected injected recorder used as is")
	}
}

func TestBuildMetricsServesPrometheusPath(t *testing.T) {
	orig := metricsSetup
	defer func() { metricsSetup = orig }()
	metricsSetup = func(ctx context.Context, cfg metrics.TelemetryConfig) (*metrics.Recorder, http.Handler, func(context.Context) error, error) {
		rec, _, stop, err := testutil.NewRecorderWithShutdown(ctx, cfg)
		return rec, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}), stop, err
	}

	_, srv, stop := buildMetrics(config.Config{Metrics: config.MetricsConfig{Enabled: true, Port: "9999"}}, nil, nil)
	if srv == nil || stop == nil {
		t.Fatalf("expected metrics server and shutdown")
	}
	if srv.Addr() != ":9999" {
		t.Fatalf("unexpected addr %s", srv.Addr())
	}
	testutil.AssertStatus(t, testutil.Serve(srv.Handler(), http.MethodGet, "/metrics", nil), http.StatusOK)
	testutil.AssertStatus(t, testutil.Serve(srv.Handler(), http.MethodGet, "/", nil), http.StatusNotFound)
}
