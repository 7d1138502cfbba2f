package testutil

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/preston-bernstein/football-leagues/internal/domain/league"
	"github.com/preston-bernstein/football-leagues/internal/metrics"
	"github.com/preston-bernstein/football-leagues/internal/providers"
)

func TestSampleLeague(t *testing.T) {
	doc := SampleLeague()
	if doc.Name.Or("") != "Liga Test 2024" || doc.TeamCount() != 3 {
		t.Fatalf("unexpected sample league %+v", doc)
	}
	if doc.Clubs[1].Code.Present || doc.Clubs[2].Country.Present {
		t.Fatalf("expected sample to carry absent attributes")
	}
	if doc.Payload == nil {
		t.Fatalf("expected payload kept for caching")
	}
}

func TestServeHelpers(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})

	rr := Serve(handler, http.MethodPost, "/test", strings.NewReader("{}"))
	AssertStatus(t, rr, http.StatusCreated)
}

func TestJSONServer(t *testing.T) {
	srv := JSONServer(t, http.StatusTeapot, `{"ok":true}`)

	resp, err := http.Get(srv.URL)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusTeapot || string(body) != `{"ok":true}` {
		t.Fatalf("unexpected response %d %s", resp.StatusCode, body)
	}
}

func TestSnapshotHelpers(t *testing.T) {
	store := NewTempStore(t)
	if _, err := store.Load(); err == nil {
		t.Fatalf("expected empty temp store")
	}
	WriteCache(t, store, SampleLeagueJSON)
	doc, err := store.Load()
	if err != nil {
		t.Fatalf("expected cached league, got %v", err)
	}
	if doc.TeamCount() != 3 {
		t.Fatalf("expected three clubs, got %d", doc.TeamCount())
	}
}

func TestServerStubs(t *testing.T) {
	sh := &StubHTTPServer{AddrVal: ":9090", ListenErr: errors.New("boom"), ShutdownErr: errors.New("down")}
	sh.HandlerVal = http.NewServeMux()
	if err := sh.ListenAndServe(); !errors.Is(err, sh.ListenErr) {
		t.Fatalf("expected listen error")
	}
	if err := sh.Shutdown(context.Background()); !errors.Is(err, sh.ShutdownErr) {
		t.Fatalf("expected shutdown error")
	}
	if sh.Handler() == nil || sh.Addr() != ":9090" {
		t.Fatalf("expected handler and addr passthrough")
	}
	if sh.ListenCalls != 1 || sh.ShutdownCalls != 1 {
		t.Fatalf("expected listen/shutdown calls, got %+v", sh)
	}

	e := &ErrHTTPServer{}
	if err := e.ListenAndServe(); err == nil {
		t.Fatalf("expected listen failure")
	}
	_ = e.Shutdown(context.Background())
	if e.ShutdownCalls != 1 || e.Addr() != ":0" || e.Handler() == nil {
		t.Fatalf("unexpected err server state %+v", e)
	}
}

func TestLoggerAndMetricsHelpers(t *testing.T) {
	logger, buf := NewBufferLogger()
	logger.Debug("hello", "k", "v")
	AssertLogged(t, buf, "hello", "k=v")

	rec, handler, shutdown, err := NewRecorderWithShutdown(context.Background(), metrics.TelemetryConfig{Enabled: true})
	if err != nil || rec == nil || handler != nil || shutdown == nil {
		t.Fatalf("expected recorder and shutdown only")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("expected nil shutdown error, got %v", err)
	}
}

func TestProviderHelpers(t *testing.T) {
	ctx := context.Background()
	doc := SampleLeague()

	if got, _ := StaticProvider(doc).FetchLeague(ctx, "u"); got.TeamCount() != 3 {
		t.Fatalf("expected league from StaticProvider")
	}

	errProv := ErrProvider{Err: errors.New("boom")}
	if _, err := errProv.FetchLeague(ctx, "u"); !errors.Is(err, errProv.Err) {
		t.Fatalf("expected error passthrough")
	}

	if _, err := (UnavailableProvider{}).FetchLeague(ctx, "u"); !errors.Is(err, providers.ErrProviderUnavailable) {
		t.Fatalf("expected provider unavailable")
	}

	rec := &RecordingProvider{Doc: league.Document{Name: league.Set("x")}}
	_, _ = rec.FetchLeague(ctx, "a")
	_, _ = rec.FetchLeague(ctx, "b")
	if len(rec.URLs) != 2 || rec.URLs[1] != "b" {
		t.Fatalf("expected recorded urls, got %v", rec.URLs)
	}
}
