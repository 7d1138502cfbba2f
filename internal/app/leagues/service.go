// Package leagues coordinates the catalog, the fetch provider, the cache and the report exporter.
package leagues

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/preston-bernstein/football-leagues/internal/catalog"
	"github.com/preston-bernstein/football-leagues/internal/domain/league"
	"github.com/preston-bernstein/football-leagues/internal/logging"
	"github.com/preston-bernstein/football-leagues/internal/metrics"
	"github.com/preston-bernstein/football-leagues/internal/providers"
	"github.com/preston-bernstein/football-leagues/internal/snapshots"
)

var (
	// ErrFetchFailed wraps provider failures; nothing is written to the cache.
	ErrFetchFailed = errors.New("fetch league")
	// ErrSaveFailed wraps cache write failures after a successful fetch.
	ErrSaveFailed = errors.New("save league")
)

// Exporter writes a league report and returns the file path.
type Exporter interface {
	Export(doc league.Document) (string, error)
}

// CacheState describes what the cache held when it was read.
type CacheState int

const (
	CacheOK CacheState = iota
	CacheMissing
	CacheMalformed
)

func (s CacheState) String() string {
	switch s {
	case CacheOK:
		return "ok"
	case CacheMissing:
		return "missing"
	default:
		return "malformed"
	}
}

// Cached is the result of reading the cache. Doc is only meaningful when State is CacheOK.
type Cached struct {
	Doc   league.Document
	State CacheState
	Err   error
}

// Options configures a Service.
type Options struct {
	CatalogPath string
	Provider    providers.LeagueProvider
	Store       snapshots.Store
	Exporter    Exporter
	Metrics     *metrics.Recorder
	Logger      *slog.Logger
}

// Service runs the league operations behind the console menu.
type Service struct {
	catalogPath string
	provider    providers.LeagueProvider
	store       snapshots.Store
	exporter    Exporter
	metrics     *metrics.Recorder
	logger      *slog.Logger
}

// NewService constructs a Service from opts.
func NewService(opts Options) *Service {
	return &Service{
		catalogPath: opts.CatalogPath,
		provider:    opts.Provider,
		store:       opts.Store,
		exporter:    opts.Exporter,
		metrics:     opts.Metrics,
		logger:      opts.Logger,
	}
}

// Catalog reads the league catalog fresh from disk.
func (s *Service) Catalog() ([]league.CatalogEntry, error) {
	return catalog.Load(s.catalogPath)
}

// CachePath reports where fetched leagues are cached.
func (s *Service) CachePath() string {
	return s.store.Path()
}

// Acquire downloads entry's league and replaces the cache with it.
func (s *Service) Acquire(ctx context.Context, entry league.CatalogEntry) (league.Document, error) {
	logger := logging.FromContext(ctx, s.logger)
	start := time.Now()

	doc, err := s.provider.FetchLeague(ctx, entry.URL)
	if err != nil {
		logging.Error(logger, "league fetch failed", err,
			logging.FieldLeague, entry.Name,
			logging.FieldURL, entry.URL,
		)
		return league.Document{}, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}

	err = s.store.Save(doc)
	s.metrics.RecordCacheWrite(err)
	if err != nil {
		logging.Error(logger, "league cache write failed", err,
			logging.FieldLeague, entry.Name,
			logging.FieldPath, s.store.Path(),
		)
		return league.Document{}, fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}

	logging.Info(logger, "league cached",
		logging.FieldLeague, entry.Name,
		logging.FieldPath, s.store.Path(),
		logging.FieldCount, doc.TeamCount(),
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	return doc, nil
}

// Cached rereads the cache so views always see the latest persisted league.
func (s *Service) Cached() Cached {
	doc, err := s.store.Load()
	switch {
	case err == nil:
		return Cached{Doc: doc, State: CacheOK}
	case errors.Is(err, snapshots.ErrNotFound):
		return Cached{State: CacheMissing, Err: err}
	default:
		logging.Warn(s.logger, "league cache unreadable", "error", err, logging.FieldPath, s.store.Path())
		return Cached{State: CacheMalformed, Err: err}
	}
}

// Export writes the report for doc.
func (s *Service) Export(doc league.Document) (string, error) {
	path, err := s.exporter.Export(doc)
	s.metrics.RecordExport(err)
	if err != nil {
		logging.Error(s.logger, "report export failed", err, logging.FieldPath, path)
		return "", err
	}
	logging.Info(s.logger, "report exported", logging.FieldPath, path, logging.FieldCount, doc.TeamCount())
	return path, nil
}
