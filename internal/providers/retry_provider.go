package providers

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/preston-bernstein/football-leagues/internal/domain/league"
	"github.com/preston-bernstein/football-leagues/internal/logging"
	"github.com/preston-bernstein/football-leagues/internal/metrics"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 500 * time.Millisecond
	maxBackoff           = 10 * time.Second
)

// retryingProvider wraps a LeagueProvider with bounded exponential backoff.
type retryingProvider struct {
	inner       LeagueProvider
	logger      *slog.Logger
	metrics     *metrics.Recorder
	name        string
	maxAttempts int
	newBackOff  func() backoff.BackOff
}

// NewRetryingProvider wraps the given provider with retries. If maxAttempts/initial are <= 0, defaults are used.
// Client errors (4xx other than 429), undecodable bodies and malformed documents are not retried.
func NewRetryingProvider(inner LeagueProvider, logger *slog.Logger, recorder *metrics.Recorder, name string, maxAttempts int, initial time.Duration) LeagueProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if initial <= 0 {
		initial = defaultBackoff
	}
	return &retryingProvider{
		inner:       inner,
		logger:      logger,
		metrics:     recorder,
		name:        name,
		maxAttempts: maxAttempts,
		newBackOff: func() backoff.BackOff {
			exp := backoff.NewExponentialBackOff()
			exp.InitialInterval = initial
			exp.MaxInterval = maxBackoff
			exp.MaxElapsedTime = 0
			return exp
		},
	}
}

func (r *retryingProvider) FetchLeague(ctx context.Context, url string) (league.Document, error) {
	if r == nil || r.inner == nil {
		return league.Document{}, ErrProviderUnavailable
	}

	policy := &retryAfterBackOff{BackOff: backoff.WithMaxRetries(r.newBackOff(), uint64(r.maxAttempts-1))}
	attempt := 0
	var doc league.Document

	operation := func() error {
		attempt++
		start := time.Now()
		got, err := r.inner.FetchLeague(ctx, url)
		r.metrics.RecordProviderAttempt(r.name, time.Since(start), err)
		if err == nil {
			doc = got
			return nil
		}
		if rl, ok := AsRateLimitError(err); ok {
			r.metrics.RecordRateLimit(r.name, rl.RetryAfter)
			policy.retryAfter = rl.RetryAfter
		}
		if ctx.Err() != nil || !retryable(err) {
			return backoff.Permanent(err)
		}
		return err
	}
	notify := func(err error, delay time.Duration) {
		logWithProvider(ctx, r.logger, slog.LevelWarn, r.name, "league fetch retry",
			logging.FieldAttempt, attempt,
			"max_attempts", r.maxAttempts,
			"delay", delay,
			logging.FieldURL, url,
			"error", err,
		)
	}

	if err := backoff.RetryNotify(operation, backoff.WithContext(policy, ctx), notify); err != nil {
		logWithProvider(ctx, r.logger, slog.LevelWarn, r.name, "league fetch failed",
			"attempts", attempt,
			logging.FieldURL, url,
			"error", err,
		)
		return league.Document{}, err
	}
	return doc, nil
}

func retryable(err error) bool {
	if errors.Is(err, league.ErrInvalidJSON) || errors.Is(err, league.ErrMalformedDocument) {
		return false
	}
	if _, ok := AsRateLimitError(err); ok {
		return true
	}
	if statusErr, ok := AsStatusError(err); ok {
		return statusErr.Temporary()
	}
	return true
}

// retryAfterBackOff stretches the next delay to an upstream Retry-After when one was seen.
type retryAfterBackOff struct {
	backoff.BackOff
	retryAfter time.Duration
}

func (b *retryAfterBackOff) NextBackOff() time.Duration {
	next := b.BackOff.NextBackOff()
	if next == backoff.Stop {
		return next
	}
	if b.retryAfter > next {
		next = b.retryAfter
	}
	b.retryAfter = 0
	return next
}
