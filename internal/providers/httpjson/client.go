package httpjson

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/preston-bernstein/football-leagues/internal/domain/league"
	"github.com/preston-bernstein/football-leagues/internal/providers"
)

// Config controls how the client reaches league endpoints.
type Config struct {
	HTTPClient *http.Client
	Timeout    time.Duration
	UserAgent  string
}

// Client downloads league documents with a single GET per call.
type Client struct {
	httpClient httpDoer
	userAgent  string
}

// NewClient constructs a client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		userAgent:  resolveUserAgent(cfg.UserAgent),
	}
}

// Name identifies the provider in logs and metrics.
func (c *Client) Name() string {
	return providerName
}

// FetchLeague GETs url and parses the body as a league document.
func (c *Client) FetchLeague(ctx context.Context, url string) (league.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return league.Document{}, fmt.Errorf("%s: build request: %w", providerName, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return league.Document{}, fmt.Errorf("%s: %w", providerName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return league.Document{}, &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
		}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return league.Document{}, &providers.StatusError{
			Provider:   providerName,
			URL:        url,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	doc, err := league.Decode(resp.Body)
	if err != nil {
		return league.Document{}, fmt.Errorf("%s: %s: %w", providerName, url, err)
	}
	return doc, nil
}
