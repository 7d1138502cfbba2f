package httpjson

import (
	"net/http"
	"testing"
	"time"
)

func TestResolveHTTPClientDefaultsTimeout(t *testing.T) {
	client := resolveHTTPClient(nil, 0)
	httpClient, ok := client.(*http.Client)
	if !ok {
		t.Fatalf("expected *http.Client, got %T", client)
	}
	if httpClient.Timeout != defaultHTTPTimeout {
		t.Fatalf("expected timeout %s, got %s", defaultHTTPTimeout, httpClient.Timeout)
	}
}

func TestResolveHTTPClientUsesConfiguredTimeout(t *testing.T) {
	client := resolveHTTPClient(nil, 3*time.Second).(*http.Client)
	if client.Timeout != 3*time.Second {
		t.Fatalf("expected timeout 3s, got %s", client.Timeout)
	}
}

func TestResolveHTTPClientUsesProvidedClient(t *testing.T) {
	custom := &http.Client{Timeout: 5 * time.Second}
	client := resolveHTTPClient(custom, time.Second)
	if client != custom {
		t.Fatalf("expected provided client to be used")
	}
}

func TestResolveUserAgent(t *testing.T) {
	if got := resolveUserAgent(" "); got != defaultUserAgent {
		t.Fatalf("expected default user agent, got %q", got)
	}
	if got := resolveUserAgent("custom/1"); got != "custom/1" {
		t.Fatalf("expected custom user agent, got %q", got)
	}
}

func TestParseRetryAfter(t *testing.T) {
	cases := []struct {
		raw      string
		expected time.Duration
	}{
		{"", 0},
		{"5", 5 * time.Second},
		{" 2 ", 2 * time.Second},
		{"-1", 0},
		{"Wed, 21 Oct 2015 07:28:00 GMT", 0},
	}
	for _, c := range cases {
		if got := parseRetryAfter(c.raw); got != c.expected {
			t.Fatalf("retry-after %q: expected %s, got %s", c.raw, c.expected, got)
		}
	}
}
