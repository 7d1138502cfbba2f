package config

import (
	"testing"
	"time"
)

func TestBoolEnvOrDefault(t *testing.T) {
	t.Setenv("BOOL_TEST", "")
	if got := boolEnvOrDefault("BOOL_TEST", true); !got {
		t.Fatalf("expected default true when unset")
	}

	cases := []struct {
		val      string
		expected bool
	}{
		{"true", true},
		{"TRUE", true},
		{"1", true},
		{"yes", true},
		{"false", false},
		{"FALSE", false},
		{"0", false},
		{"no", false},
		{" off ", false},
		{"maybe", true}, // falls back to default on unknown
	}

	for _, tc := range cases {
		t.Setenv("BOOL_TEST", tc.val)
		if got := boolEnvOrDefault("BOOL_TEST", true); got != tc.expected {
			t.Fatalf("expected %v for %s, got %v", tc.expected, tc.val, got)
		}
	}
}

func TestIntEnvOrDefault(t *testing.T) {
	cases := []struct {
		val      string
		expected int
	}{
		{"", 7},
		{"3", 3},
		{"0", 7},
		{"abc", 7},
	}

	for _, tc := range cases {
		t.Setenv("INT_TEST", tc.val)
		if got := intEnvOrDefault("INT_TEST", 7); got != tc.expected {
			t.Fatalf("expected %d for %q, got %d", tc.expected, tc.val, got)
		}
	}
}

func TestDurationEnvOrDefault(t *testing.T) {
	cases := []struct {
		val      string
		expected time.Duration
	}{
		{"", 2 * time.Second},
		{" 750ms ", 750 * time.Millisecond},
		{"-1s", 2 * time.Second},
		{"soon", 2 * time.Second},
	}

	for _, tc := range cases {
		t.Setenv("DURATION_TEST", tc.val)
		if got := durationEnvOrDefault("DURATION_TEST", 2*time.Second); got != tc.expected {
			t.Fatalf("expected %s for %q, got %s", tc.expected, tc.val, got)
		}
	}
}

func TestEnvOrDefaultIgnoresBlankValues(t *testing.T) {
	t.Setenv("PATH_TEST", "   ")
	if got := envOrDefault("PATH_TEST", "ligas_urls.txt"); got != "ligas_urls.txt" {
		t.Fatalf("expected default for blank value, got %q", got)
	}
	t.Setenv("PATH_TEST", " custom.txt ")
	if got := envOrDefault("PATH_TEST", "ligas_urls.txt"); got != "custom.txt" {
		t.Fatalf("expected trimmed value, got %q", got)
	}
}
