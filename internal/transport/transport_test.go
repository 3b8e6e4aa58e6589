package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"jiractl/internal/apierr"
	"jiractl/internal/config"
	"jiractl/internal/logger"
)

func liveConfig(url string) config.Config {
	return config.Config{
		BaseURL: url,
		Email:   "dev@example.com",
		Token:   "test-token",
	}
}

func TestLive_MissingCredentials(t *testing.T) {
	tests := []config.Config{
		{},
		{BaseURL: "https://example.atlassian.net"},
		{BaseURL: "https://example.atlassian.net", Email: "dev@example.com"},
		{Email: "dev@example.com", Token: "t"},
	}

	for _, cfg := range tests {
		live := NewLive(cfg, logger.New(false))
		_, err := Send(context.Background(), live, Request{Method: http.MethodGet, Path: "/issue/PROJ-1", Version: V3})
		if err == nil {
			t.Errorf("config %+v should fail", cfg)
			continue
		}
		if apierr.KindOf(err) != apierr.MissingCredentials {
			t.Errorf("config %+v kind = %v, want MissingCredentials", cfg, apierr.KindOf(err))
		}
	}
}

func TestLive_RequestShape(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rest/api/3/issue/PROJ-1" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		user, pass, ok := r.BasicAuth()
		if !ok || user != "dev@example.com" || pass != "test-token" {
			t.Errorf("expected basic auth, got %s/%s", user, pass)
		}
		if r.Header.Get("Accept") != "application/json" {
			t.Errorf("missing Accept header")
		}
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("missing Content-Type header")
		}
		if r.Header.Get("X-Request-Id") == "" {
			t.Errorf("missing X-Request-Id header")
		}
		w.Write([]byte(`{"key":"PROJ-1"}`))
	}))
	defer server.Close()

	live := NewLive(liveConfig(server.URL), logger.New(false))
	body, err := Send(context.Background(), live, Request{Method: http.MethodGet, Path: "/issue/PROJ-1", Version: V3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(body), "PROJ-1") {
		t.Errorf("unexpected body: %s", body)
	}
}

func TestLive_VersionSelectsEndpoint(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rest/api/2/issue/PROJ-1" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	live := NewLive(liveConfig(server.URL), logger.New(false))
	if _, err := Send(context.Background(), live, Request{Method: http.MethodGet, Path: "/issue/PROJ-1", Version: V2}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLive_NetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	live := NewLive(liveConfig(server.URL), logger.New(false))
	_, err := Send(context.Background(), live, Request{Method: http.MethodGet, Path: "/issue/PROJ-1", Version: V3})
	if err == nil {
		t.Fatal("expected error")
	}
	if apierr.KindOf(err) != apierr.NetworkFailure {
		t.Errorf("kind = %v, want NetworkFailure", apierr.KindOf(err))
	}
}

func TestSend_TrackerErrorMessagePreferred(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"errorMessages":["Issue does not exist"]}`))
	}))
	defer server.Close()

	live := NewLive(liveConfig(server.URL), logger.New(false))
	_, err := Send(context.Background(), live, Request{Method: http.MethodGet, Path: "/issue/NOPE-1", Version: V3})
	if err == nil {
		t.Fatal("expected error")
	}

	if apierr.KindOf(err) != apierr.HTTPError {
		t.Fatalf("kind = %v, want HTTPError", apierr.KindOf(err))
	}
	if !strings.Contains(err.Error(), "Issue does not exist") {
		t.Errorf("expected tracker message, got: %v", err)
	}
	if strings.Contains(err.Error(), "Not found") {
		t.Errorf("should not fall back to the status table, got: %v", err)
	}
}

func TestSend_StatusTableFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`<html>gateway error page</html>`))
	}))
	defer server.Close()

	live := NewLive(liveConfig(server.URL), logger.New(false))
	_, err := Send(context.Background(), live, Request{Method: http.MethodGet, Path: "/issue/NOPE-1", Version: V3})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "Not found") {
		t.Errorf("expected 404 table entry, got: %v", err)
	}
}

func TestErrorMessage_WellKnownShapes(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		status   int
		expected string
	}{
		{"errorMessages first", `{"errorMessages":["boom","second"]}`, 400, "boom"},
		{"message field", `{"message":"token expired"}`, 401, "token expired"},
		{"errors map", `{"errors":{"summary":"required"}}`, 400, `{"summary":"required"}`},
		{"error field", `{"error":"denied"}`, 403, "denied"},
		{"detail field", `{"detail":"gone"}`, 404, "gone"},
		{"empty shapes fall through", `{"errorMessages":[],"errors":{}}`, 403, "Permission denied"},
		{"empty containers with whitespace fall through", `{"errorMessages":[ ],"errors":{ }}`, 403, "Permission denied"},
		{"empty error array falls through", `{"error":[]}`, 400, "Bad request"},
		{"null message falls through", `{"message":null}`, 401, "Authentication failed; check email and API token"},
		{"unknown status generic", `garbage`, 418, "Unexpected tracker error"},
		{"429 table", `{}`, 429, "Rate limited by the tracker"},
		{"500 table", ``, 500, "Tracker internal error"},
		{"503 table", ``, 503, "Tracker unavailable"},
	}

	for _, tt := range tests {
		if got := errorMessage([]byte(tt.body), tt.status); got != tt.expected {
			t.Errorf("%s: errorMessage = %q, want %q", tt.name, got, tt.expected)
		}
	}
}
