package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"jiractl/internal/apierr"
	"jiractl/internal/config"
)

// Live is the network transport. One instance per invocation; the
// underlying http.Client bounds every call at 30 seconds.
type Live struct {
	cfg    config.Config
	client *http.Client
	log    *slog.Logger
}

// NewLive creates a network transport from the invocation config.
func NewLive(cfg config.Config, log *slog.Logger) *Live {
	return &Live{
		cfg: cfg,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		log: log,
	}
}

// Do performs one authenticated exchange. Missing credentials fail
// before any I/O is attempted.
func (l *Live) Do(ctx context.Context, req Request) (Response, error) {
	if !l.cfg.HasCredentials() {
		return Response{}, apierr.New(apierr.MissingCredentials,
			"base URL, email, and API token are required; set JIRACTL_URL, JIRACTL_EMAIL, JIRACTL_TOKEN or the matching flags")
	}

	url := fmt.Sprintf("%s/rest/api/%d%s", l.cfg.BaseURL, req.Version, req.Path)

	var bodyReader io.Reader
	if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return Response{}, fmt.Errorf("marshaling request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, url, bodyReader)
	if err != nil {
		return Response{}, fmt.Errorf("creating request: %w", err)
	}

	requestID := uuid.NewString()
	httpReq.SetBasicAuth(l.cfg.Email, l.cfg.Token)
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Request-Id", requestID)

	start := time.Now()
	resp, err := l.client.Do(httpReq)
	if err != nil {
		return Response{}, apierr.Wrap(apierr.NetworkFailure, err,
			"request to %s failed: %v", l.cfg.BaseURL, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, apierr.Wrap(apierr.NetworkFailure, err,
			"reading response from %s: %v", l.cfg.BaseURL, err)
	}

	l.log.Debug("api exchange",
		"method", req.Method,
		"path", req.Path,
		"status", resp.StatusCode,
		"elapsed", time.Since(start),
		"request_id", requestID,
	)

	return Response{Status: resp.StatusCode, Body: respBody}, nil
}
