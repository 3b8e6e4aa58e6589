// Package transport performs authenticated request/response exchanges
// against the tracker's REST API. Two implementations exist behind one
// interface: Live talks to the network, Sim answers from canned bodies.
// Status-code handling is shared and applied after either one.
package transport

import (
	"context"
	"strings"

	"github.com/tidwall/gjson"

	"jiractl/internal/apierr"
)

// APIVersion selects which REST API version an endpoint is called on.
// The tracker exposes both; capability differs per endpoint.
type APIVersion int

const (
	V2 APIVersion = 2
	V3 APIVersion = 3
)

// Request describes one API call. Constructed fresh per call.
type Request struct {
	// Method is the HTTP method.
	Method string
	// Path is relative to /rest/api/<version>, e.g. "/issue/PROJ-1".
	Path string
	// Body is JSON-marshaled when non-nil.
	Body any
	// Version is the API version for this call.
	Version APIVersion
}

// Response is the raw outcome of one exchange.
type Response struct {
	Status int
	Body   []byte
}

// Transport performs a single exchange. Implementations return an error
// only for failures below the HTTP layer; status codes are left to Send.
type Transport interface {
	Do(ctx context.Context, req Request) (Response, error)
}

// Send runs one exchange through t and maps any status >= 400 to an
// HTTPError, preferring the tracker's own error text over the fallback
// table. On success the response body is returned as-is.
func Send(ctx context.Context, t Transport, req Request) ([]byte, error) {
	resp, err := t.Do(ctx, req)
	if err != nil {
		return nil, err
	}
	if resp.Status >= 400 {
		return nil, apierr.HTTP(resp.Status, errorMessage(resp.Body, resp.Status))
	}
	return resp.Body, nil
}

// errorPaths are the well-known error shapes the tracker family uses,
// probed in order.
var errorPaths = []string{"errorMessages.0", "message", "errors", "error", "detail"}

// statusMessages is the fallback when the body yields nothing usable.
var statusMessages = map[int]string{
	400: "Bad request",
	401: "Authentication failed; check email and API token",
	403: "Permission denied",
	404: "Not found",
	429: "Rate limited by the tracker",
	500: "Tracker internal error",
	503: "Tracker unavailable",
}

func errorMessage(body []byte, status int) string {
	doc := string(body)
	for _, path := range errorPaths {
		result := gjson.Get(doc, path)
		if !result.Exists() || result.Type == gjson.Null {
			continue
		}
		if result.IsObject() && len(result.Map()) == 0 {
			continue
		}
		if result.IsArray() && len(result.Array()) == 0 {
			continue
		}
		msg := strings.TrimSpace(result.String())
		if msg == "" {
			continue
		}
		return msg
	}
	if msg, ok := statusMessages[status]; ok {
		return msg
	}
	return "Unexpected tracker error"
}
