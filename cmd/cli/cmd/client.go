package cmd

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"jiractl/internal/apierr"
	"jiractl/internal/config"
	"jiractl/internal/issue"
	"jiractl/internal/jira"
	"jiractl/internal/logger"
	"jiractl/internal/transport"
)

// tracker wraps the transport with the per-endpoint calls the commands
// need. Every endpoint this tool uses lives on API v3.
type tracker struct {
	tp  transport.Transport
	log *slog.Logger
}

// newTracker builds the client for this invocation. The simulate switch
// is the single place the transport implementation is chosen.
func newTracker() *tracker {
	cfg := config.FromViper()
	log := logger.New(cfg.Verbose)

	var tp transport.Transport
	if cfg.Simulate {
		tp = transport.NewSim()
	} else {
		tp = transport.NewLive(cfg, log)
	}
	return &tracker{tp: tp, log: log}
}

// GetIssue fetches the raw issue body.
func (t *tracker) GetIssue(ctx context.Context, key issue.Key) ([]byte, error) {
	return transport.Send(ctx, t.tp, transport.Request{
		Method:  http.MethodGet,
		Path:    "/issue/" + key.String(),
		Version: transport.V3,
	})
}

// Transitions fetches the workflow transitions available for the issue.
// The list is fetched fresh per invocation, never cached.
func (t *tracker) Transitions(ctx context.Context, key issue.Key) ([]jira.Transition, error) {
	body, err := transport.Send(ctx, t.tp, transport.Request{
		Method:  http.MethodGet,
		Path:    "/issue/" + key.String() + "/transitions",
		Version: transport.V3,
	})
	if err != nil {
		return nil, err
	}

	var resp jira.TransitionsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, apierr.Wrap(apierr.NetworkFailure, err,
			"malformed transitions response: %v", err)
	}
	return resp.Transitions, nil
}

// Transition submits a workflow transition by id.
func (t *tracker) Transition(ctx context.Context, key issue.Key, id string) error {
	_, err := transport.Send(ctx, t.tp, transport.Request{
		Method:  http.MethodPost,
		Path:    "/issue/" + key.String() + "/transitions",
		Body:    jira.TransitionRequest{Transition: jira.TransitionID{ID: id}},
		Version: transport.V3,
	})
	return err
}

// AddComment posts a plain-text comment wrapped in a document body.
func (t *tracker) AddComment(ctx context.Context, key issue.Key, text string) ([]byte, error) {
	return transport.Send(ctx, t.tp, transport.Request{
		Method:  http.MethodPost,
		Path:    "/issue/" + key.String() + "/comment",
		Body:    jira.CommentRequest{Body: jira.TextDoc(text)},
		Version: transport.V3,
	})
}

// AddWorklog posts a worklog entry of the given seconds.
func (t *tracker) AddWorklog(ctx context.Context, key issue.Key, seconds int, description string) ([]byte, error) {
	return transport.Send(ctx, t.tp, transport.Request{
		Method:  http.MethodPost,
		Path:    "/issue/" + key.String() + "/worklog",
		Body:    jira.WorklogRequest{TimeSpentSeconds: seconds, Comment: jira.TextDoc(description)},
		Version: transport.V3,
	})
}
