package transport

import (
	"context"
	"net/http"
	"strings"
)

// Canned bodies for the simulation transport. The shapes mirror what
// the v3 API returns for the matching endpoints.
const (
	simTransitionsBody = `{
  "transitions": [
    {"id": "11", "name": "Start Progress", "to": {"id": "3", "name": "In Progress"}},
    {"id": "21", "name": "Done", "to": {"id": "10001", "name": "Done"}},
    {"id": "31", "name": "Back to backlog", "to": {"id": "10000", "name": "To Do"}}
  ]
}`

	simCommentBody = `{
  "id": "10045",
  "created": "2024-01-15T10:30:00.000+0000",
  "author": {"displayName": "Sim User"}
}`

	simWorklogBody = `{
  "id": "100028",
  "issueId": "10002",
  "timeSpent": "2h 30m",
  "timeSpentSeconds": 9000,
  "timeTracking": {"remainingEstimateSeconds": 144000}
}`

	simIssueBody = `{
  "id": "10002",
  "key": "DEMO-123",
  "fields": {
    "summary": "Simulated issue for dry runs",
    "status": {"name": "In Progress"},
    "issuetype": {"name": "Task"},
    "priority": {"name": "Medium"},
    "assignee": {"displayName": "Sim User"},
    "reporter": {"displayName": "Sim Reporter"},
    "created": "2024-01-15T09:00:00.000+0000",
    "updated": "2024-01-15T10:30:00.000+0000"
  }
}`
)

// Sim answers every exchange from a fixed table keyed on the request
// shape. It performs no I/O and never reads credentials, so it behaves
// identically with or without a configured account.
type Sim struct{}

// NewSim creates the simulation transport.
func NewSim() *Sim { return &Sim{} }

// Do dispatches on method and endpoint suffix.
func (s *Sim) Do(_ context.Context, req Request) (Response, error) {
	switch {
	case req.Method == http.MethodGet && strings.HasSuffix(req.Path, "/transitions"):
		return Response{Status: http.StatusOK, Body: []byte(simTransitionsBody)}, nil
	case req.Method == http.MethodPost && strings.HasSuffix(req.Path, "/transitions"):
		return Response{Status: http.StatusNoContent, Body: nil}, nil
	case req.Method == http.MethodPost && strings.HasSuffix(req.Path, "/comment"):
		return Response{Status: http.StatusCreated, Body: []byte(simCommentBody)}, nil
	case req.Method == http.MethodPost && strings.HasSuffix(req.Path, "/worklog"):
		return Response{Status: http.StatusCreated, Body: []byte(simWorklogBody)}, nil
	default:
		return Response{Status: http.StatusOK, Body: []byte(simIssueBody)}, nil
	}
}
