// Package jira contains the JSON request and response structs shared
// between the command layer and the transport.
package jira

// Transition represents a possible status transition for an issue.
type Transition struct {
	ID   string       `json:"id"`
	Name string       `json:"name"`
	To   TransitionTo `json:"to"`
}

// TransitionTo describes the target status of a transition.
type TransitionTo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TransitionsResponse wraps the list of transitions returned by the API.
type TransitionsResponse struct {
	Transitions []Transition `json:"transitions"`
}

// TransitionRequest is the request body for submitting a transition.
type TransitionRequest struct {
	Transition TransitionID `json:"transition"`
}

// TransitionID wraps the id of the transition to perform.
type TransitionID struct {
	ID string `json:"id"`
}

// CommentRequest is the request body for adding a comment.
type CommentRequest struct {
	Body Doc `json:"body"`
}

// WorklogRequest is the request body for logging time on an issue.
type WorklogRequest struct {
	TimeSpentSeconds int `json:"timeSpentSeconds"`
	Comment          Doc `json:"comment"`
}
