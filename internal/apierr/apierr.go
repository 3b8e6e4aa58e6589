// Package apierr defines the failure taxonomy shared by every component.
// Each failure the tool can surface is exactly one Kind; the CLI layer
// recovers the Kind with errors.As to decide what to print.
package apierr

import (
	"errors"
	"fmt"
	"strings"
)

// Kind identifies the failure category.
type Kind int

const (
	// InvalidKey means the input contained no recognizable issue key.
	InvalidKey Kind = iota + 1
	// MissingCredentials means the live transport was asked to run
	// without a base URL, email, or token.
	MissingCredentials
	// NetworkFailure covers transport-level errors: timeout, DNS,
	// connection refused.
	NetworkFailure
	// HTTPError is any response with status >= 400.
	HTTPError
	// InvalidDuration means the time expression did not parse.
	InvalidDuration
	// NoMatchingTransition means no available transition leads to the
	// requested status.
	NoMatchingTransition
	// AmbiguousTransition means more than one transition leads to the
	// requested status and the user has to pick an id manually.
	AmbiguousTransition
)

func (k Kind) String() string {
	switch k {
	case InvalidKey:
		return "invalid key"
	case MissingCredentials:
		return "missing credentials"
	case NetworkFailure:
		return "network failure"
	case HTTPError:
		return "http error"
	case InvalidDuration:
		return "invalid duration"
	case NoMatchingTransition:
		return "no matching transition"
	case AmbiguousTransition:
		return "ambiguous transition"
	default:
		return "unknown"
	}
}

// Candidate is one (transition id, target status name) pair, carried by
// AmbiguousTransition failures so the user can disambiguate on retry.
type Candidate struct {
	ID   string
	Name string
}

// Error is the single error value used across the core packages. Only
// the fields relevant to the Kind are populated.
type Error struct {
	Kind    Kind
	Message string
	// Status is set for HTTPError.
	Status int
	// Available is set for NoMatchingTransition: every target status
	// name the tracker offered.
	Available []string
	// Candidates is set for AmbiguousTransition.
	Candidates []Candidate
	// Err is the wrapped cause, if any.
	Err error
}

func (e *Error) Error() string {
	if e.Kind == HTTPError && e.Status != 0 {
		return fmt.Sprintf("tracker returned %d: %s", e.Status, e.Message)
	}
	if e.Err != nil && e.Message == "" {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the Kind of err, or 0 if err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// New builds an Error with a formatted message.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap builds an Error around a cause.
func Wrap(kind Kind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
}

// NoMatch builds a NoMatchingTransition error listing what was available.
func NoMatch(desired string, available []string) *Error {
	return &Error{
		Kind:      NoMatchingTransition,
		Message:   fmt.Sprintf("no transition to %q; available: %s", desired, strings.Join(available, ", ")),
		Available: available,
	}
}

// Ambiguous builds an AmbiguousTransition error carrying every candidate.
func Ambiguous(desired string, candidates []Candidate) *Error {
	ids := make([]string, len(candidates))
	for i, c := range candidates {
		ids[i] = fmt.Sprintf("%s (%s)", c.ID, c.Name)
	}
	return &Error{
		Kind:       AmbiguousTransition,
		Message:    fmt.Sprintf("multiple transitions to %q: %s", desired, strings.Join(ids, ", ")),
		Candidates: candidates,
	}
}

// HTTP builds an HTTPError. Message is kept verbatim; Error() adds the
// status code.
func HTTP(status int, message string) *Error {
	return &Error{
		Kind:    HTTPError,
		Status:  status,
		Message: message,
	}
}
