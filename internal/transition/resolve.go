// Package transition resolves a desired status name against the
// workflow transitions the tracker offers for an issue.
package transition

import (
	"strings"

	"jiractl/internal/apierr"
	"jiractl/internal/jira"
)

// Resolve returns the id of the unique transition whose target status
// equals desired (case-insensitive, no fuzzy matching). Zero matches
// fail with the full list of available names; multiple matches fail
// with every candidate pair, since duplicate target names are a
// legitimate workflow configuration.
func Resolve(transitions []jira.Transition, desired string) (string, error) {
	var matches []apierr.Candidate
	for _, t := range transitions {
		if strings.EqualFold(t.To.Name, desired) {
			matches = append(matches, apierr.Candidate{ID: t.ID, Name: t.To.Name})
		}
	}

	switch len(matches) {
	case 0:
		available := make([]string, len(transitions))
		for i, t := range transitions {
			available[i] = t.To.Name
		}
		return "", apierr.NoMatch(desired, available)
	case 1:
		return matches[0].ID, nil
	default:
		return "", apierr.Ambiguous(desired, matches)
	}
}
