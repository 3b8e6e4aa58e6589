// Package duration parses human work-time expressions like "2h 30m"
// into seconds. Units follow the tracker's workweek convention (8h
// days, 5-day weeks), not calendar time.
package duration

import (
	"fmt"
	"strings"

	"jiractl/internal/apierr"
)

// Seconds per unit. A week is 5 workdays, a day is 8 hours.
var unitSeconds = map[byte]int{
	'w': 5 * 8 * 3600,
	'd': 8 * 3600,
	'h': 3600,
	'm': 60,
}

// maxTokenValue bounds a single <integer> so that value*factor and the
// running total stay well inside int range. A billion weeks is already
// absurd; anything larger is garbage input, not a worklog.
const maxTokenValue = 1_000_000_000

// Duration is a validated amount of logged time.
type Duration struct {
	seconds int
}

// Seconds returns the total in seconds.
func (d Duration) Seconds() int { return d.seconds }

// Parse converts an expression of one or more <integer><unit> tokens
// (units w, d, h, m, any order, duplicates additive) into a Duration.
// Whitespace and case are ignored. Any leftover text that is not part
// of a token fails the parse, as does a zero total.
func Parse(input string) (Duration, error) {
	compact := strings.ToLower(strings.Join(strings.Fields(input), ""))

	total := 0
	residue := false
	for i := 0; i < len(compact); {
		start := i
		for i < len(compact) && compact[i] >= '0' && compact[i] <= '9' {
			i++
		}
		if i == start {
			// Not a digit: residue character.
			residue = true
			i++
			continue
		}
		if i >= len(compact) {
			// Trailing digits with no unit.
			residue = true
			break
		}
		factor, ok := unitSeconds[compact[i]]
		if !ok {
			residue = true
			i++
			continue
		}
		value := 0
		for _, c := range compact[start:i] {
			value = value*10 + int(c-'0')
			if value > maxTokenValue {
				return Duration{}, apierr.New(apierr.InvalidDuration, "duration %q is out of range", input)
			}
		}
		total += value * factor
		if total < 0 {
			return Duration{}, apierr.New(apierr.InvalidDuration, "duration %q is out of range", input)
		}
		i++
	}

	if residue {
		return Duration{}, apierr.New(apierr.InvalidDuration, "cannot parse duration %q", input)
	}
	if total == 0 {
		return Duration{}, apierr.New(apierr.InvalidDuration, "duration %q is empty or zero", input)
	}
	return Duration{seconds: total}, nil
}

// FormatHM renders a second count as "<h>h <m>m", the display form used
// for remaining estimates.
func FormatHM(seconds int) string {
	h := seconds / 3600
	m := (seconds % 3600) / 60
	return fmt.Sprintf("%dh %dm", h, m)
}
