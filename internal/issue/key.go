// Package issue handles issue key validation and extraction.
package issue

import (
	"regexp"

	"jiractl/internal/apierr"
)

// keyPattern matches a canonical issue key: an uppercase project prefix
// followed by a numeric sequence, e.g. PROJ-123 or AB2C-7.
var keyPattern = regexp.MustCompile(`[A-Z][A-Z0-9]*-[0-9]+`)

var wholeKeyPattern = regexp.MustCompile(`^[A-Z][A-Z0-9]*-[0-9]+$`)

// Key is a validated issue key. Construction through Normalize is the
// only validation point; downstream code trusts the value.
type Key string

func (k Key) String() string { return string(k) }

// Normalize extracts a canonical issue key from raw input. A string
// that already is a key is returned unchanged; otherwise the first key
// embedded in the input (typically a browse URL) is returned.
func Normalize(input string) (Key, error) {
	if wholeKeyPattern.MatchString(input) {
		return Key(input), nil
	}
	if m := keyPattern.FindString(input); m != "" {
		return Key(m), nil
	}
	return "", apierr.New(apierr.InvalidKey, "no issue key found in %q", input)
}
