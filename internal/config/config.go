// Package config builds the per-invocation settings value handed to the
// transport. Request logic never reads viper or the environment itself.
package config

import (
	"strings"

	"github.com/spf13/viper"

	"jiractl/internal/credential"
)

// Config holds everything an invocation needs to talk to the tracker.
// Built once at command start and passed by value.
type Config struct {
	// BaseURL is the root of the tracker instance, e.g.
	// https://example.atlassian.net.
	BaseURL string

	// Email identifies the account for Basic authentication.
	Email string

	// Token is the API token paired with Email.
	Token string

	// Simulate selects the canned-response transport instead of the
	// network; credentials are not consulted when set.
	Simulate bool

	// Verbose enables debug logging.
	Verbose bool
}

// keyringToken is swapped out in tests so they never touch the OS
// keyring.
var keyringToken = credential.Token

// FromViper reads the bound flags/environment/config file into a
// Config. A token given via flag or environment wins over the OS
// keyring.
func FromViper() Config {
	cfg := Config{
		BaseURL:  strings.TrimRight(viper.GetString("url"), "/"),
		Email:    viper.GetString("email"),
		Token:    viper.GetString("token"),
		Simulate: viper.GetBool("simulate"),
		Verbose:  viper.GetBool("verbose"),
	}
	if cfg.Token == "" && !cfg.Simulate {
		if tok, err := keyringToken(); err == nil {
			cfg.Token = tok
		}
	}
	return cfg
}

// HasCredentials reports whether every field the live transport needs
// is present.
func (c Config) HasCredentials() bool {
	return c.BaseURL != "" && c.Email != "" && c.Token != ""
}
