// Package credential stores the tracker API token in the OS keyring.
// Environment and flag values always win; the keyring is the fallback
// so the token does not have to live in shell history or dotfiles.
package credential

import (
	"fmt"

	"github.com/99designs/keyring"
)

const (
	serviceName = "jiractl"
	tokenKey    = "api-token"
)

func open() (keyring.Keyring, error) {
	return keyring.Open(keyring.Config{
		ServiceName: serviceName,
	})
}

// Token returns the stored API token.
func Token() (string, error) {
	ring, err := open()
	if err != nil {
		return "", fmt.Errorf("opening keyring: %w", err)
	}
	item, err := ring.Get(tokenKey)
	if err != nil {
		return "", fmt.Errorf("reading token: %w", err)
	}
	return string(item.Data), nil
}

// SetToken stores the API token.
func SetToken(token string) error {
	ring, err := open()
	if err != nil {
		return fmt.Errorf("opening keyring: %w", err)
	}
	if err := ring.Set(keyring.Item{
		Key:   tokenKey,
		Data:  []byte(token),
		Label: "jiractl API token",
	}); err != nil {
		return fmt.Errorf("storing token: %w", err)
	}
	return nil
}

// DeleteToken removes the stored API token, if any.
func DeleteToken() error {
	ring, err := open()
	if err != nil {
		return fmt.Errorf("opening keyring: %w", err)
	}
	if err := ring.Remove(tokenKey); err != nil && err != keyring.ErrKeyNotFound {
		return fmt.Errorf("removing token: %w", err)
	}
	return nil
}
