package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"jiractl/internal/credential"
)

// Swapped out in tests so they never touch the OS keyring.
var (
	storeToken  = credential.SetToken
	removeToken = credential.DeleteToken
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the stored API token",
}

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store an API token in the OS keyring",
	Long:  `Read an API token from stdin and store it in the OS keyring. A token given via --token or JIRACTL_TOKEN always takes precedence over the stored one.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.Print("API token: ")
		reader := bufio.NewReader(cmd.InOrStdin())
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return fmt.Errorf("reading token: %w", err)
		}
		token := strings.TrimSpace(line)
		if token == "" {
			return fmt.Errorf("empty token")
		}

		if err := storeToken(token); err != nil {
			return err
		}
		cmd.Println("Token stored.")
		return nil
	},
}

var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the stored API token",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := removeToken(); err != nil {
			return err
		}
		cmd.Println("Token removed.")
		return nil
	},
}

func init() {
	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authLogoutCmd)
	rootCmd.AddCommand(authCmd)
}
