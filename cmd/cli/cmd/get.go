package cmd

import (
	"github.com/spf13/cobra"

	"jiractl/internal/issue"
)

var getRaw bool

var getCmd = &cobra.Command{
	Use:   "get <issue-key-or-url>",
	Short: "Fetch an issue",
	Long:  `Fetch a single issue by key or browse URL and print a formatted view, or the full JSON response with --raw.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := issue.Normalize(args[0])
		if err != nil {
			return err
		}

		body, err := newTracker().GetIssue(cmd.Context(), key)
		if err != nil {
			return err
		}

		if getRaw {
			cmd.Println(string(body))
			return nil
		}
		printIssue(cmd, string(body))
		return nil
	},
}

func init() {
	getCmd.Flags().BoolVar(&getRaw, "raw", false, "print the full JSON response")
	rootCmd.AddCommand(getCmd)
}
