package cmd

import (
	"github.com/spf13/cobra"

	"jiractl/internal/issue"
	"jiractl/internal/jsonutil"
)

var commentCmd = &cobra.Command{
	Use:   "comment <issue-key-or-url> <text>",
	Short: "Add a comment to an issue",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := issue.Normalize(args[0])
		if err != nil {
			return err
		}

		body, err := newTracker().AddComment(cmd.Context(), key, args[1])
		if err != nil {
			return err
		}

		id := jsonutil.Extract(string(body), "id", "")
		if id != "" {
			cmd.Printf("Comment %s added to %s\n", id, key)
		} else {
			cmd.Printf("Comment added to %s\n", key)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(commentCmd)
}
