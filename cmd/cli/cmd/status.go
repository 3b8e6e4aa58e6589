package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"jiractl/internal/apierr"
	"jiractl/internal/issue"
	"jiractl/internal/jsonutil"
	"jiractl/internal/transition"
)

var statusList bool

var statusCmd = &cobra.Command{
	Use:   "status <issue-key-or-url> [new-status]",
	Short: "Show or change an issue's workflow status",
	Long: `Without a new status (or with --list), show the issue's current status
and the transitions its workflow offers. With a new status, resolve the
matching transition (case-insensitive), submit it, and report the status
the tracker shows afterwards.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := issue.Normalize(args[0])
		if err != nil {
			return err
		}

		tr := newTracker()
		transitions, err := tr.Transitions(cmd.Context(), key)
		if err != nil {
			return err
		}

		if statusList || len(args) == 1 {
			body, err := tr.GetIssue(cmd.Context(), key)
			if err != nil {
				return err
			}
			current := jsonutil.Extract(string(body), "fields.status.name", "Unknown")
			printTransitions(cmd, current, transitions)
			return nil
		}

		desired := args[1]
		id, err := transition.Resolve(transitions, desired)
		if err != nil {
			var e *apierr.Error
			if errors.As(err, &e) && e.Kind == apierr.AmbiguousTransition {
				// Surface every candidate so the user can retry by name
				// once the workflow is disambiguated, or pick an id.
				cmd.Printf("Multiple transitions lead to %q:\n", desired)
				for _, c := range e.Candidates {
					cmd.Printf("  %s  %s\n", c.ID, c.Name)
				}
			}
			return err
		}

		if err := tr.Transition(cmd.Context(), key, id); err != nil {
			return err
		}

		body, err := tr.GetIssue(cmd.Context(), key)
		if err != nil {
			return err
		}
		cmd.Printf("%s is now %s\n", key,
			statusStyle.Sprint(jsonutil.Extract(string(body), "fields.status.name", "Unknown")))
		return nil
	},
}

func init() {
	statusCmd.Flags().BoolVar(&statusList, "list", false, "list available transitions without changing anything")
	rootCmd.AddCommand(statusCmd)
}
