package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"jiractl/internal/duration"
	"jiractl/internal/issue"
	"jiractl/internal/jsonutil"
)

var timeCmd = &cobra.Command{
	Use:   "time <issue-key-or-url> <duration> <description>",
	Short: "Log time spent on an issue",
	Long: `Log work on an issue. The duration is one or more <n><unit> tokens with
units w, d, h, m (workweek convention: a day is 8 hours, a week is 5
days), e.g. "2h 30m" or "1d 4h".`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := issue.Normalize(args[0])
		if err != nil {
			return err
		}

		spent, err := duration.Parse(args[1])
		if err != nil {
			return err
		}

		body, err := newTracker().AddWorklog(cmd.Context(), key, spent.Seconds(), args[2])
		if err != nil {
			return err
		}

		timeSpent := jsonutil.Extract(string(body), "timeSpent", args[1])
		cmd.Printf("Logged %s on %s\n", timeSpent, key)

		remaining := jsonutil.Extract(string(body), "timeTracking.remainingEstimateSeconds", "")
		if seconds, err := strconv.Atoi(remaining); err == nil {
			cmd.Printf("Remaining estimate: %s\n", duration.FormatHM(seconds))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(timeCmd)
}
