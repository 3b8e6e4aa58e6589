package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"jiractl/internal/jira"
	"jiractl/internal/jsonutil"
)

var (
	keyStyle    = color.New(color.FgCyan, color.Bold)
	labelStyle  = color.New(color.Faint)
	statusStyle = color.New(color.FgYellow)
)

// printIssue renders the formatted view of a raw issue body. Every
// field is extracted defensively; missing fields degrade to "-".
func printIssue(cmd *cobra.Command, body string) {
	cmd.Printf("%s  %s\n",
		keyStyle.Sprint(jsonutil.Extract(body, "key", "?")),
		jsonutil.Extract(body, "fields.summary", "(no summary)"))
	cmd.Println("──────────────────────────────")
	printField(cmd, "Status", statusStyle.Sprint(jsonutil.Extract(body, "fields.status.name", "Unknown")))
	printField(cmd, "Type", jsonutil.Extract(body, "fields.issuetype.name", "-"))
	printField(cmd, "Priority", jsonutil.Extract(body, "fields.priority.name", "-"))
	printField(cmd, "Assignee", jsonutil.Extract(body, "fields.assignee.displayName", "Unassigned"))
	printField(cmd, "Reporter", jsonutil.Extract(body, "fields.reporter.displayName", "-"))
	printField(cmd, "Created", jsonutil.Extract(body, "fields.created", "-"))
	printField(cmd, "Updated", jsonutil.Extract(body, "fields.updated", "-"))
}

func printField(cmd *cobra.Command, name, value string) {
	cmd.Printf("%s %s\n", labelStyle.Sprintf("%-9s", name+":"), value)
}

// printTransitions renders the current status and every transition the
// workflow offers from it.
func printTransitions(cmd *cobra.Command, current string, transitions []jira.Transition) {
	cmd.Printf("Current status: %s\n", statusStyle.Sprint(current))
	cmd.Println("Available transitions:")
	for _, t := range transitions {
		cmd.Printf("  %s  %s\n", labelStyle.Sprint(t.ID), t.To.Name)
	}
}
