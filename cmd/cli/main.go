// Package main is the entry point for the jiractl CLI.
package main

import (
	"os"

	"jiractl/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
