package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "jiractl",
	Short: "Jiractl is a command line client for a Jira-style issue tracker",
	Long: `jiractl queries and mutates issues in a Jira-style tracker from the
terminal, for interactive use and for scripts.

Commands:

  Fetch an issue:
    jiractl get PROJ-123
    jiractl get https://example.atlassian.net/browse/PROJ-123

  Move an issue through its workflow:
    jiractl status PROJ-123 "In Progress"
    jiractl status --list PROJ-123

  Comment on an issue:
    jiractl comment PROJ-123 "deployed to staging"

  Log time:
    jiractl time PROJ-123 "2h 30m" "code review"

Configuration:
  Set the tracker URL and credentials via flags, environment variables,
  or a config file:
    JIRACTL_URL       Tracker base URL (e.g. https://example.atlassian.net)
    JIRACTL_EMAIL     Account email for Basic authentication
    JIRACTL_TOKEN     API token (or store one with "jiractl auth login")
    JIRACTL_SIMULATE  Answer from canned responses, no network

Every failure exits with status 1.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".jiractl"
		viper.AddConfigPath(home)
		viper.SetConfigName(".jiractl")
		viper.SetConfigType("yaml")
	}

	// Read environment variables that match "JIRACTL_VARNAME"
	viper.SetEnvPrefix("JIRACTL")
	viper.AutomaticEnv()

	_ = viper.ReadInConfig()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.jiractl.yaml)")

	rootCmd.PersistentFlags().String("url", "", "Tracker base URL")
	viper.BindPFlag("url", rootCmd.PersistentFlags().Lookup("url"))

	rootCmd.PersistentFlags().String("email", "", "Account email for Basic authentication")
	viper.BindPFlag("email", rootCmd.PersistentFlags().Lookup("email"))

	rootCmd.PersistentFlags().StringP("token", "t", "", "API token for authentication")
	viper.BindPFlag("token", rootCmd.PersistentFlags().Lookup("token"))

	rootCmd.PersistentFlags().Bool("simulate", false, "Answer from canned responses instead of the network")
	viper.BindPFlag("simulate", rootCmd.PersistentFlags().Lookup("simulate"))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}
