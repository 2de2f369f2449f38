// Package cmd provides the command-line interface for the application.
package cmd

import (
	"os"

	commonLogger "github.com/hibare/GoCommon/v2/pkg/logger"
	"github.com/spf13/cobra"
	"github.com/swarms-world/swarms-cli/cmd/agents"
	"github.com/swarms-world/swarms-cli/cmd/apikey"
	"github.com/swarms-world/swarms-cli/cmd/autoswarm"
	"github.com/swarms-world/swarms-cli/cmd/bookcall"
	"github.com/swarms-world/swarms-cli/cmd/login"
	"github.com/swarms-world/swarms-cli/cmd/onboarding"
	"github.com/swarms-world/swarms-cli/cmd/upgrade"
	"github.com/swarms-world/swarms-cli/internal/config"
	"github.com/swarms-world/swarms-cli/internal/constants"
	"github.com/swarms-world/swarms-cli/internal/ui"
	"github.com/swarms-world/swarms-cli/internal/version"
)

// commandRows is the command reference shown by the help command.
var commandRows = [][2]string{
	{"onboarding", "Start the interactive onboarding process"},
	{"help", "Display this help message"},
	{"get-api-key", "Retrieve your API key from the platform"},
	{"check-login", "Verify login status and initialize cache"},
	{"run-agents", "Execute agents from your YAML configuration"},
	{"auto-upgrade", "Update Swarms to the latest version"},
	{"book-call", "Schedule a strategy session with our team"},
	{"autoswarm", "Generate and execute an autonomous swarm"},
}

// NewRootCmd builds the root command with all subcommands attached.
func NewRootCmd(console *ui.Console) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "swarms",
		Short:         "Swarms Cloud CLI",
		Long:          ``,
		Version:       version.CurrentVersion,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			console.Banner()
		},
	}

	rootCmd.SetHelpCommand(newHelpCmd(console))
	rootCmd.AddCommand(onboarding.NewCmd(console))
	rootCmd.AddCommand(apikey.NewCmd(console))
	rootCmd.AddCommand(login.NewCmd(console))
	rootCmd.AddCommand(agents.NewCmd(console))
	rootCmd.AddCommand(upgrade.NewCmd(console))
	rootCmd.AddCommand(bookcall.NewCmd(console))
	rootCmd.AddCommand(autoswarm.NewCmd(console))

	return rootCmd
}

// newHelpCmd renders the styled command reference.
func newHelpCmd(console *ui.Console) *cobra.Command {
	return &cobra.Command{
		Use:   "help",
		Short: "Display this help message",
		Run: func(_ *cobra.Command, _ []string) {
			console.Section("Swarms CLI - Command Reference", "")
			console.CommandTable(commandRows)
			console.Dim("For detailed documentation, visit: %s", constants.DocsURL)
		},
	}
}

// Execute runs the root command and handles any errors.
func Execute() {
	console := ui.New()

	cobra.OnInitialize(commonLogger.InitDefaultLogger, config.Load)

	if err := NewRootCmd(console).Execute(); err != nil {
		console.ErrorLine(err)
		os.Exit(1)
	}
}
