// Package onboarding provides the onboarding command implementation.
package onboarding

import (
	"github.com/spf13/cobra"
	"github.com/swarms-world/swarms-cli/internal/onboarding"
	"github.com/swarms-world/swarms-cli/internal/paths"
	"github.com/swarms-world/swarms-cli/internal/ui"
)

// NewCmd builds the onboarding command.
func NewCmd(console *ui.Console) *cobra.Command {
	return &cobra.Command{
		Use:   "onboarding",
		Short: "Start the interactive onboarding process",
		Long:  ``,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir, err := paths.EnsureConfigDir()
			if err != nil {
				return err
			}

			wizard := &onboarding.Wizard{
				In:      cmd.InOrStdin(),
				Console: console,
				Dir:     dir,
			}
			return wizard.Run()
		},
	}
}
