// Package upgrade provides the auto-upgrade command implementation.
package upgrade

import (
	"github.com/spf13/cobra"
	"github.com/swarms-world/swarms-cli/internal/pip"
	"github.com/swarms-world/swarms-cli/internal/ui"
)

// newManager builds the package manager used by the command.
var newManager = pip.NewManager

// NewCmd builds the auto-upgrade command.
func NewCmd(console *ui.Console) *cobra.Command {
	return &cobra.Command{
		Use:   "auto-upgrade",
		Short: "Update Swarms to the latest version",
		Long:  ``,
		RunE: func(cmd *cobra.Command, _ []string) error {
			mgr := newManager()

			var outdated []string
			err := console.WithSpinner("Checking for updates...", func() error {
				var checkErr error
				outdated, checkErr = mgr.Outdated(cmd.Context())
				return checkErr
			})
			if err != nil {
				return err
			}

			if !mgr.HasUpdate(outdated) {
				console.Success("✓ Swarms is up to date!")
				return nil
			}

			console.Warn("↑ Update available!")
			if err := console.WithSpinner("Upgrading Swarms...", func() error {
				return mgr.Upgrade(cmd.Context())
			}); err != nil {
				return err
			}

			console.Success("✓ Swarms upgraded successfully!")
			return nil
		},
	}
}
