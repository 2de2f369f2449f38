// Package login provides the check-login command implementation.
package login

import (
	"github.com/spf13/cobra"
	"github.com/swarms-world/swarms-cli/internal/marker"
	"github.com/swarms-world/swarms-cli/internal/ui"
)

// NewCmd builds the check-login command.
func NewCmd(console *ui.Console) *cobra.Command {
	return &cobra.Command{
		Use:   "check-login",
		Short: "Verify login status and initialize cache",
		Long:  ``,
		RunE: func(_ *cobra.Command, _ []string) error {
			store := marker.NewStore()

			already, err := store.EnsureLoggedIn(func() {
				_ = console.WithSpinner("Authenticating...", func() error {
					console.Pause()
					return nil
				})
			})
			if err != nil {
				return err
			}

			if already {
				console.Success("✓ Authentication verified")
				return nil
			}
			console.Success("✓ Login successful!")
			return nil
		},
	}
}
