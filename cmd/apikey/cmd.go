// Package apikey provides the get-api-key command implementation.
package apikey

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/swarms-world/swarms-cli/internal/browser"
	"github.com/swarms-world/swarms-cli/internal/constants"
	"github.com/swarms-world/swarms-cli/internal/ui"
)

// openBrowser is used to launch the browser.
var openBrowser = browser.Open

// NewCmd builds the get-api-key command.
func NewCmd(console *ui.Console) *cobra.Command {
	return &cobra.Command{
		Use:   "get-api-key",
		Short: "Retrieve your API key from the platform",
		Long:  ``,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := console.WithSpinner("Opening API key portal...", func() error {
				if err := openBrowser(constants.APIKeysURL); err != nil {
					// Browser launch failure is not distinguished from success;
					// the page URL is still in the logs.
					slog.WarnContext(cmd.Context(), "Failed to open browser", "url", constants.APIKeysURL, "error", err)
				}
				console.Pause()
				return nil
			})
			if err != nil {
				return err
			}
			console.Success("✓ API key page opened in your browser")
			return nil
		},
	}
}
