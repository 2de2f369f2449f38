// Package bookcall provides the book-call command implementation.
package bookcall

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/swarms-world/swarms-cli/internal/browser"
	"github.com/swarms-world/swarms-cli/internal/constants"
	"github.com/swarms-world/swarms-cli/internal/ui"
)

// openBrowser is used to launch the browser.
var openBrowser = browser.Open

// NewCmd builds the book-call command.
func NewCmd(console *ui.Console) *cobra.Command {
	return &cobra.Command{
		Use:   "book-call",
		Short: "Schedule a strategy session with our team",
		Long:  ``,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := openBrowser(constants.BookCallURL); err != nil {
				// Browser launch failure is not distinguished from success;
				// the page URL is still in the logs.
				slog.WarnContext(cmd.Context(), "Failed to open browser", "url", constants.BookCallURL, "error", err)
			}
			console.Success("✓ Booking page opened in your browser")
			return nil
		},
	}
}
