package ui

import (
	"fmt"
	"time"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const spinnerInterval = 100 * time.Millisecond

// WithSpinner runs fn while animating a spinner next to text, then clears
// the spinner line. The error from fn is returned unchanged.
func (c *Console) WithSpinner(text string, fn func() error) error {
	done := make(chan struct{})
	stopped := make(chan struct{})

	go func() {
		defer close(stopped)
		ticker := time.NewTicker(spinnerInterval)
		defer ticker.Stop()

		frame := 0
		fmt.Fprintf(c.Out, "\r%s %s", c.Styles.Spinner.Render(spinnerFrames[frame]), text)
		for {
			select {
			case <-done:
				// Clear the spinner line before handing the terminal back.
				fmt.Fprintf(c.Out, "\r%*s\r", len(text)+2, "")
				return
			case <-ticker.C:
				frame = (frame + 1) % len(spinnerFrames)
				fmt.Fprintf(c.Out, "\r%s %s", c.Styles.Spinner.Render(spinnerFrames[frame]), text)
			}
		}
	}()

	err := fn()
	close(done)
	<-stopped
	return err
}
