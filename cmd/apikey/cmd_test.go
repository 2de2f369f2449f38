package apikey

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swarms-world/swarms-cli/internal/constants"
	"github.com/swarms-world/swarms-cli/internal/ui"
)

func newTestConsole() (*ui.Console, *bytes.Buffer) {
	var buf bytes.Buffer
	console := ui.New()
	console.Out = &buf
	console.Sleep = func(time.Duration) {}
	return console, &buf
}

func TestGetAPIKey(t *testing.T) {
	orig := openBrowser
	defer func() { openBrowser = orig }()

	t.Run("opens the api key page", func(t *testing.T) {
		var opened string
		openBrowser = func(url string) error {
			opened = url
			return nil
		}

		console, buf := newTestConsole()
		cmd := NewCmd(console)
		require.NoError(t, cmd.Execute())

		assert.Equal(t, constants.APIKeysURL, opened)
		assert.Contains(t, buf.String(), "API key page opened")
	})

	t.Run("launch failure still reports success", func(t *testing.T) {
		openBrowser = func(string) error { return errors.New("no browser") }

		console, buf := newTestConsole()
		cmd := NewCmd(console)
		require.NoError(t, cmd.Execute())

		assert.Contains(t, buf.String(), "API key page opened")
	})
}
