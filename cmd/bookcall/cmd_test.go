package bookcall

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swarms-world/swarms-cli/internal/constants"
	"github.com/swarms-world/swarms-cli/internal/ui"
)

func TestBookCall(t *testing.T) {
	orig := openBrowser
	defer func() { openBrowser = orig }()

	var opened string
	openBrowser = func(url string) error {
		opened = url
		return nil
	}

	var buf bytes.Buffer
	console := ui.New()
	console.Out = &buf
	console.Sleep = func(time.Duration) {}

	cmd := NewCmd(console)
	require.NoError(t, cmd.Execute())

	assert.Equal(t, constants.BookCallURL, opened)
	assert.Contains(t, buf.String(), "Booking page opened")
}
