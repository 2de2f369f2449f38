package ui

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestConsole() (*Console, *bytes.Buffer) {
	var buf bytes.Buffer
	c := New()
	c.Out = &buf
	c.Sleep = func(time.Duration) {}
	return c, &buf
}

func TestBanner(t *testing.T) {
	c, buf := newTestConsole()
	c.Banner()

	out := buf.String()
	assert.Contains(t, out, "Welcome to Swarms")
	assert.Contains(t, out, "Power to the Swarms")
}

func TestCommandTable(t *testing.T) {
	c, buf := newTestConsole()
	c.CommandTable([][2]string{
		{"onboarding", "Start the interactive onboarding process"},
		{"help", "Display this help message"},
	})

	out := buf.String()
	assert.Contains(t, out, "Command")
	assert.Contains(t, out, "onboarding")
	assert.Contains(t, out, "Display this help message")
}

func TestErrorPanel(t *testing.T) {
	tests := []struct {
		name    string
		message string
		help    string
	}{
		{"message only", "something broke", ""},
		{"with help", "something broke", "try again"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, buf := newTestConsole()
			c.ErrorPanel(tt.message, tt.help)

			out := buf.String()
			assert.Contains(t, out, tt.message)
			if tt.help != "" {
				assert.Contains(t, out, tt.help)
			}
		})
	}
}

func TestStatusLines(t *testing.T) {
	c, buf := newTestConsole()

	c.Success("ok %d", 1)
	c.Warn("careful")
	c.Info("fyi")
	c.Dim("aside")
	c.ErrorLine(errors.New("boom"))

	out := buf.String()
	assert.Contains(t, out, "ok 1")
	assert.Contains(t, out, "careful")
	assert.Contains(t, out, "fyi")
	assert.Contains(t, out, "aside")
	assert.Contains(t, out, "Error: boom")
}

func TestWithSpinner(t *testing.T) {
	t.Run("returns fn result", func(t *testing.T) {
		c, _ := newTestConsole()
		err := c.WithSpinner("working...", func() error { return nil })
		assert.NoError(t, err)
	})

	t.Run("propagates fn error", func(t *testing.T) {
		c, _ := newTestConsole()
		wantErr := errors.New("spin failure")
		err := c.WithSpinner("working...", func() error { return wantErr })
		assert.ErrorIs(t, err, wantErr)
	})

	t.Run("renders the text", func(t *testing.T) {
		c, buf := newTestConsole()
		err := c.WithSpinner("working...", func() error { return nil })
		assert.NoError(t, err)
		assert.Contains(t, buf.String(), "working...")
	})
}
