// Package pip queries and upgrades the distributed package through the
// pip command-line tool.
package pip

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/swarms-world/swarms-cli/internal/constants"
)

// Runner executes an external command and returns its combined output.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	// #nosec G204
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}

// Manager checks for and installs updates of one package.
type Manager struct {
	// Package is the package name to track.
	Package string

	// Runner executes pip. Defaults to the real subprocess runner.
	Runner Runner
}

// NewManager returns a Manager tracking the distributed package.
func NewManager() *Manager {
	return &Manager{Package: constants.PackageName}
}

// Outdated returns pip's outdated-package report as "name==version" lines.
// The result is ephemeral and never persisted.
func (m *Manager) Outdated(ctx context.Context) ([]string, error) {
	out, err := m.runner().Run(ctx, "pip", "list", "--outdated", "--format=freeze")
	if err != nil {
		return nil, fmt.Errorf("querying outdated packages: %w", err)
	}

	var lines []string
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines, nil
}

// HasUpdate reports whether the tracked package appears in lines.
func (m *Manager) HasUpdate(lines []string) bool {
	prefix := m.Package + "=="
	for _, line := range lines {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}

// Upgrade installs the latest version of the tracked package.
// A failing install propagates to the caller.
func (m *Manager) Upgrade(ctx context.Context) error {
	if out, err := m.runner().Run(ctx, "pip", "install", "--upgrade", m.Package); err != nil {
		return fmt.Errorf("upgrading %s: %w: %s", m.Package, err, strings.TrimSpace(string(out)))
	}
	return nil
}

func (m *Manager) runner() Runner {
	if m.Runner == nil {
		m.Runner = execRunner{}
	}
	return m.Runner
}
