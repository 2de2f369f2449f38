// Package paths resolves per-user file locations for the CLI.
package paths

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/swarms-world/swarms-cli/internal/constants"
)

// ConfigDir returns the per-user config directory, honoring the
// SWARMS_CONFIG_DIR override.
func ConfigDir() (string, error) {
	if dir := os.Getenv("SWARMS_CONFIG_DIR"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, constants.ConfigDirName), nil
}

// ProfilePath returns the onboarding profile location.
func ProfilePath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, constants.ProfileFileName), nil
}

// EnsureConfigDir creates the config directory if needed and returns it.
func EnsureConfigDir() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return dir, nil
}
