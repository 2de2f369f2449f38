// Package onboarding implements the interactive first-run wizard.
package onboarding

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/swarms-world/swarms-cli/internal/constants"
	"github.com/swarms-world/swarms-cli/internal/ui"
	"github.com/swarms-world/swarms-cli/internal/utils"
)

const machineIDLength = 8

// hostnameFunc is used to get the hostname of the system.
var hostnameFunc = os.Hostname

// ErrInputClosed is returned when stdin closes before a prompt is answered.
var ErrInputClosed = errors.New("input closed")

// Profile is the persisted result of onboarding.
type Profile struct {
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Workspace string    `json:"workspace"`
	MachineID string    `json:"machine_id"`
	Platform  string    `json:"platform"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Wizard collects a user profile interactively and persists it.
type Wizard struct {
	// In supplies user answers, normally stdin.
	In io.Reader

	// Console renders prompts and feedback.
	Console *ui.Console

	// Dir is the directory the profile is written to.
	Dir string

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// Run walks the user through onboarding and saves the profile.
// Re-running updates the existing profile in place.
func (w *Wizard) Run() error {
	w.Console.Info("Welcome to Swarms! Let's get you set up.")
	w.Console.Dim("Answers are stored locally in %s", w.Dir)

	profile, err := LoadProfile(w.Dir)
	if err != nil {
		return err
	}

	scanner := bufio.NewScanner(w.In)
	validate := validator.New()

	username, err := w.prompt(scanner, "Username", func(v string) error {
		if v == "" {
			return errors.New("username cannot be empty")
		}
		return nil
	})
	if err != nil {
		return err
	}

	email, err := w.prompt(scanner, "Email", func(v string) error {
		if validate.Var(v, "required,email") != nil {
			return errors.New("enter a valid email address")
		}
		return nil
	})
	if err != nil {
		return err
	}

	workspace, err := w.prompt(scanner, "Workspace name", func(v string) error {
		if v == "" {
			return errors.New("workspace name cannot be empty")
		}
		return nil
	})
	if err != nil {
		return err
	}

	now := w.now()
	if profile.UserID == "" {
		profile.UserID = uuid.NewString()
		profile.CreatedAt = now
	}
	profile.Username = username
	profile.Email = email
	profile.Workspace = workspace
	profile.MachineID = ResolveMachineID()
	profile.Platform = runtime.GOOS + "/" + runtime.GOARCH
	profile.UpdatedAt = now

	path, err := SaveProfile(w.Dir, profile)
	if err != nil {
		return err
	}

	slog.Info("Onboarding complete", "user_id", profile.UserID, "machine_id", profile.MachineID)
	w.Console.Success("✓ Onboarding complete! Profile saved to %s", path)
	return nil
}

// prompt asks for one value, re-prompting on invalid input up to the
// attempt limit.
func (w *Wizard) prompt(scanner *bufio.Scanner, label string, validate func(string) error) (string, error) {
	for attempt := 0; attempt < constants.MaxPromptAttempts; attempt++ {
		fmt.Fprintf(w.Console.Out, "%s: ", label)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", fmt.Errorf("reading input: %w", err)
			}
			return "", ErrInputClosed
		}
		value := strings.TrimSpace(scanner.Text())
		if err := validate(value); err != nil {
			w.Console.Warn("%v", err)
			continue
		}
		return value, nil
	}
	return "", fmt.Errorf("no valid input for %s after %d attempts", strings.ToLower(label), constants.MaxPromptAttempts)
}

func (w *Wizard) now() time.Time {
	if w.Now != nil {
		return w.Now()
	}
	return time.Now().UTC()
}

// ResolveMachineID returns a stable identifier for this machine: the
// SWARMS_MACHINE_ID override, the hostname, or a random fallback.
func ResolveMachineID() string {
	if id := os.Getenv("SWARMS_MACHINE_ID"); id != "" {
		return id
	}
	if hostname, err := hostnameFunc(); err == nil && hostname != "" {
		return hostname
	}
	return "machine-" + utils.GetRandomString(machineIDLength)
}

// LoadProfile reads the profile stored in dir. A missing profile returns
// a zero Profile without error.
func LoadProfile(dir string) (Profile, error) {
	var profile Profile

	path := filepath.Join(dir, constants.ProfileFileName)
	data, err := os.ReadFile(path) // #nosec G304
	if errors.Is(err, fs.ErrNotExist) {
		return profile, nil
	}
	if err != nil {
		return profile, fmt.Errorf("reading %s: %w", path, err)
	}

	if err := json.Unmarshal(data, &profile); err != nil {
		return profile, fmt.Errorf("decoding %s: %w", path, err)
	}
	return profile, nil
}

// SaveProfile writes the profile into dir and returns its path.
func SaveProfile(dir string, profile Profile) (string, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding profile: %w", err)
	}

	path := filepath.Join(dir, constants.ProfileFileName)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}
