// Package marker persists the process-local login marker file.
// The marker is a single literal string, not a credential.
package marker

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/gofrs/flock"
	"github.com/swarms-world/swarms-cli/internal/constants"
)

// Store reads and writes a login marker file.
type Store struct {
	// Path is the marker file location.
	Path string
}

// NewStore returns a Store for the default marker file in the working directory.
func NewStore() *Store {
	return &Store{Path: constants.MarkerFileName}
}

// EnsureLoggedIn reports whether the marker already records a login and
// establishes it otherwise. The read-then-write runs under an exclusive
// file lock so concurrent invocations cannot interleave. pause, when
// non-nil, runs before the marker is written (UX pacing only).
func (s *Store) EnsureLoggedIn(pause func()) (bool, error) {
	lock := flock.New(s.Path)
	if err := lock.Lock(); err != nil {
		return false, fmt.Errorf("locking %s: %w", s.Path, err)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	data, err := os.ReadFile(s.Path) // #nosec G304
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("reading %s: %w", s.Path, err)
	}
	// Any content other than the exact marker re-runs the login path.
	if err == nil && string(data) == constants.MarkerLoggedIn {
		return true, nil
	}

	if pause != nil {
		pause()
	}

	if err := os.WriteFile(s.Path, []byte(constants.MarkerLoggedIn), 0o600); err != nil {
		return false, fmt.Errorf("writing %s: %w", s.Path, err)
	}

	return false, nil
}
