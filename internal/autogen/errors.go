package autogen

import "errors"

// Kind classifies a GenerationError for dispatch by the command layer.
type Kind int

const (
	// KindMissing means the model reply carried no YAML content.
	KindMissing Kind = iota

	// KindInvalid means the inputs or the generated document were invalid.
	KindInvalid

	// KindUpstream means the chat completion call itself failed.
	KindUpstream
)

// String returns the kind's log-friendly name.
func (k Kind) String() string {
	switch k {
	case KindMissing:
		return "missing"
	case KindInvalid:
		return "invalid"
	case KindUpstream:
		return "upstream"
	default:
		return "unknown"
	}
}

var (
	// ErrNoYAMLContent is returned when no fenced YAML block is found in the
	// model reply.
	ErrNoYAMLContent = errors.New("no YAML content found in model reply")

	// ErrEmptyTask is returned when the task string is blank.
	ErrEmptyTask = errors.New("task cannot be empty")

	// ErrEmptyModel is returned when the model name is blank.
	ErrEmptyModel = errors.New("model name cannot be empty")
)

// GenerationError wraps a config generation failure with its kind.
type GenerationError struct {
	Kind Kind
	Err  error
}

// Error implements the error interface.
func (e *GenerationError) Error() string {
	return e.Err.Error()
}

// Unwrap exposes the wrapped error for errors.Is / errors.As.
func (e *GenerationError) Unwrap() error {
	return e.Err
}
