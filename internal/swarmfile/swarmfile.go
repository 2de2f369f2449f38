// Package swarmfile loads, validates, and runs agents.yaml documents.
package swarmfile

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// AgentSpec is one agent entry in an agents.yaml document.
type AgentSpec struct {
	AgentName    string   `yaml:"agent_name" validate:"required"`
	Model        string   `yaml:"model" validate:"required"`
	SystemPrompt string   `yaml:"system_prompt" validate:"required"`
	Task         string   `yaml:"task"`
	Temperature  *float64 `yaml:"temperature" validate:"omitempty,gte=0,lte=2"`
	MaxTokens    int      `yaml:"max_tokens" validate:"omitempty,gt=0"`
}

// File is a parsed agents.yaml document.
type File struct {
	SwarmName string      `yaml:"swarm_name"`
	Agents    []AgentSpec `yaml:"agents" validate:"required,min=1,dive"`
}

// Validate checks the document against the schema constraints.
func (f *File) Validate() error {
	validate := validator.New()
	if err := validate.Struct(f); err != nil {
		return fmt.Errorf("invalid agent configuration: %w", err)
	}
	return nil
}

// Parse decodes and validates an agents.yaml document.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing agent configuration: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Load reads and parses the agents.yaml document at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path) // #nosec G304
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Parse(data)
}
