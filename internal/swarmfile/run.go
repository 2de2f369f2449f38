package swarmfile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/swarms-world/swarms-cli/internal/agent"
	"github.com/swarms-world/swarms-cli/internal/utils"
)

// Mode selects what Run executes from a loaded document.
type Mode string

// ModeTasks runs each agent's configured task once.
const ModeTasks Mode = "tasks"

// ErrUnsupportedMode is returned for modes Run does not implement.
var ErrUnsupportedMode = errors.New("unsupported run mode")

// Runner executes a loaded document against a chat completion backend.
type Runner struct {
	Chat agent.Chatter
}

// Run executes f in the given mode and returns per-agent results in
// document order. Agent failures are aggregated into a single error.
func (r *Runner) Run(ctx context.Context, f *File, mode Mode) ([]agent.Result, error) {
	if mode != ModeTasks {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMode, mode)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	for _, spec := range f.Agents {
		if strings.TrimSpace(spec.Task) == "" {
			return nil, fmt.Errorf("agent %q has no task to run", spec.AgentName)
		}
	}

	slog.InfoContext(ctx, "Running swarm", "swarm", f.SwarmName, "agents", len(f.Agents))

	results, errs := utils.FanOut(f.Agents, func(spec AgentSpec) (agent.Result, error) {
		a := agent.New(agent.Config{
			Name:         spec.AgentName,
			Model:        spec.Model,
			SystemPrompt: spec.SystemPrompt,
			Temperature:  spec.Temperature,
			MaxTokens:    spec.MaxTokens,
		}, r.Chat)
		return a.RunTask(ctx, spec.Task)
	})

	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("running agents: %w", err)
	}

	return results, nil
}
