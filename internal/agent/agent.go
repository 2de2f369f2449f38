// Package agent provides agent construction and single-task execution.
package agent

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/swarms-world/swarms-cli/internal/llm"
)

// ErrNoTask is returned when an agent is asked to run a blank task.
var ErrNoTask = errors.New("task is empty")

// Chatter executes one chat completion call.
type Chatter interface {
	Chat(ctx context.Context, req llm.ChatRequest) (string, error)
}

// Config describes an agent to construct.
type Config struct {
	Name         string
	Model        string
	SystemPrompt string
	Temperature  *float64
	MaxTokens    int
}

// Result is the outcome of one task run.
type Result struct {
	RunID  string `json:"run_id"`
	Agent  string `json:"agent"`
	Task   string `json:"task"`
	Output string `json:"output"`
}

// Agent executes tasks against a chat completion backend.
type Agent struct {
	cfg  Config
	chat Chatter
}

// New creates an Agent from cfg, backed by chat.
func New(cfg Config, chat Chatter) *Agent {
	return &Agent{cfg: cfg, chat: chat}
}

// Name returns the agent's configured name.
func (a *Agent) Name() string {
	return a.cfg.Name
}

// RunTask executes a single task and returns its result.
func (a *Agent) RunTask(ctx context.Context, task string) (Result, error) {
	if strings.TrimSpace(task) == "" {
		return Result{}, fmt.Errorf("agent %q: %w", a.cfg.Name, ErrNoTask)
	}

	runID := uuid.NewString()
	slog.InfoContext(ctx, "Agent task started", "agent", a.cfg.Name, "run_id", runID, "model", a.cfg.Model)

	output, err := a.chat.Chat(ctx, llm.ChatRequest{
		Model: a.cfg.Model,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: a.cfg.SystemPrompt},
			{Role: llm.RoleUser, Content: task},
		},
		Temperature: a.cfg.Temperature,
		MaxTokens:   a.cfg.MaxTokens,
	})
	if err != nil {
		return Result{}, fmt.Errorf("agent %q: %w", a.cfg.Name, err)
	}

	slog.InfoContext(ctx, "Agent task finished", "agent", a.cfg.Name, "run_id", runID)

	return Result{
		RunID:  runID,
		Agent:  a.cfg.Name,
		Task:   task,
		Output: output,
	}, nil
}
