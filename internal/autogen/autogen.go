// Package autogen generates agents.yaml documents from a task description
// using a chat completion backend.
package autogen

import (
	"context"
	"log/slog"
	"strings"

	"github.com/swarms-world/swarms-cli/internal/agent"
	"github.com/swarms-world/swarms-cli/internal/llm"
	"github.com/swarms-world/swarms-cli/internal/swarmfile"
)

const systemPrompt = `You design multi-agent swarms. Given a task, produce an
agents.yaml document describing the agents needed to complete it.

The document must follow this schema:

swarm_name: <short kebab-case name>
agents:
  - agent_name: <short kebab-case name>
    model: <model name>
    system_prompt: <role instructions>
    task: <concrete sub-task>

Reply with exactly one fenced yaml code block and nothing else.`

// Generator turns task descriptions into validated swarm configurations.
type Generator struct {
	Chat agent.Chatter
}

// Generate asks the backend for an agents.yaml document solving task and
// returns it parsed and validated. All failures are *GenerationError.
func (g *Generator) Generate(ctx context.Context, task, model string) (*swarmfile.File, error) {
	if strings.TrimSpace(task) == "" {
		return nil, &GenerationError{Kind: KindInvalid, Err: ErrEmptyTask}
	}
	if strings.TrimSpace(model) == "" {
		return nil, &GenerationError{Kind: KindInvalid, Err: ErrEmptyModel}
	}

	slog.InfoContext(ctx, "Generating swarm configuration", "model", model)

	reply, err := g.Chat.Chat(ctx, llm.ChatRequest{
		Model: model,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: systemPrompt},
			{Role: llm.RoleUser, Content: task},
		},
	})
	if err != nil {
		return nil, &GenerationError{Kind: KindUpstream, Err: err}
	}

	raw, ok := ExtractYAML(reply)
	if !ok {
		return nil, &GenerationError{Kind: KindMissing, Err: ErrNoYAMLContent}
	}

	f, err := swarmfile.Parse([]byte(raw))
	if err != nil {
		return nil, &GenerationError{Kind: KindInvalid, Err: err}
	}

	slog.InfoContext(ctx, "Swarm configuration generated", "swarm", f.SwarmName, "agents", len(f.Agents))

	return f, nil
}

// ExtractYAML returns the contents of the first fenced code block in reply,
// preferring blocks tagged yaml. The second return is false when reply has
// no usable block.
func ExtractYAML(reply string) (string, bool) {
	for _, tag := range []string{"```yaml", "```yml", "```"} {
		start := strings.Index(reply, tag)
		if start == -1 {
			continue
		}
		rest := reply[start+len(tag):]
		// The opening fence runs to end of line
		if nl := strings.IndexByte(rest, '\n'); nl != -1 {
			rest = rest[nl+1:]
		}
		end := strings.Index(rest, "```")
		if end == -1 {
			continue
		}
		content := strings.TrimSpace(rest[:end])
		if content == "" {
			continue
		}
		return content, true
	}
	return "", false
}
