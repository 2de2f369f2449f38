// Package autoswarm provides the autoswarm command implementation.
package autoswarm

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/swarms-world/swarms-cli/internal/autogen"
	"github.com/swarms-world/swarms-cli/internal/constants"
	"github.com/swarms-world/swarms-cli/internal/llm"
	"github.com/swarms-world/swarms-cli/internal/swarmfile"
	"github.com/swarms-world/swarms-cli/internal/ui"
)

const missingYAMLHelp = "This might be due to an API key issue or invalid model configuration.\n" +
	"1. Check if your OpenAI API key is set correctly\n" +
	"2. Verify the model name is valid\n" +
	"3. Try running with --model " + constants.DefaultModel

const debugHelp = "For debugging, try:\n" +
	"1. Check your API keys are set correctly\n" +
	"2. Verify your network connection\n" +
	"3. Try a different model"

// Generator produces a swarm configuration for a task.
type Generator interface {
	Generate(ctx context.Context, task, model string) (*swarmfile.File, error)
}

// Hooks replaced in tests.
var (
	newGenerator = func() Generator {
		return &autogen.Generator{Chat: llm.NewFromConfig()}
	}
	exitFunc = os.Exit
)

// NewCmd builds the autoswarm command.
func NewCmd(console *ui.Console) *cobra.Command {
	var task string
	var model string

	autoswarmCmd := &cobra.Command{
		Use:   "autoswarm",
		Short: "Generate and execute an autonomous swarm",
		Long:  ``,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(task) == "" {
				console.ErrorPanel(
					"Missing required argument: --task",
					"Example usage: swarms autoswarm --task 'analyze this data' --model "+constants.DefaultModel,
				)
				exitFunc(1)
				return nil
			}
			return runAutoswarm(cmd.Context(), console, task, model)
		},
	}

	autoswarmCmd.Flags().StringVar(&task, "task", "", "Task for autoswarm")
	autoswarmCmd.Flags().StringVar(&model, "model", constants.DefaultModel, "Model for autoswarm")

	return autoswarmCmd
}

// runAutoswarm generates a swarm configuration and executes it. Generation
// failures are rendered as panels keyed on the error kind and do not
// propagate, matching the uniform error display contract.
func runAutoswarm(ctx context.Context, console *ui.Console, task, model string) error {
	console.Info("Initializing autoswarm configuration...")
	console.Info("Generating swarm for task: %s", task)

	gen := newGenerator()
	f, err := gen.Generate(ctx, task, model)
	if err != nil {
		renderGenerationError(console, err)
		return nil
	}

	console.Success("✓ Swarm configuration generated successfully!")

	runner := &swarmfile.Runner{Chat: llm.NewFromConfig()}
	results, err := runner.Run(ctx, f, swarmfile.ModeTasks)
	if err != nil {
		renderGenerationError(console, err)
		return nil
	}

	for _, result := range results {
		console.Section(result.Agent, result.Output)
	}
	return nil
}

// renderGenerationError dispatches the error panel on the error kind.
func renderGenerationError(console *ui.Console, err error) {
	var genErr *autogen.GenerationError
	if errors.As(err, &genErr) && genErr.Kind == autogen.KindMissing {
		console.ErrorPanel("Failed to generate YAML configuration", missingYAMLHelp)
		return
	}
	console.ErrorPanel(fmt.Sprintf("Error during autoswarm execution: %v", err), debugHelp)
}
