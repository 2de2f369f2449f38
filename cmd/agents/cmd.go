// Package agents provides the run-agents command implementation.
package agents

import (
	"github.com/spf13/cobra"
	"github.com/swarms-world/swarms-cli/internal/constants"
	"github.com/swarms-world/swarms-cli/internal/llm"
	"github.com/swarms-world/swarms-cli/internal/swarmfile"
	"github.com/swarms-world/swarms-cli/internal/ui"
)

// NewCmd builds the run-agents command.
func NewCmd(console *ui.Console) *cobra.Command {
	var yamlFile string

	agentsCmd := &cobra.Command{
		Use:   "run-agents",
		Short: "Execute agents from your YAML configuration",
		Long:  ``,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := swarmfile.Load(yamlFile)
			if err != nil {
				return err
			}

			runner := &swarmfile.Runner{Chat: llm.NewFromConfig()}
			results, err := runner.Run(cmd.Context(), f, swarmfile.ModeTasks)
			if err != nil {
				return err
			}

			for _, result := range results {
				console.Section(result.Agent, result.Output)
			}
			console.Success("✓ %d agent(s) finished", len(results))
			return nil
		},
	}

	agentsCmd.Flags().StringVar(&yamlFile, "yaml-file", constants.DefaultYAMLFile, "YAML configuration file path")

	return agentsCmd
}
