package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRunCommand creates the 'run' subcommand.
func NewRunCommand(services *Services) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Gather optimizer inputs through the picker and run it in a new run directory.",
		Long: `Asks for (or reuses) the executable, method config, problem name, problem
instance and base output directory, plus the optional executions count and
seed. The optimizer then runs with its output directory set to the next
free r<N> directory under the base output directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRunCmd(cmd, services)
		},
	}

	cmd.Flags().BoolP("force", "f", false, "Ask for every input again, ignoring cached values.")
	cmd.Flags().Bool("dry-run", false, "Print the command without executing it.")

	return cmd
}

func runRunCmd(cmd *cobra.Command, services *Services) error {
	if services.Launcher == nil {
		return fmt.Errorf("services not initialized for run command")
	}
	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return fmt.Errorf("error reading flags: %w", err)
	}
	dryRun, err := cmd.Flags().GetBool("dry-run")
	if err != nil {
		return fmt.Errorf("error reading flags: %w", err)
	}

	return services.Launcher.Run(cmd.Context(), force, dryRun)
}
