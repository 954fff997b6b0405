package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AntonioJCosta/pathpick/internal/core/ports"
	"github.com/AntonioJCosta/pathpick/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewHeadersCommand creates the 'headers' subcommand.
func NewHeadersCommand(services *Services) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "headers [root] [output]",
		Short: "Gather C++ header files under a directory into one text file.",
		Long: `Recursively collects every header file below root and writes each one,
preceded by its path and a delimiter line, into output.
Missing arguments are asked for interactively.`,
		Args:        cobra.MaximumNArgs(2),
		Annotations: map[string]string{annotationNoStore: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHeadersCmd(cmd, args, services)
		},
	}

	cmd.Flags().StringSlice("ext", nil, "Header suffixes to match (default .h,.hpp,.hh).")

	return cmd
}

func runHeadersCmd(cmd *cobra.Command, args []string, services *Services) error {
	if services.Headers == nil || services.Input == nil {
		return fmt.Errorf("services not initialized for headers command")
	}
	out := cmd.OutOrStdout()

	root, err := argOrPrompt(args, 0, services.Input, "Enter the path to the directory to search: ")
	if err != nil {
		return err
	}
	output, err := argOrPrompt(args, 1, services.Input, "Enter the name of the output file (e.g., all_headers.txt): ")
	if err != nil {
		return err
	}

	report, err := services.Headers.Collect(root, output)
	if err != nil {
		fmt.Fprintln(out, ui.ErrorColor(fmt.Sprintf("Error: %v", err)))
		return err
	}

	fmt.Fprintln(out, ui.SuccessColor(fmt.Sprintf("Successfully gathered all header files into '%s'", report.Output)))
	fmt.Fprintln(out, ui.DetailColor(fmt.Sprintf("Files written: %d, unreadable: %d", report.Written, report.Failed)))
	return nil
}

// argOrPrompt returns args[i], or asks for it when absent.
func argOrPrompt(args []string, i int, input ports.LineReader, prompt string) (string, error) {
	if i < len(args) {
		return args[i], nil
	}
	line, err := input.ReadLine(ui.PromptColor(prompt))
	if err != nil {
		if errors.Is(err, ports.ErrInputCancelled) {
			return "", fmt.Errorf("no value entered: %w", err)
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}
