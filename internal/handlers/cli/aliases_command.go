package cli

import (
	"fmt"

	"github.com/AntonioJCosta/pathpick/internal/core/services/picker"
	"github.com/AntonioJCosta/pathpick/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewAliasesCommand creates the 'aliases' command group.
func NewAliasesCommand(services *Services) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "aliases",
		Short: "Inspect and maintain the saved aliases.",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List saved aliases with the status of each path.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAliasesListCmd(cmd, services)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "remove <alias>...",
		Short: "Remove one or more saved aliases.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAliasesRemoveCmd(cmd, args, services)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the location of the alias state file.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if services.Store == nil {
				return fmt.Errorf("services not initialized for aliases path command")
			}
			fmt.Fprintln(cmd.OutOrStdout(), services.Store.Path())
			return nil
		},
	})

	return cmd
}

func runAliasesListCmd(cmd *cobra.Command, services *Services) error {
	if services.Store == nil {
		return fmt.Errorf("services not initialized for aliases list command")
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, ui.DetailColor(fmt.Sprintf("State file: %s", services.Store.Path())))
	picker.PrintAliases(out, services.Store, true)
	return nil
}

func runAliasesRemoveCmd(cmd *cobra.Command, args []string, services *Services) error {
	if services.Store == nil {
		return fmt.Errorf("services not initialized for aliases remove command")
	}
	out := cmd.OutOrStdout()

	removed := 0
	for _, name := range args {
		if services.Store.Delete(name) {
			removed++
			fmt.Fprintln(out, ui.SuccessColor(fmt.Sprintf("Removed alias '%s'.", name)))
			continue
		}
		fmt.Fprintln(out, ui.WarningColor(fmt.Sprintf("Alias '%s' not found.", name)))
	}
	if removed == 0 {
		return nil
	}
	if err := services.Store.Save(); err != nil {
		return fmt.Errorf("could not save aliases: %w", err)
	}
	return nil
}
