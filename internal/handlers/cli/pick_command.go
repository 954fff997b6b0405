package cli

import (
	"fmt"

	"github.com/AntonioJCosta/pathpick/internal/core/domain/alias"
	"github.com/AntonioJCosta/pathpick/internal/core/domain/session"
	"github.com/spf13/cobra"
)

type pickFlags struct {
	prompt  string
	start   string
	force   bool
	noCache bool
}

// NewPickCommand creates the 'pick' subcommand.
func NewPickCommand(services *Services) *cobra.Command {
	flags := &pickFlags{}
	cmd := &cobra.Command{
		Use:   "pick dir|file [alias]",
		Short: "Interactively pick a directory or file, optionally caching it under an alias.",
		Long: `Opens the interactive picker. With an alias, a still-valid cached path is
returned immediately and a new selection is saved under the alias.
The selected path is printed on the last line.`,
		Args:      cobra.RangeArgs(1, 2),
		ValidArgs: []string{"dir", "directory", "file"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPickCmd(cmd, args, flags, services)
		},
	}

	cmd.Flags().StringVarP(&flags.prompt, "prompt", "p", "", "Prompt shown above the picker.")
	cmd.Flags().StringVarP(&flags.start, "start", "s", "", "Start directory or alias naming one.")
	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Ignore the cached path and pick again.")
	cmd.Flags().BoolVar(&flags.noCache, "no-cache", false, "Do not read or write any alias.")

	return cmd
}

func runPickCmd(cmd *cobra.Command, args []string, flags *pickFlags, services *Services) error {
	if services.Picker == nil {
		return fmt.Errorf("services not initialized for pick command")
	}
	mode, err := session.ParseMode(args[0])
	if err != nil {
		return err
	}

	var path string
	var ok bool
	switch {
	case flags.noCache || len(args) < 2:
		path, ok = services.Picker.Pick(mode, flags.prompt, flags.start)
	default:
		path, ok = services.Picker.GetPath(mode, args[1], flags.prompt, flags.start, flags.force)
	}
	if !ok {
		return fmt.Errorf("no %s selected", mode)
	}

	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

type valueFlags struct {
	prompt string
	isInt  bool
	force  bool
}

// NewValueCommand creates the 'value' subcommand.
func NewValueCommand(services *Services) *cobra.Command {
	flags := &valueFlags{}
	cmd := &cobra.Command{
		Use:   "value <alias>",
		Short: "Return the cached value for an alias, asking for it when absent.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValueCmd(cmd, args, flags, services)
		},
	}

	cmd.Flags().StringVarP(&flags.prompt, "prompt", "p", "", "Prompt shown when asking.")
	cmd.Flags().BoolVar(&flags.isInt, "int", false, "Require an integer value.")
	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Ignore the cached value and ask again.")

	return cmd
}

func runValueCmd(cmd *cobra.Command, args []string, flags *valueFlags, services *Services) error {
	if services.Picker == nil {
		return fmt.Errorf("services not initialized for value command")
	}
	kind := alias.KindString
	if flags.isInt {
		kind = alias.KindInt
	}

	value, ok := services.Picker.GetValue(args[0], flags.prompt, kind, flags.force)
	if !ok {
		return fmt.Errorf("no value entered for '%s'", args[0])
	}

	fmt.Fprintln(cmd.OutOrStdout(), value.AsString())
	return nil
}
