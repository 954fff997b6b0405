package cli

import (
	"fmt"

	"github.com/AntonioJCosta/pathpick/internal/core/ports"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Settings are the global flag values a Builder needs to assemble services.
type Settings struct {
	ConfigPath string
	StatePath  string
	Debug      bool
	NoColor    bool
	// HeaderExtensions overrides the configured header suffixes when non-empty.
	HeaderExtensions []string
	// SkipStore is set for commands that never touch the alias store, so no
	// state file is loaded or created for them.
	SkipStore bool
}

// annotationNoStore marks commands that run without the alias store.
const annotationNoStore = "pathpick/no-store"

// Services bundles everything the subcommands operate on.
type Services struct {
	Store    ports.AliasStore
	Input    ports.LineReader
	Picker   ports.PickerService
	Launcher ports.LauncherService
	Headers  ports.HeaderCollector
	Logger   *zap.Logger
}

// Builder assembles Services once the command line has been parsed.
type Builder func(Settings) (*Services, error)

func NewRootCommand(version string, build Builder) *cobra.Command {
	services := &Services{}
	settings := Settings{}

	rootCmd := &cobra.Command{
		Use:   "pathpick",
		Short: "pathpick remembers the paths and values your tools keep asking for.",
		Long: `pathpick browses the filesystem interactively, caches what you pick under
named aliases, launches the optimizer with those inputs in a fresh run
directory, and gathers C++ headers into a single file.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			_, settings.SkipStore = cmd.Annotations[annotationNoStore]
			if f := cmd.Flags().Lookup("ext"); f != nil && f.Changed {
				exts, err := cmd.Flags().GetStringSlice("ext")
				if err != nil {
					return fmt.Errorf("error reading flags: %w", err)
				}
				settings.HeaderExtensions = exts
			}
			if build == nil {
				return fmt.Errorf("services not initialized for command %s", cmd.Name())
			}
			built, err := build(settings)
			if err != nil {
				return err
			}
			*services = *built
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&settings.ConfigPath, "config", "", "Path to the config file (.yaml, .yml or .toml).")
	flags.StringVar(&settings.StatePath, "state", "", "Path to the alias state file (default ./.path_picker_state.json).")
	flags.BoolVar(&settings.Debug, "debug", false, "Log diagnostics to stderr.")
	flags.BoolVar(&settings.NoColor, "no-color", false, "Disable colored output.")

	rootCmd.AddCommand(NewHeadersCommand(services))
	rootCmd.AddCommand(NewPickCommand(services))
	rootCmd.AddCommand(NewValueCommand(services))
	rootCmd.AddCommand(NewRunCommand(services))
	rootCmd.AddCommand(NewAliasesCommand(services))
	rootCmd.AddCommand(NewVersionCommand())

	return rootCmd
}
