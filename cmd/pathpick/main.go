package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/AntonioJCosta/pathpick/internal/adapters/oscommand"
	"github.com/AntonioJCosta/pathpick/internal/adapters/terminal"
	"github.com/AntonioJCosta/pathpick/internal/config"
	"github.com/AntonioJCosta/pathpick/internal/core/services/headers"
	"github.com/AntonioJCosta/pathpick/internal/core/services/launcher"
	"github.com/AntonioJCosta/pathpick/internal/core/services/picker"
	"github.com/AntonioJCosta/pathpick/internal/handlers/cli"
	"github.com/AntonioJCosta/pathpick/internal/handlers/ui"
	"github.com/AntonioJCosta/pathpick/internal/logging"
	"github.com/AntonioJCosta/pathpick/internal/repositories/aliasstore"
	"github.com/AntonioJCosta/pathpick/internal/version"
	"go.uber.org/zap"
)

const appName = "pathpick"

func main() {
	logger := zap.NewNop()

	build := func(settings cli.Settings) (*cli.Services, error) {
		if settings.NoColor || !terminal.IsTerminal(os.Stdout) {
			ui.DisableColors()
		}

		cfg, err := loadConfig(settings.ConfigPath)
		if err != nil {
			return nil, err
		}

		logger, err = logging.New(logging.Options{
			Debug:      settings.Debug,
			File:       cfg.Log.File,
			Level:      cfg.Log.Level,
			AppName:    appName,
			AppVersion: version.Get().Version,
		})
		if err != nil {
			return nil, fmt.Errorf("error initializing logger: %w", err)
		}

		extensions := cfg.HeaderExtensions
		if len(settings.HeaderExtensions) > 0 {
			extensions = settings.HeaderExtensions
		}

		services := &cli.Services{
			Input:   terminal.NewReader(os.Stdin, os.Stdout),
			Headers: headers.NewCollector(extensions, logger),
			Logger:  logger,
		}
		if settings.SkipStore {
			return services, nil
		}

		statePath := cfg.StateFile
		if settings.StatePath != "" {
			statePath = settings.StatePath
		}
		store, err := aliasstore.NewJSONStore(statePath, logger)
		if err != nil {
			return nil, fmt.Errorf("error initializing alias store: %w", err)
		}
		if err := store.Load(); err != nil {
			// A broken state file leaves the store empty; the session continues.
			fmt.Fprintln(os.Stdout, ui.WarningColor(fmt.Sprintf("Warning: %v. Starting with no saved paths.", err)))
		}

		services.Store = store
		services.Picker = picker.NewService(store, services.Input, os.Stdout, logger, cfg.StartPath)
		services.Launcher = launcher.NewService(services.Picker, oscommand.NewOSProcessRunner(), os.Stdout, logger)
		return services, nil
	}

	rootCmd := cli.NewRootCommand(version.Get().Version, build)
	err := rootCmd.ExecuteContext(context.Background())
	syncLogger(logger)

	if err != nil {
		os.Exit(exitCode(err))
	}
}

// loadConfig reads an explicit config file, which must exist, or the
// per-user default, which may be absent.
func loadConfig(explicit string) (config.Config, error) {
	if explicit != "" {
		return config.Load(explicit, true)
	}
	path, err := config.DefaultPath()
	if err != nil {
		return config.Default(), nil
	}
	return config.Load(path, false)
}

// exitCode reports err and maps it to the process exit status. Launcher
// failures have already been explained to the user by the launcher itself.
func exitCode(err error) int {
	var exitErr *launcher.ExitStatusError
	if errors.As(err, &exitErr) {
		if exitErr.Code > 0 {
			return exitErr.Code
		}
		return 1
	}
	if !errors.Is(err, launcher.ErrExecutableNotFound) {
		fmt.Fprintln(os.Stderr, ui.ErrorColor(fmt.Sprintf("Error: %v", err)))
	}
	return 1
}

func syncLogger(logger *zap.Logger) {
	if err := logger.Sync(); err != nil {
		// Syncing stderr fails with EINVAL or ENOTTY on terminals and pipes.
		lower := strings.ToLower(err.Error())
		if !strings.Contains(lower, "invalid argument") && !strings.Contains(lower, "inappropriate ioctl") {
			fmt.Fprintf(os.Stderr, "Logger sync failed: %v\n", err)
		}
	}
}
