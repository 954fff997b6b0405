package ports

import (
	"context"

	"github.com/AntonioJCosta/pathpick/internal/core/domain/run"
)

// LauncherService defines the contract for gathering optimizer inputs and running it.
type LauncherService interface {
	// Gather acquires every input through the picker. missing names the
	// required inputs the user cancelled, in acquisition order.
	Gather(force bool) (req run.Request, missing []string)

	// Launch creates the next run directory under req.BaseOutputDir and runs
	// the optimizer in it. With dryRun the command is printed but not run.
	Launch(ctx context.Context, req run.Request, dryRun bool) (run.Result, error)

	// Run gathers inputs and launches the optimizer, aborting when a required input is missing.
	Run(ctx context.Context, force, dryRun bool) error
}
