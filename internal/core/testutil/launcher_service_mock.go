package testutil

import (
	"context"

	"github.com/AntonioJCosta/pathpick/internal/core/domain/run"
	"github.com/AntonioJCosta/pathpick/internal/core/ports"
)

// MockLauncherService is a mock implementation of ports.LauncherService.
type MockLauncherService struct {
	GatherFunc func(force bool) (run.Request, []string)
	LaunchFunc func(ctx context.Context, req run.Request, dryRun bool) (run.Result, error)
	RunFunc    func(ctx context.Context, force, dryRun bool) error
}

// Gather calls GatherFunc if set.
func (m *MockLauncherService) Gather(force bool) (run.Request, []string) {
	if m.GatherFunc != nil {
		return m.GatherFunc(force)
	}
	return run.Request{}, nil
}

// Launch calls LaunchFunc if set.
func (m *MockLauncherService) Launch(ctx context.Context, req run.Request, dryRun bool) (run.Result, error) {
	if m.LaunchFunc != nil {
		return m.LaunchFunc(ctx, req, dryRun)
	}
	return run.Result{}, nil
}

// Run calls RunFunc if set.
func (m *MockLauncherService) Run(ctx context.Context, force, dryRun bool) error {
	if m.RunFunc != nil {
		return m.RunFunc(ctx, force, dryRun)
	}
	return nil
}

var _ ports.LauncherService = (*MockLauncherService)(nil)
