package launcher

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/AntonioJCosta/pathpick/internal/core/domain/alias"
	"github.com/AntonioJCosta/pathpick/internal/core/domain/run"
	"github.com/AntonioJCosta/pathpick/internal/core/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	base   string
	picker *testutil.MockPickerService
	runner *testutil.MockProcessRunner
	out    *bytes.Buffer
	svc    *service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	base := t.TempDir()
	paths := map[string]string{
		AliasExecutable:      "/opt/imopse/imopse.exe",
		AliasMethodConfig:    "/cfg/ga.cfg",
		AliasProblemInstance: "/inst/berlin52.tsp",
		AliasOutputDir:       base,
	}
	values := map[string]alias.Value{
		AliasProblemName: alias.String("TSP"),
		AliasExecCount:   alias.Int(10),
		AliasSeed:        alias.String("42"),
	}
	f := &fixture{
		base:   base,
		picker: testutil.NewMockPickerService(paths, values),
		runner: &testutil.MockProcessRunner{
			RunFunc: func(ctx context.Context, path string, args []string) ([]byte, []byte, int, error) {
				return []byte("best: 7542"), nil, 0, nil
			},
		},
		out: &bytes.Buffer{},
	}
	svc, ok := NewService(f.picker, f.runner, f.out, nil).(*service)
	require.True(t, ok)
	f.svc = svc
	return f
}

func TestNewService_PanicsOnNilDependencies(t *testing.T) {
	picker := testutil.NewMockPickerService(nil, nil)
	runner := &testutil.MockProcessRunner{}
	out := &bytes.Buffer{}

	assert.Panics(t, func() { NewService(nil, runner, out, nil) })
	assert.Panics(t, func() { NewService(picker, nil, out, nil) })
	assert.Panics(t, func() { NewService(picker, runner, nil, nil) })
}

func TestService_Gather(t *testing.T) {
	f := newFixture(t)

	req, missing := f.svc.Gather(true)

	assert.Empty(t, missing)
	assert.Equal(t, []string{
		AliasExecutable, AliasMethodConfig, AliasProblemName, AliasProblemInstance,
		AliasOutputDir, AliasExecCount, AliasSeed,
	}, f.picker.Asked)
	for _, name := range f.picker.Asked {
		assert.True(t, f.picker.Forced[name], "force flag passed for %s", name)
	}
	assert.Equal(t, "TSP", req.ProblemName)
	require.NotNil(t, req.ExecutionCount)
	assert.Equal(t, 10, *req.ExecutionCount)
	require.NotNil(t, req.Seed)
	assert.Equal(t, 42, *req.Seed)
}

func TestService_Gather_ReportsMissingInOrder(t *testing.T) {
	f := newFixture(t)
	delete(f.picker.Paths, AliasMethodConfig)
	delete(f.picker.Paths, AliasOutputDir)
	delete(f.picker.Values, AliasProblemName)
	delete(f.picker.Values, AliasSeed)

	req, missing := f.svc.Gather(false)

	assert.Equal(t, []string{"Method Config Path", "Problem Name", "Base Output Directory"}, missing)
	assert.Nil(t, req.Seed, "optional inputs are never reported missing")
}

func TestService_Run_MissingInputAborts(t *testing.T) {
	f := newFixture(t)
	delete(f.picker.Paths, AliasExecutable)

	err := f.svc.Run(context.Background(), false, false)

	var exitErr *ExitStatusError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.Code)
	assert.ErrorIs(t, err, ErrMissingInputs)
	assert.Empty(t, f.runner.Calls, "no process is started")
	assert.Contains(t, f.out.String(), "--- Execution Aborted ---")
	assert.Contains(t, f.out.String(), "Missing required input: Executable File")

	entries, readErr := os.ReadDir(f.base)
	require.NoError(t, readErr)
	assert.Empty(t, entries, "no run directory is created")
}

func TestService_Run_Success(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, os.Mkdir(filepath.Join(f.base, "r1"), 0755))

	err := f.svc.Run(context.Background(), false, false)
	require.NoError(t, err)

	require.Len(t, f.runner.Calls, 1)
	call := f.runner.Calls[0]
	assert.Equal(t, "/opt/imopse/imopse.exe", call.Path)
	assert.Equal(t, []string{
		"/cfg/ga.cfg", "TSP", "/inst/berlin52.tsp", filepath.Join(f.base, "r2"), "10", "42",
	}, call.Args)
	assert.DirExists(t, filepath.Join(f.base, "r2"))
	assert.Contains(t, f.out.String(), "best: 7542")
	assert.Contains(t, f.out.String(), "--- Execution Finished Successfully ---")
	assert.NotContains(t, f.out.String(), "--- STDERR ---")
}

func TestService_Launch(t *testing.T) {
	count := 3
	seed := 99

	tests := []struct {
		name         string
		countArg     *int
		seedArg      *int
		runFunc      func(ctx context.Context, path string, args []string) ([]byte, []byte, int, error)
		dryRun       bool
		wantArgsTail []string
		wantCode     int
		wantExitErr  bool
		wantIs       error
		wantCalls    int
		wantOutput   []string
	}{
		{
			name:         "optional arguments are omitted",
			runFunc:      succeed,
			wantArgsTail: nil,
			wantCalls:    1,
		},
		{
			name:         "count and seed are appended in order",
			countArg:     &count,
			seedArg:      &seed,
			runFunc:      succeed,
			wantArgsTail: []string{"3", "99"},
			wantCalls:    1,
		},
		{
			name:         "seed without count is still passed",
			seedArg:      &seed,
			runFunc:      succeed,
			wantArgsTail: []string{"99"},
			wantCalls:    1,
		},
		{
			name:     "non-zero exit propagates its code",
			countArg: &count,
			runFunc: func(ctx context.Context, path string, args []string) ([]byte, []byte, int, error) {
				return []byte("partial"), []byte("segfault"), 3, nil
			},
			wantArgsTail: []string{"3"},
			wantCode:     3,
			wantExitErr:  true,
			wantCalls:    1,
			wantOutput:   []string{"--- Execution Failed (Exit Code: 3) ---", "segfault"},
		},
		{
			name: "missing executable",
			runFunc: func(ctx context.Context, path string, args []string) ([]byte, []byte, int, error) {
				return nil, nil, -1, fmt.Errorf("failed to start: %w", fs.ErrNotExist)
			},
			wantCode:   -1,
			wantIs:     ErrExecutableNotFound,
			wantCalls:  1,
			wantOutput: []string{"The executable was not found at the specified path: '/opt/imopse/imopse.exe'"},
		},
		{
			name: "other start failure",
			runFunc: func(ctx context.Context, path string, args []string) ([]byte, []byte, int, error) {
				return nil, nil, -1, errors.New("permission denied")
			},
			wantCode:   -1,
			wantCalls:  1,
			wantOutput: []string{"An unexpected error occurred while running the subprocess"},
		},
		{
			name:       "dry run prints without executing",
			countArg:   &count,
			dryRun:     true,
			wantCalls:  0,
			wantOutput: []string{"Dry run: command not executed.", "Running: /opt/imopse/imopse.exe /cfg/ga.cfg TSP"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.runner.RunFunc = tt.runFunc
			req := run.Request{
				Executable:      "/opt/imopse/imopse.exe",
				MethodConfig:    "/cfg/ga.cfg",
				ProblemName:     "TSP",
				ProblemInstance: "/inst/berlin52.tsp",
				BaseOutputDir:   f.base,
				ExecutionCount:  tt.countArg,
				Seed:            tt.seedArg,
			}

			result, err := f.svc.Launch(context.Background(), req, tt.dryRun)

			runDir := filepath.Join(f.base, "r1")
			assert.Equal(t, runDir, result.RunDir)
			assert.DirExists(t, runDir)
			require.Len(t, f.runner.Calls, tt.wantCalls)
			if tt.wantCalls > 0 {
				wantArgs := append([]string{"/cfg/ga.cfg", "TSP", "/inst/berlin52.tsp", runDir}, tt.wantArgsTail...)
				assert.Equal(t, wantArgs, f.runner.Calls[0].Args)
			}
			assert.Equal(t, tt.wantCode, result.ExitCode)

			switch {
			case tt.wantExitErr:
				var exitErr *ExitStatusError
				require.ErrorAs(t, err, &exitErr)
				assert.Equal(t, tt.wantCode, exitErr.Code)
			case tt.wantIs != nil:
				assert.ErrorIs(t, err, tt.wantIs)
			case tt.wantCode == -1:
				assert.Error(t, err)
				assert.NotErrorIs(t, err, ErrExecutableNotFound)
			default:
				assert.NoError(t, err)
			}
			for _, want := range tt.wantOutput {
				assert.Contains(t, f.out.String(), want)
			}
		})
	}
}

func TestService_Launch_LossyOutput(t *testing.T) {
	f := newFixture(t)
	f.runner.RunFunc = func(ctx context.Context, path string, args []string) ([]byte, []byte, int, error) {
		return []byte{'o', 'k', 0xff}, []byte("warn"), 0, nil
	}

	result, err := f.svc.Launch(context.Background(), run.Request{
		Executable:    "/bin/opt",
		BaseOutputDir: f.base,
	}, false)

	require.NoError(t, err)
	assert.Equal(t, "ok�", result.Stdout)
	assert.Equal(t, "warn", result.Stderr)
	assert.Contains(t, f.out.String(), "--- STDERR ---")
}

func TestCommandLine(t *testing.T) {
	got := commandLine("/opt/my tools/opt", []string{"a.cfg", "", "plain"})
	assert.Equal(t, `"/opt/my tools/opt" a.cfg "" plain`, got)
}

func succeed(ctx context.Context, path string, args []string) ([]byte, []byte, int, error) {
	return []byte("done"), nil, 0, nil
}
