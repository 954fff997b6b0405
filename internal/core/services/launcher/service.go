package launcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os/exec"
	"strconv"
	"strings"

	"github.com/AntonioJCosta/pathpick/internal/core/domain/alias"
	"github.com/AntonioJCosta/pathpick/internal/core/domain/run"
	"github.com/AntonioJCosta/pathpick/internal/core/domain/session"
	"github.com/AntonioJCosta/pathpick/internal/core/ports"
	"github.com/AntonioJCosta/pathpick/internal/handlers/ui"
	"github.com/AntonioJCosta/pathpick/internal/textenc"
	"go.uber.org/zap"
)

// Alias names under which the launcher caches its inputs.
const (
	AliasExecutable      = "imopse_exe"
	AliasMethodConfig    = "method_config"
	AliasProblemName     = "problem_name"
	AliasProblemInstance = "problem_instance"
	AliasOutputDir       = "output_dir"
	AliasExecCount       = "exec_count"
	AliasSeed            = "seed"
)

var banner = strings.Repeat("=", 50)

type service struct {
	picker ports.PickerService
	runner ports.ProcessRunner
	out    io.Writer
	logger *zap.Logger
}

// NewService creates a launcher service.
// It panics if picker, runner or out is nil.
func NewService(picker ports.PickerService, runner ports.ProcessRunner, out io.Writer, logger *zap.Logger) ports.LauncherService {
	if picker == nil {
		panic("picker service cannot be nil")
	}
	if runner == nil {
		panic("process runner cannot be nil")
	}
	if out == nil {
		panic("output writer cannot be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{picker: picker, runner: runner, out: out, logger: logger}
}

// Gather implements ports.LauncherService.
func (s *service) Gather(force bool) (run.Request, []string) {
	var req run.Request
	var missing []string

	path := func(mode session.Mode, name, prompt, label string, dst *string) {
		if p, ok := s.picker.GetPath(mode, name, prompt, "", force); ok {
			*dst = p
			return
		}
		missing = append(missing, label)
	}
	optionalInt := func(name, prompt string) *int {
		v, ok := s.picker.GetValue(name, prompt, alias.KindInt, force)
		if !ok {
			return nil
		}
		n, err := v.AsInt()
		if err != nil {
			return nil
		}
		return &n
	}

	path(session.ModeFile, AliasExecutable, "Select the imopse.exe executable file", "Executable File", &req.Executable)
	path(session.ModeFile, AliasMethodConfig, "Select the Method Config file", "Method Config Path", &req.MethodConfig)
	if v, ok := s.picker.GetValue(AliasProblemName, "Enter the Problem Name (e.g., 'TSP')", alias.KindString, force); ok {
		req.ProblemName = v.AsString()
	} else {
		missing = append(missing, "Problem Name")
	}
	path(session.ModeFile, AliasProblemInstance, "Select the Problem Instance file", "Problem Instance Path", &req.ProblemInstance)
	path(session.ModeDirectory, AliasOutputDir, "Select the BASE Output Directory (e.g., C:/results)", "Base Output Directory", &req.BaseOutputDir)
	req.ExecutionCount = optionalInt(AliasExecCount, "Enter Executions Count (optional, cancel to skip)")
	req.Seed = optionalInt(AliasSeed, "Enter Seed (optional, cancel to skip)")

	s.logger.Debug("Launcher inputs gathered", zap.Strings("missing", missing))
	return req, missing
}

// Launch implements ports.LauncherService.
func (s *service) Launch(ctx context.Context, req run.Request, dryRun bool) (run.Result, error) {
	runDir, err := NextRunDir(req.BaseOutputDir)
	if err != nil {
		s.println(ui.ErrorColor(fmt.Sprintf("An error occurred while creating the run-specific directory: %v", err)))
		return run.Result{}, err
	}
	s.println("")
	s.println(ui.InfoColor(fmt.Sprintf("Creating run-specific output directory: %s", runDir)))

	result := run.Result{RunDir: runDir, Args: req.Args(runDir)}
	s.println("\n" + banner)
	s.println(ui.HeaderColor("--- Executing Command ---"))
	s.println(fmt.Sprintf("Running: %s", ui.CodeColor(commandLine(req.Executable, result.Args))))
	s.println(banner + "\n")

	if dryRun {
		s.println(ui.WarningColor("Dry run: command not executed."))
		return result, nil
	}

	s.logger.Info("Starting optimizer", zap.String("executable", req.Executable), zap.Strings("args", result.Args))
	stdout, stderr, code, err := s.runner.Run(ctx, req.Executable, result.Args)
	if err != nil {
		result.ExitCode = -1
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, exec.ErrNotFound) {
			s.println(ui.ErrorColor(fmt.Sprintf("Error: The executable was not found at the specified path: '%s'", req.Executable)))
			return result, fmt.Errorf("%w: %s", ErrExecutableNotFound, req.Executable)
		}
		s.println(ui.ErrorColor(fmt.Sprintf("An unexpected error occurred while running the subprocess: %v", err)))
		return result, fmt.Errorf("failed to run %s: %w", req.Executable, err)
	}

	result.Stdout = textenc.Lossy(stdout)
	result.Stderr = textenc.Lossy(stderr)
	result.ExitCode = code
	s.logger.Info("Optimizer finished", zap.Int("exitCode", code), zap.String("runDir", runDir))

	if code != 0 {
		s.println(ui.ErrorColor(fmt.Sprintf("--- Execution Failed (Exit Code: %d) ---", code)))
		s.println(ui.HeaderColor("\n--- STDOUT ---"))
		s.println(result.Stdout)
		s.println(ui.HeaderColor("\n--- STDERR ---"))
		s.println(result.Stderr)
		return result, &ExitStatusError{Code: code}
	}

	s.println(ui.HeaderColor("--- STDOUT ---"))
	s.println(result.Stdout)
	if result.Stderr != "" {
		s.println(ui.HeaderColor("--- STDERR ---"))
		s.println(result.Stderr)
	}
	s.println(ui.SuccessColor("\n--- Execution Finished Successfully ---"))
	return result, nil
}

// Run implements ports.LauncherService.
func (s *service) Run(ctx context.Context, force, dryRun bool) error {
	s.println(ui.HeaderColor("--- Configuring IMOPSE Execution ---"))
	s.println("Please provide the necessary paths and parameters.")
	s.println("You can use aliases (e.g., 'save my_dir', 'goto my_dir') in the pickers.")
	s.println("For optional values, you can cancel the input prompt (Ctrl+C) to skip them.")

	req, missing := s.Gather(force)
	if len(missing) > 0 {
		s.println(ui.ErrorColor("\n--- Execution Aborted ---"))
		for _, name := range missing {
			s.println(ui.ErrorColor(fmt.Sprintf("Missing required input: %s", name)))
		}
		return &ExitStatusError{Code: 1, Err: fmt.Errorf("%w: %s", ErrMissingInputs, strings.Join(missing, ", "))}
	}

	_, err := s.Launch(ctx, req, dryRun)
	return err
}

func (s *service) println(msg string) {
	fmt.Fprintln(s.out, msg)
}

// commandLine renders the command for display, quoting arguments that
// would otherwise be ambiguous.
func commandLine(executable string, args []string) string {
	parts := make([]string, 0, len(args)+1)
	for _, a := range append([]string{executable}, args...) {
		if a == "" || strings.ContainsAny(a, " \t\"'") {
			a = strconv.Quote(a)
		}
		parts = append(parts, a)
	}
	return strings.Join(parts, " ")
}
