/*
Package run defines the inputs and outputs of one optimizer run.
*/
package run

import "strconv"

/*
Request holds everything the launcher needs to start the optimizer.
ExecutionCount and Seed are optional and nil when the user skipped them.
*/
type Request struct {
	Executable      string
	MethodConfig    string
	ProblemName     string
	ProblemInstance string
	BaseOutputDir   string
	ExecutionCount  *int
	Seed            *int
}

// Args returns the positional arguments for the optimizer, given the run directory.
// The execution count and the seed are each appended only when present.
func (r Request) Args(runDir string) []string {
	args := []string{r.MethodConfig, r.ProblemName, r.ProblemInstance, runDir}
	if r.ExecutionCount != nil {
		args = append(args, strconv.Itoa(*r.ExecutionCount))
	}
	if r.Seed != nil {
		args = append(args, strconv.Itoa(*r.Seed))
	}
	return args
}

// Result is the captured outcome of a finished subprocess.
type Result struct {
	RunDir   string
	Args     []string
	Stdout   string
	Stderr   string
	ExitCode int
}
