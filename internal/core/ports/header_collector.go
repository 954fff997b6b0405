package ports

// HeaderReport summarises one header collection run.
type HeaderReport struct {
	Output  string
	Written int
	Failed  int
}

// HeaderCollector concatenates header files found under a directory tree into one file.
type HeaderCollector interface {
	Collect(root, output string) (HeaderReport, error)
}
