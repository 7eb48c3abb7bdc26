package domain

// ExecutionResult captures the observable outcome of one external command.
type ExecutionResult struct {
	ExitCode   int
	Stdout     string
	Stderr     string
	DurationMS int64
	Err        error
}
