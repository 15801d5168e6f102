package cli

import "errors"

// Process exit codes. Each fatal condition of the add command has its own.
const (
	ExitOK           = 0
	ExitNothingAdded = 1 // also used for failures of the other commands
	ExitUsage        = 2
	ExitInput        = 3
	ExitPersist      = 4
)

// ExitError attaches a process exit code to an error.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string { return e.Err.Error() }

func (e *ExitError) Unwrap() error { return e.Err }

func withCode(code int, err error) error {
	if err == nil {
		return nil
	}
	return &ExitError{Code: code, Err: err}
}

// ExitCode maps an error returned by Execute to the process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var ee *ExitError
	if errors.As(err, &ee) {
		return ee.Code
	}
	return ExitNothingAdded
}
