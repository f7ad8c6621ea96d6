package cmd

// Exit codes returned by the CLI
const (
	ExitSuccess           = 0 // Success
	ExitGeneralError      = 1 // General error
	ExitInvalidParameters = 3 // Invalid parameters
)

// exitCodeError carries the process exit code alongside the error
type exitCodeError struct {
	code int
	err  error
}

func (e exitCodeError) Error() string {
	if e.err == nil {
		return ""
	}
	return e.err.Error()
}

func (e exitCodeError) Unwrap() error {
	return e.err
}

func (e exitCodeError) ExitCode() int {
	return e.code
}

// exitWithCode returns an error that will cause the program to exit with the specified code
func exitWithCode(code int, err error) error {
	return exitCodeError{code: code, err: err}
}
