package cmd

import "fmt"

// ExitError carries a non-zero process exit status out of a command.
// It is not a failure of the tool itself; main exits with Code silently.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}
