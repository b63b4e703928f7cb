package serror

import "fmt"

// SimError is an error raised by the simulation core or its support packages.
type SimError struct {
	Err string
}

// New creates a SimError from the given format and arguments.
func New(format string, args ...interface{}) *SimError {
	return &SimError{Err: fmt.Sprintf(format, args...)}
}

func (e *SimError) Error() string {
	return e.Err
}
