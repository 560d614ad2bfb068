package internal

import "github.com/pkg/errors"

// The search loops have no sensible place to return an error from, and the
// only errors they can hit are bad options, which are programmer errors.
// Instead, we panic with a SolverError, and the public API recovers to convert
// it to an error.

type SolverError struct {
	error
}

func (e SolverError) Unwrap() error {
	return e.error
}

// Panic with a SolverError.
func fatalf(format string, args ...interface{}) {
	panic(SolverError{errors.Errorf(format, args...)})
}

// Turn a recovered SolverError back into an error. Anything else was a real
// panic, and is raised again.
func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if solverError, ok := r.(SolverError); ok {
			return solverError.error
		}
		panic(r)
	}
	return nil
}
