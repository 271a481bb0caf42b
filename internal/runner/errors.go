package runner

import "fmt"

// EphemeralWriteError reports that the temp source file could not be
// written. Nothing is launched when it occurs.
type EphemeralWriteError struct {
	Path string
	Err  error
}

func (e *EphemeralWriteError) Error() string {
	return fmt.Sprintf("could not write temp file %s: %v", e.Path, e.Err)
}

func (e *EphemeralWriteError) Unwrap() error { return e.Err }
