package dmx

import "fmt"

// Pipe operation names recorded in IOError.Op.
const (
	OpWrite = "write"
	OpRead  = "read"
)

// LaunchError reports that the picker executable could not be started.
type LaunchError struct {
	Path string
	Err  error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("unable to launch %s: %v", e.Path, e.Err)
}

func (e *LaunchError) Unwrap() error { return e.Err }

// IOError reports a pipe failure mid-transfer. Op is OpWrite when
// feeding lines to the picker failed and OpRead when capturing its
// output failed.
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string {
	if e.Op == OpRead {
		return fmt.Sprintf("error reading picker output: %v", e.Err)
	}
	return fmt.Sprintf("error writing to picker subprocess: %v", e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// WaitError reports that the picker subprocess could not be waited on.
// The picker's own exit status is never a WaitError; it carries no
// signal in the selection protocol.
type WaitError struct {
	Err error
}

func (e *WaitError) Error() string {
	return fmt.Sprintf("error waiting on picker subprocess: %v", e.Err)
}

func (e *WaitError) Unwrap() error { return e.Err }

// ParseError reports an unreadable or malformed configuration source.
// Path is empty when the source was an in-memory byte slice.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("error reading config: %v", e.Err)
	}
	return fmt.Sprintf("error reading config %q: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
