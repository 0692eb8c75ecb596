package logger

import (
	"errors"
	"fmt"
)

// Configuration errors.
var (
	// ErrFileOpen indicates a sink file could not be opened or created.
	ErrFileOpen = errors.New("cannot open log file")

	// ErrUnknownLevel indicates a level name could not be parsed.
	ErrUnknownLevel = errors.New("unknown log level")
)

// Input errors.
var (
	// ErrInputClosed is returned by GetLine and GetChar once the input stream is exhausted.
	ErrInputClosed = errors.New("input closed")
)

// Kind identifies one of the two output sinks.
type Kind uint8

const (
	// InfoKind is the sink used by Print, Printv and the input prompts.
	InfoKind Kind = iota
	// ErrorKind is the sink used by Error and ErrorWithErrno.
	ErrorKind
)

func (k Kind) String() string {
	if k == ErrorKind {
		return "error"
	}
	return "info"
}

// FileOpenError is returned by UseInfoFile and UseErrorFile when the file cannot be opened.
// It matches ErrFileOpen with errors.Is and unwraps to the underlying os error.
type FileOpenError struct {
	Kind Kind
	Path string
	Err  error
}

func (e *FileOpenError) Error() string {
	return fmt.Sprintf("%s sink: %v %s: %v", e.Kind, ErrFileOpen, e.Path, e.Err)
}

func (e *FileOpenError) Unwrap() error {
	return e.Err
}

// Is reports ErrFileOpen as a match so callers need not know the concrete type.
func (e *FileOpenError) Is(target error) bool {
	return target == ErrFileOpen
}
