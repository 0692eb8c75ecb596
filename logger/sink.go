package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
)

// fileMode is used when a sink file has to be created.
const fileMode = 0644

// sink is one output destination guarded by its own mutex.
// The target is either the stream the sink was built with or a file opened by redirect.
type sink struct {
	kind Kind

	mu     sync.Mutex
	stream io.Writer
	file   *os.File
	path   string

	// failures counts best-effort I/O that went wrong; shared with the owning Logger.
	failures *atomic.Uint64
}

func newSink(kind Kind, stream io.Writer, failures *atomic.Uint64) *sink {
	return &sink{kind: kind, stream: stream, failures: failures}
}

// target returns the current destination. Callers must hold s.mu.
func (s *sink) target() io.Writer {
	if s.file != nil {
		return s.file
	}
	return s.stream
}

// writeLine writes text followed by a newline as a single Write call so that
// file sinks receive the whole line at once.
func (s *sink) writeLine(text string) (err error) {
	buf := make([]byte, 0, len(text)+1)
	buf = append(buf, text...)
	buf = append(buf, '\n')

	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.recoverWrite(&err)

	if err = writeAll(s.target(), buf); err != nil {
		s.failures.Add(1)
	}
	return err
}

// hold runs fn with the sink's lock held and its current target. A panic in fn
// is counted as a failure and returned as an error.
func (s *sink) hold(fn func(w io.Writer) error) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.recoverWrite(&err)

	return fn(s.target())
}

// recoverWrite turns a panic from a writer into an error. It must be deferred.
func (s *sink) recoverWrite(err *error) {
	if r := recover(); r != nil {
		s.failures.Add(1)
		*err = fmt.Errorf("%s sink: write panicked: %v", s.kind, r)
	}
}

// redirect opens path for append and makes it the sink's target.
// The file is opened before the lock is taken; a writer holding the lock
// finishes on the old target and the old file is closed once the swap is done.
func (s *sink) redirect(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, fileMode)
	if err != nil {
		return &FileOpenError{Kind: s.kind, Path: path, Err: err}
	}

	s.mu.Lock()
	old := s.file
	s.file = f
	s.path = path
	s.mu.Unlock()

	if old != nil {
		if err := old.Close(); err != nil {
			s.failures.Add(1)
		}
	}
	return nil
}

// reset closes any owned file and reverts to the stream.
func (s *sink) reset() error {
	s.mu.Lock()
	f := s.file
	s.file = nil
	s.path = ""
	s.mu.Unlock()

	if f == nil {
		return nil
	}
	return f.Close()
}

func (s *sink) filePath() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.path
}

// writeAll keeps writing until buf is consumed, an error occurs, or the writer
// stops making progress.
func writeAll(w io.Writer, buf []byte) error {
	for len(buf) > 0 {
		n, err := w.Write(buf)
		if err != nil {
			return err
		}
		if n <= 0 {
			return io.ErrShortWrite
		}
		if n > len(buf) {
			n = len(buf)
		}
		buf = buf[n:]
	}
	return nil
}
