package logger

import (
	"bufio"
	"io"
	"os"
	"sync"
	"sync/atomic"

	"go.uber.org/multierr"
)

// Logger routes informational and error output to two independently locked sinks.
// Use Shared to obtain the process-wide instance.
type Logger struct {
	level atomic.Int32

	info *sink
	errs *sink

	// in is guarded by info.mu; prompts and reads happen under the same lock.
	in *bufio.Reader

	writeFailures atomic.Uint64
}

var (
	sharedOnce sync.Once
	shared     *Logger
)

// Shared returns the process-wide Logger, creating it on first use with
// NormalLevel, informational output on stdout and error output on stderr.
func Shared() *Logger {
	sharedOnce.Do(func() {
		shared = newLogger(os.Stdout, os.Stderr, os.Stdin)
	})
	return shared
}

func newLogger(stdout, stderr io.Writer, stdin io.Reader) *Logger {
	l := &Logger{in: bufio.NewReader(stdin)}
	l.info = newSink(InfoKind, stdout, &l.writeFailures)
	l.errs = newSink(ErrorKind, stderr, &l.writeFailures)
	l.level.Store(int32(NormalLevel))
	return l
}

// Level returns the current level.
func (l *Logger) Level() Level {
	return Level(l.level.Load())
}

// SetLevel replaces the level. Writes issued after it returns observe the new level.
// Values outside Off..Verbose are clamped.
func (l *Logger) SetLevel(level Level) {
	l.level.Store(int32(level.clamp()))
}

// UseInfoFile redirects informational output to the file at path, creating it if
// needed and appending otherwise. On failure the previous target stays in use and
// a *FileOpenError is returned.
func (l *Logger) UseInfoFile(path string) error {
	return l.info.redirect(path)
}

// UseErrorFile redirects error output to the file at path, creating it if needed
// and appending otherwise. On failure the previous target stays in use and a
// *FileOpenError is returned.
func (l *Logger) UseErrorFile(path string) error {
	return l.errs.redirect(path)
}

// InfoFile returns the path informational output is redirected to, or "" when it
// goes to the standard stream.
func (l *Logger) InfoFile() string {
	return l.info.filePath()
}

// ErrorFile returns the path error output is redirected to, or "" when it goes to
// the standard stream.
func (l *Logger) ErrorFile() string {
	return l.errs.filePath()
}

// Close closes any sink files and reverts both sinks to their standard streams.
// The Logger remains usable afterwards.
func (l *Logger) Close() error {
	return multierr.Append(l.info.reset(), l.errs.reset())
}

// WriteFailures returns how many best-effort operations (line writes, prompts and
// closing a replaced sink file) have failed since the Logger was created. These
// failures are otherwise not reported.
func (l *Logger) WriteFailures() uint64 {
	return l.writeFailures.Load()
}

// Print writes text and a newline to the info sink when the level is Normal or Verbose.
// Thread-safe for concurrent use.
func (l *Logger) Print(text string) {
	if !l.Level().Enabled(NormalLevel) {
		return
	}
	l.write(l.info, text)
}

// Printv writes text and a newline to the info sink when the level is Verbose.
// Thread-safe for concurrent use.
func (l *Logger) Printv(text string) {
	if !l.Level().Enabled(VerboseLevel) {
		return
	}
	l.write(l.info, text)
}

// Error writes text and a newline to the error sink regardless of the level.
// Thread-safe for concurrent use.
func (l *Logger) Error(text string) {
	l.write(l.errs, text)
}

// ErrorWithErrno writes text, ": " and the system description of code to the
// error sink regardless of the level.
// Thread-safe for concurrent use.
func (l *Logger) ErrorWithErrno(text string, code int) {
	l.write(l.errs, text+": "+errnoMessage(code))
}

func (l *Logger) write(s *sink, text string) {
	// Failures are counted by the sink.
	_ = s.writeLine(text)
}

// --- Package-level forwarding to the shared Logger ---

// SetLevel sets the level of the shared Logger.
func SetLevel(level Level) { Shared().SetLevel(level) }

// CurrentLevel returns the level of the shared Logger.
func CurrentLevel() Level { return Shared().Level() }

// UseInfoFile redirects the shared Logger's informational output to path.
func UseInfoFile(path string) error { return Shared().UseInfoFile(path) }

// UseErrorFile redirects the shared Logger's error output to path.
func UseErrorFile(path string) error { return Shared().UseErrorFile(path) }

// Close closes the shared Logger's sink files.
func Close() error { return Shared().Close() }

// Print writes text to the shared Logger's info sink at Normal level or above.
func Print(text string) { Shared().Print(text) }

// Printv writes text to the shared Logger's info sink at Verbose level.
func Printv(text string) { Shared().Printv(text) }

// Error writes text to the shared Logger's error sink.
func Error(text string) { Shared().Error(text) }

// ErrorWithErrno writes text and the description of code to the shared Logger's error sink.
func ErrorWithErrno(text string, code int) { Shared().ErrorWithErrno(text, code) }

// GetLine prompts on the shared Logger and reads a line from its input.
func GetLine(prompt string) (string, error) { return Shared().GetLine(prompt) }

// GetChar prompts on the shared Logger and reads one character from its input.
func GetChar(prompt string) (rune, error) { return Shared().GetChar(prompt) }
