package logger

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// UseInput replaces the reader GetLine and GetChar consume. Input already
// buffered from the previous reader is discarded.
func (l *Logger) UseInput(r io.Reader) {
	_ = l.info.hold(func(io.Writer) error {
		l.in = bufio.NewReader(r)
		return nil
	})
}

// GetLine writes prompt to the info sink and blocks until a full line is read
// from the input. The line terminator is stripped. Informational output from other
// goroutines waits until GetLine returns; error output does not.
//
// A final line without a terminator is returned as is. Once the input is exhausted
// ErrInputClosed is returned.
func (l *Logger) GetLine(prompt string) (string, error) {
	var line string
	err := l.info.hold(func(w io.Writer) error {
		l.showPrompt(w, prompt)

		s, err := l.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		if err != nil && s == "" {
			return ErrInputClosed
		}
		line = strings.TrimSuffix(strings.TrimSuffix(s, "\n"), "\r")
		return nil
	})
	return line, err
}

// GetChar writes prompt to the info sink and blocks until one character is read
// from the input. Anything after that character, including the line terminator,
// is left for the next read. Once the input is exhausted ErrInputClosed is returned.
func (l *Logger) GetChar(prompt string) (rune, error) {
	var c rune
	err := l.info.hold(func(w io.Writer) error {
		l.showPrompt(w, prompt)

		r, _, err := l.in.ReadRune()
		if errors.Is(err, io.EOF) {
			return ErrInputClosed
		}
		if err != nil {
			return err
		}
		c = r
		return nil
	})
	return c, err
}

// showPrompt writes the prompt without a terminator. Prompts are not level gated.
func (l *Logger) showPrompt(w io.Writer, prompt string) {
	if prompt == "" {
		return
	}
	if err := writeAll(w, []byte(prompt)); err != nil {
		l.writeFailures.Add(1)
	}
}
