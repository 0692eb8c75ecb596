//go:build unix

package logger

import "golang.org/x/sys/unix"

// errnoMessage returns the platform description of code followed by its
// symbolic name when one is known, e.g. "no space left on device (ENOSPC)".
func errnoMessage(code int) string {
	if code == 0 {
		return "Success"
	}
	e := unix.Errno(code)
	if name := unix.ErrnoName(e); name != "" {
		return e.Error() + " (" + name + ")"
	}
	return e.Error()
}
