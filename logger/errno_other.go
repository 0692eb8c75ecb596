//go:build !unix

package logger

import "syscall"

func errnoMessage(code int) string {
	if code == 0 {
		return "Success"
	}
	return syscall.Errno(code).Error()
}
