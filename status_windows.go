//go:build windows

package waittimeout

import (
	"fmt"
	"syscall"
)

// ExitStatus describes how a child process terminated. Windows has no
// terminating-signal concept: Exited is always true and Signal always
// reports -1.
type ExitStatus struct {
	code uint32
}

// Success reports whether the process exited with code 0.
func (s ExitStatus) Success() bool {
	return s.code == 0
}

// Exited reports whether the process exited normally. Always true on
// Windows.
func (s ExitStatus) Exited() bool {
	return true
}

// ExitCode returns the process's exit code.
func (s ExitStatus) ExitCode() int {
	return int(s.code)
}

// Signaled reports whether the process was terminated by a signal.
// Always false on Windows.
func (s ExitStatus) Signaled() bool {
	return false
}

// Signal returns -1: Windows processes are never signal-terminated.
func (s ExitStatus) Signal() syscall.Signal {
	return -1
}

// Sys returns the raw exit code as reported by GetExitCodeProcess.
func (s ExitStatus) Sys() uint32 {
	return s.code
}

func (s ExitStatus) String() string {
	return fmt.Sprintf("exit status %d", s.code)
}
