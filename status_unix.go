//go:build unix

package waittimeout

import (
	"fmt"
	"syscall"

	"golang.org/x/sys/unix"
)

// ExitStatus describes how a child process terminated, decoded from the
// raw status reported by wait4(2). Exactly one of Exited and Signaled is
// true.
type ExitStatus struct {
	ws unix.WaitStatus
}

// Success reports whether the process exited normally with status code 0.
func (s ExitStatus) Success() bool {
	return s.ws.Exited() && s.ws.ExitStatus() == 0
}

// Exited reports whether the process exited normally, as opposed to
// being terminated by a signal.
func (s ExitStatus) Exited() bool {
	return s.ws.Exited()
}

// ExitCode returns the process's exit code, or -1 if it was terminated
// by a signal.
func (s ExitStatus) ExitCode() int {
	if !s.ws.Exited() {
		return -1
	}
	return s.ws.ExitStatus()
}

// Signaled reports whether the process was terminated by a signal.
func (s ExitStatus) Signaled() bool {
	return s.ws.Signaled()
}

// Signal returns the signal that terminated the process, or -1 if it
// exited normally.
func (s ExitStatus) Signal() syscall.Signal {
	if !s.ws.Signaled() {
		return -1
	}
	return s.ws.Signal()
}

// Sys returns the raw wait status.
func (s ExitStatus) Sys() uint32 {
	return uint32(s.ws)
}

func (s ExitStatus) String() string {
	if s.ws.Signaled() {
		return fmt.Sprintf("signal: %s", unix.SignalName(s.ws.Signal()))
	}
	return fmt.Sprintf("exit status %d", s.ws.ExitStatus())
}
