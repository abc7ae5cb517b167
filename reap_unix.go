//go:build unix

package waittimeout

import (
	"os"

	"golang.org/x/sys/unix"
)

// tryReap asks the kernel whether pid has exited, without blocking. If
// it has, the child is reaped and its status returned; a reaped child is
// gone from the process table, so a successful tryReap is single-use per
// child. (nil, nil) means the child is still running. ECHILD means pid
// is not an unreaped child of this process, which covers both "no such
// child" and "someone else already reaped it"; the kernel cannot tell
// the two apart, so neither can we.
func tryReap(pid int) (*ExitStatus, error) {
	var ws unix.WaitStatus
	for {
		wpid, err := unix.Wait4(pid, &ws, unix.WNOHANG, nil)
		switch {
		case err == unix.EINTR:
			// interrupted: retry
		case err != nil:
			return nil, os.NewSyscallError("wait4", err)
		case wpid == 0:
			return nil, nil // still running
		default:
			return &ExitStatus{ws: ws}, nil
		}
	}
}
