// Package waittimeout waits on a child process with a timeout.
//
// On Windows this is a single native call, since the platform can block
// on a process handle with a timeout directly. On Unix there is no such
// primitive, so the package listens for SIGCHLD and uses the self-pipe
// trick to wake whichever callers are blocked, re-checking their
// children with a non-blocking wait4. The Unix path installs a
// process-wide SIGCHLD subscription on first use and keeps it for the
// life of the process; if the rest of your program also handles SIGCHLD
// and reaps children on its own, notification behavior is undefined.
//
// Waiting must be called with some care. A child that has already been
// waited on through any other path (cmd.Wait, os.Process.Wait, a direct
// wait4) may cause a wait here to report a status for an unrelated
// process or fail spuriously; the kernel cannot tell a recycled pid from
// a stale one. Likewise, once a call here returns a non-nil ExitStatus
// the child has been reaped, and a subsequent cmd.Wait or p.Wait is
// unreliable. A nil, nil return (timeout) leaves the child untouched: it
// is safe to wait on it again, here or through os/exec, exactly once.
//
// At most one concurrent wait per child is supported. Two goroutines
// waiting on the same pid at the same time race on shared bookkeeping
// and it is undefined which of them observes the exit.
package waittimeout

import (
	"errors"
	"os"
	"os/exec"
	"time"
)

// Wait blocks until the child process pid exits or timeout elapses,
// whichever comes first. It returns the child's exit status, or nil if
// the timeout elapsed with the child still running. A timeout is not an
// error: the child is left unreaped and may be waited on again.
//
// pid must identify a direct child of the calling process that has not
// been reaped. A zero (or already-expired) timeout still checks whether
// the child has exited before reporting a timeout.
func Wait(pid int, timeout time.Duration) (*ExitStatus, error) {
	return wait(pid, timeout)
}

// WaitCmd waits on a started exec.Cmd, as Wait does. If it returns a
// non-nil status the process has been reaped here and cmd.Wait must not
// be relied on afterwards; call cmd.Wait only to release os/exec's
// bookkeeping, ignoring its error.
func WaitCmd(cmd *exec.Cmd, timeout time.Duration) (*ExitStatus, error) {
	if cmd.Process == nil {
		return nil, errors.New("waittimeout: command not started")
	}
	return wait(cmd.Process.Pid, timeout)
}

// WaitProcess waits on an os.Process, as Wait does. The same caveat as
// WaitCmd applies to a later p.Wait.
func WaitProcess(p *os.Process, timeout time.Duration) (*ExitStatus, error) {
	return wait(p.Pid, timeout)
}
