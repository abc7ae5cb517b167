//go:build unix

package waittimeout

import (
	"math"
	"os"
	"time"

	"golang.org/x/sys/unix"
)

// wait is the Unix implementation of Wait. There is no wait4 with a
// timeout, so nearly all of the blocking happens in poll(2) over two
// wakeup pipes: the process-wide one written on every SIGCHLD, and this
// call's own, poked once its child's status has been recorded. wait4
// itself is only ever called with WNOHANG.
func wait(pid int, timeout time.Duration) (*ExitStatus, error) {
	reg, err := globalRegistry()
	if err != nil {
		return nil, err
	}

	status, w, err := reg.subscribe(pid)
	if status != nil || err != nil {
		return status, err
	}
	defer w.pipe.close()

	// The subscribe probe came back empty while we were already in the
	// registry, so the SIGCHLD for this child cannot be missed. Block
	// until our own pipe is poked or the deadline passes. The loop also
	// absorbs EINTR and wakeups that turn out to be for other children,
	// recomputing the timeout from the absolute deadline each time
	// around.
	deadline := time.Now().Add(timeout)
	for {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			break
		}
		fds := []unix.PollFd{
			{Fd: int32(reg.wake.r), Events: unix.POLLIN},
			{Fd: int32(w.pipe.r), Events: unix.POLLIN},
		}
		n, err := unix.Poll(fds, pollTimeout(remaining))
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			reg.unsubscribe(pid, w)
			return nil, os.NewSyscallError("poll", err)
		}

		if reg.wake.drain() {
			reg.resolvePending()
		}
		if w.pipe.drain() || n == 0 {
			break
		}
	}

	// Even on the timeout path the child may have been resolved between
	// the last poll and now; unsubscribe returns the authoritative
	// answer either way.
	return reg.unsubscribe(pid, w), nil
}

// pollTimeout converts the time left until the deadline into poll's
// millisecond argument, rounding a sub-millisecond remainder up so the
// final iteration does not busy-spin.
func pollTimeout(remaining time.Duration) int {
	ms := remaining.Milliseconds()
	if ms == 0 {
		ms = 1
	}
	if ms > math.MaxInt32 {
		ms = math.MaxInt32
	}
	return int(ms)
}
