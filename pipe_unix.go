//go:build unix

package waittimeout

import (
	"os"

	"golang.org/x/sys/unix"
)

// pipe is a pair of connected file descriptors used purely as a wakeup
// mechanism: a byte written to w becomes readable on r. Both ends are
// non-blocking so a notify can never stall, no matter what the reader
// is doing.
type pipe struct {
	r, w int
}

// newPipe allocates a non-blocking, close-on-exec pipe. Darwin has no
// pipe2, so the flags are applied after the fact; the pipe is private to
// this package and nothing execs in between.
func newPipe() (pipe, error) {
	var fds [2]int
	if err := unix.Pipe(fds[:]); err != nil {
		return pipe{}, os.NewSyscallError("pipe", err)
	}
	for _, fd := range fds {
		unix.CloseOnExec(fd)
		if err := unix.SetNonblock(fd, true); err != nil {
			unix.Close(fds[0])
			unix.Close(fds[1])
			return pipe{}, os.NewSyscallError("setnonblock", err)
		}
	}
	return pipe{r: fds[0], w: fds[1]}, nil
}

// notify makes the read end wake up by writing a single byte. A full
// pipe counts as delivered: the bytes already buffered guarantee the
// reader has a wakeup pending, so the notification coalesces with them.
func (p pipe) notify() {
	buf := [1]byte{1}
	for {
		_, err := unix.Write(p.w, buf[:])
		if err != unix.EINTR {
			return
		}
	}
}

// drain empties the read end and reports whether anything had arrived
// since the last drain.
func (p pipe) drain() bool {
	var buf [16]byte
	got := false
	for {
		n, err := unix.Read(p.r, buf[:])
		switch {
		case n > 0:
			got = true
		case err == unix.EINTR:
			// interrupted: keep draining
		case n == 0 && err == nil:
			// EOF still means the other end did something
			return true
		default:
			return got
		}
	}
}

func (p pipe) close() {
	unix.Close(p.r)
	unix.Close(p.w)
}
