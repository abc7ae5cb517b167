//go:build windows

package waittimeout

import (
	"os"
	"time"

	"golang.org/x/sys/windows"
)

// wait is the Windows implementation of Wait. The platform can block on
// a process handle with a timeout directly, so there is no signal
// machinery here: one WaitForSingleObject, then an exit-code query.
func wait(pid int, timeout time.Duration) (*ExitStatus, error) {
	h, err := windows.OpenProcess(windows.SYNCHRONIZE|windows.PROCESS_QUERY_LIMITED_INFORMATION, false, uint32(pid))
	if err != nil {
		return nil, os.NewSyscallError("OpenProcess", err)
	}
	defer windows.CloseHandle(h)

	ev, err := windows.WaitForSingleObject(h, waitMillis(timeout))
	switch ev {
	case windows.WAIT_OBJECT_0:
		// exited
	case windows.WAIT_TIMEOUT:
		return nil, nil
	default:
		return nil, os.NewSyscallError("WaitForSingleObject", err)
	}

	var code uint32
	if err := windows.GetExitCodeProcess(h, &code); err != nil {
		return nil, os.NewSyscallError("GetExitCodeProcess", err)
	}
	return &ExitStatus{code: code}, nil
}

// waitMillis clamps a duration into WaitForSingleObject's millisecond
// argument, staying below INFINITE (0xFFFFFFFF): this call always has a
// deadline.
func waitMillis(timeout time.Duration) uint32 {
	ms := timeout.Milliseconds()
	if ms < 0 {
		return 0
	}
	if ms >= int64(windows.INFINITE) {
		return uint32(windows.INFINITE) - 1
	}
	return uint32(ms)
}
