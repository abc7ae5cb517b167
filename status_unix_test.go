//go:build unix

package waittimeout

import (
	"syscall"
	"testing"

	"golang.org/x/sys/unix"
)

func TestExitStatusDecode(t *testing.T) {
	tests := []struct {
		name     string
		raw      uint32
		success  bool
		exited   bool
		code     int
		signaled bool
		signal   syscall.Signal
	}{
		{"exit 0", 0x0000, true, true, 0, false, -1},
		{"exit 1", 0x0100, false, true, 1, false, -1},
		{"exit 42", 0x2a00, false, true, 42, false, -1},
		{"exit 255", 0xff00, false, true, 255, false, -1},
		{"SIGHUP", 0x0001, false, false, -1, true, syscall.SIGHUP},
		{"SIGKILL", 0x0009, false, false, -1, true, syscall.SIGKILL},
		{"SIGTERM", 0x000f, false, false, -1, true, syscall.SIGTERM},
		{"SIGSEGV with core dump", 0x008b, false, false, -1, true, syscall.SIGSEGV},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status := ExitStatus{ws: unix.WaitStatus(tt.raw)}
			if got := status.Success(); got != tt.success {
				t.Errorf("Success() = %v, want %v", got, tt.success)
			}
			if got := status.Exited(); got != tt.exited {
				t.Errorf("Exited() = %v, want %v", got, tt.exited)
			}
			if got := status.ExitCode(); got != tt.code {
				t.Errorf("ExitCode() = %d, want %d", got, tt.code)
			}
			if got := status.Signaled(); got != tt.signaled {
				t.Errorf("Signaled() = %v, want %v", got, tt.signaled)
			}
			if got := status.Signal(); got != tt.signal {
				t.Errorf("Signal() = %v, want %v", got, tt.signal)
			}
			if status.Exited() == status.Signaled() {
				t.Errorf("Exited() and Signaled() both %v", status.Exited())
			}
			if got := status.Sys(); got != tt.raw {
				t.Errorf("Sys() = %#x, want %#x", got, tt.raw)
			}
		})
	}
}
