//go:build unix

package main

import (
	"os/exec"
	"syscall"
	"testing"
	"time"

	waittimeout "github.com/alexcrichton/wait-timeout"
)

func waitStatus(t *testing.T, cmd *exec.Cmd) *waittimeout.ExitStatus {
	t.Helper()
	status, err := waittimeout.WaitCmd(cmd, 10*time.Second)
	if err != nil {
		t.Fatalf("WaitCmd: %v", err)
	}
	if status == nil {
		t.Fatal("WaitCmd timed out")
	}
	return status
}

func TestExitCode(t *testing.T) {
	t.Run("exited", func(t *testing.T) {
		cmd := exec.Command("sh", "-c", "exit 3")
		if err := cmd.Start(); err != nil {
			t.Fatalf("start: %v", err)
		}
		if got := exitCode(waitStatus(t, cmd)); got != 3 {
			t.Errorf("exitCode = %d, want 3", got)
		}
	})

	t.Run("signaled", func(t *testing.T) {
		cmd := exec.Command("sleep", "1000")
		if err := cmd.Start(); err != nil {
			t.Fatalf("start: %v", err)
		}
		if err := cmd.Process.Signal(syscall.SIGTERM); err != nil {
			t.Fatalf("signal: %v", err)
		}
		// 128+15, the shell convention for SIGTERM.
		if got := exitCode(waitStatus(t, cmd)); got != 143 {
			t.Errorf("exitCode = %d, want 143", got)
		}
	})
}

func TestTerminate(t *testing.T) {
	cmd := exec.Command("sleep", "1000")
	setProcAttr(cmd)
	if err := cmd.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}

	start := time.Now()
	if err := terminate(cmd.Process, 5*time.Second); err != nil {
		t.Fatalf("terminate: %v", err)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("terminate of a SIGTERM-able child took %v", elapsed)
	}

	// The child is gone and reaped: probing its group fails.
	if err := syscall.Kill(-cmd.Process.Pid, 0); err == nil {
		t.Error("process group still exists after terminate")
	}
}
