//go:build unix

package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"syscall"
	"time"

	waittimeout "github.com/alexcrichton/wait-timeout"
)

// setProcAttr puts the child in its own process group so a later
// terminate can reach everything it spawned, not just the direct child.
func setProcAttr(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}

// terminate sends SIGTERM to the child's process group, waits up to
// grace for the child to exit, and escalates to SIGKILL if it doesn't.
// The child is reaped either way.
func terminate(p *os.Process, grace time.Duration) error {
	// The group may already be gone; ESRCH is fine.
	if err := syscall.Kill(-p.Pid, syscall.SIGTERM); err != nil && err != syscall.ESRCH {
		return fmt.Errorf("kill process group %d: %w", p.Pid, err)
	}

	status, err := waittimeout.WaitProcess(p, grace)
	if err != nil {
		return err
	}
	if status != nil {
		slog.Debug("command exited after SIGTERM", "pid", p.Pid, "status", status)
		return nil
	}

	slog.Debug("escalating to SIGKILL", "pid", p.Pid, "grace", grace)
	if err := syscall.Kill(-p.Pid, syscall.SIGKILL); err != nil && err != syscall.ESRCH {
		return fmt.Errorf("kill process group %d: %w", p.Pid, err)
	}
	// SIGKILL cannot be ignored; a blocking reap terminates promptly.
	_, err = p.Wait()
	return err
}
