//go:build windows

package main

import (
	"os"
	"os/exec"
	"time"
)

func setProcAttr(cmd *exec.Cmd) {}

// terminate kills the child outright: Windows has no SIGTERM to ask
// nicely with, so the grace period is unused.
func terminate(p *os.Process, _ time.Duration) error {
	if err := p.Kill(); err != nil {
		return err
	}
	_, err := p.Wait()
	return err
}
