// Command waitfor runs a command with a bound on how long it may run,
// in the spirit of timeout(1). The command is started in its own process
// group; if it is still running when the timeout expires, the whole
// group is asked to terminate and waitfor exits 124. Otherwise waitfor
// exits with the command's own exit code (128+signal if it was killed by
// a signal).
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"time"

	waittimeout "github.com/alexcrichton/wait-timeout"
	"github.com/fatih/color"
)

const (
	exitTimedOut = 124
	exitUsage    = 125
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v: %v\n", os.Args[0], err)
		if code == 0 {
			code = 1
		}
	}
	os.Exit(code)
}

func run() (int, error) {
	timeout := flag.Duration("timeout", time.Minute, "how long the command may run")
	killAfter := flag.Duration("kill-after", 10*time.Second, "grace period between asking the command to exit and forcing it")
	verbose := flag.Bool("verbose", false, "enable verbose output")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] command [args...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		return exitUsage, errors.New("no command given")
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cmd := exec.Command(args[0], args[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	setProcAttr(cmd)

	start := time.Now()
	if err := cmd.Start(); err != nil {
		return exitUsage, err
	}
	slog.Debug("command started", "pid", cmd.Process.Pid, "timeout", *timeout)

	status, err := waittimeout.WaitCmd(cmd, *timeout)
	if err != nil {
		return 0, err
	}
	if status == nil {
		color.New(color.FgYellow).Fprintf(os.Stderr, "%s: %q timed out after %s\n", os.Args[0], args[0], *timeout)
		if err := terminate(cmd.Process, *killAfter); err != nil {
			slog.Warn("terminate failed", "pid", cmd.Process.Pid, "error", err)
		}
		return exitTimedOut, nil
	}

	slog.Debug("command exited", "pid", cmd.Process.Pid, "status", status, "elapsed", time.Since(start))
	return exitCode(status), nil
}

// exitCode maps the child's exit status onto our own, following the
// shell convention for signaled children.
func exitCode(status *waittimeout.ExitStatus) int {
	if status.Signaled() {
		return 128 + int(status.Signal())
	}
	return status.ExitCode()
}
