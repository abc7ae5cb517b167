//go:build unix

package waittimeout_test

import (
	"fmt"
	"os/exec"
	"time"

	waittimeout "github.com/alexcrichton/wait-timeout"
)

func ExampleWaitCmd() {
	cmd := exec.Command("sleep", "100")
	if err := cmd.Start(); err != nil {
		fmt.Println("start:", err)
		return
	}

	status, err := waittimeout.WaitCmd(cmd, 100*time.Millisecond)
	if err != nil {
		fmt.Println("wait:", err)
		return
	}
	if status == nil {
		// Still running: the child is unreaped, so kill it and reap it
		// the ordinary way.
		cmd.Process.Kill()
		cmd.Wait()
		fmt.Println("timed out")
		return
	}
	fmt.Println("exit code:", status.ExitCode())
	// Output: timed out
}
