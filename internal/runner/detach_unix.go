//go:build darwin || linux

package runner

import (
	"os/exec"
	"syscall"
)

// detach starts cmd in a new session so it is not tied to the editor's
// terminal or process group.
func detach(cmd *exec.Cmd) {
	if cmd.SysProcAttr == nil {
		cmd.SysProcAttr = &syscall.SysProcAttr{}
	}
	cmd.SysProcAttr.Setsid = true
}
