package runner

import (
	"os/exec"

	"github.com/Parikshit8902/Mint-Pad/internal/logger"
)

// Launcher starts a command line and returns without waiting for it.
type Launcher interface {
	Launch(commandLine string)
}

// ShellLauncher runs command lines through a shell in their own session so
// they outlive the editor.
type ShellLauncher struct {
	// Shell defaults to /bin/sh.
	Shell string
}

// Launch implements Launcher. Start failures are logged; there is no result
// channel back to the caller.
func (l ShellLauncher) Launch(commandLine string) {
	shell := l.Shell
	if shell == "" {
		shell = "/bin/sh"
	}

	cmd := exec.Command(shell, "-c", commandLine)
	detach(cmd)
	if err := cmd.Start(); err != nil {
		logger.Warnf("launch %q: %v", commandLine, err)
		return
	}
	logger.Debugf("launched pid=%d", cmd.Process.Pid)

	// Reap the shell so it does not linger as a zombie.
	go func() { _ = cmd.Wait() }()
}
