package pdftoimage

import (
	"os/exec"
	"syscall"
)

// hideConsoleWindow keeps a tool invocation from flashing a console window on
// desktop sessions.
func hideConsoleWindow(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{HideWindow: true}
}
