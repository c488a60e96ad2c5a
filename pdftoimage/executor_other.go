//go:build !windows

package pdftoimage

import "os/exec"

// hideConsoleWindow is a no-op where child processes have no window to hide.
func hideConsoleWindow(_ *exec.Cmd) {}
