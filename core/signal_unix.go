//go:build unix

package core

import (
	"fmt"
	"os"
	"syscall"

	"golang.org/x/sys/unix"
)

// interruptSignals are the keyboard signals the shell survives while a
// child is in the foreground.
var interruptSignals = []os.Signal{syscall.SIGINT, syscall.SIGQUIT}

func signalName(sig syscall.Signal) string {
	if name := unix.SignalName(sig); name != "" {
		return name
	}
	return fmt.Sprintf("signal %d", int(sig))
}
