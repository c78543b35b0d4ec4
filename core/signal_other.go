//go:build !unix

package core

import (
	"os"
	"syscall"
)

var interruptSignals = []os.Signal{os.Interrupt}

func signalName(sig syscall.Signal) string {
	return sig.String()
}
