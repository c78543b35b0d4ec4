package core

import (
	"fmt"
	"syscall"

	"github.com/josephlewis42/minsh/core/logger"
)

// ResultKind discriminates the ways a launch attempt can end.
type ResultKind int

const (
	// NoOp means there was nothing to run.
	NoOp ResultKind = iota
	// NormalExit means the program exited on its own with a status code.
	NormalExit
	// SignalTerminated means the program was killed by a signal.
	SignalTerminated
	// LaunchFailed means the program could not be started.
	LaunchFailed
)

func (k ResultKind) String() string {
	switch k {
	case NoOp:
		return "noop"
	case NormalExit:
		return logger.OutcomeExit
	case SignalTerminated:
		return logger.OutcomeSignal
	case LaunchFailed:
		return logger.OutcomeLaunchFailed
	default:
		return fmt.Sprintf("ResultKind(%d)", int(k))
	}
}

// Reserved statuses for programs that could not be started, following the
// POSIX shell convention.
const (
	StatusNotExecutable = 126
	StatusNotFound      = 127
)

// ExecutionResult is the decoded outcome of one launch attempt.
type ExecutionResult struct {
	Kind ResultKind

	// Code is the exit code for NormalExit and the reserved status for
	// LaunchFailed.
	Code int
	// Signal is set for SignalTerminated.
	Signal syscall.Signal
	// Err holds the reason for LaunchFailed.
	Err error
}

func noOpResult() ExecutionResult {
	return ExecutionResult{Kind: NoOp}
}

func exitedResult(code int) ExecutionResult {
	return ExecutionResult{Kind: NormalExit, Code: code}
}

func signaledResult(sig syscall.Signal) ExecutionResult {
	return ExecutionResult{Kind: SignalTerminated, Signal: sig}
}

func launchFailedResult(status int, err error) ExecutionResult {
	return ExecutionResult{Kind: LaunchFailed, Code: status, Err: err}
}

// Success is true only for a zero exit.
func (r ExecutionResult) Success() bool {
	return r.Kind == NormalExit && r.Code == 0
}

// ExitStatus maps the result onto a shell style status: the exit code,
// 128+n for signal n, 126/127 for launch failures and 0 for a no-op.
func (r ExecutionResult) ExitStatus() int {
	switch r.Kind {
	case NormalExit, LaunchFailed:
		return r.Code
	case SignalTerminated:
		return 128 + int(r.Signal)
	default:
		return 0
	}
}

// SignalName is the name of the terminating signal, e.g. SIGKILL, or "" if
// the program wasn't killed by a signal.
func (r ExecutionResult) SignalName() string {
	if r.Kind != SignalTerminated {
		return ""
	}
	return signalName(r.Signal)
}

func (r ExecutionResult) String() string {
	switch r.Kind {
	case NormalExit:
		return fmt.Sprintf("exit status %d", r.Code)
	case SignalTerminated:
		return fmt.Sprintf("terminated by %s", r.SignalName())
	case LaunchFailed:
		return fmt.Sprintf("launch failed (status %d): %v", r.Code, r.Err)
	default:
		return r.Kind.String()
	}
}
