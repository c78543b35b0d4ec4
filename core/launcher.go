package core

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
)

// ProcessLauncher runs a Command to completion.
type ProcessLauncher interface {
	Launch(cmd Command) ExecutionResult
}

// Launcher starts commands as child processes of the shell and waits for
// them one at a time.
type Launcher struct {
	// Stdin is handed to the child only if it is an *os.File, any other
	// reader can't be shared without the child draining it, so the child
	// reads from the null device instead.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Getenv resolves PATH for program lookups, os.Getenv if nil.
	Getenv func(string) string

	Log *zap.Logger
}

var _ ProcessLauncher = (*Launcher)(nil)

// NewLauncher creates a launcher whose children inherit the given streams.
func NewLauncher(stdin io.Reader, stdout, stderr io.Writer, log *zap.Logger) *Launcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Launcher{
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
		Getenv: os.Getenv,
		Log:    log,
	}
}

func (l *Launcher) getenv(key string) string {
	if l.Getenv == nil {
		return os.Getenv(key)
	}
	return l.Getenv(key)
}

func (l *Launcher) log() *zap.Logger {
	if l.Log == nil {
		return zap.NewNop()
	}
	return l.Log
}

// Launch runs cmd and blocks until it terminates. Failures to start the
// program are reported in the result, never by crashing the caller.
func (l *Launcher) Launch(cmd Command) ExecutionResult {
	if cmd.IsNoOp() {
		return noOpResult()
	}

	name := cmd.Argv[0]
	path, err := LookPath(l.getenv, name)
	if err != nil {
		result := lookupFailure(name, err)
		l.reportFailure(result)
		return result
	}

	child := &exec.Cmd{
		Path:   path,
		Args:   cmd.Argv,
		Stdout: l.Stdout,
		Stderr: l.Stderr,
	}
	if stdin, ok := l.Stdin.(*os.File); ok {
		child.Stdin = stdin
	}

	// Terminal interrupts go to the whole foreground process group. Catch
	// them while the child runs so only the child dies, then restore the
	// default handlers. Caught signals revert to the default in the child.
	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, interruptSignals...)
	defer signal.Stop(interrupts)

	l.log().Debug("starting process", zap.String("path", path), zap.Strings("argv", cmd.Argv))
	if err := child.Start(); err != nil {
		result := launchFailedResult(StatusNotExecutable, fmt.Errorf("%s: %w", name, err))
		l.reportFailure(result)
		return result
	}

	waitErr := child.Wait()
	result := decodeProcessState(child.ProcessState, waitErr)
	l.log().Debug("process finished", zap.String("path", path), zap.Stringer("result", result))
	return result
}

// reportFailure tells the user why nothing ran, the way the child would
// have if it got far enough to complain.
func (l *Launcher) reportFailure(result ExecutionResult) {
	if l.Stderr != nil {
		fmt.Fprintf(l.Stderr, "%v\n", result.Err)
	}
	l.log().Debug("launch failed", zap.Int("status", result.Code), zap.Error(result.Err))
}

func lookupFailure(name string, err error) ExecutionResult {
	switch {
	case errors.Is(err, ErrNotFound):
		return launchFailedResult(StatusNotFound, fmt.Errorf("%s: command not found", name))
	case errors.Is(err, os.ErrPermission):
		return launchFailedResult(StatusNotExecutable, fmt.Errorf("%s: permission denied", name))
	default:
		return launchFailedResult(StatusNotExecutable, fmt.Errorf("%s: %w", name, err))
	}
}

func decodeProcessState(state *os.ProcessState, waitErr error) ExecutionResult {
	if state == nil {
		return launchFailedResult(StatusNotExecutable, waitErr)
	}

	if status, ok := state.Sys().(syscall.WaitStatus); ok && status.Signaled() {
		return signaledResult(status.Signal())
	}

	return exitedResult(state.ExitCode())
}
