package core

import (
	"io"

	"github.com/josephlewis42/minsh/core/config"
	"github.com/josephlewis42/minsh/core/logger"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// ActivityLog appends command outcomes to the activity log, filtered by
// verbosity. A disabled ActivityLog silently drops everything.
type ActivityLog struct {
	verbosity config.Verbosity
	session   *logger.SessionLogger
	sink      io.Writer
	closed    bool
	log       *zap.Logger
}

// NewActivityLog records to sink at the given verbosity. If sink is also an
// io.Closer it is closed by Close.
func NewActivityLog(verbosity config.Verbosity, sink io.Writer, log *zap.Logger) *ActivityLog {
	if log == nil {
		log = zap.NewNop()
	}
	return &ActivityLog{
		verbosity: verbosity,
		session:   logger.NewJsonLinesLogRecorder(sink).NewSession(),
		sink:      sink,
		log:       log,
	}
}

// DisabledActivityLog returns a log that records nothing.
func DisabledActivityLog() *ActivityLog {
	return &ActivityLog{log: zap.NewNop()}
}

// OpenActivityLog opens the configured log file on fs for appending.
func OpenActivityLog(cfg *config.Configuration, fs afero.Fs, log *zap.Logger) (*ActivityLog, error) {
	fd, err := cfg.OpenActivityLog(fs)
	if err != nil {
		return nil, err
	}
	return NewActivityLog(cfg.Verbosity, fd, log), nil
}

// Enabled reports whether records will be written.
func (a *ActivityLog) Enabled() bool {
	return a.session != nil && !a.closed
}

// SessionID identifies this shell's entries in the log, "" when disabled.
func (a *ActivityLog) SessionID() string {
	if a.session == nil {
		return ""
	}
	return a.session.SessionID()
}

// Record logs a finished command. No-ops are never logged and Low verbosity
// drops commands that exited with status 0.
func (a *ActivityLog) Record(cmd Command, result ExecutionResult) {
	if !a.Enabled() || result.Kind == NoOp {
		return
	}
	if a.verbosity == config.Low && result.Success() {
		return
	}

	event := &logger.CommandEvent{
		Line:       cmd.Line,
		Argv:       cmd.Argv,
		Outcome:    result.Kind.String(),
		ExitStatus: result.ExitStatus(),
		Signal:     result.SignalName(),
	}
	if result.Err != nil {
		event.Error = result.Err.Error()
	}

	if err := a.session.RecordCommand(event); err != nil {
		a.log.Debug("dropped activity log entry", zap.String("line", cmd.Line), zap.Error(err))
	}
}

// RecordConfig echoes the startup configuration at High verbosity.
func (a *ActivityLog) RecordConfig(cfg *config.Configuration) {
	if !a.Enabled() || a.verbosity < config.High {
		return
	}

	err := a.session.RecordConfig(&logger.ConfigEvent{
		Prompt:   cfg.Prompt,
		LogLevel: cfg.Verbosity.String(),
		LogFile:  cfg.LogPath,
	})
	if err != nil {
		a.log.Debug("dropped activity log entry", zap.Error(err))
	}
}

// Close closes the underlying file. Calling it more than once is safe.
func (a *ActivityLog) Close() error {
	if a.session == nil || a.closed {
		return nil
	}
	a.closed = true

	if closer, ok := a.sink.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
