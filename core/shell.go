package core

import (
	"fmt"
	"io"
	"strings"

	"github.com/josephlewis42/minsh/core/config"
	"go.uber.org/zap"
)

// Shell reads commands, runs them and logs what happened.
type Shell struct {
	Config   *config.Configuration
	Input    *LineReader
	Out      io.Writer
	Launcher ProcessLauncher
	Activity *ActivityLog
	Log      *zap.Logger
}

// NewShell wires a shell to the process's standard streams. Children
// inherit stdin, stdout and stderr.
func NewShell(cfg *config.Configuration, stdin io.Reader, stdout, stderr io.Writer, activity *ActivityLog, log *zap.Logger) *Shell {
	if log == nil {
		log = zap.NewNop()
	}
	if activity == nil {
		activity = DisabledActivityLog()
	}

	return &Shell{
		Config:   cfg,
		Input:    NewLineReader(stdin),
		Out:      stdout,
		Launcher: NewLauncher(stdin, stdout, stderr, log),
		Activity: activity,
		Log:      log,
	}
}

// Prompt writes the configured prompt.
func (s *Shell) Prompt() {
	fmt.Fprintf(s.Out, "%s ", s.Config.Prompt)
}

// Run executes lines until the input is exhausted, then closes the activity
// log. Commands never cause Run to fail.
func (s *Shell) Run() error {
	s.Activity.RecordConfig(s.Config)

	for {
		s.Prompt()

		line, err := s.Input.ReadLine()
		if err != nil {
			if err != io.EOF {
				s.Log.Warn("reading input failed, exiting", zap.Error(err))
			}
			break
		}

		s.RunLine(line)
	}

	if err := s.Activity.Close(); err != nil {
		s.Log.Warn("closing activity log failed", zap.Error(err))
	}
	return nil
}

// RunLine parses, launches and logs a single input line.
func (s *Shell) RunLine(line string) ExecutionResult {
	cmd := ParseCommand(strings.TrimLeft(line, " \t"))
	result := s.Launcher.Launch(cmd)
	s.Activity.Record(cmd, result)
	return result
}
