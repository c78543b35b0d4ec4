package logger

import "time"

type EntryType string

const (
	TypeCommand EntryType = "command"
	TypeConfig  EntryType = "config"
)

const (
	OutcomeExit         = "exit"
	OutcomeSignal       = "signal"
	OutcomeLaunchFailed = "launch_failed"
)

// LogEntry is a single line of the activity log. Exactly one of the event
// fields is set, matching Type.
type LogEntry struct {
	Timestamp time.Time `json:"timestamp"`
	SessionID string    `json:"session_id,omitempty"`
	Type      EntryType `json:"type"`

	Command *CommandEvent `json:"command,omitempty"`
	Config  *ConfigEvent  `json:"config,omitempty"`
}

// CommandEvent records a command that was run and how it ended.
type CommandEvent struct {
	Line       string   `json:"line"`
	Argv       []string `json:"argv"`
	Outcome    string   `json:"outcome"`
	ExitStatus int      `json:"exit_status"`
	Signal     string   `json:"signal,omitempty"`
	Error      string   `json:"error,omitempty"`
}

// Failed is true for anything other than a clean zero exit.
func (c *CommandEvent) Failed() bool {
	return c.Outcome != OutcomeExit || c.ExitStatus != 0
}

// Program is the first argument of the command, or "" for an empty argv.
func (c *CommandEvent) Program() string {
	if len(c.Argv) == 0 {
		return ""
	}
	return c.Argv[0]
}

// ConfigEvent echoes the shell's startup configuration.
type ConfigEvent struct {
	Prompt   string `json:"prompt"`
	LogLevel string `json:"loglevel"`
	LogFile  string `json:"logfile"`
}
