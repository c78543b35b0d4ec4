package logger

import (
	"encoding/json"
	"io"
	"time"

	"github.com/google/uuid"
)

// LogRecorder is a callback that stores events in an external datastore.
type LogRecorder func(le *LogEntry) error

// Logger stamps events and hands them to a LogRecorder.
type Logger struct {
	Record LogRecorder

	// Now is the time source for entry timestamps, time.Now if nil.
	Now func() time.Time
}

// NewJsonLinesLogRecorder creates a Logger that exports logs in newline
// delimited JSON object format. Each entry is written with a single call
// to w.Write. Prompts like "->" are kept as typed rather than HTML escaped.
func NewJsonLinesLogRecorder(w io.Writer) *Logger {
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)

	return &Logger{
		Record: func(le *LogEntry) error {
			return encoder.Encode(le)
		},
	}
}

func (l *Logger) now() time.Time {
	if l.Now != nil {
		return l.Now()
	}
	return time.Now()
}

func (l *Logger) record(sessionID string, le *LogEntry) error {
	le.Timestamp = l.now().UTC()
	le.SessionID = sessionID
	return l.Record(le)
}

// NewSession creates a logger with a fresh session ID.
func (l *Logger) NewSession() *SessionLogger {
	return l.WithSessionID(uuid.NewString())
}

// WithSessionID creates a logger with the given session ID.
func (l *Logger) WithSessionID(id string) *SessionLogger {
	return &SessionLogger{Logger: l, sessionID: id}
}

// SessionLogger logs messages with a shared session ID.
type SessionLogger struct {
	*Logger
	sessionID string
}

func (l *SessionLogger) SessionID() string {
	return l.sessionID
}

func (l *SessionLogger) RecordCommand(event *CommandEvent) error {
	return l.record(l.sessionID, &LogEntry{Type: TypeCommand, Command: event})
}

func (l *SessionLogger) RecordConfig(event *ConfigEvent) error {
	return l.record(l.sessionID, &LogEntry{Type: TypeConfig, Config: event})
}
