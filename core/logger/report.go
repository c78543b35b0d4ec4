package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
)

// ReadJSONLinesLog parses a newline delimited JSON log.
func ReadJSONLinesLog(r io.Reader, handler func(le *LogEntry)) error {
	decoder := json.NewDecoder(r)
	for decoder.More() {
		var logEntry LogEntry
		if err := decoder.Decode(&logEntry); err != nil {
			return fmt.Errorf("reading activity log: %w", err)
		}

		handler(&logEntry)
	}
	return nil
}

func NewReport() *Report {
	return &Report{
		Failures: NewPathCounter("program", "outcome", "exit_status"),
		sessions: make(map[string]bool),
	}
}

// Report holds statistics about the logged commands.
type Report struct {
	LogEntries     int        `json:"log_entries"`
	Sessions       int        `json:"sessions"`
	Commands       int        `json:"commands"`
	InvalidEntries StrCounter `json:"unknown_log_entries,omitempty"`

	Outcomes StrCounter   `json:"outcomes"`
	Programs StrCounter   `json:"programs"`
	Failures *PathCounter `json:"failures"`

	sessions map[string]bool
}

func (r *Report) Update(le *LogEntry) {
	r.LogEntries++

	if id := le.SessionID; id != "" && !r.sessions[id] {
		r.sessions[id] = true
		r.Sessions++
	}

	switch {
	case le.Type == TypeCommand && le.Command != nil:
		event := le.Command
		r.Commands++
		r.Outcomes.Increment(event.Outcome)
		r.Programs.Increment(event.Program())
		if event.Failed() {
			r.Failures.Increment(event.Program(), event.Outcome, fmt.Sprintf("%d", event.ExitStatus))
		}
	case le.Type == TypeConfig:
		// Ignore
	default:
		r.InvalidEntries.Increment(string(le.Type))
	}
}

// StrCounter counts the number of strings seen.
type StrCounter struct {
	internal map[string]int
}

// Increment adds one to the given key.
func (s *StrCounter) Increment(toAdd string) {
	if s.internal == nil {
		s.internal = make(map[string]int)
	}

	s.internal[toAdd]++
}

// Get returns the count for a key.
func (s *StrCounter) Get(key string) int {
	return s.internal[key]
}

// MarshalJSON implements a custom JSON marshaler.
func (s StrCounter) MarshalJSON() ([]byte, error) {
	if s.internal == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(s.internal)
}

func NewPathCounter(cols ...string) *PathCounter {
	return &PathCounter{
		cols:     cols,
		internal: make(map[string]int),
	}
}

// PathCounter counts occurrences of tuples of strings.
type PathCounter struct {
	cols     []string
	internal map[string]int
}

// Increment adds one to the given key.
func (ctr *PathCounter) Increment(toAdd ...string) {
	if len(toAdd) != len(ctr.cols) {
		panic("wrong number of columns to add")
	}

	ctr.internal[toKey(toAdd...)]++
}

// MarshalJSON implements a custom JSON marshaler.
func (ctr *PathCounter) MarshalJSON() ([]byte, error) {
	type Count struct {
		Count  int               `json:"count"`
		Fields map[string]string `json:"event"`
		Path   string            `json:"-"`
	}

	out := []Count{}
	for k, v := range ctr.internal {
		count := Count{
			Count:  v,
			Path:   k,
			Fields: make(map[string]string),
		}

		splitPath := fromKey(k)
		for colNum, colVal := range ctr.cols {
			count.Fields[colVal] = splitPath[colNum]
		}

		out = append(out, count)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Count == out[j].Count {
			return out[i].Path < out[j].Path
		}
		return out[i].Count > out[j].Count
	})

	return json.Marshal(out)
}

func toKey(vals ...string) string {
	key, _ := json.Marshal(vals)
	return string(key)
}

func fromKey(key string) (out []string) {
	json.Unmarshal([]byte(key), &out)
	return
}
