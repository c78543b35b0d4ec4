package core

import "strings"

// Command is one parsed input line.
type Command struct {
	// Line is the input text without its line terminator.
	Line string
	// Argv holds the whitespace separated tokens of Line, Argv[0] is the
	// program name. An empty Argv is a no-op.
	Argv []string
}

// IsNoOp reports whether the command has nothing to run.
func (c Command) IsNoOp() bool {
	return len(c.Argv) == 0
}

// ParseCommand splits a line into a Command. There is no quoting or
// escaping: every run of whitespace separates two tokens. Blank or
// malformed input yields a no-op Command, never an error.
func ParseCommand(line string) Command {
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")

	return Command{
		Line: line,
		Argv: strings.Fields(line),
	}
}
