package config

import (
	"errors"
	"fmt"
	"io"
	"strings"

	getopt "github.com/pborman/getopt/v2"
)

// ErrHelp is returned by ParseArgs when the user asked for usage text.
var ErrHelp = errors.New("help requested")

// ArgumentError is returned by ParseArgs for an unknown option, an invalid
// option value or a positional argument.
type ArgumentError struct {
	Err error
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid arguments: %v", e.Err)
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}

type flagSet struct {
	set *getopt.Set

	prompt   *string
	loglevel *string
	logfile  *string
	help     *bool
}

func newFlagSet(program string) *flagSet {
	opts := getopt.New()
	opts.SetProgram(program)
	opts.SetParameters("")

	return &flagSet{
		set:    opts,
		prompt: opts.StringLong("prompt", 'p', DefaultPrompt, "set the prompt of the shell", "prompt"),
		loglevel: opts.EnumLong(
			"loglevel",
			'l',
			verbosityNames,
			DefaultVerbosity.String(),
			"set the log level (low|middle|high)",
			"level"),
		logfile: opts.StringLong("logfile", 'f', DefaultLogPath, "set the log file name", "filename"),
		help:    opts.BoolLong("help", 'h', "show this help and exit"),
	}
}

// ParseArgs builds the configuration from the command line. args[0] is the
// program name.
func ParseArgs(args []string) (*Configuration, error) {
	program := "minsh"
	if len(args) > 0 {
		program = args[0]
	} else {
		args = []string{program}
	}

	fs := newFlagSet(program)
	if err := fs.set.Getopt(args, nil); err != nil {
		return nil, &ArgumentError{Err: err}
	}

	if *fs.help {
		return nil, ErrHelp
	}

	if rest := fs.set.Args(); len(rest) > 0 {
		return nil, &ArgumentError{
			Err: fmt.Errorf("unexpected non-option arguments: %s", strings.Join(rest, " ")),
		}
	}

	verbosity, err := ParseVerbosity(*fs.loglevel)
	if err != nil {
		return nil, &ArgumentError{Err: err}
	}

	cfg := &Configuration{
		Prompt:    *fs.prompt,
		Verbosity: verbosity,
		LogPath:   *fs.logfile,
	}
	if err := cfg.Validate(); err != nil {
		return nil, &ArgumentError{Err: err}
	}

	return cfg, nil
}

// PrintUsage writes the usage text for the shell's flags.
func PrintUsage(w io.Writer, program string) {
	newFlagSet(program).set.PrintUsage(w)
}
