package config

import "fmt"

// Verbosity controls which events reach the activity log.
type Verbosity int

const (
	// Low records only commands that did not exit cleanly.
	Low Verbosity = iota
	// Middle records every executed command.
	Middle
	// High records every executed command plus shell state such as the
	// startup configuration.
	High
)

var verbosityNames = []string{"low", "middle", "high"}

// ParseVerbosity converts the text form of a level, e.g. "middle".
func ParseVerbosity(s string) (Verbosity, error) {
	for i, name := range verbosityNames {
		if s == name {
			return Verbosity(i), nil
		}
	}
	return Middle, fmt.Errorf("invalid log level %q, must be one of low, middle, high", s)
}

func (v Verbosity) String() string {
	if v < Low || v > High {
		return fmt.Sprintf("Verbosity(%d)", int(v))
	}
	return verbosityNames[v]
}

// MarshalText implements encoding.TextMarshaler.
func (v Verbosity) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Verbosity) UnmarshalText(text []byte) error {
	parsed, err := ParseVerbosity(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
