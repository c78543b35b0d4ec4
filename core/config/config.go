package config

import (
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
)

const (
	DefaultPrompt    = "->"
	DefaultVerbosity = Middle
	DefaultLogPath   = "shell.log"
)

// Configuration is the shell's startup configuration. It is built once
// before the read loop starts and never modified afterwards.
type Configuration struct {
	Prompt    string    `json:"prompt"`
	Verbosity Verbosity `json:"loglevel" validate:"gte=0,lte=2"`
	LogPath   string    `json:"logfile" validate:"required"`
}

// Default returns the configuration used when no flags are given.
func Default() *Configuration {
	return &Configuration{
		Prompt:    DefaultPrompt,
		Verbosity: DefaultVerbosity,
		LogPath:   DefaultLogPath,
	}
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

// OpenActivityLog opens the activity log for reading and appending,
// creating it if needed.
func (c *Configuration) OpenActivityLog(fs afero.Fs) (afero.File, error) {
	return fs.OpenFile(c.LogPath, os.O_RDWR|os.O_APPEND|os.O_CREATE, 0644)
}

// ReadActivityLog opens the activity log read only.
func (c *Configuration) ReadActivityLog(fs afero.Fs) (afero.File, error) {
	return fs.OpenFile(c.LogPath, os.O_RDONLY, 0)
}
