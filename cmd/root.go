package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/josephlewis42/minsh/core"
	"github.com/josephlewis42/minsh/core/config"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// rootCmd runs the interactive shell. Its flags are parsed by
// config.ParseArgs rather than cobra so the getopt_long style options behave
// the same with or without subcommands registered.
var rootCmd = &cobra.Command{
	Use:                "minsh [-p prompt] [-l low|middle|high] [-f logfile]",
	Short:              "A minimal interactive shell that logs the commands it runs.",
	DisableFlagParsing: true,
	Args:               cobra.ArbitraryArgs,
	SilenceErrors:      true,
	SilenceUsage:       true,
	CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
	RunE: func(cmd *cobra.Command, args []string) error {
		program := cmd.Root().Name()

		cfg, err := config.ParseArgs(append([]string{program}, args...))
		switch {
		case errors.Is(err, config.ErrHelp):
			config.PrintUsage(cmd.OutOrStdout(), program)
			return nil
		case err != nil:
			fmt.Fprintln(cmd.ErrOrStderr(), err)
			config.PrintUsage(cmd.ErrOrStderr(), program)
			return err
		}

		diag := newDiagnosticLogger(cmd.ErrOrStderr())
		defer diag.Sync()

		activity, logErr := core.OpenActivityLog(cfg, appFs, diag)
		if logErr != nil {
			activity = core.DisabledActivityLog()
		}

		core.PrintBanner(cmd.OutOrStdout(), cfg, logErr)

		shell := core.NewShell(cfg, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), activity, diag)
		return shell.Run()
	},
}

// appFs is the filesystem holding the activity log.
var appFs = afero.NewOsFs()

func init() {
	// cobra adds a "help" subcommand once the root has children. Replace it
	// with a hidden placeholder so "help" stays a rejected positional
	// argument; -h/--help is handled by config.ParseArgs.
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})
}

// Execute runs the command line and is the only place the process exits
// with a failure status.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var argErr *config.ArgumentError
		if !errors.As(err, &argErr) {
			fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
		}
		os.Exit(1)
	}
}
