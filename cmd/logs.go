package cmd

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/josephlewis42/minsh/core"
	"github.com/josephlewis42/minsh/core/config"
	"github.com/josephlewis42/minsh/core/logger"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"
)

var logPath string

var logsCmd = &cobra.Command{
	Use:     "logs",
	Aliases: []string{"log"},
	Short:   "Explore the shell's activity log.",
}

var reportCommand = &cobra.Command{
	Use:   "report",
	Short: "Show a report of logged commands.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		report := logger.NewReport()
		if err := readActivityLog(report.Update); err != nil {
			return err
		}

		out, err := yaml.Marshal(report)
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), string(out))
		return nil
	},
}

var catCommand = &cobra.Command{
	Use:   "cat",
	Short: "Print logged commands one per line.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		w := cmd.OutOrStdout()
		return readActivityLog(func(le *logger.LogEntry) {
			writeEntry(w, le)
		})
	},
}

func readActivityLog(handler func(le *logger.LogEntry)) error {
	cfg := config.Default()
	cfg.LogPath = logPath

	fd, err := cfg.ReadActivityLog(appFs)
	if err != nil {
		return err
	}
	defer fd.Close()

	return logger.ReadJSONLinesLog(fd, handler)
}

func writeEntry(w io.Writer, le *logger.LogEntry) {
	ts := le.Timestamp.Format(time.RFC3339)

	switch {
	case le.Command != nil:
		event := le.Command
		status := fmt.Sprintf("%s %d", event.Outcome, event.ExitStatus)
		if event.Signal != "" {
			status = fmt.Sprintf("%s %s", event.Outcome, event.Signal)
		}
		if event.Failed() {
			status = core.ColorBoldRed.Sprint(status)
		} else {
			status = core.ColorBoldGreen.Sprint(status)
		}
		fmt.Fprintf(w, "%s %s %s\n", ts, status, strings.Join(event.Argv, " "))
	case le.Config != nil:
		fmt.Fprintf(w, "%s config prompt=%q loglevel=%s logfile=%s\n",
			ts, le.Config.Prompt, le.Config.LogLevel, le.Config.LogFile)
	}
}

func init() {
	rootCmd.AddCommand(logsCmd)
	logsCmd.AddCommand(reportCommand)
	logsCmd.AddCommand(catCommand)

	logsCmd.PersistentFlags().StringVarP(&logPath, "logfile", "f", config.DefaultLogPath, "activity log to read")
}
