package core

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/josephlewis42/minsh/core/config"
)

var (
	ColorBoldGreen = color.New(color.FgGreen, color.Bold)
	ColorCyan      = color.New(color.FgCyan)
	ColorBoldRed   = color.New(color.FgRed, color.Bold)
)

// PrintBanner writes the startup status: prompt, log destination and log
// level. logErr is the reason the activity log couldn't be opened, if any.
func PrintBanner(w io.Writer, cfg *config.Configuration, logErr error) {
	fmt.Fprintln(w, ColorBoldGreen.Sprint("Interactive shell started."))
	fmt.Fprintf(w, "Prompt set to [%s]\n", ColorCyan.Sprint(cfg.Prompt))
	if logErr != nil {
		fmt.Fprintln(w, ColorBoldRed.Sprintf("Logging disabled: %v", logErr))
	} else {
		fmt.Fprintf(w, "Log file set to [%s]\n", ColorCyan.Sprint(cfg.LogPath))
	}
	fmt.Fprintf(w, "Log level set to [%s]\n", ColorCyan.Sprint(cfg.Verbosity))
}
