package cmd

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EnvDebug turns on diagnostic logging to stderr when set to any value.
const EnvDebug = "MINSH_DEBUG"

// newDiagnosticLogger returns the logger for the shell's own troubleshooting
// output. It discards everything unless EnvDebug is set so it never mixes
// with the output of commands.
func newDiagnosticLogger(w io.Writer) *zap.Logger {
	if os.Getenv(EnvDebug) == "" {
		return zap.NewNop()
	}

	encoderCfg := zap.NewDevelopmentEncoderConfig()
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.Lock(zapcore.AddSync(w)),
		zapcore.DebugLevel,
	)
	return zap.New(core, zap.AddCaller()).Named("minsh")
}
