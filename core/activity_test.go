package core

import (
	"bytes"
	"errors"
	"syscall"
	"testing"

	"github.com/josephlewis42/minsh/core/config"
	"github.com/josephlewis42/minsh/core/logger"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readEntries(t *testing.T, data []byte) []*logger.LogEntry {
	t.Helper()

	var entries []*logger.LogEntry
	err := logger.ReadJSONLinesLog(bytes.NewReader(data), func(le *logger.LogEntry) {
		entries = append(entries, le)
	})
	require.NoError(t, err)
	return entries
}

var (
	succeeded = exitedResult(0)
	failed    = exitedResult(2)
	killed    = signaledResult(syscall.SIGKILL)
	missing   = launchFailedResult(StatusNotFound, errors.New("nope: command not found"))
)

func TestActivityLogVerbosity(t *testing.T) {
	cases := map[string]struct {
		verbosity config.Verbosity
		results   []ExecutionResult
		expected  int
	}{
		"low skips success":      {config.Low, []ExecutionResult{succeeded}, 0},
		"low records failure":    {config.Low, []ExecutionResult{failed}, 1},
		"low records signal":     {config.Low, []ExecutionResult{killed}, 1},
		"low records missing":    {config.Low, []ExecutionResult{missing}, 1},
		"middle records all":     {config.Middle, []ExecutionResult{succeeded, failed, killed, missing}, 4},
		"high records all":       {config.High, []ExecutionResult{succeeded, failed, killed, missing}, 4},
		"noop is never recorded": {config.High, []ExecutionResult{noOpResult()}, 0},
		"low mixed":              {config.Low, []ExecutionResult{succeeded, failed, succeeded}, 1},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			buf := &bytes.Buffer{}
			activity := NewActivityLog(tc.verbosity, buf, nil)

			for _, result := range tc.results {
				activity.Record(ParseCommand("prog arg"), result)
			}

			assert.Len(t, readEntries(t, buf.Bytes()), tc.expected)
		})
	}
}

func TestActivityLogEntryContents(t *testing.T) {
	buf := &bytes.Buffer{}
	activity := NewActivityLog(config.Middle, buf, nil)

	activity.Record(ParseCommand("sleep 100\n"), killed)
	activity.Record(ParseCommand("nope\n"), missing)
	activity.Record(ParseCommand("grep -q x\n"), failed)

	entries := readEntries(t, buf.Bytes())
	require.Len(t, entries, 3)
	for _, le := range entries {
		assert.Equal(t, logger.TypeCommand, le.Type)
		assert.Equal(t, activity.SessionID(), le.SessionID)
		assert.False(t, le.Timestamp.IsZero())
	}

	assert.Equal(t, &logger.CommandEvent{
		Line:       "sleep 100",
		Argv:       []string{"sleep", "100"},
		Outcome:    logger.OutcomeSignal,
		ExitStatus: 137,
		Signal:     "SIGKILL",
	}, entries[0].Command)

	assert.Equal(t, &logger.CommandEvent{
		Line:       "nope",
		Argv:       []string{"nope"},
		Outcome:    logger.OutcomeLaunchFailed,
		ExitStatus: 127,
		Error:      "nope: command not found",
	}, entries[1].Command)

	assert.Equal(t, &logger.CommandEvent{
		Line:       "grep -q x",
		Argv:       []string{"grep", "-q", "x"},
		Outcome:    logger.OutcomeExit,
		ExitStatus: 2,
	}, entries[2].Command)
}

func TestActivityLogRecordConfig(t *testing.T) {
	cfg := &config.Configuration{Prompt: "$", LogPath: "x.log"}

	for _, verbosity := range []config.Verbosity{config.Low, config.Middle, config.High} {
		t.Run(verbosity.String(), func(t *testing.T) {
			buf := &bytes.Buffer{}
			cfg.Verbosity = verbosity

			NewActivityLog(verbosity, buf, nil).RecordConfig(cfg)

			entries := readEntries(t, buf.Bytes())
			if verbosity != config.High {
				assert.Empty(t, entries)
				return
			}
			require.Len(t, entries, 1)
			assert.Equal(t, logger.TypeConfig, entries[0].Type)
			assert.Equal(t, &logger.ConfigEvent{Prompt: "$", LogLevel: "high", LogFile: "x.log"}, entries[0].Config)
		})
	}
}

type failingFile struct {
	writes int
	closes int
}

func (f *failingFile) Write(b []byte) (int, error) {
	f.writes++
	return 0, errors.New("no space left on device")
}

func (f *failingFile) Close() error {
	f.closes++
	return nil
}

func TestActivityLogWriteFailureIsSwallowed(t *testing.T) {
	sink := &failingFile{}
	activity := NewActivityLog(config.High, sink, nil)

	assert.NotPanics(t, func() {
		activity.RecordConfig(config.Default())
		activity.Record(ParseCommand("ls"), succeeded)
		activity.Record(ParseCommand("ls"), failed)
	})
	assert.Equal(t, 3, sink.writes)
}

func TestActivityLogClose(t *testing.T) {
	sink := &failingFile{}
	activity := NewActivityLog(config.Middle, sink, nil)
	require.True(t, activity.Enabled())

	assert.NoError(t, activity.Close())
	assert.NoError(t, activity.Close())
	assert.Equal(t, 1, sink.closes)
	assert.False(t, activity.Enabled())

	activity.Record(ParseCommand("ls"), failed)
	assert.Zero(t, sink.writes)
}

func TestDisabledActivityLog(t *testing.T) {
	activity := DisabledActivityLog()

	assert.False(t, activity.Enabled())
	assert.Empty(t, activity.SessionID())
	assert.NotPanics(t, func() {
		activity.RecordConfig(config.Default())
		activity.Record(ParseCommand("false"), failed)
	})
	assert.NoError(t, activity.Close())
}

func TestOpenActivityLog(t *testing.T) {
	cfg := config.Default()

	t.Run("appends", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, cfg.LogPath, []byte(`{"type":"config"}`+"\n"), 0644))

		activity, err := OpenActivityLog(cfg, fs, nil)
		require.NoError(t, err)
		activity.Record(ParseCommand("false"), failed)
		require.NoError(t, activity.Close())

		data, err := afero.ReadFile(fs, cfg.LogPath)
		require.NoError(t, err)
		entries := readEntries(t, data)
		require.Len(t, entries, 2)
		assert.Equal(t, logger.TypeConfig, entries[0].Type)
		assert.Equal(t, "false", entries[1].Command.Line)
	})

	t.Run("read only filesystem", func(t *testing.T) {
		fs := afero.NewReadOnlyFs(afero.NewMemMapFs())

		activity, err := OpenActivityLog(cfg, fs, nil)

		assert.Error(t, err)
		assert.Nil(t, activity)
	})
}
