package logger

import (
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	yamlv2 "gopkg.in/yaml.v2"
	"sigs.k8s.io/yaml"
)

func reportFixture() []*LogEntry {
	command := func(session string, event CommandEvent) *LogEntry {
		return &LogEntry{Timestamp: fixedTime(), SessionID: session, Type: TypeCommand, Command: &event}
	}

	return []*LogEntry{
		{Timestamp: fixedTime(), SessionID: "s1", Type: TypeConfig, Config: &ConfigEvent{Prompt: "->", LogLevel: "high", LogFile: "shell.log"}},
		command("s1", CommandEvent{Line: "ls", Argv: []string{"ls"}, Outcome: OutcomeExit}),
		command("s1", CommandEvent{Line: "grep x y", Argv: []string{"grep", "x", "y"}, Outcome: OutcomeExit, ExitStatus: 1}),
		command("s1", CommandEvent{Line: "nosuch", Argv: []string{"nosuch"}, Outcome: OutcomeLaunchFailed, ExitStatus: 127}),
		command("s1", CommandEvent{Line: "grep z", Argv: []string{"grep", "z"}, Outcome: OutcomeExit, ExitStatus: 1}),
		command("s2", CommandEvent{Line: "sleep 100", Argv: []string{"sleep", "100"}, Outcome: OutcomeSignal, ExitStatus: 137, Signal: "SIGKILL"}),
		{Timestamp: fixedTime(), Type: "bogus"},
	}
}

func TestReport(t *testing.T) {
	report := NewReport()
	for _, le := range reportFixture() {
		report.Update(le)
	}

	assert.Equal(t, 7, report.LogEntries)
	assert.Equal(t, 2, report.Sessions)
	assert.Equal(t, 5, report.Commands)
	assert.Equal(t, 3, report.Outcomes.Get(OutcomeExit))
	assert.Equal(t, 1, report.Outcomes.Get(OutcomeSignal))
	assert.Equal(t, 1, report.Outcomes.Get(OutcomeLaunchFailed))
	assert.Equal(t, 2, report.Programs.Get("grep"))
	assert.Equal(t, 1, report.InvalidEntries.Get("bogus"))
}

func TestReportYAML(t *testing.T) {
	report := NewReport()
	for _, le := range reportFixture() {
		report.Update(le)
	}

	out, err := yaml.Marshal(report)
	require.NoError(t, err)

	g := goldie.New(
		t,
		goldie.WithFixtureDir(filepath.Join("testdata", "golden")),
		goldie.WithDiffEngine(goldie.ColoredDiff),
		goldie.WithTestNameForDir(true),
	)
	g.Assert(t, "report", out)

	t.Run("decodes", func(t *testing.T) {
		var decoded struct {
			Commands int `yaml:"commands"`
			Failures []struct {
				Count int               `yaml:"count"`
				Event map[string]string `yaml:"event"`
			} `yaml:"failures"`
		}
		require.NoError(t, yamlv2.Unmarshal(out, &decoded))

		assert.Equal(t, 5, decoded.Commands)
		require.Len(t, decoded.Failures, 3)
		assert.Equal(t, 2, decoded.Failures[0].Count)
		assert.Equal(t, map[string]string{"program": "grep", "outcome": "exit", "exit_status": "1"}, decoded.Failures[0].Event)
	})
}

func TestEmptyReportYAML(t *testing.T) {
	out, err := yaml.Marshal(NewReport())

	require.NoError(t, err)
	assert.Contains(t, string(out), "failures: []")
	assert.Contains(t, string(out), "outcomes: {}")
}

func TestPathCounterWrongColumns(t *testing.T) {
	ctr := NewPathCounter("a", "b")

	assert.Panics(t, func() { ctr.Increment("only-one") })
}
