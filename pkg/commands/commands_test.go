package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	out, noColor := color.Output, color.NoColor
	var buf bytes.Buffer
	color.Output, color.NoColor = &buf, true
	t.Cleanup(func() { color.Output, color.NoColor = out, noColor })

	cmd := New()
	cmd.SetArgs(args)
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	require.NoError(t, cmd.Execute())
	return buf.String()
}

func TestCommandTree(t *testing.T) {
	cmd := New()
	for _, path := range [][]string{
		{"day"}, {"watch"}, {"add"}, {"ladder"}, {"edit"}, {"done"}, {"undo"},
		{"rm"}, {"rm-day"}, {"swap"}, {"week"}, {"month"}, {"history"},
		{"report"}, {"migrate"}, {"key"}, {"completion"}, {"version"},
		{"preset", "new"}, {"preset", "add"}, {"preset", "apply"}, {"preset", "save"},
		{"preset", "swap"}, {"preset", "rm"}, {"preset", "rename"}, {"preset", "list"},
		{"goal", "new"}, {"goal", "inc"}, {"goal", "dec"}, {"goal", "rm"}, {"goal", "list"},
		{"record"},
	} {
		found, _, err := cmd.Find(path)
		require.NoError(t, err, strings.Join(path, " "))
		assert.Equal(t, path[len(path)-1], found.Name())
	}
}

func TestWorkflowAgainstDisk(t *testing.T) {
	t.Setenv("WORKOUT_PATH", t.TempDir())
	t.Setenv("WORKOUT_LOG_LEVEL", "error")

	out := run(t, "add", "pull", "ups", "--reps", "8", "--sets", "3", "--rest", "2m", "-k")
	assert.Contains(t, out, "pull ups")
	assert.Contains(t, out, "rest 2m")

	out = run(t, "day", "--json")
	assert.Contains(t, out, `"Found": true`)
	assert.Contains(t, out, `"pull ups"`)

	out = run(t, "history")
	assert.Contains(t, out, "History - 1 day")
}

func TestInvalidInputAsJSON(t *testing.T) {
	t.Setenv("WORKOUT_PATH", t.TempDir())
	t.Setenv("WORKOUT_LOG_LEVEL", "error")

	out := run(t, "add", "x", "--json")
	assert.Contains(t, out, `"fields"`)
	assert.Contains(t, out, `"reps"`)
}
