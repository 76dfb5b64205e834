package cmd

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunDemo(t *testing.T) {
	sess, out, fs := newTestSession(t)

	require.NoError(t, runDemo(sess, "/tmp/todos.txt"))

	output := out.String()
	assert.Contains(t, output, "Task #5 added successfully!")
	assert.Contains(t, output, "Task #1 completed!")
	assert.Contains(t, output, "Task #4 completed!")
	assert.Contains(t, output, "Pending Tasks")
	assert.Contains(t, output, "Completed Tasks")
	assert.Contains(t, output, "Search 'Go': 1 result(s)")
	assert.Contains(t, output, "Completion rate: 40.0%")
	assert.Contains(t, output, "Saved 5 task(s) to /tmp/todos.txt")

	data, err := afero.ReadFile(fs, "/tmp/todos.txt")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Equal(t, []string{
		"1|Learn Go basics|High|Completed|learning",
		"2|Complete final project|High|Pending|learning",
		"3|Review ownership notes|Medium|Pending|learning",
		"4|Exercise|Low|Completed|health",
		"5|Read a book|Low|Pending|personal",
	}, lines)
}

func TestRunDemo_WithoutSave(t *testing.T) {
	sess, out, fs := newTestSession(t)

	require.NoError(t, runDemo(sess, ""))
	assert.NotContains(t, out.String(), "Saved")

	exists, err := afero.DirExists(fs, "/work")
	require.NoError(t, err)
	assert.False(t, exists)
	assert.Len(t, demoSteps, 6, "the save step is appended per run")
}
