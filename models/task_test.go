package models

import (
	"testing"

	"github.com/josephgoksu/taskdeck/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask(t *testing.T) {
	task := NewTask(3, "Write docs", PriorityHigh, CategoryWork)

	assert.Equal(t, uint32(3), task.ID)
	assert.Equal(t, StatusPending, task.Status)
	assert.False(t, task.IsCompleted())
	assert.NoError(t, ValidateStruct(task))
}

func TestTaskString(t *testing.T) {
	task := NewTask(1, "Learn Go basics", PriorityUrgent, CategoryLearning)
	assert.Equal(t, "[ ] #1: Learn Go basics [URGENT] [Learning]", task.String())

	task.Status = StatusCompleted
	task.Tags = []string{"course", "weekend"}
	task.Description = "chapters 1-3"
	assert.Equal(t, "[x] #1: Learn Go basics [URGENT] [Learning] [course, weekend]\n      chapters 1-3", task.String())

	task.Status = StatusInProgress
	assert.Equal(t, "#1: Learn Go basics (In Progress)", task.Summary())
}

func TestTaskLabels(t *testing.T) {
	task := NewTask(1, "x", PriorityLow, CategoryHealth)
	assert.Equal(t, []string{"health"}, task.Labels())

	task.Tags = []string{"gym", "health"}
	assert.Equal(t, []string{"health", "gym"}, task.Labels())
	assert.True(t, task.HasTag("GYM"))
	assert.False(t, task.HasTag("pool"))
}

func TestValidateStruct_RejectsUnknownEnums(t *testing.T) {
	task := NewTask(1, "x", TaskPriority("someday"), CategoryWork)
	err := ValidateStruct(task)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Task.Priority")

	task = NewTask(1, "x", PriorityLow, TaskCategory("hobby"))
	assert.Error(t, ValidateStruct(task))
}

func TestParsePriority(t *testing.T) {
	tests := []struct {
		input string
		want  TaskPriority
	}{
		{"low", PriorityLow},
		{"1", PriorityLow},
		{" Medium ", PriorityMedium},
		{"3", PriorityHigh},
		{"URGENT", PriorityUrgent},
	}
	for _, tt := range tests {
		got, err := ParsePriority(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}

	_, err := ParsePriority("5")
	assert.ErrorIs(t, err, types.ErrInvalidInput)
}

func TestParseStatus(t *testing.T) {
	for input, want := range map[string]TaskStatus{
		"pending":     StatusPending,
		"In Progress": StatusInProgress,
		"in_progress": StatusInProgress,
		"done":        StatusCompleted,
		"3":           StatusCompleted,
	} {
		got, err := ParseStatus(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	_, err := ParseStatus("archived")
	assert.ErrorIs(t, err, types.ErrInvalidInput)
}

func TestParseCategory(t *testing.T) {
	for i, c := range AllCategories() {
		got, err := ParseCategory(string(rune('1' + i)))
		require.NoError(t, err)
		assert.Equal(t, c, got)

		got, err = ParseCategory(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}

	_, err := ParseCategory("hobby")
	assert.ErrorIs(t, err, types.ErrInvalidInput)
	assert.Equal(t, `Invalid input: unknown category "hobby" (want work, personal, learning, health or finance)`, err.Error())
}

func TestEnumValidity(t *testing.T) {
	for _, p := range AllPriorities() {
		assert.True(t, p.Valid())
		assert.NotZero(t, p.Rank())
	}
	for _, s := range AllStatuses() {
		assert.True(t, s.Valid())
		assert.NotEqual(t, "[?]", s.Icon())
	}
	for _, c := range AllCategories() {
		assert.True(t, c.Valid())
	}
	assert.False(t, TaskPriority("").Valid())
	assert.False(t, TaskStatus("blocked").Valid())
	assert.False(t, TaskCategory("").Valid())
	assert.Greater(t, PriorityUrgent.Rank(), PriorityHigh.Rank())
}
