package store

import (
	"errors"
	"math"
	"testing"

	"github.com/josephgoksu/taskdeck/models"
	"github.com/josephgoksu/taskdeck/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStore(t *testing.T) *MemoryTaskStore {
	t.Helper()

	s := NewMemoryTaskStore()
	s.Add("Learn Go basics", models.PriorityHigh, models.CategoryLearning)
	s.Add("Complete final project", models.PriorityHigh, models.CategoryLearning)
	s.Add("Review ownership notes", models.PriorityMedium, models.CategoryLearning)
	s.Add("Exercise", models.PriorityLow, models.CategoryHealth)
	s.Add("Read a book", models.PriorityLow, models.CategoryPersonal)
	return s
}

func TestMemoryTaskStore_AddAssignsIncreasingIDs(t *testing.T) {
	s := NewMemoryTaskStore()

	var prev uint32
	for i := 0; i < 20; i++ {
		id := s.Add("task", models.PriorityMedium, models.CategoryWork)
		assert.Greater(t, id, prev)
		prev = id
	}
	assert.Equal(t, uint32(20), prev)
	assert.Equal(t, 20, s.Count())
}

func TestMemoryTaskStore_IDsNeverReused(t *testing.T) {
	s := NewMemoryTaskStore()
	first := s.Add("a", models.PriorityLow, models.CategoryWork)
	second := s.Add("b", models.PriorityLow, models.CategoryWork)

	_, err := s.Delete(second)
	require.NoError(t, err)
	_, err = s.Delete(first)
	require.NoError(t, err)

	third := s.Add("c", models.PriorityLow, models.CategoryWork)
	assert.Equal(t, uint32(3), third)
}

func TestMemoryTaskStore_GetAfterAdd(t *testing.T) {
	s := NewMemoryTaskStore()
	id := s.Add("Buy milk", models.PriorityLow, models.CategoryPersonal)

	task, ok := s.Get(id)
	require.True(t, ok)
	assert.Equal(t, id, task.ID)
	assert.Equal(t, "Buy milk", task.Title)
	assert.Equal(t, models.PriorityLow, task.Priority)
	assert.Equal(t, models.CategoryPersonal, task.Category)
	assert.Equal(t, models.StatusPending, task.Status)
	assert.Empty(t, task.Description)
}

func TestMemoryTaskStore_GetMissing(t *testing.T) {
	s := NewMemoryTaskStore()
	_, ok := s.Get(42)
	assert.False(t, ok)
}

func TestMemoryTaskStore_IDSpaceExhausted(t *testing.T) {
	s := NewMemoryTaskStore()
	s.nextID = math.MaxUint32

	id := s.Add("last one", models.PriorityLow, models.CategoryWork)
	assert.Equal(t, uint32(math.MaxUint32), id)

	assert.Panics(t, func() { s.Add("wraps", models.PriorityLow, models.CategoryWork) })
	assert.Equal(t, 1, s.Count())
}

func TestMemoryTaskStore_InvalidEnumsFallBack(t *testing.T) {
	s := NewMemoryTaskStore()
	id := s.AddTask(NewTaskInput{
		Title:    "Someday",
		Priority: models.TaskPriority("someday"),
		Category: models.TaskCategory("hobby"),
	})

	task, ok := s.Get(id)
	require.True(t, ok)
	assert.Equal(t, models.PriorityMedium, task.Priority)
	assert.Equal(t, models.CategoryPersonal, task.Category)
	assert.NoError(t, models.ValidateStruct(task))

	id = s.AddTask(NewTaskInput{Title: "Run", Priority: models.PriorityHigh, Category: models.TaskCategory("")})
	task, _ = s.Get(id)
	assert.Equal(t, models.PriorityHigh, task.Priority)
	assert.Equal(t, models.CategoryPersonal, task.Category)
}

func TestMemoryTaskStore_EmptyTitleAccepted(t *testing.T) {
	s := NewMemoryTaskStore()
	id := s.Add("", models.PriorityMedium, models.CategoryWork)

	task, ok := s.Get(id)
	require.True(t, ok)
	assert.Equal(t, "", task.Title)
}

func TestMemoryTaskStore_Complete(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, s *MemoryTaskStore, id uint32)
	}{
		{name: "from pending", setup: func(*testing.T, *MemoryTaskStore, uint32) {}},
		{name: "from in progress", setup: func(t *testing.T, s *MemoryTaskStore, id uint32) {
			require.NoError(t, s.Start(id))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewMemoryTaskStore()
			id := s.Add("task", models.PriorityMedium, models.CategoryWork)
			tt.setup(t, s, id)

			require.NoError(t, s.Complete(id))
			task, ok := s.Get(id)
			require.True(t, ok)
			assert.Equal(t, models.StatusCompleted, task.Status)
		})
	}
}

func TestMemoryTaskStore_CompleteTwice(t *testing.T) {
	s := NewMemoryTaskStore()
	id := s.Add("task", models.PriorityMedium, models.CategoryWork)

	require.NoError(t, s.Complete(id))
	err := s.Complete(id)
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrAlreadyCompleted))
	assert.False(t, errors.Is(err, types.ErrNotFound))

	var taskErr *types.TaskError
	require.True(t, errors.As(err, &taskErr))
	assert.Equal(t, id, taskErr.ID)
	assert.Equal(t, "Task #1 is already completed", err.Error())
}

func TestMemoryTaskStore_CompleteMissing(t *testing.T) {
	s := NewMemoryTaskStore()
	err := s.Complete(7)
	assert.ErrorIs(t, err, types.ErrNotFound)
	assert.Equal(t, "Task #7 not found", err.Error())
}

func TestMemoryTaskStore_StartAndReopen(t *testing.T) {
	s := NewMemoryTaskStore()
	id := s.Add("task", models.PriorityMedium, models.CategoryWork)

	require.NoError(t, s.Start(id))
	task, _ := s.Get(id)
	assert.Equal(t, models.StatusInProgress, task.Status)

	require.NoError(t, s.Complete(id))
	assert.ErrorIs(t, s.Start(id), types.ErrAlreadyCompleted)

	require.NoError(t, s.Reopen(id))
	task, _ = s.Get(id)
	assert.Equal(t, models.StatusPending, task.Status)

	assert.ErrorIs(t, s.Start(99), types.ErrNotFound)
	assert.ErrorIs(t, s.Reopen(99), types.ErrNotFound)
}

func TestMemoryTaskStore_Delete(t *testing.T) {
	s := NewMemoryTaskStore()
	id := s.Add("Buy milk", models.PriorityLow, models.CategoryPersonal)
	require.NoError(t, s.Complete(id))

	deleted, err := s.Delete(id)
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", deleted.Title)
	assert.Equal(t, models.StatusCompleted, deleted.Status)

	_, ok := s.Get(id)
	assert.False(t, ok)
	assert.ErrorIs(t, s.Complete(id), types.ErrNotFound)
	_, err = s.Delete(id)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestMemoryTaskStore_DescribeAndTag(t *testing.T) {
	s := NewMemoryTaskStore()
	id := s.AddTask(NewTaskInput{
		Title:    "Ship release",
		Priority: models.PriorityUrgent,
		Category: models.CategoryWork,
		Tags:     []string{"release", " ", "Release"},
	})

	task, _ := s.Get(id)
	assert.Equal(t, []string{"release"}, task.Tags)

	require.NoError(t, s.Describe(id, "  cut the tag and publish notes "))
	require.NoError(t, s.Tag(id, "RELEASE", "ops"))

	task, _ = s.Get(id)
	assert.Equal(t, "cut the tag and publish notes", task.Description)
	assert.Equal(t, []string{"release", "ops"}, task.Tags)

	assert.ErrorIs(t, s.Describe(99, "x"), types.ErrNotFound)
	assert.ErrorIs(t, s.Tag(99, "x"), types.ErrNotFound)
}

func TestMemoryTaskStore_ReturnsCopies(t *testing.T) {
	s := NewMemoryTaskStore()
	id := s.AddTask(NewTaskInput{Title: "a", Priority: models.PriorityLow, Category: models.CategoryWork, Tags: []string{"x"}})

	task, _ := s.Get(id)
	task.Tags[0] = "mutated"
	task.Title = "mutated"

	listed := s.List()
	listed[0].Tags[0] = "mutated"

	fresh, _ := s.Get(id)
	assert.Equal(t, "a", fresh.Title)
	assert.Equal(t, []string{"x"}, fresh.Tags)
}

func TestMemoryTaskStore_ListSortedByID(t *testing.T) {
	s := setupTestStore(t)
	_, err := s.Delete(3)
	require.NoError(t, err)

	var ids []uint32
	for _, task := range s.List() {
		ids = append(ids, task.ID)
	}
	assert.Equal(t, []uint32{1, 2, 4, 5}, ids)
}

func TestMemoryTaskStore_FilterBy(t *testing.T) {
	s := setupTestStore(t)
	require.NoError(t, s.Complete(1))
	require.NoError(t, s.Start(2))
	require.NoError(t, s.Tag(5, "weekend"))

	tests := []struct {
		name      string
		criterion Criterion
		want      []uint32
	}{
		{"priority high", ByPriority(models.PriorityHigh), []uint32{1, 2}},
		{"priority urgent", ByPriority(models.PriorityUrgent), nil},
		{"category learning", ByCategory(models.CategoryLearning), []uint32{1, 2, 3}},
		{"status completed", ByStatus(models.StatusCompleted), []uint32{1}},
		{"status in progress", ByStatus(models.StatusInProgress), []uint32{2}},
		{"status pending", ByStatus(models.StatusPending), []uint32{3, 4, 5}},
		{"tag", ByTag("Weekend"), []uint32{5}},
		{"nil", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []uint32
			for _, task := range s.FilterBy(tt.criterion) {
				got = append(got, task.ID)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMemoryTaskStore_FilterByPriorityIsExactSubset(t *testing.T) {
	s := setupTestStore(t)

	high := s.FilterBy(ByPriority(models.PriorityHigh))
	expected := 0
	for _, task := range s.List() {
		if task.Priority == models.PriorityHigh {
			expected++
		}
	}
	assert.Len(t, high, expected)
	for _, task := range high {
		assert.Equal(t, models.PriorityHigh, task.Priority)
	}
}

func TestMemoryTaskStore_Search(t *testing.T) {
	s := setupTestStore(t)

	results := s.Search("go")
	require.Len(t, results, 1)
	assert.Equal(t, "Learn Go basics", results[0].Title)

	assert.Len(t, s.Search("READ"), 1)
	assert.Len(t, s.Search("o"), 4)
	assert.Empty(t, s.Search("nothing matches"))
	assert.Len(t, s.Search(""), 5)
}

func TestMemoryTaskStore_Statistics(t *testing.T) {
	s := setupTestStore(t)
	require.NoError(t, s.Complete(1))
	require.NoError(t, s.Complete(4))
	require.NoError(t, s.Start(2))

	stats := s.Statistics()
	assert.Equal(t, 5, stats.Total)
	assert.Equal(t, 2, stats.Completed)
	assert.Equal(t, 1, stats.InProgress)
	assert.Equal(t, 2, stats.Pending)
	assert.Equal(t, stats.Total, stats.Completed+stats.Pending+stats.InProgress)
	assert.Equal(t, len(s.List()), stats.Total)
	assert.InDelta(t, 40.0, stats.CompletionRate(), 0.001)

	assert.Equal(t, 2, stats.ByPriority[models.PriorityHigh])
	assert.Equal(t, 1, stats.ByPriority[models.PriorityMedium])
	assert.Equal(t, 2, stats.ByPriority[models.PriorityLow])
	assert.Equal(t, 3, stats.ByCategory[models.CategoryLearning])
	assert.Equal(t, 1, stats.ByCategory[models.CategoryHealth])
	assert.Equal(t, 1, stats.ByCategory[models.CategoryPersonal])
}

func TestMemoryTaskStore_StatisticsEmpty(t *testing.T) {
	stats := NewMemoryTaskStore().Statistics()
	assert.Zero(t, stats.Total)
	assert.Zero(t, stats.CompletionRate())
	assert.Empty(t, stats.ByPriority)
}

func TestMemoryTaskStore_Example(t *testing.T) {
	s := NewMemoryTaskStore()

	id := s.Add("Buy milk", models.PriorityLow, models.CategoryPersonal)
	assert.Equal(t, uint32(1), id)
	assert.NoError(t, s.Complete(1))
	assert.ErrorIs(t, s.Complete(1), types.ErrAlreadyCompleted)

	deleted, err := s.Delete(1)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, deleted.Status)

	_, ok := s.Get(1)
	assert.False(t, ok)
}

func TestParseCriterion(t *testing.T) {
	c, err := ParseCriterion("priority", "HIGH")
	require.NoError(t, err)
	assert.Equal(t, ByPriority(models.PriorityHigh), c)
	assert.Equal(t, "High Priority", c.String())

	c, err = ParseCriterion("category", "2")
	require.NoError(t, err)
	assert.Equal(t, ByCategory(models.CategoryPersonal), c)

	c, err = ParseCriterion("status", "in progress")
	require.NoError(t, err)
	assert.Equal(t, ByStatus(models.StatusInProgress), c)

	c, err = ParseCriterion("tag", "home")
	require.NoError(t, err)
	assert.Equal(t, "#home", c.String())

	_, err = ParseCriterion("colour", "red")
	assert.ErrorIs(t, err, types.ErrInvalidInput)
	_, err = ParseCriterion("priority", "sometime")
	assert.ErrorIs(t, err, types.ErrInvalidInput)
	_, err = ParseCriterion("tag", "")
	assert.ErrorIs(t, err, types.ErrInvalidInput)
}
