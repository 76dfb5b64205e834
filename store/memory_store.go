package store

import (
	"log/slog"
	"slices"
	"strings"

	"github.com/josephgoksu/taskdeck/models"
	"github.com/josephgoksu/taskdeck/types"
)

// MemoryTaskStore implements TaskStore on top of a map keyed by task id.
// It is meant for a single caller at a time and does no locking.
type MemoryTaskStore struct {
	tasks  map[uint32]models.Task
	nextID uint32
}

var _ TaskStore = (*MemoryTaskStore)(nil)

// NewMemoryTaskStore creates an empty store whose first task gets id 1.
func NewMemoryTaskStore() *MemoryTaskStore {
	return &MemoryTaskStore{
		tasks:  make(map[uint32]models.Task),
		nextID: 1,
	}
}

// Add stores a new pending task and returns its id.
func (s *MemoryTaskStore) Add(title string, priority models.TaskPriority, category models.TaskCategory) uint32 {
	return s.AddTask(NewTaskInput{Title: title, Priority: priority, Category: category})
}

// AddTask stores a new pending task with description and tags.
// The id counter only moves forward, so ids of deleted tasks are never reissued.
func (s *MemoryTaskStore) AddTask(input NewTaskInput) uint32 {
	// nextID only reaches zero by wrapping, and ids are never reused.
	if s.nextID == 0 {
		panic("store: task id space exhausted")
	}
	id := s.nextID
	task := models.NewTask(id, input.Title, input.Priority, input.Category)
	task.Description = input.Description
	task.Tags = mergeTags(nil, input.Tags)

	if err := models.ValidateStruct(task); err != nil {
		slog.Warn("task has invalid fields", "id", id, "error", err)
		if !task.Priority.Valid() {
			task.Priority = models.PriorityMedium
		}
		if !task.Category.Valid() {
			task.Category = models.CategoryPersonal
		}
	}

	s.tasks[id] = task
	s.nextID++
	slog.Debug("task added", "id", id, "priority", task.Priority, "category", task.Category)
	return id
}

// Get returns a copy of the task with the given id.
func (s *MemoryTaskStore) Get(id uint32) (models.Task, bool) {
	task, ok := s.tasks[id]
	if !ok {
		return models.Task{}, false
	}
	return cloneTask(task), true
}

// Complete marks a task as completed.
func (s *MemoryTaskStore) Complete(id uint32) error {
	task, ok := s.tasks[id]
	if !ok {
		return types.NewNotFound(id)
	}
	if task.IsCompleted() {
		return types.NewAlreadyCompleted(id)
	}
	task.Status = models.StatusCompleted
	s.tasks[id] = task
	slog.Debug("task completed", "id", id)
	return nil
}

// Start moves a pending task to in-progress. Starting an in-progress task is a no-op.
func (s *MemoryTaskStore) Start(id uint32) error {
	task, ok := s.tasks[id]
	if !ok {
		return types.NewNotFound(id)
	}
	if task.IsCompleted() {
		return types.NewAlreadyCompleted(id)
	}
	task.Status = models.StatusInProgress
	s.tasks[id] = task
	slog.Debug("task started", "id", id)
	return nil
}

// Reopen moves a task back to pending.
func (s *MemoryTaskStore) Reopen(id uint32) error {
	task, ok := s.tasks[id]
	if !ok {
		return types.NewNotFound(id)
	}
	task.Status = models.StatusPending
	s.tasks[id] = task
	slog.Debug("task reopened", "id", id)
	return nil
}

// Describe replaces a task's description. An empty string clears it.
func (s *MemoryTaskStore) Describe(id uint32, description string) error {
	task, ok := s.tasks[id]
	if !ok {
		return types.NewNotFound(id)
	}
	task.Description = strings.TrimSpace(description)
	s.tasks[id] = task
	return nil
}

// Tag attaches labels the task does not already carry.
func (s *MemoryTaskStore) Tag(id uint32, tags ...string) error {
	task, ok := s.tasks[id]
	if !ok {
		return types.NewNotFound(id)
	}
	task.Tags = mergeTags(task.Tags, tags)
	s.tasks[id] = task
	return nil
}

// Delete removes a task and returns it.
func (s *MemoryTaskStore) Delete(id uint32) (models.Task, error) {
	task, ok := s.tasks[id]
	if !ok {
		return models.Task{}, types.NewNotFound(id)
	}
	delete(s.tasks, id)
	slog.Debug("task deleted", "id", id)
	return task, nil
}

// List returns all tasks ordered by id.
func (s *MemoryTaskStore) List() []models.Task {
	return s.collect(nil)
}

// FilterBy returns the tasks matching the criterion. A nil criterion matches nothing.
func (s *MemoryTaskStore) FilterBy(criterion Criterion) []models.Task {
	if criterion == nil {
		return []models.Task{}
	}
	return s.collect(criterion.Matches)
}

// Search returns tasks whose title contains query, ignoring case.
// An empty query matches every task.
func (s *MemoryTaskStore) Search(query string) []models.Task {
	q := strings.ToLower(query)
	return s.collect(func(t models.Task) bool {
		return strings.Contains(strings.ToLower(t.Title), q)
	})
}

// Statistics aggregates the current tasks.
func (s *MemoryTaskStore) Statistics() Statistics {
	return computeStatistics(s.tasks)
}

// Count returns the number of stored tasks.
func (s *MemoryTaskStore) Count() int {
	return len(s.tasks)
}

func (s *MemoryTaskStore) collect(filterFn func(models.Task) bool) []models.Task {
	result := make([]models.Task, 0, len(s.tasks))
	for _, task := range s.tasks {
		if filterFn == nil || filterFn(task) {
			result = append(result, cloneTask(task))
		}
	}
	slices.SortFunc(result, func(a, b models.Task) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		default:
			return 0
		}
	})
	return result
}

func cloneTask(t models.Task) models.Task {
	t.Tags = slices.Clone(t.Tags)
	return t
}

// mergeTags appends trimmed, non-empty tags not already present (case-insensitive).
func mergeTags(existing, tags []string) []string {
	merged := slices.Clone(existing)
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if slices.ContainsFunc(merged, func(s string) bool { return strings.EqualFold(s, tag) }) {
			continue
		}
		merged = append(merged, tag)
	}
	return merged
}
