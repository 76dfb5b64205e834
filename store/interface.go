package store

import "github.com/josephgoksu/taskdeck/models"

// NewTaskInput carries the optional fields accepted when creating a task.
type NewTaskInput struct {
	Title       string
	Description string
	Priority    models.TaskPriority
	Category    models.TaskCategory
	Tags        []string
}

// TaskStore defines the contract for managing a session's tasks.
// Implementations own their tasks exclusively: every returned Task or slice
// is a copy, so no caller reference outlives the call that produced it.
type TaskStore interface {
	// Add stores a new pending task and returns its id. It always succeeds.
	Add(title string, priority models.TaskPriority, category models.TaskCategory) uint32

	// AddTask is Add with a description and tags.
	AddTask(input NewTaskInput) uint32

	// Get returns the task with the given id, or false if it does not exist.
	Get(id uint32) (models.Task, bool)

	// Complete marks a task as completed.
	// It fails with NotFound for an unknown id and AlreadyCompleted if the
	// task is already in the completed state.
	Complete(id uint32) error

	// Start moves a task to in-progress. Completed tasks must be reopened first.
	Start(id uint32) error

	// Reopen moves a task back to pending regardless of its current status.
	Reopen(id uint32) error

	// Describe replaces a task's description.
	Describe(id uint32, description string) error

	// Tag attaches labels that the task does not carry yet.
	Tag(id uint32, tags ...string) error

	// Delete removes a task and returns it.
	Delete(id uint32) (models.Task, error)

	// List returns all tasks ordered by id.
	List() []models.Task

	// FilterBy returns the tasks matching the criterion, ordered by id.
	FilterBy(criterion Criterion) []models.Task

	// Search returns tasks whose title contains query, ignoring case.
	Search(query string) []models.Task

	// Statistics aggregates the current tasks with a full scan.
	Statistics() Statistics

	// Count returns the number of stored tasks.
	Count() int
}
