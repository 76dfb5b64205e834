package models

import (
	"fmt"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
)

// TaskStatus represents the lifecycle state of a task.
type TaskStatus string

const (
	StatusPending    TaskStatus = "pending"
	StatusInProgress TaskStatus = "in-progress"
	StatusCompleted  TaskStatus = "completed"
)

// TaskPriority represents the priority levels of a task.
type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
	PriorityUrgent TaskPriority = "urgent"
)

// TaskCategory is the area of life a task belongs to.
type TaskCategory string

const (
	CategoryWork     TaskCategory = "work"
	CategoryPersonal TaskCategory = "personal"
	CategoryLearning TaskCategory = "learning"
	CategoryHealth   TaskCategory = "health"
	CategoryFinance  TaskCategory = "finance"
)

// Task represents a single to-do item owned by a task store.
type Task struct {
	ID          uint32       `json:"id" yaml:"id" toml:"id"`
	Title       string       `json:"title" yaml:"title" toml:"title" validate:"max=255"`
	Description string       `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
	Priority    TaskPriority `json:"priority" yaml:"priority" toml:"priority" validate:"required,oneof=low medium high urgent"`
	Category    TaskCategory `json:"category" yaml:"category" toml:"category" validate:"required,oneof=work personal learning health finance"`
	Tags        []string     `json:"tags,omitempty" yaml:"tags,omitempty" toml:"tags,omitempty" validate:"dive,required"`
	Status      TaskStatus   `json:"status" yaml:"status" toml:"status" validate:"required,oneof=pending in-progress completed"`
}

// NewTask returns a pending task with the given identity and classification.
func NewTask(id uint32, title string, priority TaskPriority, category TaskCategory) Task {
	return Task{
		ID:       id,
		Title:    title,
		Priority: priority,
		Category: category,
		Status:   StatusPending,
	}
}

// IsCompleted reports whether the task has reached its final state.
func (t Task) IsCompleted() bool {
	return t.Status == StatusCompleted
}

// HasTag reports whether tag is attached to the task, ignoring case.
func (t Task) HasTag(tag string) bool {
	return slices.ContainsFunc(t.Tags, func(s string) bool {
		return strings.EqualFold(s, tag)
	})
}

// Labels returns the category followed by the free-form tags, without duplicates.
func (t Task) Labels() []string {
	labels := make([]string, 0, len(t.Tags)+1)
	if t.Category != "" {
		labels = append(labels, string(t.Category))
	}
	for _, tag := range t.Tags {
		if !slices.Contains(labels, tag) {
			labels = append(labels, tag)
		}
	}
	return labels
}

// Summary is the one-line form used in confirmations.
func (t Task) Summary() string {
	return fmt.Sprintf("#%d: %s (%s)", t.ID, t.Title, t.Status.String())
}

// String renders the task the way list views print it.
func (t Task) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s #%d: %s [%s] [%s]", t.Status.Icon(), t.ID, t.Title, t.Priority.String(), t.Category.String())
	if len(t.Tags) > 0 {
		fmt.Fprintf(&sb, " [%s]", strings.Join(t.Tags, ", "))
	}
	if t.Description != "" {
		fmt.Fprintf(&sb, "\n      %s", t.Description)
	}
	return sb.String()
}

// global validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ValidateStruct performs validation on any struct that has validation tags.
func ValidateStruct(s interface{}) error {
	if validate == nil {
		validate = validator.New()
	}
	err := validate.Struct(s)
	if err != nil {
		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return err
		}
		var errorMessages []string
		for _, e := range validationErrors {
			errorMessages = append(errorMessages, fmt.Sprintf("Validation failed on field '%s': rule '%s' (value: '%v')", e.StructNamespace(), e.Tag(), e.Value()))
		}
		return fmt.Errorf("%s", strings.Join(errorMessages, "; "))
	}
	return nil
}
