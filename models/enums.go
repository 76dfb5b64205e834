package models

import (
	"strings"

	"github.com/josephgoksu/taskdeck/types"
)

// AllPriorities lists priorities from least to most pressing.
func AllPriorities() []TaskPriority {
	return []TaskPriority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}
}

// AllStatuses lists statuses in workflow order.
func AllStatuses() []TaskStatus {
	return []TaskStatus{StatusPending, StatusInProgress, StatusCompleted}
}

// AllCategories lists categories in menu order.
func AllCategories() []TaskCategory {
	return []TaskCategory{CategoryWork, CategoryPersonal, CategoryLearning, CategoryHealth, CategoryFinance}
}

func (p TaskPriority) String() string {
	switch p {
	case PriorityLow:
		return "Low"
	case PriorityMedium:
		return "Medium"
	case PriorityHigh:
		return "High"
	case PriorityUrgent:
		return "URGENT"
	default:
		return string(p)
	}
}

// Valid reports whether p is one of the known priorities.
func (p TaskPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	default:
		return false
	}
}

// Rank orders priorities for sorting, higher is more pressing.
func (p TaskPriority) Rank() int {
	switch p {
	case PriorityUrgent:
		return 4
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

func (s TaskStatus) String() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusInProgress:
		return "In Progress"
	case StatusCompleted:
		return "Completed"
	default:
		return string(s)
	}
}

// Icon is the checkbox shown in front of a task.
func (s TaskStatus) Icon() string {
	switch s {
	case StatusPending:
		return "[ ]"
	case StatusInProgress:
		return "[~]"
	case StatusCompleted:
		return "[x]"
	default:
		return "[?]"
	}
}

// Valid reports whether s is one of the known statuses.
func (s TaskStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	default:
		return false
	}
}

func (c TaskCategory) String() string {
	switch c {
	case CategoryWork:
		return "Work"
	case CategoryPersonal:
		return "Personal"
	case CategoryLearning:
		return "Learning"
	case CategoryHealth:
		return "Health"
	case CategoryFinance:
		return "Finance"
	default:
		return string(c)
	}
}

// Valid reports whether c is one of the known categories.
func (c TaskCategory) Valid() bool {
	switch c {
	case CategoryWork, CategoryPersonal, CategoryLearning, CategoryHealth, CategoryFinance:
		return true
	default:
		return false
	}
}

// ParsePriority accepts a priority name in any case or its menu number (1-4).
func ParsePriority(s string) (TaskPriority, error) {
	switch normalize(s) {
	case "1", "low":
		return PriorityLow, nil
	case "2", "medium", "med":
		return PriorityMedium, nil
	case "3", "high":
		return PriorityHigh, nil
	case "4", "urgent":
		return PriorityUrgent, nil
	default:
		return "", types.NewInvalidInput("unknown priority %q (want low, medium, high or urgent)", s)
	}
}

// ParseStatus accepts a status name in any case or its menu number (1-3).
func ParseStatus(s string) (TaskStatus, error) {
	switch normalize(s) {
	case "1", "pending", "todo":
		return StatusPending, nil
	case "2", "in-progress", "inprogress", "doing":
		return StatusInProgress, nil
	case "3", "completed", "done":
		return StatusCompleted, nil
	default:
		return "", types.NewInvalidInput("unknown status %q (want pending, in-progress or completed)", s)
	}
}

// ParseCategory accepts a category name in any case or its menu number (1-5).
func ParseCategory(s string) (TaskCategory, error) {
	switch normalize(s) {
	case "1", "work":
		return CategoryWork, nil
	case "2", "personal":
		return CategoryPersonal, nil
	case "3", "learning":
		return CategoryLearning, nil
	case "4", "health":
		return CategoryHealth, nil
	case "5", "finance":
		return CategoryFinance, nil
	default:
		return "", types.NewInvalidInput("unknown category %q (want work, personal, learning, health or finance)", s)
	}
}

// normalize lowercases and folds spaces and underscores into hyphens.
func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "_", "-")
	return strings.ReplaceAll(s, " ", "-")
}
