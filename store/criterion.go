package store

import (
	"fmt"

	"github.com/josephgoksu/taskdeck/models"
	"github.com/josephgoksu/taskdeck/types"
)

// Criterion selects a subset of tasks in FilterBy.
// The set of criteria is closed: ByPriority, ByCategory, ByStatus and ByTag.
type Criterion interface {
	Matches(task models.Task) bool
	fmt.Stringer
	criterion()
}

// ByPriority matches tasks with exactly this priority.
type ByPriority models.TaskPriority

// ByCategory matches tasks filed under this category.
type ByCategory models.TaskCategory

// ByStatus matches tasks in this status.
type ByStatus models.TaskStatus

// ByTag matches tasks carrying this free-form tag, ignoring case.
type ByTag string

func (c ByPriority) Matches(t models.Task) bool { return t.Priority == models.TaskPriority(c) }
func (c ByCategory) Matches(t models.Task) bool { return t.Category == models.TaskCategory(c) }
func (c ByStatus) Matches(t models.Task) bool   { return t.Status == models.TaskStatus(c) }
func (c ByTag) Matches(t models.Task) bool      { return t.HasTag(string(c)) }

func (c ByPriority) String() string {
	return fmt.Sprintf("%s Priority", models.TaskPriority(c).String())
}
func (c ByCategory) String() string { return models.TaskCategory(c).String() }
func (c ByStatus) String() string   { return models.TaskStatus(c).String() }
func (c ByTag) String() string      { return "#" + string(c) }

func (ByPriority) criterion() {}
func (ByCategory) criterion() {}
func (ByStatus) criterion()   {}
func (ByTag) criterion()      {}

// ParseCriterion builds a criterion from a kind (priority, category, status,
// tag) and a value as typed on the command line.
func ParseCriterion(kind, value string) (Criterion, error) {
	switch kind {
	case "priority", "p":
		p, err := models.ParsePriority(value)
		if err != nil {
			return nil, err
		}
		return ByPriority(p), nil
	case "category", "c":
		c, err := models.ParseCategory(value)
		if err != nil {
			return nil, err
		}
		return ByCategory(c), nil
	case "status", "s":
		s, err := models.ParseStatus(value)
		if err != nil {
			return nil, err
		}
		return ByStatus(s), nil
	case "tag", "t":
		if value == "" {
			return nil, types.NewInvalidInput("tag filter needs a value")
		}
		return ByTag(value), nil
	default:
		return nil, types.NewInvalidInput("unknown filter %q (want priority, category, status or tag)", kind)
	}
}
