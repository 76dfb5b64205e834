package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/josephgoksu/taskdeck/models"
	"github.com/josephgoksu/taskdeck/store"
)

const noTasks = "No tasks found."

// RenderTaskTable renders tasks as a table, one row per task.
func RenderTaskTable(tasks []models.Task) string {
	if len(tasks) == 0 {
		return StyleSubtle.Render(noTasks) + "\n"
	}

	table := &Table{
		Headers:  []string{"ID", "", "Title", "Priority", "Category", "Tags"},
		MaxWidth: 40,
	}
	for _, t := range tasks {
		table.Rows = append(table.Rows, []string{
			strconv.FormatUint(uint64(t.ID), 10),
			t.Status.Icon(),
			t.Title,
			t.Priority.String(),
			t.Category.String(),
			strings.Join(t.Tags, ", "),
		})
	}
	return table.Render()
}

// RenderTaskList renders each task on its own line in its display form,
// status icon first, with the description indented underneath.
func RenderTaskList(tasks []models.Task) string {
	if len(tasks) == 0 {
		return noTasks + "\n"
	}
	var sb strings.Builder
	for _, t := range tasks {
		icon := Icon(t.Status.Icon(), StatusStyle(t.Status))
		line := strings.TrimPrefix(t.String(), t.Status.Icon())
		sb.WriteString(icon + line + "\n")
	}
	return sb.String()
}

// RenderTaskDetail renders one task inside a bordered panel.
func RenderTaskDetail(t models.Task) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Status:   %s %s\n", Icon(t.Status.Icon(), StatusStyle(t.Status)), t.Status.String())
	fmt.Fprintf(&sb, "Priority: %s\n", PriorityStyle(t.Priority).Render(t.Priority.String()))
	fmt.Fprintf(&sb, "Category: %s", t.Category.String())
	if len(t.Tags) > 0 {
		fmt.Fprintf(&sb, "\nTags:     %s", strings.Join(t.Tags, ", "))
	}
	if t.Description != "" {
		sb.WriteString("\n\n" + t.Description)
	}

	panel := NewPanel(fmt.Sprintf("#%d %s", t.ID, t.Title), sb.String())
	switch t.Status {
	case models.StatusCompleted:
		panel.WithBorderColor(ColorSuccess)
	case models.StatusInProgress:
		panel.WithBorderColor(ColorCyan)
	}
	return panel.Render()
}

// RenderStatistics renders totals, the completion rate and per-priority and
// per-category counts. Counts follow enum order and zero rows are omitted.
func RenderStatistics(stats store.Statistics) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Total tasks: %d\n", stats.Total)
	fmt.Fprintf(&sb, "Completed: %s\n", StyleSuccess.Render(strconv.Itoa(stats.Completed)))
	fmt.Fprintf(&sb, "In Progress: %d\n", stats.InProgress)
	fmt.Fprintf(&sb, "Pending: %d\n", stats.Pending)
	if stats.Total > 0 {
		fmt.Fprintf(&sb, "Completion rate: %.1f%%\n", stats.CompletionRate())
	}

	sb.WriteString("\n" + Heading("by priority") + "\n")
	for _, p := range models.AllPriorities() {
		if n := stats.ByPriority[p]; n > 0 {
			fmt.Fprintf(&sb, "  %s: %d\n", PriorityStyle(p).Render(p.String()), n)
		}
	}

	sb.WriteString("\n" + Heading("by category") + "\n")
	for _, c := range models.AllCategories() {
		if n := stats.ByCategory[c]; n > 0 {
			fmt.Fprintf(&sb, "  %s: %d\n", c, n)
		}
	}

	return sb.String()
}
