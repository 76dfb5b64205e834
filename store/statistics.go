package store

import "github.com/josephgoksu/taskdeck/models"

// Statistics is a point-in-time aggregate over a store's tasks.
// Total always equals Completed + Pending + InProgress.
type Statistics struct {
	Total      int                         `json:"total"`
	Completed  int                         `json:"completed"`
	Pending    int                         `json:"pending"`
	InProgress int                         `json:"inProgress"`
	ByPriority map[models.TaskPriority]int `json:"byPriority"`
	ByCategory map[models.TaskCategory]int `json:"byCategory"`
}

// CompletionRate returns the completed share as a percentage, 0 for an empty store.
func (s Statistics) CompletionRate() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Completed) / float64(s.Total) * 100
}

func computeStatistics(tasks map[uint32]models.Task) Statistics {
	stats := Statistics{
		Total:      len(tasks),
		ByPriority: make(map[models.TaskPriority]int),
		ByCategory: make(map[models.TaskCategory]int),
	}
	for _, task := range tasks {
		switch task.Status {
		case models.StatusCompleted:
			stats.Completed++
		case models.StatusInProgress:
			stats.InProgress++
		case models.StatusPending:
			stats.Pending++
		}
		stats.ByPriority[task.Priority]++
		stats.ByCategory[task.Category]++
	}
	return stats
}
