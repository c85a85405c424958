package domain

import "sort"

type Priority int

const (
	PriorityLow    Priority = 1
	PriorityMedium Priority = 2
	PriorityHigh   Priority = 3
)

// Name maps a priority to its display name. Values outside 1..3 are
// never produced by the store itself, but formatting must not fail on them.
func (p Priority) Name() string {
	switch p {
	case PriorityLow:
		return "Low"
	case PriorityMedium:
		return "Medium"
	case PriorityHigh:
		return "High"
	default:
		return "Unknown"
	}
}

// Valid reports whether p is one of the three produced priorities.
func (p Priority) Valid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// DefaultDescription is used when a task is created without one.
const DefaultDescription = "No description provided"

type Task struct {
	ID          int64
	Title       string
	Description string
	Priority    Priority
}

// SortByPriority returns a new slice ordered by priority descending,
// with id ascending as tie-break. The sort is stable, so tasks with equal
// priority keep their creation order.
func SortByPriority(tasks []Task) []Task {
	sorted := make([]Task, len(tasks))
	copy(sorted, tasks)

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Priority != sorted[j].Priority {
			return sorted[i].Priority > sorted[j].Priority
		}
		return sorted[i].ID < sorted[j].ID
	})

	return sorted
}
