package service

import "taskboard/internal/domain"

// sampleTasks builds the fixed demo set. nextID is the store's shared
// counter so sample ids continue the global sequence.
func sampleTasks(nextID func() int64) []domain.Task {
	fixtures := []struct {
		title       string
		description string
		priority    domain.Priority
	}{
		{"Review pull request", "Check the open review queue", domain.PriorityHigh},
		{"Update documentation", "Refresh the setup guide", domain.PriorityMedium},
		{"Clean up backlog", "Archive stale items", domain.PriorityLow},
		{"Fix login bug", "Users report intermittent 401s", domain.PriorityHigh},
	}

	tasks := make([]domain.Task, 0, len(fixtures))
	for _, f := range fixtures {
		tasks = append(tasks, domain.Task{
			ID:          nextID(),
			Title:       f.title,
			Description: f.description,
			Priority:    f.priority,
		})
	}

	return tasks
}
