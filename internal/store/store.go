package store

import "taskboard/internal/domain"

// TaskStore is the single authoritative holder of the current task list and
// status message. Reads return snapshots; writes replace the value and
// notify subscribers.
type TaskStore interface {
	Tasks() []domain.Task
	Status() string

	SetTasks(tasks []domain.Task)
	SetStatus(msg string)

	SubscribeTasks(fn func([]domain.Task)) (unsubscribe func())
	SubscribeStatus(fn func(string)) (unsubscribe func())

	// NextID hands out the next task id from a shared monotonic counter.
	// Ids start at 1 and are never reused.
	NextID() int64
}
