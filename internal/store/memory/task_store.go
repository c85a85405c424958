package memory

import (
	"sync/atomic"

	"taskboard/internal/domain"
	"taskboard/internal/observable"
)

// StatusReady is the status a fresh store reports before any operation ran.
const StatusReady = "ready"

type TaskStore struct {
	nextID int64
	tasks  *observable.Value[[]domain.Task]
	status *observable.Value[string]
}

func New() *TaskStore {
	return &TaskStore{
		tasks:  observable.New([]domain.Task(nil)),
		status: observable.New(StatusReady),
	}
}

func (ts *TaskStore) Tasks() []domain.Task {
	return snapshot(ts.tasks.Get())
}

func (ts *TaskStore) Status() string {
	return ts.status.Get()
}

func (ts *TaskStore) SetTasks(tasks []domain.Task) {
	// the stored slice is private to the store
	ts.tasks.Set(snapshot(tasks))
}

func (ts *TaskStore) SetStatus(msg string) {
	ts.status.Set(msg)
}

func (ts *TaskStore) SubscribeTasks(fn func([]domain.Task)) func() {
	return ts.tasks.Subscribe(func(tasks []domain.Task) {
		fn(snapshot(tasks))
	})
}

func (ts *TaskStore) SubscribeStatus(fn func(string)) func() {
	return ts.status.Subscribe(fn)
}

func (ts *TaskStore) NextID() int64 {
	return atomic.AddInt64(&ts.nextID, 1)
}

func snapshot(tasks []domain.Task) []domain.Task {
	out := make([]domain.Task, len(tasks))
	copy(out, tasks)
	return out
}
