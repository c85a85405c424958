package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"taskboard/internal/domain"
	"taskboard/internal/execctx"
)

type TaskStore interface {
	Tasks() []domain.Task
	SetTasks(tasks []domain.Task)
	SetStatus(msg string)
	NextID() int64
}

// Delays holds the simulated work duration of each delayed operation.
type Delays struct {
	Process    time.Duration
	Sort       time.Duration
	ProcessAll time.Duration
	Load       time.Duration
}

func DefaultDelays() Delays {
	return Delays{
		Process:    2 * time.Second,
		Sort:       1 * time.Second,
		ProcessAll: 2 * time.Second,
		Load:       1500 * time.Millisecond,
	}
}

// TaskService runs the task operations. Delayed operations return to the
// caller immediately and do their work in a goroutine tied to the service
// lifetime: sleep for the simulated delay, re-read the store, publish
// results. Immediate operations mutate and publish inline. Close cancels
// the lifetime context, which suppresses any publish still pending.
type TaskService struct {
	store  TaskStore
	delays Delays

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

func New(store TaskStore, delays Delays) (*TaskService, error) {
	if store == nil {
		return nil, ErrStoreNil
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &TaskService{
		store:  store,
		delays: delays,
		ctx:    ctx,
		cancel: cancel,
	}, nil
}

// AddTask appends a new task with the next shared id. Immediate context,
// no simulated delay. Blank descriptions get the default placeholder.
func (s *TaskService) AddTask(title, description string, priority domain.Priority) error {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)

	if title == "" {
		return ErrInvalidInput
	}
	if !priority.Valid() {
		return ErrInvalidPriority
	}
	if description == "" {
		description = domain.DefaultDescription
	}

	return s.run(func(ctx context.Context) {
		s.publishStatus(ctx, fmt.Sprintf("Adding task '%s' (%s)...", title, execctx.Immediate.Name))

		task := domain.Task{
			ID:          s.store.NextID(),
			Title:       title,
			Description: description,
			Priority:    priority,
		}

		s.publishTasks(ctx, append(s.store.Tasks(), task))
		s.publishStatus(ctx, fmt.Sprintf("Task '%s' added", task.Title))
	})
}

// ProcessTask simulates CPU-bound work on the task passed in. The list is
// not touched, and the final message reflects the captured argument even if
// the list was re-sorted meanwhile.
func (s *TaskService) ProcessTask(task domain.Task) error {
	return s.launch(func(ctx context.Context) {
		s.publishStatus(ctx, fmt.Sprintf("Processing '%s' (%s)...", task.Title, execctx.CPUBound.Name))

		if err := execctx.Sleep(ctx, s.delays.Process); err != nil {
			return
		}

		s.publishStatus(ctx, fmt.Sprintf("%s: done (priority %s)", task.Title, task.Priority.Name()))
	})
}

// SortTasksByPriority reorders the list: priority high to low, creation
// order within equal priorities. The list is re-read after the delay so a
// concurrently finished load is not lost.
func (s *TaskService) SortTasksByPriority() error {
	return s.launch(func(ctx context.Context) {
		s.publishStatus(ctx, fmt.Sprintf("Sorting tasks (%s)...", execctx.CPUBound.Name))

		if err := execctx.Sleep(ctx, s.delays.Sort); err != nil {
			return
		}

		s.publishTasks(ctx, domain.SortByPriority(s.store.Tasks()))
		s.publishStatus(ctx, "Tasks sorted high→low")
	})
}

// ProcessAllTasks simulates I/O-bound work over the whole list. An empty
// list short-circuits with an informational status and no delay.
func (s *TaskService) ProcessAllTasks() error {
	return s.launch(func(ctx context.Context) {
		if len(s.store.Tasks()) == 0 {
			s.publishStatus(ctx, "no tasks to process")
			return
		}

		s.publishStatus(ctx, fmt.Sprintf("Processing all tasks (%s)...", execctx.IOBound.Name))

		if err := execctx.Sleep(ctx, s.delays.ProcessAll); err != nil {
			return
		}

		s.publishStatus(ctx, fmt.Sprintf("%d tasks processed", len(s.store.Tasks())))
	})
}

// ClearAllTasks empties the list. Immediate context, no simulated delay.
func (s *TaskService) ClearAllTasks() error {
	return s.run(func(ctx context.Context) {
		s.publishStatus(ctx, fmt.Sprintf("Clearing tasks (%s)...", execctx.Immediate.Name))

		s.publishTasks(ctx, nil)
		s.publishStatus(ctx, "All tasks cleared")
	})
}

// LoadSampleTasks appends the fixed sample set after an I/O-bound delay.
// Ids continue from the shared counter, so samples never collide with
// manually added tasks.
func (s *TaskService) LoadSampleTasks() error {
	return s.launch(func(ctx context.Context) {
		s.publishStatus(ctx, fmt.Sprintf("Loading sample tasks (%s)...", execctx.IOBound.Name))

		if err := execctx.Sleep(ctx, s.delays.Load); err != nil {
			return
		}

		samples := sampleTasks(s.store.NextID)
		s.publishTasks(ctx, append(s.store.Tasks(), samples...))
		s.publishStatus(ctx, fmt.Sprintf("%d tasks loaded", len(samples)))
	})
}

// Close cancels all in-flight operations. Their pending publishes are
// dropped; the store is never written to after Close returns and Wait
// drains.
func (s *TaskService) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	s.cancel()
}

// Wait blocks until every launched operation has finished.
func (s *TaskService) Wait() {
	s.wg.Wait()
}

// launch runs op in a goroutine tied to the service lifetime. Used by the
// delayed operations so the caller is never blocked by a simulated delay.
func (s *TaskService) launch(op func(ctx context.Context)) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrServiceClosed
	}
	s.wg.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.wg.Done()
		op(s.ctx)
	}()

	return nil
}

// run executes op inline. Immediate operations have no delay, so running
// them on the calling goroutine keeps sequential invocations ordered
// without ever blocking the caller longer than the mutation itself.
func (s *TaskService) run(op func(ctx context.Context)) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrServiceClosed
	}
	s.mu.Unlock()

	op(s.ctx)

	return nil
}

func (s *TaskService) publishTasks(ctx context.Context, tasks []domain.Task) {
	if ctx.Err() != nil {
		return
	}
	s.store.SetTasks(tasks)
}

func (s *TaskService) publishStatus(ctx context.Context, msg string) {
	if ctx.Err() != nil {
		return
	}
	s.store.SetStatus(msg)
}
