package memory

import (
	"sync"
	"testing"

	"taskboard/internal/domain"
)

func TestTaskStore_StartsEmptyAndReady(t *testing.T) {
	ts := New()

	if got := ts.Tasks(); len(got) != 0 {
		t.Fatalf("Tasks() len = %d, want 0", len(got))
	}
	if got := ts.Status(); got != StatusReady {
		t.Fatalf("Status() = %q, want %q", got, StatusReady)
	}
}

func TestTaskStore_SetTasks_ReplacesList(t *testing.T) {
	ts := New()

	ts.SetTasks([]domain.Task{
		{ID: 1, Title: "t1", Priority: domain.PriorityHigh},
		{ID: 2, Title: "t2", Priority: domain.PriorityLow},
	})

	got := ts.Tasks()
	if len(got) != 2 {
		t.Fatalf("Tasks() len = %d, want 2", len(got))
	}
	if got[0].ID != 1 || got[1].ID != 2 {
		t.Fatalf("Tasks() order = %v, want ids 1,2", got)
	}

	ts.SetTasks(nil)
	if got := ts.Tasks(); len(got) != 0 {
		t.Fatalf("Tasks() after nil set len = %d, want 0", len(got))
	}
}

func TestTaskStore_SnapshotsAreIsolated(t *testing.T) {
	ts := New()

	in := []domain.Task{{ID: 1, Title: "t1"}}
	ts.SetTasks(in)

	// mutating the slice passed in must not affect the store
	in[0].Title = "changed"
	if got := ts.Tasks(); got[0].Title != "t1" {
		t.Fatalf("store aliased caller slice: %q", got[0].Title)
	}

	// mutating a read snapshot must not affect the store either
	out := ts.Tasks()
	out[0].Title = "changed"
	if got := ts.Tasks(); got[0].Title != "t1" {
		t.Fatalf("store aliased read snapshot: %q", got[0].Title)
	}
}

func TestTaskStore_SetStatus_Notifies(t *testing.T) {
	ts := New()

	var got []string
	unsub := ts.SubscribeStatus(func(msg string) {
		got = append(got, msg)
	})
	defer unsub()

	ts.SetStatus("working")
	ts.SetStatus("done")

	want := []string{StatusReady, "working", "done"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestTaskStore_SubscribeTasks_ReplaysAndNotifies(t *testing.T) {
	ts := New()

	var published [][]domain.Task
	unsub := ts.SubscribeTasks(func(tasks []domain.Task) {
		published = append(published, tasks)
	})
	defer unsub()

	ts.SetTasks([]domain.Task{{ID: 1}})

	if len(published) != 2 {
		t.Fatalf("publishes = %d, want 2 (replay + set)", len(published))
	}
	if len(published[0]) != 0 {
		t.Fatalf("replay list len = %d, want 0", len(published[0]))
	}
	if len(published[1]) != 1 || published[1][0].ID != 1 {
		t.Fatalf("published list = %v, want one task with id 1", published[1])
	}
}

func TestTaskStore_NextID_StartsAtOneAndIncreases(t *testing.T) {
	ts := New()

	for want := int64(1); want <= 5; want++ {
		if got := ts.NextID(); got != want {
			t.Fatalf("NextID() = %d, want %d", got, want)
		}
	}
}

func TestTaskStore_NextID_ConcurrentUnique(t *testing.T) {
	ts := New()

	const n = 200
	var mu sync.Mutex
	seen := make(map[int64]bool, n)

	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			id := ts.NextID()
			mu.Lock()
			seen[id] = true
			mu.Unlock()
		}()
	}
	wg.Wait()

	if len(seen) != n {
		t.Fatalf("unique ids = %d, want %d", len(seen), n)
	}
}
