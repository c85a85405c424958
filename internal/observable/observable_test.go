package observable

import (
	"sync"
	"testing"
)

func TestValue_GetSet(t *testing.T) {
	v := New("initial")

	if got := v.Get(); got != "initial" {
		t.Fatalf("Get() = %q, want %q", got, "initial")
	}

	v.Set("next")

	if got := v.Get(); got != "next" {
		t.Fatalf("Get() = %q, want %q", got, "next")
	}
}

func TestValue_Subscribe_ReplaysCurrent(t *testing.T) {
	v := New(42)

	var got []int
	unsub := v.Subscribe(func(val int) {
		got = append(got, val)
	})
	defer unsub()

	if len(got) != 1 || got[0] != 42 {
		t.Fatalf("replay = %v, want [42]", got)
	}
}

func TestValue_Subscribe_SeesEveryPublishInOrder(t *testing.T) {
	v := New(0)

	var got []int
	unsub := v.Subscribe(func(val int) {
		got = append(got, val)
	})
	defer unsub()

	v.Set(1)
	v.Set(2)
	v.Set(3)

	want := []int{0, 1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestValue_Unsubscribe_StopsNotifications(t *testing.T) {
	v := New(0)

	var calls int
	unsub := v.Subscribe(func(int) { calls++ })

	v.Set(1)
	unsub()
	v.Set(2)

	// replay + one publish
	if calls != 2 {
		t.Fatalf("calls = %d, want 2", calls)
	}
}

func TestValue_MultipleSubscribers(t *testing.T) {
	v := New("x")

	var a, b int
	defer v.Subscribe(func(string) { a++ })()
	defer v.Subscribe(func(string) { b++ })()

	v.Set("y")

	if a != 2 || b != 2 {
		t.Fatalf("a=%d b=%d, want 2 2", a, b)
	}
}

func TestValue_SubscriberMayReadBack(t *testing.T) {
	v := New(1)

	var seen int
	unsub := v.Subscribe(func(val int) {
		// Get from inside a callback must not deadlock
		seen = v.Get()
	})
	defer unsub()

	v.Set(7)

	if seen != 7 {
		t.Fatalf("seen = %d, want 7", seen)
	}
}

func TestValue_ConcurrentSet(t *testing.T) {
	v := New(0)

	const n = 100
	var wg sync.WaitGroup
	wg.Add(n)

	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			v.Set(i)
		}(i)
	}

	wg.Wait()

	if got := v.Get(); got < 0 || got >= n {
		t.Fatalf("Get() = %d, want value in [0,%d)", got, n)
	}
}
