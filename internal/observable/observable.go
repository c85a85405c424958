// Package observable provides a minimal current-value-plus-change-stream
// container, independent of any delivery layer.
package observable

import "sync"

// Value holds a single current value and notifies subscribers on every Set.
type Value[T any] struct {
	mu      sync.Mutex
	current T
	nextTok int
	subs    map[int]func(T)
}

func New[T any](initial T) *Value[T] {
	return &Value[T]{
		current: initial,
		subs:    make(map[int]func(T)),
	}
}

// Get returns the current value.
func (v *Value[T]) Get() T {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.current
}

// Set replaces the current value and synchronously notifies every
// subscriber registered at publish time.
func (v *Value[T]) Set(val T) {
	v.mu.Lock()
	v.current = val

	fns := make([]func(T), 0, len(v.subs))
	for _, fn := range v.subs {
		fns = append(fns, fn)
	}
	v.mu.Unlock()

	// callbacks run outside the lock so they may call Get/Set/Subscribe
	for _, fn := range fns {
		fn(val)
	}
}

// Subscribe registers fn for every future publish and immediately replays
// the current value to it. The returned function deregisters fn.
func (v *Value[T]) Subscribe(fn func(T)) func() {
	v.mu.Lock()
	tok := v.nextTok
	v.nextTok++
	v.subs[tok] = fn
	cur := v.current
	v.mu.Unlock()

	fn(cur)

	return func() {
		v.mu.Lock()
		delete(v.subs, tok)
		v.mu.Unlock()
	}
}
