// Package execctx models the simulated execution contexts work is delegated
// to. A Context is a label used in status messages plus a cancellable sleep;
// it carries no real scheduling semantics.
package execctx

import (
	"context"
	"time"
)

type Context struct {
	Name string
}

var (
	Immediate = Context{Name: "immediate"}
	CPUBound  = Context{Name: "CPU-bound"}
	IOBound   = Context{Name: "I/O-bound"}
)

// Sleep waits for d or until ctx is cancelled, whichever comes first.
// Returns ctx.Err() when cancelled.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
