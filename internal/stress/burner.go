// Package stress implements the CPU load generator service.
package stress

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// Burner tracks in-flight busy-loop workers.
type Burner struct {
	active atomic.Int64
}

func NewBurner() *Burner {
	return &Burner{}
}

// Active reports how many workers are currently burning.
func (b *Burner) Active() int64 {
	return b.active.Load()
}

// Burn launches workers goroutines that keep a core busy until the duration
// elapses or ctx is cancelled. It returns immediately; the returned wait
// function blocks until all workers stop (tests use it, the handler does not).
func (b *Burner) Burn(ctx context.Context, duration time.Duration, workers int) func() {
	var wg sync.WaitGroup
	deadline := time.Now().Add(duration)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		b.active.Add(1)
		go func() {
			defer wg.Done()
			defer b.active.Add(-1)
			spin(ctx, deadline)
		}()
	}
	return wg.Wait
}

func spin(ctx context.Context, deadline time.Time) {
	// Check the clock and the context only every so many iterations to
	// keep the loop itself the dominant cost.
	const checkEvery = 1 << 16
	x := 12345
	for {
		for i := 0; i < checkEvery; i++ {
			x *= 67890
		}
		_ = x
		if time.Now().After(deadline) {
			return
		}
		select {
		case <-ctx.Done():
			return
		default:
		}
	}
}
