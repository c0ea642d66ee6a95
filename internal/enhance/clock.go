package enhance

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"
)

// Clock supplies wall time and the suspension points between ticks.
type Clock interface {
	Now() time.Time
	Sleep(ctx context.Context, d time.Duration) error
}

// Rand yields uniform values in [0,1).
type Rand interface {
	Float64() float64
}

// realClock sleeps on real timers.
type realClock struct{}

// Now returns local wall time.
func (realClock) Now() time.Time {
	return time.Now()
}

// Sleep waits for d or until ctx is done.
func (realClock) Sleep(ctx context.Context, d time.Duration) error {
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

// RealClock returns the wall-clock implementation.
func RealClock() Clock {
	return realClock{}
}

// InstantClock advances virtual time on Sleep without blocking.
type InstantClock struct {
	mu    sync.Mutex
	now   time.Time
	slept []time.Duration
}

// NewInstantClock starts virtual time at start.
func NewInstantClock(start time.Time) *InstantClock {
	return &InstantClock{now: start}
}

// Now returns the virtual time.
func (c *InstantClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Sleep records d and moves virtual time forward.
func (c *InstantClock) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
	c.slept = append(c.slept, d)
	return nil
}

// Slept returns every duration passed to Sleep, in order.
func (c *InstantClock) Slept() []time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]time.Duration(nil), c.slept...)
}

// lockedRand serializes access to a non-concurrent source.
type lockedRand struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// Float64 returns the next value in [0,1).
func (r *lockedRand) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Float64()
}

// NewRand returns a seeded source. Seed 0 draws a random seed.
func NewRand(seed uint64) Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &lockedRand{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}
