// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package clock

import (
	"sort"
	"sync"
	"time"
)

// Fake returns a FakeClock set to initial. Time moves only when Advance
// is called.
//
// FakeClock is safe for concurrent use.
func Fake(initial time.Time) *FakeClock {
	clock := &FakeClock{current: initial}
	clock.timersChanged = sync.NewCond(&clock.mu)
	return clock
}

// FakeClock is a deterministic Clock for tests. AfterFunc callbacks run
// synchronously inside Advance, in deadline order, so a callback that
// re-arms itself is picked up by the same Advance when the new deadline
// still falls inside the advanced window. Do not call Advance from a
// callback.
type FakeClock struct {
	mu            sync.Mutex
	current       time.Time
	timers        []*fakeTimer
	timersChanged *sync.Cond
}

type fakeTimer struct {
	deadline time.Time
	callback func()
	stopped  bool
	fired    bool
}

// Now returns the current fake time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// AfterFunc registers f to run once the clock has advanced by d. If
// d <= 0, f runs before AfterFunc returns and the Timer is inert.
func (c *FakeClock) AfterFunc(d time.Duration, f func()) *Timer {
	if d <= 0 {
		f()
		return &Timer{stopFunc: func() bool { return false }}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	timer := &fakeTimer{
		deadline: c.current.Add(d),
		callback: f,
	}
	c.timers = append(c.timers, timer)
	c.timersChanged.Broadcast()

	return &Timer{
		stopFunc: func() bool {
			c.mu.Lock()
			defer c.mu.Unlock()
			if timer.stopped || timer.fired {
				return false
			}
			timer.stopped = true
			c.timersChanged.Broadcast()
			return true
		},
	}
}

// Set moves the clock to t without firing timers. Use it to jump the
// wall-clock reading between samples; use Advance to drive timers.
func (c *FakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = t
}

// Advance moves the clock forward by d and runs every callback whose
// deadline is at or before the new time. The clock reads each timer's
// own deadline while its callback runs, so a callback that re-arms for
// the same interval schedules relative to when it was due.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.current.Add(d)
	c.mu.Unlock()

	for {
		timer := c.nextExpired(target)
		if timer == nil {
			break
		}
		timer.callback()
	}

	c.mu.Lock()
	c.current = target
	c.mu.Unlock()
}

// nextExpired removes and returns the earliest unstopped timer due at
// or before target, moving the clock to its deadline. Returns nil when
// none is due.
func (c *FakeClock) nextExpired(target time.Time) *fakeTimer {
	c.mu.Lock()
	defer c.mu.Unlock()

	remaining := c.timers[:0]
	for _, timer := range c.timers {
		if !timer.stopped {
			remaining = append(remaining, timer)
		}
	}
	c.timers = remaining

	sort.SliceStable(c.timers, func(i, j int) bool {
		return c.timers[i].deadline.Before(c.timers[j].deadline)
	})
	if len(c.timers) == 0 || c.timers[0].deadline.After(target) {
		return nil
	}

	timer := c.timers[0]
	c.timers = c.timers[1:]
	timer.fired = true
	if timer.deadline.After(c.current) {
		c.current = timer.deadline
	}
	c.timersChanged.Broadcast()
	return timer
}

// WaitForTimers blocks until at least n timers are pending. It closes
// the race between a goroutine registering a timer and the test
// advancing the clock.
func (c *FakeClock) WaitForTimers(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for c.pendingLocked() < n {
		c.timersChanged.Wait()
	}
}

// PendingTimers returns the number of timers that have neither fired
// nor been stopped.
func (c *FakeClock) PendingTimers() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pendingLocked()
}

func (c *FakeClock) pendingLocked() int {
	count := 0
	for _, timer := range c.timers {
		if !timer.stopped && !timer.fired {
			count++
		}
	}
	return count
}
