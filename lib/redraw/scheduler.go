// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package redraw

import (
	"log/slog"
	"sync"
	"time"

	"github.com/bureau-foundation/clockface/lib/clock"
)

// DefaultInterval is the redraw period for a seconds display.
const DefaultInterval = time.Second

// Host is the view being kept fresh.
type Host interface {
	// Invalidate requests a repaint. Called from the timer goroutine;
	// hosts with a UI thread must hand the request over to it.
	Invalidate()

	// Alive reports whether the view still exists. Once it returns
	// false the scheduler stops for good.
	Alive() bool
}

// State is the scheduler's position in its state machine.
type State int

const (
	// Idle: no redraw is pending.
	Idle State = iota
	// Scheduled: one timer is armed.
	Scheduled
)

func (s State) String() string {
	if s == Scheduled {
		return "scheduled"
	}
	return "idle"
}

// Options configures a Scheduler. The zero value is usable.
type Options struct {
	// Interval between redraws. Zero or negative means DefaultInterval.
	Interval time.Duration

	// Logger receives lifecycle records at debug level. Nil discards.
	Logger *slog.Logger
}

// Scheduler drives periodic redraws of one Host. It is safe for
// concurrent use: timers fire on their own goroutine while the host may
// arm or stop from its UI goroutine.
type Scheduler struct {
	clock    clock.Clock
	host     Host
	interval time.Duration
	logger   *slog.Logger

	mu      sync.Mutex
	state   State
	timer   *clock.Timer
	stopped bool
	// generation identifies the armed timer. A fire whose generation
	// no longer matches was superseded by Stop and is dropped.
	generation uint64
	signals    uint64
}

// NewScheduler returns an Idle scheduler for host. Call Arm to start.
func NewScheduler(source clock.Clock, host Host, options Options) *Scheduler {
	interval := options.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	logger := options.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Scheduler{
		clock:    source,
		host:     host,
		interval: interval,
		logger:   logger,
	}
}

// Arm moves Idle to Scheduled and starts the one-shot timer. It returns
// false, doing nothing, when a timer is already pending, the scheduler
// was stopped, or the host is gone.
func (s *Scheduler) Arm() bool {
	if !s.host.Alive() {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped || s.state == Scheduled {
		return false
	}

	s.generation++
	generation := s.generation
	s.state = Scheduled
	s.timer = s.clock.AfterFunc(s.interval, func() { s.fire(generation) })
	return true
}

func (s *Scheduler) fire(generation uint64) {
	s.mu.Lock()
	if s.stopped || generation != s.generation {
		s.mu.Unlock()
		return
	}
	s.state = Idle
	s.timer = nil
	s.mu.Unlock()

	if !s.host.Alive() {
		s.logger.Debug("host no longer alive, halting redraws")
		s.Stop()
		return
	}

	// Stop may have run while Alive was being asked. An invalidate
	// that has already begun is not interrupted.
	s.mu.Lock()
	stopped := s.stopped
	s.mu.Unlock()
	if stopped {
		return
	}

	s.host.Invalidate()

	s.mu.Lock()
	s.signals++
	s.mu.Unlock()

	s.Arm()
}

// Stop cancels any pending redraw and prevents future arming. No
// Invalidate begins after Stop returns; one already in progress on the
// timer goroutine runs to completion. Stop is idempotent.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	s.stopped = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.generation++
	s.state = Idle
	s.logger.Debug("redraw scheduler stopped", "signals", s.signals)
}

// State returns the current state.
func (s *Scheduler) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Stopped reports whether Stop has run, either explicitly or because
// the host went away.
func (s *Scheduler) Stopped() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stopped
}

// Signals returns how many times the host has been invalidated.
func (s *Scheduler) Signals() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.signals
}

// Interval returns the redraw period.
func (s *Scheduler) Interval() time.Duration { return s.interval }
