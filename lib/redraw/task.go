// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package redraw

import (
	"sync/atomic"
	"time"

	"github.com/bureau-foundation/clockface/lib/clock"
)

// Handle controls a task started by Every.
type Handle struct {
	scheduler *Scheduler
	host      *callbackHost
}

// Every runs callback once per interval until the handle is cancelled.
// The first call happens one interval after Every returns. A
// non-positive interval means DefaultInterval.
func Every(source clock.Clock, interval time.Duration, callback func()) *Handle {
	host := &callbackHost{callback: callback}
	host.alive.Store(true)
	scheduler := NewScheduler(source, host, Options{Interval: interval})
	scheduler.Arm()
	return &Handle{scheduler: scheduler, host: host}
}

// Cancel stops future calls. A call already running completes; a timer
// that fires after Cancel does nothing.
func (h *Handle) Cancel() {
	h.host.alive.Store(false)
	h.scheduler.Stop()
}

// Runs returns how many times the callback has been invoked.
func (h *Handle) Runs() uint64 { return h.scheduler.Signals() }

type callbackHost struct {
	callback func()
	alive    atomic.Bool
}

func (h *callbackHost) Invalidate() { h.callback() }

func (h *callbackHost) Alive() bool { return h.alive.Load() }
