// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock is the time source for the clock face. The sampler reads
// wall-clock time through it and the redraw scheduler arms its one-shot
// timers through it, so neither calls the time package directly.
//
// Production code passes Real(). Tests pass Fake(), which stands still
// until Advance is called:
//
//	c := clock.Fake(time.Date(2026, 1, 1, 9, 30, 0, 0, time.UTC))
//	scheduler := redraw.NewScheduler(c, host, redraw.Options{})
//	scheduler.Arm()
//	c.WaitForTimers(1)
//	c.Advance(time.Second) // fires the redraw synchronously
//
// WaitForTimers exists because a timer may be registered from another
// goroutine; tests block on it instead of sleeping.
package clock
