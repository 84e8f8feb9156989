// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package redraw keeps a clock face repainting once per interval.
//
// A [Scheduler] is a two-state machine (Idle, Scheduled) bound to a
// [Host]. Arm starts a single one-shot timer; when it fires the
// scheduler returns to Idle, asks the host to invalidate, and re-arms.
// There is never more than one outstanding timer, so redraw signals
// arrive in the order they were scheduled. Re-arming happens after the
// callback, so drift accumulates by the scheduling overhead each cycle;
// sub-second drift on a seconds display is not visible.
//
// Teardown is explicit: Stop cancels the pending timer and refuses all
// later arming, and a timer that fires after Stop, or after the host
// reports it is no longer alive, does nothing.
//
// [Every] wraps the same machinery as a generic cancellable periodic
// task for callers that have a callback rather than a host.
package redraw
