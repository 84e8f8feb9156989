// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil holds shared test helpers.
//
// [RequireReceive] and [RequireQuiet] wrap the select-with-timeout
// pattern for tests that run against the real clock. Everything else in
// the test suite drives time through clock.Fake; these two are the only
// places a wall-clock timeout appears.
//
// Helpers call t.Fatalf on failure rather than returning errors.
package testutil
