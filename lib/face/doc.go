// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package face computes the geometry of an analog clock face.
//
// [Sampler] reads the current time once per frame and decomposes it into
// a [SampledTime]. The geometry functions ([TickMarks], [HourLabels],
// [Needles], [Dot], [DigitalTimeString], and [Compose] which bundles
// them) are pure: given the same sampled time, center, and radius they
// return the same shapes, and they hold no state between frames.
//
// Coordinates are device coordinates with Y growing downward. Angles are
// in degrees and increase clockwise on screen: 0° points at 3 o'clock
// and −90° at 12 o'clock. A radius of zero collapses every shape onto
// the center; no computation divides by the radius, and negative radii
// are passed through unvalidated.
//
// Nothing here draws. Renderers consume a [Frame] and paint it.
package face
