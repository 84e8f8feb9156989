// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package widget paints a clock face onto an injected [Renderer].
//
// A [Widget] owns the analog/digital mode flag and a [Style]; each call
// to Draw samples the clock once, computes the frame with package face,
// and issues line, circle, and text primitives. The widget keeps no
// drawing state between frames.
//
// Renderers are supplied by the host: package termface rasterizes to a
// terminal, and [Recorder] captures the primitives for inspection.
package widget
