// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package termface shows the clock face in a terminal.
//
// [Canvas] is a widget.Renderer over a grid of character cells. Device
// coordinates map one unit to one column horizontally; vertically a row
// spans Aspect units, since terminal cells are roughly twice as tall as
// they are wide. Lines become slope glyphs, translucent strokes become
// dots, circles fill cells, and text is centered on its anchor.
//
// [Model] is a bubbletea model around a widget.Widget, and [Host] is the
// redraw.Host that turns scheduler ticks into bubbletea messages.
// Quitting closes the host and stops the scheduler, so no timer outlives
// the program.
package termface
