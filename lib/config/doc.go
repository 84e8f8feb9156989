// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config loads clockface configuration from YAML.
//
// Configuration comes from exactly one file, named either by the
// CLOCKFACE_CONFIG environment variable (via [Load]) or by a --config
// flag (via [LoadFile]). There is no search path. Running without a
// file uses [Default]. The style section sizes strokes for a pixel
// surface; the terminal section carries the thin needles and one-cell
// center dot used on the character grid, whose cells are twice as tall
// as they are wide.
//
// Colors are written as "#rrggbb" or "#rrggbbaa". The redraw interval
// is a Go duration string ("1s", "500ms"). The time zone is an IANA name
// or "Local".
//
// [Config.Validate] reports every problem at once. [Config.WidgetStyle]
// produces the widget.Style for device surfaces and
// [Config.TerminalStyle] the one for the terminal.
package config
