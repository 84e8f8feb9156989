// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package widget

import (
	"image/color"

	"github.com/bureau-foundation/clockface/lib/face"
)

// Stroke describes how a line is drawn. Opacity is Color.A.
type Stroke struct {
	Width float64
	Color color.RGBA
}

// TextStyle describes how a label is drawn. The anchor passed with it
// is the center of the text.
type TextStyle struct {
	Size     float64
	Color    color.RGBA
	Rotation float64

	// SuffixLength trailing characters are drawn at Size·SuffixScale.
	// Renderers without sized text ignore both fields.
	SuffixLength int
	SuffixScale  float64
}

// Renderer is a 2D drawing surface. Coordinates are absolute device
// coordinates with Y growing downward.
type Renderer interface {
	DrawLine(from, to face.Point, stroke Stroke)
	FillCircle(center face.Point, radius float64, fill color.RGBA)
	DrawText(text string, anchor face.Point, style TextStyle)
}
