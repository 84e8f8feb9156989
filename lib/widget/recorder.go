// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package widget

import (
	"fmt"
	"image/color"

	"github.com/bureau-foundation/clockface/lib/face"
)

// OpKind names a recorded primitive.
type OpKind string

const (
	OpLine   OpKind = "line"
	OpCircle OpKind = "circle"
	OpText   OpKind = "text"
)

// Op is one recorded draw call. Only the fields relevant to Kind are
// set.
type Op struct {
	Kind   OpKind      `yaml:"kind"`
	From   *face.Point `yaml:"from,omitempty"`
	To     *face.Point `yaml:"to,omitempty"`
	Center *face.Point `yaml:"center,omitempty"`
	Radius float64     `yaml:"radius,omitempty"`
	Width  float64     `yaml:"width,omitempty"`
	Size   float64     `yaml:"size,omitempty"`
	Text   string      `yaml:"text,omitempty"`
	Color  string      `yaml:"color"`
}

// Recorder is a Renderer that keeps every call in order. It is not safe
// for concurrent use.
type Recorder struct {
	Ops []Op `yaml:"ops"`
}

func (r *Recorder) DrawLine(from, to face.Point, stroke Stroke) {
	r.Ops = append(r.Ops, Op{Kind: OpLine, From: &from, To: &to, Width: stroke.Width, Color: HexColor(stroke.Color)})
}

func (r *Recorder) FillCircle(center face.Point, radius float64, fill color.RGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpCircle, Center: &center, Radius: radius, Color: HexColor(fill)})
}

func (r *Recorder) DrawText(text string, anchor face.Point, style TextStyle) {
	r.Ops = append(r.Ops, Op{Kind: OpText, Center: &anchor, Text: text, Size: style.Size, Color: HexColor(style.Color)})
}

// Count returns how many recorded calls are of kind.
func (r *Recorder) Count(kind OpKind) int {
	count := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			count++
		}
	}
	return count
}

// Reset drops all recorded calls.
func (r *Recorder) Reset() { r.Ops = r.Ops[:0] }

// HexColor formats c as #rrggbb, or #rrggbbaa when not fully opaque.
func HexColor(c color.RGBA) string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}
