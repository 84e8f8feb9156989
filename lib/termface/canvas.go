// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package termface

import (
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/bureau-foundation/clockface/lib/face"
	"github.com/bureau-foundation/clockface/lib/widget"
)

// DefaultAspect is the height of a terminal cell in column widths.
const DefaultAspect = 2.0

// Strokes at least this wide render bold.
const boldStrokeWidth = 2

const (
	dimGlyph    = '·'
	pointGlyph  = '•'
	circleGlyph = '●'
)

type cell struct {
	glyph rune
	color color.RGBA
	bold  bool
}

// Canvas rasterizes widget primitives into character cells. Later
// primitives overwrite earlier ones.
type Canvas struct {
	columns int
	rows    int
	aspect  float64
	cells   []cell
}

// NewCanvas returns a blank columns×rows canvas. A non-positive aspect
// means DefaultAspect.
func NewCanvas(columns, rows int, aspect float64) *Canvas {
	columns = max(columns, 0)
	rows = max(rows, 0)
	if aspect <= 0 {
		aspect = DefaultAspect
	}
	return &Canvas{
		columns: columns,
		rows:    rows,
		aspect:  aspect,
		cells:   make([]cell, columns*rows),
	}
}

// Size returns the canvas extent in device units.
func (c *Canvas) Size() (width, height float64) {
	return float64(c.columns), float64(c.rows) * c.aspect
}

func (c *Canvas) set(column, row int, value cell) {
	if column < 0 || row < 0 || column >= c.columns || row >= c.rows {
		return
	}
	c.cells[row*c.columns+column] = value
}

func (c *Canvas) cellOf(point face.Point) (column, row int) {
	return int(math.Floor(point.X)), int(math.Floor(point.Y / c.aspect))
}

// Glyph returns the rune at column, row, or a space when the cell is
// empty or out of range.
func (c *Canvas) Glyph(column, row int) rune {
	if column < 0 || row < 0 || column >= c.columns || row >= c.rows {
		return ' '
	}
	if glyph := c.cells[row*c.columns+column].glyph; glyph != 0 {
		return glyph
	}
	return ' '
}

func (c *Canvas) DrawLine(from, to face.Point, stroke widget.Stroke) {
	dx := to.X - from.X
	dy := to.Y - from.Y
	glyph := lineGlyph(dx, dy/c.aspect)
	if stroke.Color.A < 0xff {
		glyph = dimGlyph
	}
	value := cell{glyph: glyph, color: stroke.Color, bold: stroke.Width >= boldStrokeWidth}

	// Two samples per cell in the longer direction leaves no gaps.
	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy/c.aspect)) * 2))
	if steps == 0 {
		column, row := c.cellOf(from)
		c.set(column, row, value)
		return
	}
	for step := 0; step <= steps; step++ {
		fraction := float64(step) / float64(steps)
		column, row := c.cellOf(face.Point{X: from.X + dx*fraction, Y: from.Y + dy*fraction})
		c.set(column, row, value)
	}
}

// lineGlyph picks a character for a line with the given extent in cell
// units. Y grows downward, so a line heading down and right is '\'.
func lineGlyph(columns, rows float64) rune {
	absColumns, absRows := math.Abs(columns), math.Abs(rows)
	switch {
	case absColumns == 0 && absRows == 0:
		return pointGlyph
	case absRows <= absColumns*0.4:
		return '-'
	case absColumns <= absRows*0.4:
		return '|'
	case (columns > 0) == (rows > 0):
		return '\\'
	default:
		return '/'
	}
}

func (c *Canvas) FillCircle(center face.Point, radius float64, fill color.RGBA) {
	value := cell{glyph: circleGlyph, color: fill}
	column, row := c.cellOf(center)
	c.set(column, row, value)
	if radius <= 0 {
		return
	}

	minColumn, minRow := c.cellOf(face.Point{X: center.X - radius, Y: center.Y - radius})
	maxColumn, maxRow := c.cellOf(face.Point{X: center.X + radius, Y: center.Y + radius})
	for row := minRow; row <= maxRow; row++ {
		for column := minColumn; column <= maxColumn; column++ {
			cellCenter := face.Point{X: float64(column) + 0.5, Y: (float64(row) + 0.5) * c.aspect}
			if face.Distance(center, cellCenter) <= radius {
				c.set(column, row, value)
			}
		}
	}
}

// DrawText centers text on anchor in a single row. Size and rotation are
// ignored: a terminal has one font size and no rotation.
func (c *Canvas) DrawText(text string, anchor face.Point, style widget.TextStyle) {
	column, row := c.cellOf(anchor)
	column -= ansi.StringWidth(text) / 2
	for _, glyph := range text {
		c.set(column, row, cell{glyph: glyph, color: style.Color, bold: true})
		column++
	}
}

// String renders the canvas as rows of styled text joined by newlines.
// Runs of cells with the same style share one escape sequence.
func (c *Canvas) String() string {
	var builder strings.Builder
	for row := range c.rows {
		if row > 0 {
			builder.WriteByte('\n')
		}
		line := c.cells[row*c.columns : (row+1)*c.columns]
		for start := 0; start < len(line); {
			end := start + 1
			for end < len(line) && line[end].color == line[start].color && line[end].bold == line[start].bold && (line[end].glyph == 0) == (line[start].glyph == 0) {
				end++
			}
			builder.WriteString(renderRun(line[start:end]))
			start = end
		}
	}
	return builder.String()
}

func renderRun(run []cell) string {
	if run[0].glyph == 0 {
		return strings.Repeat(" ", len(run))
	}
	var text strings.Builder
	for _, value := range run {
		text.WriteRune(value.glyph)
	}
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(widget.HexColor(opaque(run[0].color)))).
		Bold(run[0].bold).
		Faint(run[0].color.A < 0xff)
	return style.Render(text.String())
}

func opaque(c color.RGBA) color.RGBA {
	c.A = 0xff
	return c
}
