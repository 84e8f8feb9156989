// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package widget

import (
	"image/color"

	"github.com/bureau-foundation/clockface/lib/face"
)

var (
	// White is the default primary color.
	White = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	// LightGray is the default secondary color.
	LightGray = color.RGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff}
)

// Style holds every color and size the widget draws with. Sizes are in
// device units unless the field name says Fraction, in which case they
// scale with the face width (twice the radius).
type Style struct {
	CenterInnerColor   color.RGBA
	CenterOuterColor   color.RGBA
	SecondsNeedleColor color.RGBA
	HoursNeedleColor   color.RGBA
	MinutesNeedleColor color.RGBA
	DegreesColor       color.RGBA
	HoursValuesColor   color.RGBA
	NumbersColor       color.RGBA

	// TickStrokeFraction is the tick mark stroke width.
	TickStrokeFraction float64

	HourNeedleWidth   float64
	MinuteNeedleWidth float64
	SecondNeedleWidth float64

	// DotRadius overrides the center dot radius when positive. Zero
	// draws the geometry's fixed radius. The inner dot is half of it.
	DotRadius float64

	LabelTextSize float64

	// DigitalTextFraction is the digital readout text size.
	DigitalTextFraction float64
	// SuffixScale shrinks the AM/PM suffix of the digital readout.
	SuffixScale float64

	// DimAlpha is the opacity of ticks off the 15° grid.
	DimAlpha uint8
}

// DefaultStyle returns white needles, ticks and numerals over a light
// gray seconds needle and center, sized for a pixel surface.
func DefaultStyle() Style {
	return Style{
		CenterInnerColor:   LightGray,
		CenterOuterColor:   White,
		SecondsNeedleColor: LightGray,
		HoursNeedleColor:   White,
		MinutesNeedleColor: White,
		DegreesColor:       White,
		HoursValuesColor:   White,
		NumbersColor:       White,

		TickStrokeFraction: 0.010,

		HourNeedleWidth:   10,
		MinuteNeedleWidth: 10,
		SecondNeedleWidth: 5,

		DotRadius: face.DefaultDotRadius,

		LabelTextSize: 80,

		DigitalTextFraction: 0.2,
		SuffixScale:         0.3,

		DimAlpha: face.DimAlpha,
	}
}

func withAlpha(c color.RGBA, alpha uint8) color.RGBA {
	c.A = alpha
	return c
}
