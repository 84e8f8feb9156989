// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package face

import (
	"fmt"
	"math"
	"strconv"
)

const (
	fullAngle  = 360
	tickStep   = 6
	rightAngle = 90
	// Ticks at multiples of this angle (and of rightAngle) are emphasized.
	emphasisStep = 15

	// TickCount is the number of marks around the rim: one per 6°.
	TickCount = fullAngle / tickStep

	// Tick insets from the rim, as fractions of the radius. The mark
	// runs from R−0.01R inward to R−0.05R.
	tickOuterInset = 0.01
	tickInnerInset = 0.05

	// Hour labels sit on a circle of radius R·5.5/7.
	labelDistance = 5.5 / 7

	hourNeedleLength   = 0.5
	minuteNeedleLength = 0.7
	secondNeedleLength = 0.7

	// DefaultDotRadius is the center dot radius in device units. It does
	// not scale with the face.
	DefaultDotRadius = 10

	// FullAlpha and DimAlpha are the opacities of emphasized and
	// ordinary tick marks.
	FullAlpha = 255
	DimAlpha  = 140
)

// Point is a position in device coordinates.
type Point struct {
	X, Y float64
}

// Polar returns center + radius·(cos θ, sin θ) for θ in degrees.
func Polar(center Point, radius, degrees float64) Point {
	radians := degrees * math.Pi / 180
	return Point{
		X: center.X + radius*math.Cos(radians),
		Y: center.Y + radius*math.Sin(radians),
	}
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// TickMark is one rim mark. Start is the outer end, End the inner end.
type TickMark struct {
	Angle      int
	Start, End Point
	Emphasized bool
}

// Alpha returns the opacity the mark is drawn at.
func (t TickMark) Alpha() uint8 {
	if t.Emphasized {
		return FullAlpha
	}
	return DimAlpha
}

// TickMarks returns the 60 rim marks at 0°, 6°, …, 354°. Marks on a 15°
// or 90° boundary are emphasized: 24 of the 60.
func TickMarks(center Point, radius float64) []TickMark {
	outer := radius - radius*tickOuterInset
	inner := radius - radius*tickInnerInset

	marks := make([]TickMark, 0, TickCount)
	for angle := 0; angle < fullAngle; angle += tickStep {
		marks = append(marks, TickMark{
			Angle:      angle,
			Start:      Polar(center, outer, float64(angle)),
			End:        Polar(center, inner, float64(angle)),
			Emphasized: angle%rightAngle == 0 || angle%emphasisStep == 0,
		})
	}
	return marks
}

// HourLabel is one numeral on the dial. Anchor is where the numeral is
// centered; Rotation is the numeral's own rotation, which is always zero
// because labels are drawn upright.
type HourLabel struct {
	Text     string
	Anchor   Point
	Rotation float64
}

// HourLabels returns the twelve numerals, starting with "6" at the
// bottom of the dial and proceeding clockwise 30° at a time.
func HourLabels(center Point, radius float64) []HourLabel {
	distance := radius * labelDistance
	labels := make([]HourLabel, 0, 12)
	for index := range 12 {
		value := (6 + index) % 12
		if value == 0 {
			value = 12
		}
		// 90° is straight down in device coordinates.
		angle := float64(rightAngle + index*30)
		labels = append(labels, HourLabel{
			Text:   strconv.Itoa(value),
			Anchor: Polar(center, distance, angle),
		})
	}
	return labels
}

// NeedleSet holds the far ends of the three needles. Every needle starts
// at the face center.
type NeedleSet struct {
	Hour   Point
	Minute Point
	Second Point
}

// HourAngle returns the hour needle angle in degrees. The needle moves
// 0.2 hour (6°) for every complete 12 minutes, not continuously.
func HourAngle(t SampledTime) float64 {
	hours := float64(t.Hour) + float64(t.Minute/12)*0.2
	return hours*30 - rightAngle
}

// MinuteAngle returns the minute needle angle in degrees.
func MinuteAngle(t SampledTime) float64 {
	return float64(t.Minute*6 - rightAngle)
}

// SecondAngle returns the second needle angle in degrees.
func SecondAngle(t SampledTime) float64 {
	return float64(t.Second*6 - rightAngle)
}

// Needles returns the needle endpoints for t on a face of the given
// center and radius.
func Needles(t SampledTime, center Point, radius float64) NeedleSet {
	return NeedleSet{
		Hour:   Polar(center, radius*hourNeedleLength, HourAngle(t)),
		Minute: Polar(center, radius*minuteNeedleLength, MinuteAngle(t)),
		Second: Polar(center, radius*secondNeedleLength, SecondAngle(t)),
	}
}

// CenterDot is the filled circle over the needle pivot.
type CenterDot struct {
	Center Point
	Radius float64
}

// Dot returns the center dot at its fixed default radius.
func Dot(center Point) CenterDot {
	return CenterDot{Center: center, Radius: DefaultDotRadius}
}

// DigitalTimeString formats t as HH:MM:SS followed directly by AM or PM.
func DigitalTimeString(t SampledTime) string {
	return fmt.Sprintf("%02d:%02d:%02d%s", t.Hour, t.Minute, t.Second, t.Meridiem)
}

// Frame is everything needed to paint one analog frame.
type Frame struct {
	Time    SampledTime
	Center  Point
	Radius  float64
	Ticks   []TickMark
	Labels  []HourLabel
	Needles NeedleSet
	Dot     CenterDot
}

// Compose computes the full frame for t.
func Compose(t SampledTime, center Point, radius float64) Frame {
	return Frame{
		Time:    t,
		Center:  center,
		Radius:  radius,
		Ticks:   TickMarks(center, radius),
		Labels:  HourLabels(center, radius),
		Needles: Needles(t, center, radius),
		Dot:     Dot(center),
	}
}

// FitSquare places the face in the largest square that fits a
// width×height surface, anchored at the top-left corner.
func FitSquare(width, height float64) (center Point, radius float64) {
	side := math.Min(width, height)
	half := side / 2
	return Point{X: half, Y: half}, half
}
