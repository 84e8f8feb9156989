// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package widget

import (
	"sync"
	"sync/atomic"

	"github.com/bureau-foundation/clockface/lib/face"
)

// Invalidator receives redraw requests from the widget.
type Invalidator interface {
	Invalidate()
}

// Widget draws an analog or digital clock. Its mode flag may be read and
// written from any goroutine.
type Widget struct {
	style   Style
	sampler *face.Sampler

	showAnalog atomic.Bool

	mu          sync.Mutex
	invalidator Invalidator
}

// New returns a widget in analog mode.
func New(sampler *face.Sampler, style Style) *Widget {
	widget := &Widget{style: style, sampler: sampler}
	widget.showAnalog.Store(true)
	return widget
}

// SetInvalidator sets where redraw requests go. Nil drops them.
func (w *Widget) SetInvalidator(invalidator Invalidator) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.invalidator = invalidator
}

// SetShowAnalog selects analog (true) or digital (false) mode and
// requests one redraw. The request is issued even when the mode does
// not change.
func (w *Widget) SetShowAnalog(show bool) {
	w.showAnalog.Store(show)
	w.invalidate()
}

// ShowAnalog reports whether the widget is in analog mode.
func (w *Widget) ShowAnalog() bool { return w.showAnalog.Load() }

// Toggle flips the mode, requests a redraw, and returns the new mode.
// Concurrent toggles each flip exactly once.
func (w *Widget) Toggle() bool {
	for {
		current := w.showAnalog.Load()
		if w.showAnalog.CompareAndSwap(current, !current) {
			w.invalidate()
			return !current
		}
	}
}

// Style returns the widget's style.
func (w *Widget) Style() Style { return w.style }

func (w *Widget) invalidate() {
	w.mu.Lock()
	invalidator := w.invalidator
	w.mu.Unlock()
	if invalidator != nil {
		invalidator.Invalidate()
	}
}

// Draw samples the clock once and paints the current mode onto a
// width×height surface. It returns the reading it drew.
func (w *Widget) Draw(renderer Renderer, width, height float64) face.SampledTime {
	sample := w.sampler.Sample()
	w.DrawTime(renderer, sample, width, height)
	return sample
}

// DrawTime paints sample without reading the clock.
func (w *Widget) DrawTime(renderer Renderer, sample face.SampledTime, width, height float64) {
	center, radius := face.FitSquare(width, height)
	if w.showAnalog.Load() {
		w.drawAnalog(renderer, face.Compose(sample, center, radius))
	} else {
		w.drawDigital(renderer, sample, center, radius)
	}
}

func (w *Widget) drawAnalog(renderer Renderer, frame face.Frame) {
	faceWidth := frame.Radius * 2

	tickWidth := faceWidth * w.style.TickStrokeFraction
	for _, mark := range frame.Ticks {
		alpha := uint8(face.FullAlpha)
		if !mark.Emphasized {
			alpha = w.style.DimAlpha
		}
		renderer.DrawLine(mark.Start, mark.End, Stroke{
			Width: tickWidth,
			Color: withAlpha(w.style.DegreesColor, alpha),
		})
	}

	for _, label := range frame.Labels {
		renderer.DrawText(label.Text, label.Anchor, TextStyle{
			Size:     w.style.LabelTextSize,
			Color:    w.style.HoursValuesColor,
			Rotation: label.Rotation,
		})
	}

	renderer.DrawLine(frame.Center, frame.Needles.Hour, Stroke{Width: w.style.HourNeedleWidth, Color: w.style.HoursNeedleColor})
	renderer.DrawLine(frame.Center, frame.Needles.Minute, Stroke{Width: w.style.MinuteNeedleWidth, Color: w.style.MinutesNeedleColor})
	renderer.DrawLine(frame.Center, frame.Needles.Second, Stroke{Width: w.style.SecondNeedleWidth, Color: w.style.SecondsNeedleColor})

	dotRadius := frame.Dot.Radius
	if w.style.DotRadius > 0 {
		dotRadius = w.style.DotRadius
	}
	renderer.FillCircle(frame.Dot.Center, dotRadius, w.style.CenterOuterColor)
	renderer.FillCircle(frame.Dot.Center, dotRadius/2, w.style.CenterInnerColor)
}

func (w *Widget) drawDigital(renderer Renderer, sample face.SampledTime, center face.Point, radius float64) {
	renderer.DrawText(face.DigitalTimeString(sample), center, TextStyle{
		Size:         radius * 2 * w.style.DigitalTextFraction,
		Color:        w.style.NumbersColor,
		SuffixLength: 2,
		SuffixScale:  w.style.SuffixScale,
	})
}
