// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package face

import (
	"time"

	"github.com/bureau-foundation/clockface/lib/clock"
)

// Meridiem is the AM/PM half of a 12-hour reading.
type Meridiem int

const (
	AM Meridiem = iota
	PM
)

func (m Meridiem) String() string {
	if m == PM {
		return "PM"
	}
	return "AM"
}

// SampledTime is one clock reading in 12-hour form. Hour is 0–11, with 0
// standing for twelve o'clock.
type SampledTime struct {
	Hour     int
	Minute   int
	Second   int
	Meridiem Meridiem
}

// SampleTime decomposes t in its own location.
func SampleTime(t time.Time) SampledTime {
	hour, minute, second := t.Clock()
	meridiem := AM
	if hour >= 12 {
		meridiem = PM
	}
	return SampledTime{
		Hour:     hour % 12,
		Minute:   minute,
		Second:   second,
		Meridiem: meridiem,
	}
}

// Sampler reads a Clock and converts the reading to a fixed location.
type Sampler struct {
	clock    clock.Clock
	location *time.Location
}

// NewSampler returns a Sampler over source in location. A nil location
// means time.Local. A clock face cannot work without a clock, so a nil
// source panics rather than returning an error.
func NewSampler(source clock.Clock, location *time.Location) *Sampler {
	if source == nil {
		panic("face: NewSampler called with a nil clock")
	}
	if location == nil {
		location = time.Local
	}
	return &Sampler{clock: source, location: location}
}

// Sample reads the clock once.
func (s *Sampler) Sample() SampledTime {
	return SampleTime(s.clock.Now().In(s.location))
}

// Location returns the zone readings are converted to.
func (s *Sampler) Location() *time.Location { return s.location }
