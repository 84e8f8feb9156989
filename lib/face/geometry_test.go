// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package face

import (
	"math"
	"sort"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

const tolerance = 1e-9

var approx = cmpopts.EquateApprox(0, tolerance)

func TestTickMarksCountAndEmphasis(t *testing.T) {
	marks := TickMarks(Point{X: 100, Y: 100}, 100)
	if len(marks) != TickCount || TickCount != 60 {
		t.Fatalf("got %d marks (TickCount %d), want 60", len(marks), TickCount)
	}

	emphasized := 0
	for index, mark := range marks {
		if mark.Angle != index*6 {
			t.Fatalf("mark %d angle = %d, want %d", index, mark.Angle, index*6)
		}
		want := mark.Angle%90 == 0 || mark.Angle%15 == 0
		if mark.Emphasized != want {
			t.Errorf("angle %d: Emphasized = %v, want %v", mark.Angle, mark.Emphasized, want)
		}
		if mark.Emphasized {
			emphasized++
			if mark.Alpha() != 255 {
				t.Errorf("angle %d: Alpha = %d, want 255", mark.Angle, mark.Alpha())
			}
		} else if mark.Alpha() != 140 {
			t.Errorf("angle %d: Alpha = %d, want 140", mark.Angle, mark.Alpha())
		}
	}
	if emphasized != 24 {
		t.Fatalf("got %d emphasized marks, want 24", emphasized)
	}
}

func TestTickMarksRadii(t *testing.T) {
	center := Point{X: 50, Y: 70}
	const radius = 200.0
	for _, mark := range TickMarks(center, radius) {
		if got := Distance(center, mark.Start); math.Abs(got-radius*0.99) > tolerance {
			t.Errorf("angle %d: start distance %v, want %v", mark.Angle, got, radius*0.99)
		}
		if got := Distance(center, mark.End); math.Abs(got-radius*0.95) > tolerance {
			t.Errorf("angle %d: end distance %v, want %v", mark.Angle, got, radius*0.95)
		}
	}
}

func TestTickMarkAtZeroPointsRight(t *testing.T) {
	marks := TickMarks(Point{}, 100)
	want := TickMark{Angle: 0, Start: Point{X: 99}, End: Point{X: 95}, Emphasized: true}
	if diff := cmp.Diff(want, marks[0], approx); diff != "" {
		t.Fatalf("first mark mismatch (-want +got):\n%s", diff)
	}
}

func TestHourLabels(t *testing.T) {
	center := Point{X: 0, Y: 0}
	const radius = 70.0
	labels := HourLabels(center, radius)
	if len(labels) != 12 {
		t.Fatalf("got %d labels, want 12", len(labels))
	}

	var texts []string
	for _, label := range labels {
		texts = append(texts, label.Text)
		if label.Rotation != 0 {
			t.Errorf("label %s rotation = %v, want 0", label.Text, label.Rotation)
		}
		if got := Distance(center, label.Anchor); math.Abs(got-55) > tolerance {
			t.Errorf("label %s distance = %v, want 55", label.Text, got)
		}
	}
	sort.Slice(texts, func(i, j int) bool {
		a, _ := strconv.Atoi(texts[i])
		b, _ := strconv.Atoi(texts[j])
		return a < b
	})
	want := []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12"}
	if diff := cmp.Diff(want, texts); diff != "" {
		t.Fatalf("label texts mismatch (-want +got):\n%s", diff)
	}
}

func TestHourLabelPositions(t *testing.T) {
	center := Point{X: 0, Y: 0}
	const radius = 70.0
	byText := map[string]Point{}
	for _, label := range HourLabels(center, radius) {
		byText[label.Text] = label.Anchor
	}

	want := map[string]Point{
		"12": {X: 0, Y: -55},
		"3":  {X: 55, Y: 0},
		"6":  {X: 0, Y: 55},
		"9":  {X: -55, Y: 0},
	}
	for text, point := range want {
		if diff := cmp.Diff(point, byText[text], approx); diff != "" {
			t.Errorf("label %s anchor mismatch (-want +got):\n%s", text, diff)
		}
	}

	first := HourLabels(center, radius)[0]
	if first.Text != "6" {
		t.Fatalf("first label = %q, want \"6\"", first.Text)
	}
}

func TestNeedleLengths(t *testing.T) {
	center := Point{X: 12, Y: -4}
	for _, radius := range []float64{1, 37.5, 100, 1080} {
		for _, sample := range []SampledTime{
			{Hour: 0, Minute: 0, Second: 0},
			{Hour: 7, Minute: 43, Second: 19},
			{Hour: 11, Minute: 59, Second: 59},
		} {
			needles := Needles(sample, center, radius)
			checks := []struct {
				name string
				end  Point
				want float64
			}{
				{"hour", needles.Hour, 0.5 * radius},
				{"minute", needles.Minute, 0.7 * radius},
				{"second", needles.Second, 0.7 * radius},
			}
			for _, check := range checks {
				if got := Distance(center, check.end); math.Abs(got-check.want) > 1e-9*radius {
					t.Errorf("R=%v %+v %s needle length = %v, want %v", radius, sample, check.name, got, check.want)
				}
			}
		}
	}
}

func TestNeedleDirections(t *testing.T) {
	center := Point{X: 0, Y: 0}
	const radius = 100.0

	tests := []struct {
		name   string
		sample SampledTime
		want   NeedleSet
	}{
		{
			name:   "midnight points up",
			sample: SampledTime{},
			want: NeedleSet{
				Hour:   Point{X: 0, Y: -50},
				Minute: Point{X: 0, Y: -70},
				Second: Point{X: 0, Y: -70},
			},
		},
		{
			name:   "three o'clock hour points right",
			sample: SampledTime{Hour: 3},
			want: NeedleSet{
				Hour:   Point{X: 50, Y: 0},
				Minute: Point{X: 0, Y: -70},
				Second: Point{X: 0, Y: -70},
			},
		},
		{
			name:   "half past with thirty seconds",
			sample: SampledTime{Hour: 6, Minute: 30, Second: 45},
			want: NeedleSet{
				// 6 + (30/12)*0.2 = 6.4 hours → 102°.
				Hour:   Polar(center, 50, 102),
				Minute: Point{X: 0, Y: 70},
				Second: Point{X: -70, Y: 0},
			},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := Needles(test.sample, center, radius)
			if diff := cmp.Diff(test.want, got, approx); diff != "" {
				t.Fatalf("needles mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestHourAngleStepsEveryTwelveMinutes(t *testing.T) {
	tests := []struct {
		minute int
		want   float64
	}{
		{0, -90},
		{11, -90},
		{12, -84},
		{23, -84},
		{24, -78},
		{59, -66},
	}
	for _, test := range tests {
		got := HourAngle(SampledTime{Minute: test.minute})
		if math.Abs(got-test.want) > tolerance {
			t.Errorf("minute %d: HourAngle = %v, want %v", test.minute, got, test.want)
		}
	}
	if got := HourAngle(SampledTime{Hour: 3}); got != 0 {
		t.Errorf("HourAngle(3:00) = %v, want 0", got)
	}
}

func TestZeroRadiusCollapsesToCenter(t *testing.T) {
	center := Point{X: 40, Y: 30}
	frame := Compose(SampledTime{Hour: 4, Minute: 20, Second: 10, Meridiem: PM}, center, 0)

	for _, mark := range frame.Ticks {
		if mark.Start != center || mark.End != center {
			t.Fatalf("angle %d mark not collapsed: %+v", mark.Angle, mark)
		}
	}
	for _, label := range frame.Labels {
		if label.Anchor != center {
			t.Fatalf("label %s not collapsed: %+v", label.Text, label.Anchor)
		}
	}
	for _, end := range []Point{frame.Needles.Hour, frame.Needles.Minute, frame.Needles.Second} {
		if end != center {
			t.Fatalf("needle not collapsed: %+v", end)
		}
	}
	if frame.Dot.Center != center {
		t.Fatalf("dot center = %+v, want %+v", frame.Dot.Center, center)
	}
}

func TestDot(t *testing.T) {
	want := CenterDot{Center: Point{X: 3, Y: 4}, Radius: 10}
	if diff := cmp.Diff(want, Dot(Point{X: 3, Y: 4})); diff != "" {
		t.Fatalf("dot mismatch (-want +got):\n%s", diff)
	}
}

func TestDigitalTimeString(t *testing.T) {
	tests := []struct {
		sample SampledTime
		want   string
	}{
		{SampledTime{Hour: 1, Minute: 2, Second: 3, Meridiem: AM}, "01:02:03AM"},
		{SampledTime{Hour: 11, Minute: 59, Second: 59, Meridiem: PM}, "11:59:59PM"},
		{SampledTime{Hour: 0, Minute: 0, Second: 0, Meridiem: PM}, "00:00:00PM"},
	}
	for _, test := range tests {
		if got := DigitalTimeString(test.sample); got != test.want {
			t.Errorf("DigitalTimeString(%+v) = %q, want %q", test.sample, got, test.want)
		}
	}
}

func TestComposeIsDeterministic(t *testing.T) {
	sample := SampledTime{Hour: 9, Minute: 15, Second: 42, Meridiem: AM}
	first := Compose(sample, Point{X: 10, Y: 10}, 10)
	second := Compose(sample, Point{X: 10, Y: 10}, 10)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("Compose is not deterministic (-first +second):\n%s", diff)
	}
	if len(first.Ticks) != 60 || len(first.Labels) != 12 {
		t.Fatalf("frame has %d ticks and %d labels, want 60 and 12", len(first.Ticks), len(first.Labels))
	}
}

func TestFitSquare(t *testing.T) {
	tests := []struct {
		width, height float64
		center        Point
		radius        float64
	}{
		{200, 100, Point{X: 50, Y: 50}, 50},
		{80, 300, Point{X: 40, Y: 40}, 40},
		{0, 10, Point{}, 0},
	}
	for _, test := range tests {
		center, radius := FitSquare(test.width, test.height)
		if center != test.center || radius != test.radius {
			t.Errorf("FitSquare(%v, %v) = %+v, %v; want %+v, %v",
				test.width, test.height, center, radius, test.center, test.radius)
		}
	}
}
