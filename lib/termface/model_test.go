// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package termface

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/bureau-foundation/clockface/lib/clock"
	"github.com/bureau-foundation/clockface/lib/face"
	"github.com/bureau-foundation/clockface/lib/redraw"
	"github.com/bureau-foundation/clockface/lib/widget"
)

type fixture struct {
	clock     *clock.FakeClock
	widget    *widget.Widget
	host      *Host
	scheduler *redraw.Scheduler
	model     Model
}

func terminalStyle() widget.Style {
	style := widget.DefaultStyle()
	style.DotRadius = 1
	style.HourNeedleWidth = 2
	style.MinuteNeedleWidth = 2
	style.SecondNeedleWidth = 1
	return style
}

func newFixture(t *testing.T, at time.Time) *fixture {
	t.Helper()
	fake := clock.Fake(at)
	clockWidget := widget.New(face.NewSampler(fake, time.UTC), terminalStyle())
	host := NewHost()
	scheduler := redraw.NewScheduler(fake, host, redraw.Options{})
	return &fixture{
		clock:     fake,
		widget:    clockWidget,
		host:      host,
		scheduler: scheduler,
		model:     NewModel(clockWidget, scheduler, host, ModelOptions{Aspect: 2}),
	}
}

func (f *fixture) update(t *testing.T, message tea.Msg) tea.Cmd {
	t.Helper()
	next, command := f.model.Update(message)
	f.model = next.(Model)
	return command
}

func TestModelInitArmsScheduler(t *testing.T) {
	f := newFixture(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	if f.model.Init() == nil {
		t.Fatal("Init() returned no command")
	}
	if f.scheduler.State() != redraw.Scheduled {
		t.Fatalf("scheduler state after Init = %v, want scheduled", f.scheduler.State())
	}
}

func TestModelViewBeforeResizeIsEmpty(t *testing.T) {
	f := newFixture(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	if view := f.model.View(); view != "" {
		t.Fatalf("View() before WindowSizeMsg = %q, want empty", view)
	}
}

func TestModelViewAnalog(t *testing.T) {
	f := newFixture(t, time.Date(2026, 1, 1, 3, 0, 0, 0, time.UTC))
	f.update(t, tea.WindowSizeMsg{Width: 60, Height: 31})

	lines := strings.Split(ansi.Strip(f.model.View()), "\n")
	if len(lines) != 31 {
		t.Fatalf("View() has %d lines, want 31", len(lines))
	}
	if !strings.Contains(lines[30], "q: quit") {
		t.Fatalf("last line = %q, want the key help", lines[30])
	}

	// 60 device units wide, 60 tall: center (30,30) is cell (30,15).
	if got := []rune(lines[15])[30]; got != '●' {
		t.Fatalf("center cell = %q, want the center dot\n%s", got, strings.Join(lines, "\n"))
	}
	dial := strings.Join(lines[:30], "\n")
	for _, numeral := range []string{"12", "3", "6", "9"} {
		if !strings.Contains(dial, numeral) {
			t.Errorf("numeral %s missing from the face\n%s", numeral, dial)
		}
	}
}

func TestModelToggleShowsDigital(t *testing.T) {
	f := newFixture(t, time.Date(2026, 1, 1, 13, 4, 5, 0, time.UTC))
	f.update(t, tea.WindowSizeMsg{Width: 40, Height: 21})

	f.update(t, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")})
	if f.widget.ShowAnalog() {
		t.Fatal("widget still analog after pressing a")
	}
	if view := ansi.Strip(f.model.View()); !strings.Contains(view, "01:04:05PM") {
		t.Fatalf("digital view does not show the time:\n%s", view)
	}

	f.update(t, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})
	if !f.widget.ShowAnalog() {
		t.Fatal("widget not analog after pressing space")
	}
}

func TestModelRedrawMessageCountsFrames(t *testing.T) {
	f := newFixture(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	for range 3 {
		if command := f.update(t, redrawMsg{}); command != nil {
			t.Fatal("redraw returned a command")
		}
	}
	if f.model.Frames() != 3 {
		t.Fatalf("Frames() = %d, want 3", f.model.Frames())
	}
}

func TestModelQuitStopsScheduler(t *testing.T) {
	f := newFixture(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	f.model.Init()

	command := f.update(t, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if command == nil {
		t.Fatal("q returned no command")
	}
	if _, ok := command().(tea.QuitMsg); !ok {
		t.Fatal("q did not return tea.Quit")
	}
	if f.host.Alive() {
		t.Fatal("host still alive after quit")
	}
	if !f.scheduler.Stopped() || f.clock.PendingTimers() != 0 {
		t.Fatalf("scheduler stopped=%v pending=%d after quit", f.scheduler.Stopped(), f.clock.PendingTimers())
	}
	f.model.Shutdown()
}

func TestHostWithoutProgramDropsInvalidate(t *testing.T) {
	host := NewHost()
	host.Invalidate()
	if !host.Alive() {
		t.Fatal("new host is not alive")
	}
	host.Close()
	host.Invalidate()
	if host.Alive() {
		t.Fatal("closed host is alive")
	}
}

func TestSchedulerTicksDoNothingWithoutProgram(t *testing.T) {
	f := newFixture(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	f.model.Init()
	f.clock.Advance(3 * time.Second)
	if f.scheduler.Signals() != 3 {
		t.Fatalf("Signals() = %d, want 3", f.scheduler.Signals())
	}
}

func TestRender(t *testing.T) {
	f := newFixture(t, time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC))
	f.widget.SetShowAnalog(false)
	out := ansi.Strip(Render(f.widget, 30, 10, 2))
	if !strings.Contains(out, "09:00:00AM") {
		t.Fatalf("Render output missing the time:\n%s", out)
	}
	if lines := strings.Split(out, "\n"); len(lines) != 10 {
		t.Fatalf("Render produced %d rows, want 10", len(lines))
	}
}
