// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package termface

import (
	"log/slog"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bureau-foundation/clockface/lib/redraw"
	"github.com/bureau-foundation/clockface/lib/widget"
)

// redrawMsg asks the model to repaint. View runs after every Update, so
// the message itself carries nothing.
type redrawMsg struct{}

// Host is the redraw.Host for a bubbletea program. Create it before the
// program and call SetProgram once the program exists; invalidations
// before that are dropped.
type Host struct {
	program atomic.Pointer[tea.Program]
	alive   atomic.Bool
}

// NewHost returns a live host with no program attached.
func NewHost() *Host {
	host := &Host{}
	host.alive.Store(true)
	return host
}

// SetProgram attaches the program that receives redraw messages.
func (h *Host) SetProgram(program *tea.Program) {
	h.program.Store(program)
}

// Invalidate sends a redraw message to the program. The send happens on
// its own goroutine: Program.Send blocks until the event loop takes the
// message, and the widget invalidates from inside Update when the mode
// is toggled.
func (h *Host) Invalidate() {
	program := h.program.Load()
	if program == nil || !h.alive.Load() {
		return
	}
	go program.Send(redrawMsg{})
}

// Alive reports whether the program is still running.
func (h *Host) Alive() bool { return h.alive.Load() }

// Close marks the host dead. Pending redraws become no-ops.
func (h *Host) Close() { h.alive.Store(false) }

// ModelOptions configures a Model.
type ModelOptions struct {
	// Aspect is the terminal cell height in column widths.
	Aspect float64

	// Logger receives frame and lifecycle records. Nil discards.
	Logger *slog.Logger
}

// Model is the bubbletea model for the clock face.
type Model struct {
	widget    *widget.Widget
	scheduler *redraw.Scheduler
	host      *Host
	aspect    float64
	logger    *slog.Logger

	// Terminal dimensions (set by WindowSizeMsg).
	width  int
	height int

	frames uint64
}

// NewModel wires clock to host and scheduler. The widget's invalidator
// is set to host.
func NewModel(clock *widget.Widget, scheduler *redraw.Scheduler, host *Host, options ModelOptions) Model {
	logger := options.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	clock.SetInvalidator(host)
	return Model{
		widget:    clock,
		scheduler: scheduler,
		host:      host,
		aspect:    options.Aspect,
		logger:    logger,
	}
}

// Init arms the redraw scheduler.
func (model Model) Init() tea.Cmd {
	model.scheduler.Arm()
	return tea.SetWindowTitle("clockface")
}

func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.WindowSizeMsg:
		model.width = message.Width
		model.height = message.Height
		model.logger.Debug("terminal resized", "width", message.Width, "height", message.Height)

	case tea.KeyMsg:
		switch message.String() {
		case "q", "esc", "ctrl+c":
			model.Shutdown()
			return model, tea.Quit
		case "a", " ":
			analog := model.widget.Toggle()
			model.logger.Debug("display mode changed", "analog", analog)
		}

	case redrawMsg:
		model.frames++
	}
	return model, nil
}

// Shutdown closes the host and stops the scheduler. Safe to call more
// than once.
func (model Model) Shutdown() {
	model.host.Close()
	model.scheduler.Stop()
}

// Frames returns how many scheduler redraws the model has handled.
func (model Model) Frames() uint64 { return model.frames }

var helpStyle = lipgloss.NewStyle().Faint(true)

func (model Model) View() string {
	if model.width <= 0 || model.height <= 1 {
		return ""
	}
	canvas := NewCanvas(model.width, model.height-1, model.aspect)
	width, height := canvas.Size()
	model.widget.Draw(canvas, width, height)
	return canvas.String() + "\n" + helpStyle.Render("a: analog/digital  q: quit")
}

// Render draws a single frame of clock onto a columns×rows canvas and
// returns it as styled text. It does not touch the scheduler.
func Render(clock *widget.Widget, columns, rows int, aspect float64) string {
	canvas := NewCanvas(columns, rows, aspect)
	width, height := canvas.Size()
	clock.Draw(canvas, width, height)
	return canvas.String()
}
