// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// clockface shows an analog or digital clock in the terminal.
//
// Three modes of operation:
//
// Interactive (default): a full-screen face repainted once per second.
// Press a or space to switch between analog and digital, q to quit.
//
// One-shot (--once): prints a single frame sized to the terminal, or to
// the configured fallback when stdout is not a terminal, and exits.
//
// Dump (--dump): prints the draw calls of one frame as YAML, for
// checking geometry or feeding another renderer.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/pflag"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/clockface/lib/clock"
	"github.com/bureau-foundation/clockface/lib/config"
	"github.com/bureau-foundation/clockface/lib/face"
	"github.com/bureau-foundation/clockface/lib/redraw"
	"github.com/bureau-foundation/clockface/lib/termface"
	"github.com/bureau-foundation/clockface/lib/version"
	"github.com/bureau-foundation/clockface/lib/widget"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// options holds the parsed command line.
type options struct {
	configPath string
	digital    bool
	once       bool
	dump       bool
	width      float64
	height     float64
	timeZone   string
	logOutput  string
	logLevel   string
}

func run(args []string, stdout, stderr io.Writer) error {
	var opts options

	flagSet := pflag.NewFlagSet("clockface", pflag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.StringVar(&opts.configPath, "config", "", "path to clockface.yaml (default: $"+config.EnvironmentVariable+", else built-in defaults)")
	flagSet.BoolVar(&opts.digital, "digital", false, "start in digital mode")
	flagSet.BoolVar(&opts.once, "once", false, "print one frame and exit")
	flagSet.BoolVar(&opts.dump, "dump", false, "print one frame's draw calls as YAML and exit")
	flagSet.Float64Var(&opts.width, "width", 400, "surface width for --dump, in device units")
	flagSet.Float64Var(&opts.height, "height", 400, "surface height for --dump, in device units")
	flagSet.StringVar(&opts.timeZone, "zone", "", "IANA time zone (overrides time_zone in the config)")
	flagSet.StringVar(&opts.logOutput, "log-output", "", "write JSON log records to this file, rotated by size")
	flagSet.StringVar(&opts.logLevel, "log-level", "", "debug, info, warn, or error (overrides log.level)")
	flagSet.BoolP("help", "h", false, "show help")

	// Handle --version before flag parsing to match other binaries.
	if len(args) > 0 && args[0] == "--version" {
		version.Fprint(stdout, "clockface")
		return nil
	}

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(stderr, flagSet)
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(stderr, flagSet)
		return nil
	}
	if rest := flagSet.Args(); len(rest) > 0 {
		return fmt.Errorf("unexpected argument: %s", rest[0])
	}
	if opts.once && opts.dump {
		return errors.New("--once and --dump are mutually exclusive")
	}
	if opts.width < 0 || opts.height < 0 {
		return fmt.Errorf("--width and --height must not be negative, got %vx%v", opts.width, opts.height)
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	interactive := !opts.once && !opts.dump
	logger, closeLog, err := newLogger(cfg, interactive, stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	location, err := cfg.Location()
	if err != nil {
		return err
	}
	source := clock.Real()
	// Dumps describe a device surface; everything else draws onto the
	// character grid.
	style := cfg.TerminalStyle()
	if opts.dump {
		style = cfg.WidgetStyle()
	}
	clockWidget := widget.New(face.NewSampler(source, location), style)
	clockWidget.SetShowAnalog(cfg.Mode == config.Analog)

	switch {
	case opts.dump:
		logger.Debug("dumping frame", "width", opts.width, "height", opts.height)
		return dumpFrame(stdout, clockWidget, opts.width, opts.height)
	case opts.once:
		columns, rows := surfaceSize(stdout, cfg.Terminal)
		// The default renderer probes os.Stdout; follow the writer we
		// actually print to, honoring NO_COLOR and CLICOLOR_FORCE.
		profile := termenv.NewOutput(stdout).EnvColorProfile()
		lipgloss.SetColorProfile(profile)
		logger.Debug("rendering frame", "columns", columns, "rows", rows, "profile", profile.Name())
		_, err := fmt.Fprintln(stdout, termface.Render(clockWidget, columns, rows, cfg.Terminal.Aspect))
		return err
	}

	logger.Info("starting clockface",
		"mode", string(cfg.Mode),
		"interval", cfg.RedrawInterval,
		"zone", location.String(),
	)

	host := termface.NewHost()
	scheduler := redraw.NewScheduler(source, host, redraw.Options{
		Interval: cfg.RedrawInterval,
		Logger:   logger,
	})
	model := termface.NewModel(clockWidget, scheduler, host, termface.ModelOptions{
		Aspect: cfg.Terminal.Aspect,
		Logger: logger,
	})
	defer model.Shutdown()

	program := tea.NewProgram(model, tea.WithAltScreen())
	host.SetProgram(program)

	final, err := program.Run()
	if err != nil {
		return fmt.Errorf("running terminal UI: %w", err)
	}
	if finalModel, ok := final.(termface.Model); ok {
		logger.Info("clockface exited", "frames", finalModel.Frames(), "signals", scheduler.Signals())
	}
	return nil
}

// loadConfig picks the config source (flag, then environment, then
// defaults) and applies command-line overrides.
func loadConfig(opts options) (*config.Config, error) {
	var cfg *config.Config
	var err error
	switch {
	case opts.configPath != "":
		cfg, err = config.LoadFile(opts.configPath)
	case os.Getenv(config.EnvironmentVariable) != "":
		cfg, err = config.Load()
	default:
		cfg = config.Default()
	}
	if err != nil {
		return nil, err
	}

	if opts.digital {
		cfg.Mode = config.Digital
	}
	if opts.timeZone != "" {
		cfg.TimeZone = opts.timeZone
	}
	if opts.logOutput != "" {
		cfg.Log.File = opts.logOutput
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// surfaceSize returns the terminal size of w, or the configured
// fallback when w is not a terminal.
func surfaceSize(w io.Writer, terminal config.TerminalConfig) (columns, rows int) {
	if file, ok := w.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		if width, height, err := term.GetSize(int(file.Fd())); err == nil && width > 0 && height > 1 {
			// Leave the last row for the shell prompt.
			return width, height - 1
		}
	}
	return terminal.FallbackColumns, terminal.FallbackRows
}

// frameDump is the YAML document written by --dump.
type frameDump struct {
	Time   string      `yaml:"time"`
	Analog bool        `yaml:"analog"`
	Width  float64     `yaml:"width"`
	Height float64     `yaml:"height"`
	Ops    []widget.Op `yaml:"ops"`
}

// dumpFrame records one frame and writes it as YAML.
func dumpFrame(w io.Writer, clockWidget *widget.Widget, width, height float64) error {
	var recorder widget.Recorder
	sample := clockWidget.Draw(&recorder, width, height)

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	err := encoder.Encode(frameDump{
		Time:   face.DigitalTimeString(sample),
		Analog: clockWidget.ShowAnalog(),
		Width:  width,
		Height: height,
		Ops:    recorder.Ops,
	})
	if err != nil {
		return fmt.Errorf("encoding frame: %w", err)
	}
	return encoder.Close()
}

func printHelp(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintf(w, `clockface: analog and digital clock for the terminal.

Runs full-screen by default, repainting once per second. Press a or
space to switch between analog and digital, q to quit.

Usage:
  clockface [flags]

Examples:
  # Full-screen analog clock
  clockface

  # Print one digital frame for Tokyo
  clockface --once --digital --zone Asia/Tokyo

  # Inspect the geometry of one frame on a 600x600 surface
  clockface --dump --width 600 --height 600

Flags:
`)
	flagSet.SetOutput(w)
	flagSet.PrintDefaults()
}
