// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/clockface/lib/widget"
)

// EnvironmentVariable names the config file for Load.
const EnvironmentVariable = "CLOCKFACE_CONFIG"

// Mode is the initial display mode.
type Mode string

const (
	Analog  Mode = "analog"
	Digital Mode = "digital"
)

// Config is the complete clockface configuration.
type Config struct {
	// Mode is the display mode at startup.
	// Default: analog
	Mode Mode `yaml:"mode"`

	// RedrawInterval is the time between repaints.
	// Default: 1s
	RedrawInterval time.Duration `yaml:"redraw_interval"`

	// TimeZone is an IANA zone name or "Local".
	// Default: Local
	TimeZone string `yaml:"time_zone"`

	Terminal TerminalConfig `yaml:"terminal"`
	Style    StyleConfig    `yaml:"style"`
	Log      LogConfig      `yaml:"log"`
}

// TerminalConfig describes the terminal surface.
type TerminalConfig struct {
	// Aspect is a cell's height divided by its width.
	// Default: 2
	Aspect float64 `yaml:"aspect"`

	// FallbackColumns and FallbackRows size one-shot output when the
	// terminal size cannot be read (for example, stdout is a pipe).
	// Default: 80×40
	FallbackColumns int `yaml:"fallback_columns"`
	FallbackRows    int `yaml:"fallback_rows"`

	// Needle widths, dot radius, and label size used in place of the
	// style section when drawing onto the character grid, where one
	// column is one device unit.
	// Default: needles 2/2/1, dot 1, labels 1
	HourNeedleWidth   float64 `yaml:"hour_needle_width"`
	MinuteNeedleWidth float64 `yaml:"minute_needle_width"`
	SecondNeedleWidth float64 `yaml:"second_needle_width"`
	DotRadius         float64 `yaml:"dot_radius"`
	LabelTextSize     float64 `yaml:"label_text_size"`
}

// StyleConfig mirrors widget.Style with YAML-friendly types. Sizes are
// for a pixel surface, as written by --dump.
type StyleConfig struct {
	Colors ColorsConfig `yaml:"colors"`

	TickStrokeFraction  float64 `yaml:"tick_stroke_fraction"`
	HourNeedleWidth     float64 `yaml:"hour_needle_width"`
	MinuteNeedleWidth   float64 `yaml:"minute_needle_width"`
	SecondNeedleWidth   float64 `yaml:"second_needle_width"`
	DotRadius           float64 `yaml:"dot_radius"`
	LabelTextSize       float64 `yaml:"label_text_size"`
	DigitalTextFraction float64 `yaml:"digital_text_fraction"`
	SuffixScale         float64 `yaml:"suffix_scale"`
	DimAlpha            int     `yaml:"dim_alpha"`
}

// ColorsConfig holds every color the face uses.
type ColorsConfig struct {
	CenterInner   Color `yaml:"center_inner"`
	CenterOuter   Color `yaml:"center_outer"`
	SecondsNeedle Color `yaml:"seconds_needle"`
	HoursNeedle   Color `yaml:"hours_needle"`
	MinutesNeedle Color `yaml:"minutes_needle"`
	Degrees       Color `yaml:"degrees"`
	HoursValues   Color `yaml:"hours_values"`
	Numbers       Color `yaml:"numbers"`
}

// LogConfig configures the log file. Rotation applies only when File is
// set.
type LogConfig struct {
	// Level is debug, info, warn, or error.
	// Default: info
	Level string `yaml:"level"`

	// File receives JSON log records. Empty disables file logging.
	File string `yaml:"file"`

	// MaxSizeMB is the size at which the file is rotated.
	// Default: 10
	MaxSizeMB int `yaml:"max_size_mb"`

	// MaxBackups is how many rotated files are kept.
	// Default: 3
	MaxBackups int `yaml:"max_backups"`

	// MaxAgeDays is how long rotated files are kept.
	// Default: 28
	MaxAgeDays int `yaml:"max_age_days"`

	// Compress gzips rotated files.
	Compress bool `yaml:"compress"`
}

// Default returns the defaults: widget.DefaultStyle sizes for device
// surfaces, and small strokes for the terminal.
func Default() *Config {
	style := widget.DefaultStyle()
	return &Config{
		Mode:           Analog,
		RedrawInterval: time.Second,
		TimeZone:       "Local",
		Terminal: TerminalConfig{
			Aspect:          2,
			FallbackColumns: 80,
			FallbackRows:    40,

			HourNeedleWidth:   2,
			MinuteNeedleWidth: 2,
			SecondNeedleWidth: 1,
			DotRadius:         1,
			LabelTextSize:     1,
		},
		Style: StyleConfig{
			Colors: ColorsConfig{
				CenterInner:   Color(style.CenterInnerColor),
				CenterOuter:   Color(style.CenterOuterColor),
				SecondsNeedle: Color(style.SecondsNeedleColor),
				HoursNeedle:   Color(style.HoursNeedleColor),
				MinutesNeedle: Color(style.MinutesNeedleColor),
				Degrees:       Color(style.DegreesColor),
				HoursValues:   Color(style.HoursValuesColor),
				Numbers:       Color(style.NumbersColor),
			},
			TickStrokeFraction:  style.TickStrokeFraction,
			HourNeedleWidth:     style.HourNeedleWidth,
			MinuteNeedleWidth:   style.MinuteNeedleWidth,
			SecondNeedleWidth:   style.SecondNeedleWidth,
			DotRadius:           style.DotRadius,
			LabelTextSize:       style.LabelTextSize,
			DigitalTextFraction: style.DigitalTextFraction,
			SuffixScale:         style.SuffixScale,
			DimAlpha:            int(style.DimAlpha),
		},
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// Load loads the file named by CLOCKFACE_CONFIG. It fails when the
// variable is unset rather than guessing a location.
func Load() (*Config, error) {
	path := os.Getenv(EnvironmentVariable)
	if path == "" {
		return nil, fmt.Errorf("%s environment variable not set; "+
			"set it to the path of your clockface.yaml, or use --config", EnvironmentVariable)
	}
	return LoadFile(path)
}

// LoadFile loads path over the defaults and validates the result.
// Fields absent from the file keep their default values.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration and returns every problem found.
func (c *Config) Validate() error {
	var errs []error

	if c.Mode != Analog && c.Mode != Digital {
		errs = append(errs, fmt.Errorf("mode must be %q or %q, got %q", Analog, Digital, c.Mode))
	}
	if c.RedrawInterval <= 0 {
		errs = append(errs, fmt.Errorf("redraw_interval must be positive, got %v", c.RedrawInterval))
	}
	if _, err := c.Location(); err != nil {
		errs = append(errs, err)
	}
	if c.Terminal.Aspect <= 0 {
		errs = append(errs, fmt.Errorf("terminal.aspect must be positive, got %v", c.Terminal.Aspect))
	}
	if c.Terminal.FallbackColumns <= 0 || c.Terminal.FallbackRows <= 0 {
		errs = append(errs, fmt.Errorf("terminal fallback size must be positive, got %dx%d",
			c.Terminal.FallbackColumns, c.Terminal.FallbackRows))
	}
	sizes := []struct {
		name string
		size float64
	}{
		{"style.hour_needle_width", c.Style.HourNeedleWidth},
		{"style.minute_needle_width", c.Style.MinuteNeedleWidth},
		{"style.second_needle_width", c.Style.SecondNeedleWidth},
		{"style.dot_radius", c.Style.DotRadius},
		{"terminal.hour_needle_width", c.Terminal.HourNeedleWidth},
		{"terminal.minute_needle_width", c.Terminal.MinuteNeedleWidth},
		{"terminal.second_needle_width", c.Terminal.SecondNeedleWidth},
		{"terminal.dot_radius", c.Terminal.DotRadius},
	}
	for _, entry := range sizes {
		if entry.size < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative, got %v", entry.name, entry.size))
		}
	}
	if c.Style.DimAlpha < 0 || c.Style.DimAlpha > 255 {
		errs = append(errs, fmt.Errorf("style.dim_alpha must be 0-255, got %d", c.Style.DimAlpha))
	}
	if _, err := c.LogLevel(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// Location resolves TimeZone.
func (c *Config) Location() (*time.Location, error) {
	if c.TimeZone == "" || c.TimeZone == "Local" {
		return time.Local, nil
	}
	location, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("time_zone %q: %w", c.TimeZone, err)
	}
	return location, nil
}

// LogLevel parses Log.Level.
func (c *Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, fmt.Errorf("log.level: %w", err)
	}
	return level, nil
}

// WidgetStyle converts the style section into a widget.Style.
func (c *Config) WidgetStyle() widget.Style {
	colors := c.Style.Colors
	return widget.Style{
		CenterInnerColor:    color.RGBA(colors.CenterInner),
		CenterOuterColor:    color.RGBA(colors.CenterOuter),
		SecondsNeedleColor:  color.RGBA(colors.SecondsNeedle),
		HoursNeedleColor:    color.RGBA(colors.HoursNeedle),
		MinutesNeedleColor:  color.RGBA(colors.MinutesNeedle),
		DegreesColor:        color.RGBA(colors.Degrees),
		HoursValuesColor:    color.RGBA(colors.HoursValues),
		NumbersColor:        color.RGBA(colors.Numbers),
		TickStrokeFraction:  c.Style.TickStrokeFraction,
		HourNeedleWidth:     c.Style.HourNeedleWidth,
		MinuteNeedleWidth:   c.Style.MinuteNeedleWidth,
		SecondNeedleWidth:   c.Style.SecondNeedleWidth,
		DotRadius:           c.Style.DotRadius,
		LabelTextSize:       c.Style.LabelTextSize,
		DigitalTextFraction: c.Style.DigitalTextFraction,
		SuffixScale:         c.Style.SuffixScale,
		DimAlpha:            uint8(c.Style.DimAlpha),
	}
}

// TerminalStyle is WidgetStyle with the terminal section's sizes.
func (c *Config) TerminalStyle() widget.Style {
	style := c.WidgetStyle()
	style.HourNeedleWidth = c.Terminal.HourNeedleWidth
	style.MinuteNeedleWidth = c.Terminal.MinuteNeedleWidth
	style.SecondNeedleWidth = c.Terminal.SecondNeedleWidth
	style.DotRadius = c.Terminal.DotRadius
	style.LabelTextSize = c.Terminal.LabelTextSize
	return style
}

// Color is a color.RGBA written in YAML as "#rrggbb" or "#rrggbbaa".
type Color color.RGBA

// ParseColor parses "#rrggbb" or "#rrggbbaa". The leading '#' is
// optional.
func ParseColor(text string) (Color, error) {
	digits := strings.TrimPrefix(strings.TrimSpace(text), "#")
	if len(digits) != 6 && len(digits) != 8 {
		return Color{}, fmt.Errorf("color %q: want #rrggbb or #rrggbbaa", text)
	}
	value, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("color %q: %w", text, err)
	}
	if len(digits) == 6 {
		value = value<<8 | 0xff
	}
	return Color{
		R: uint8(value >> 24),
		G: uint8(value >> 16),
		B: uint8(value >> 8),
		A: uint8(value),
	}, nil
}

func (c Color) String() string { return widget.HexColor(color.RGBA(c)) }

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Color) UnmarshalYAML(node *yaml.Node) error {
	var text string
	if err := node.Decode(&text); err != nil {
		return err
	}
	parsed, err := ParseColor(text)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*c = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (c Color) MarshalYAML() (any, error) { return c.String(), nil }
