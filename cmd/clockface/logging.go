// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"io"
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/bureau-foundation/clockface/lib/config"
)

// newLogger builds the process logger. Interactive runs never write to
// stderr because the alternate screen owns the terminal; records go to
// the rotated log file when one is configured and are dropped
// otherwise. The returned func closes the log file.
func newLogger(cfg *config.Config, interactive bool, stderr io.Writer) (*slog.Logger, func(), error) {
	level, err := cfg.LogLevel()
	if err != nil {
		return nil, nil, err
	}

	var handlers fanoutHandler
	closeLog := func() {}

	if cfg.Log.File != "" {
		fileHandler, closer := openFileLogHandler(cfg.Log, level)
		handlers = append(handlers, fileHandler)
		closeLog = closer
	}
	if !interactive {
		handlers = append(handlers, slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	}

	switch len(handlers) {
	case 0:
		return slog.New(slog.DiscardHandler), closeLog, nil
	case 1:
		return slog.New(handlers[0]), closeLog, nil
	default:
		return slog.New(handlers), closeLog, nil
	}
}

// openFileLogHandler returns a JSON handler writing to a size-rotated
// file. lumberjack opens the file lazily on the first write.
func openFileLogHandler(logConfig config.LogConfig, level slog.Level) (slog.Handler, func()) {
	writer := &lumberjack.Logger{
		Filename:   logConfig.File,
		MaxSize:    logConfig.MaxSizeMB,
		MaxBackups: logConfig.MaxBackups,
		MaxAge:     logConfig.MaxAgeDays,
		Compress:   logConfig.Compress,
	}
	handler := slog.NewJSONHandler(writer, &slog.HandlerOptions{Level: level})
	return handler, func() { writer.Close() }
}

// fanoutHandler is a slog.Handler that sends each record to multiple
// underlying handlers. A record is enabled if any sub-handler is
// enabled for that level.
type fanoutHandler []slog.Handler

func (handlers fanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (handlers fanoutHandler) Handle(ctx context.Context, record slog.Record) error {
	for _, handler := range handlers {
		if handler.Enabled(ctx, record.Level) {
			if err := handler.Handle(ctx, record.Clone()); err != nil {
				return err
			}
		}
	}
	return nil
}

func (handlers fanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	derived := make(fanoutHandler, len(handlers))
	for index, handler := range handlers {
		derived[index] = handler.WithAttrs(attrs)
	}
	return derived
}

func (handlers fanoutHandler) WithGroup(name string) slog.Handler {
	derived := make(fanoutHandler, len(handlers))
	for index, handler := range handlers {
		derived[index] = handler.WithGroup(name)
	}
	return derived
}
