// Package logging provides the debug logger. The terminal belongs to the TUI,
// so log output goes to a rotated file and is off unless a level is set.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var logger *zap.Logger

// Options configure the log file.
type Options struct {
	Level      string // "debug", "info", "warn", "error"; empty disables logging
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// Initialize builds the global logger. An empty level installs a nop logger.
func Initialize(opts Options) error {
	l, err := New(opts)
	if err != nil {
		return err
	}
	logger = l
	return nil
}

// New builds a logger writing to a rotated file.
func New(opts Options) (*zap.Logger, error) {
	if opts.Level == "" {
		return zap.NewNop(), nil
	}
	if opts.File == "" {
		return nil, fmt.Errorf("log level %q set but no log file", opts.Level)
	}

	level, err := zapcore.ParseLevel(opts.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to parse log level: %w", err)
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeCaller = zapcore.ShortCallerEncoder

	sink := zapcore.AddSync(&lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAgeDays,
	})

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), sink, level)
	return zap.New(core, zap.AddCaller()), nil
}

// GetLogger returns the global logger, a nop logger before Initialize.
func GetLogger() *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return logger
}

// Sync flushes buffered entries.
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

// Error logs an error message
func Error(msg string, fields ...zap.Field) {
	GetLogger().Error(msg, fields...)
}
