// Package logging sets up the zap logger. The terminal belongs to the TUI,
// so logs only ever go to a file.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Component tags log lines with the part of the program that wrote them.
type Component string

const (
	ComponentCLI     Component = "CLI"
	ComponentTUI     Component = "TUI"
	ComponentSession Component = "SESSION"
)

// encoderConfig builds a compact console encoder: HH:MM:SS, single letter
// level, bare file name.
func encoderConfig() zapcore.EncoderConfig {
	config := zap.NewDevelopmentEncoderConfig()

	config.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(t.Format("15:04:05"))
	}

	config.EncodeLevel = func(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
		switch level {
		case zapcore.DebugLevel:
			enc.AppendString("D")
		case zapcore.InfoLevel:
			enc.AppendString("I")
		case zapcore.WarnLevel:
			enc.AppendString("W")
		case zapcore.ErrorLevel:
			enc.AppendString("E")
		default:
			enc.AppendString("?")
		}
	}

	config.EncodeCaller = func(caller zapcore.EntryCaller, enc zapcore.PrimitiveArrayEncoder) {
		file := filepath.Base(caller.File)
		enc.AppendString(strings.TrimSuffix(file, ".go"))
	}

	return config
}

// New returns a logger writing to path, or a no-op logger when path is
// empty. The returned close function flushes and closes the file.
func New(path string, verbose bool) (*zap.Logger, func(), error) {
	if path == "" {
		return zap.NewNop(), func() {}, nil
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, nil, fmt.Errorf("creating log directory: %w", err)
		}
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}

	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig()),
		zapcore.AddSync(file),
		level,
	)
	logger := zap.New(core, zap.AddCaller())

	closeFn := func() {
		_ = logger.Sync()
		_ = file.Close()
	}
	return logger, closeFn, nil
}

// For returns a child logger tagged with a component.
func For(logger *zap.Logger, component Component) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger.With(zap.String("component", string(component)))
}
