// Package logging builds the process logger: one zap core writing to the
// console and, when configured, a second core appending to a log file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/iwvelando/cost-forecast/internal/config"
	"github.com/iwvelando/cost-forecast/pkg/constants"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ParseLevel converts a configured level name into a zap level.
func ParseLevel(level string) (zapcore.Level, error) {
	if level == "" {
		level = constants.DefaultLogLevel
	}
	switch level {
	case "debug":
		return zapcore.DebugLevel, nil
	case "info":
		return zapcore.InfoLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("invalid log level: %s", level)
	}
}

func newEncoder(format string) (zapcore.Encoder, error) {
	if format == "" {
		format = constants.DefaultLogFormat
	}
	switch format {
	case "console":
		return zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()), nil
	case "json":
		return zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), nil
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}
}

// New creates the logger described by loggingConfig. Log lines go to console
// and are mirrored to loggingConfig.OutputFile when it is set. The returned
// close function syncs the logger and closes the file.
func New(loggingConfig config.LoggingConfig, console io.Writer) (*zap.Logger, func(), error) {
	level, err := ParseLevel(loggingConfig.Level)
	if err != nil {
		return nil, nil, err
	}

	encoder, err := newEncoder(loggingConfig.Format)
	if err != nil {
		return nil, nil, err
	}

	cores := []zapcore.Core{
		zapcore.NewCore(encoder, zapcore.Lock(zapcore.AddSync(console)), level),
	}

	var file *os.File
	if loggingConfig.OutputFile != "" {
		// Ensure the directory exists
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, nil, fmt.Errorf("failed to create log directory %s: %w", dir, err)
			}
		}

		file, err = os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file %s: %w", loggingConfig.OutputFile, err)
		}
		cores = append(cores, zapcore.NewCore(encoder.Clone(), zapcore.AddSync(file), level))
	}

	logger := zap.New(zapcore.NewTee(cores...), zap.AddCaller())

	closeFn := func() {
		_ = logger.Sync()
		if file != nil {
			_ = file.Close()
		}
	}
	return logger, closeFn, nil
}
