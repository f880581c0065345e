package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iwvelando/cost-forecast/internal/config"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected zapcore.Level
		wantErr  bool
	}{
		{"", zapcore.InfoLevel, false},
		{"debug", zapcore.DebugLevel, false},
		{"info", zapcore.InfoLevel, false},
		{"warn", zapcore.WarnLevel, false},
		{"warning", zapcore.WarnLevel, false},
		{"error", zapcore.ErrorLevel, false},
		{"verbose", zapcore.InfoLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && level != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, expected %v", tt.input, level, tt.expected)
			}
		})
	}
}

func TestNewInvalidFormat(t *testing.T) {
	_, _, err := New(config.LoggingConfig{Level: "info", Format: "xml"}, &bytes.Buffer{})
	if err == nil {
		t.Error("expected an error for an unknown format")
	}
}

func TestNewMirrorsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "info.log")
	var console bytes.Buffer

	logger, closeFn, err := New(config.LoggingConfig{Level: "info", Format: "json", OutputFile: path}, &console)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	logger.Info("mirrored line")
	logger.Debug("filtered line")
	closeFn()

	if !strings.Contains(console.String(), "mirrored line") {
		t.Errorf("console output missing log line: %q", console.String())
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(contents), "mirrored line") {
		t.Errorf("log file missing log line: %q", contents)
	}
	if strings.Contains(string(contents), "filtered line") {
		t.Errorf("log file contains a line below the configured level: %q", contents)
	}
}

func TestNewConsoleOnly(t *testing.T) {
	var console bytes.Buffer

	logger, closeFn, err := New(config.LoggingConfig{Level: "debug", Format: "console"}, &console)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	logger.Debug("debug line")
	closeFn()

	if !strings.Contains(console.String(), "debug line") {
		t.Errorf("console output missing debug line: %q", console.String())
	}
}
