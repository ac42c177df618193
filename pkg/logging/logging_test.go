package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default warn level", 0, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			t.Setenv("XDG_STATE_HOME", tempDir)

			SetupLogger(tt.verbosity)

			if zerolog.GlobalLevel() != tt.wantLevel {
				t.Errorf("SetupLogger(%d) set level to %v, want %v",
					tt.verbosity, zerolog.GlobalLevel(), tt.wantLevel)
			}

			logPath := filepath.Join(tempDir, "zen", "zen.log")
			if _, err := os.Stat(logPath); os.IsNotExist(err) {
				t.Errorf("Log file was not created at %s", logPath)
			}
		})
	}
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
}

func TestGetLogFilePath(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/custom/state")

	got := getLogFilePath()
	if got != filepath.Join("/custom/state", "zen", "zen.log") {
		t.Errorf("getLogFilePath() = %s", got)
	}
}

func TestGetLogger(t *testing.T) {
	var buf bytes.Buffer
	old := log.Logger
	defer func() { log.Logger = old }()
	log.Logger = zerolog.New(&buf).Level(zerolog.DebugLevel)

	logger := GetLogger("abbr")
	logger.Info().Msg("hello")

	if !strings.Contains(buf.String(), `"component":"abbr"`) {
		t.Errorf("component field missing: %s", buf.String())
	}
}

func TestLogOperationStart(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.TraceLevel)
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	done := LogOperationStart(logger, "render")
	done()

	out := buf.String()
	if !strings.Contains(out, "Operation started") || !strings.Contains(out, "Operation completed") {
		t.Errorf("unexpected output: %s", out)
	}
	if !strings.Contains(out, "duration") {
		t.Errorf("duration missing: %s", out)
	}
}
