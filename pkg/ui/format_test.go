package ui_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/zen/pkg/errors"
	"github.com/arthur-debert/zen/pkg/ui"
)

func TestFormatString(t *testing.T) {
	tests := []struct {
		format   ui.Format
		expected string
	}{
		{ui.FormatAuto, "auto"},
		{ui.FormatTerminal, "term"},
		{ui.FormatText, "text"},
		{ui.FormatJSON, "json"},
		{ui.Format(999), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.format.String())
		})
	}
}

func TestFormats(t *testing.T) {
	assert.Equal(t, []string{"auto", "term", "text", "json"}, ui.Formats())
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected ui.Format
	}{
		{"auto", ui.FormatAuto},
		{"", ui.FormatAuto},
		{"term", ui.FormatTerminal},
		{"terminal", ui.FormatTerminal},
		{"TERM", ui.FormatTerminal},
		{"text", ui.FormatText},
		{"plain", ui.FormatText},
		{" json ", ui.FormatJSON},
		{"Json", ui.FormatJSON},
	}

	for _, tt := range tests {
		t.Run("parse "+tt.input, func(t *testing.T) {
			format, err := ui.ParseFormat(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, format)
		})
	}

	t.Run("unknown name", func(t *testing.T) {
		_, err := ui.ParseFormat("yaml")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
		assert.Contains(t, err.Error(), "unknown format")
		assert.Equal(t, "yaml", errors.GetErrorDetails(err)["format"])
	})
}

func TestDetectFormat(t *testing.T) {
	t.Run("NO_COLOR wins", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		assert.Equal(t, ui.FormatText, ui.DetectFormat(os.Stdout))
	})

	t.Run("in-memory writer", func(t *testing.T) {
		t.Setenv("NO_COLOR", "")
		assert.Equal(t, ui.FormatText, ui.DetectFormat(&bytes.Buffer{}))
	})

	t.Run("regular file is not a terminal", func(t *testing.T) {
		t.Setenv("NO_COLOR", "")
		f, err := os.CreateTemp(t.TempDir(), "out")
		require.NoError(t, err)
		defer func() { _ = f.Close() }()

		assert.Equal(t, ui.FormatText, ui.DetectFormat(f))
	})
}
