// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/zen/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "parse_error",
			code:    errors.ErrParse,
			message: "unexpected character",
			wantStr: "[PARSE] unexpected character",
		},
		{
			name:    "cycle_error",
			code:    errors.ErrConfigCycle,
			message: "xsl extends itself",
			wantStr: "[CONFIG_CYCLE] xsl extends itself",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrParse, "unexpected %q at offset %d", "%", 3)
	if err.Message != `unexpected "%" at offset 3` {
		t.Errorf("Newf() message = %q", err.Message)
	}
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("base error")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrConfigLoad, "cannot load settings")

		if err.Wrapped != baseErr {
			t.Error("Wrap() should preserve wrapped error")
		}

		wantStr := "[CONFIG_LOAD] cannot load settings: base error"
		if got := err.Error(); got != wantStr {
			t.Errorf("Error() = %q, want %q", got, wantStr)
		}
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		if err := errors.Wrap(nil, errors.ErrInternal, "internal error"); err != nil {
			t.Error("Wrap(nil) should return nil")
		}
		if err := errors.Wrapf(nil, errors.ErrInternal, "internal %s", "error"); err != nil {
			t.Error("Wrapf(nil) should return nil")
		}
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrParse, "syntax error").
		WithDetail("abbreviation", "ul>%").
		WithDetail("offset", 3)

	if err.Details["abbreviation"] != "ul>%" {
		t.Errorf("WithDetail() abbreviation = %v", err.Details["abbreviation"])
	}
	if got := errors.GetErrorDetails(err)["offset"]; got != 3 {
		t.Errorf("GetErrorDetails() offset = %v, want 3", got)
	}
	if errors.GetErrorDetails(stderrors.New("plain")) != nil {
		t.Error("GetErrorDetails() should be nil for foreign errors")
	}
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrNotFound, "error 1")
	err2 := errors.New(errors.ErrNotFound, "error 2")
	err3 := errors.New(errors.ErrInternal, "error 3")

	if !stderrors.Is(err1, err2) {
		t.Error("errors.Is() should match on code")
	}
	if err1.Is(err3) {
		t.Error("Is() should return false for different codes")
	}
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{"matching_code", errors.New(errors.ErrParse, "x"), errors.ErrParse, true},
		{"different_code", errors.New(errors.ErrParse, "x"), errors.ErrInternal, false},
		{"wrapped_error", errors.Wrap(stderrors.New("base"), errors.ErrConfigParse, "bad"), errors.ErrConfigParse, true},
		{"foreign_error", stderrors.New("standard error"), errors.ErrNotFound, false},
		{"nil_error", nil, errors.ErrNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.IsErrorCode(tt.err, tt.code); got != tt.expected {
				t.Errorf("IsErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	if got := errors.GetErrorCode(errors.New(errors.ErrConfigCycle, "cycle")); got != errors.ErrConfigCycle {
		t.Errorf("GetErrorCode() = %v", got)
	}
	if got := errors.GetErrorCode(stderrors.New("plain")); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode() = %v, want UNKNOWN", got)
	}
	if got := errors.GetErrorCode(nil); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode(nil) = %v, want UNKNOWN", got)
	}
}

func TestErrorChaining(t *testing.T) {
	rootCause := stderrors.New("root cause")
	parseErr := errors.Wrap(rootCause, errors.ErrConfigParse, "cannot parse bundle")
	loadErr := errors.Wrap(parseErr, errors.ErrConfigLoad, "failed to load settings")

	if !errors.IsErrorCode(loadErr, errors.ErrConfigLoad) {
		t.Error("top level should have CONFIG_LOAD code")
	}
	if !errors.IsErrorCode(loadErr.Unwrap(), errors.ErrConfigParse) {
		t.Error("middle error should have CONFIG_PARSE code")
	}
	if !stderrors.Is(loadErr, rootCause) {
		t.Error("should find root cause with errors.Is")
	}
}
