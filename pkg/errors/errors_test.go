package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeMalformedGrid, "row %d has %d columns", 2, 3)

	if err.Code != ErrCodeMalformedGrid {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeMalformedGrid)
	}
	if err.Message != "row 2 has 3 columns" {
		t.Errorf("Message = %q", err.Message)
	}
	if !strings.Contains(err.Error(), "MALFORMED_GRID") {
		t.Errorf("Error() = %q, should contain the code", err.Error())
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stderrors.New("boom")
	err := Wrap(ErrCodeInvalidPath, cause, "read %s", "level.map")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should match its cause via errors.Is")
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Errorf("Error() = %q, should contain cause", err.Error())
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeInvalidTerrain, "bad character")

	if !Is(err, ErrCodeInvalidTerrain) {
		t.Error("Is() should match the error's own code")
	}
	if Is(err, ErrCodeInternal) {
		t.Error("Is() should not match a different code")
	}
	if Is(stderrors.New("plain"), ErrCodeInternal) {
		t.Error("Is() should not match plain errors")
	}

	// Matching works through wrapping layers.
	wrapped := fmt.Errorf("context: %w", err)
	if !Is(wrapped, ErrCodeInvalidTerrain) {
		t.Error("Is() should unwrap to find the code")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeUnknownCell, "missing")); got != ErrCodeUnknownCell {
		t.Errorf("GetCode() = %v, want %v", got, ErrCodeUnknownCell)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode() on plain error = %v, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidConfig, "unknown row_order")
	if got := UserMessage(err); got != "unknown row_order" {
		t.Errorf("UserMessage() = %q", got)
	}
	if got := UserMessage(stderrors.New("plain")); got != "plain" {
		t.Errorf("UserMessage() on plain error = %q", got)
	}
}
