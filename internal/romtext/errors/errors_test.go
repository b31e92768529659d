package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestROMError(t *testing.T) {
	err := NewROMError("open", "game.bin", ErrInvalidROM)
	if err.Error() != "open game.bin: "+ErrInvalidROM.Error() {
		t.Errorf("Unexpected message: %s", err.Error())
	}
	if !errors.Is(err, ErrInvalidROM) {
		t.Error("Expected errors.Is to match ErrInvalidROM")
	}

	noPath := NewROMError("detect", "", ErrInvalidROM)
	if noPath.Error() != "detect: "+ErrInvalidROM.Error() {
		t.Errorf("Unexpected message: %s", noPath.Error())
	}
}

func TestClassification(t *testing.T) {
	base := errors.New("boom")

	tests := []struct {
		name      string
		err       error
		transient bool
		fatal     bool
	}{
		{"一時的", NewTransientError("translate", base), true, false},
		{"致命的", NewFatalError("translate", base), false, true},
		{"ラップされた一時的", fmt.Errorf("wrap: %w", NewTransientError("translate", base)), true, false},
		{"致命的の中の一時的", NewFatalError("retry", NewTransientError("translate", base)), true, true},
		{"分類なし", base, false, false},
		{"nil", nil, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsTransient(tt.err); got != tt.transient {
				t.Errorf("IsTransient = %v, want %v", got, tt.transient)
			}
			if got := IsFatal(tt.err); got != tt.fatal {
				t.Errorf("IsFatal = %v, want %v", got, tt.fatal)
			}
		})
	}

	if !errors.Is(NewFatalError("x", base), base) {
		t.Error("Expected FatalError to unwrap to the original error")
	}
}
