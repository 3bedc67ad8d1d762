package errors

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
		excludes []string
	}{
		{
			name:     "bad input",
			err:      BadInput(PhaseLoad, 'x', 4, 0),
			contains: []string{"[load]", "bad_input", "pc=4", "'x'"},
		},
		{
			name:     "no program",
			err:      NoProgramLoaded(),
			contains: []string{"[dispatch]", "no_program", "no program loaded"},
			excludes: []string{"pc="},
		},
		{
			name:     "located underflow",
			err:      WithLocation(MemoryUnderflow(0), 7, 0),
			contains: []string{"memory_underflow", "pc=7", "ap=0", "before the first cell"},
		},
		{
			name:     "error with cause",
			err:      Canceled(context.Canceled),
			contains: []string{"[runtime]", "canceled", "caused by", "context canceled"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
			for _, s := range tt.excludes {
				if strings.Contains(msg, s) {
					t.Errorf("error message %q should not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	err := Canceled(context.DeadlineExceeded)

	if !errors.Is(err.Unwrap(), context.DeadlineExceeded) {
		t.Error("Unwrap did not return cause")
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Error("errors.Is should see through to the cause")
	}
}

func TestError_Is(t *testing.T) {
	err := WithLocation(MemoryOverflow(65535), 12, 65535)

	if !errors.Is(err, ErrMemoryOverflow) {
		t.Error("sentinel without phase should match any phase")
	}
	if !errors.Is(err, &Error{Phase: PhaseDispatch, Kind: KindMemoryOverflow}) {
		t.Error("Is should match same phase and kind")
	}
	if errors.Is(err, &Error{Phase: PhaseLoad, Kind: KindMemoryOverflow}) {
		t.Error("Is should not match different phase")
	}
	if errors.Is(err, ErrMemoryUnderflow) {
		t.Error("overflow must not match underflow")
	}
}

func TestWithLocation_Copies(t *testing.T) {
	orig := MemoryUnderflow(0)
	located := WithLocation(orig, 3, 0)

	if orig.HasLocation {
		t.Error("WithLocation modified its argument")
	}
	if !located.HasLocation || located.PC != 3 {
		t.Errorf("located = %+v", located)
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseDispatch, KindBadInput).
		At(9, 100).
		Value(byte('#')).
		Cause(cause).
		Detail("unexpected %q", '#').
		Build()

	if err.Phase != PhaseDispatch {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseDispatch)
	}
	if err.Kind != KindBadInput {
		t.Errorf("Kind = %v, want %v", err.Kind, KindBadInput)
	}
	if !err.HasLocation || err.PC != 9 || err.Address != 100 {
		t.Errorf("location = %d/%d (%v), want 9/100", err.PC, err.Address, err.HasLocation)
	}
	if err.Value != byte('#') {
		t.Errorf("Value = %v, want '#'", err.Value)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Detail != `unexpected '#'` {
		t.Errorf("Detail = %v", err.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("UnmatchedJump", func(t *testing.T) {
		err := UnmatchedJump(5, ']')
		if err.Kind != KindUnmatchedJump {
			t.Errorf("Kind = %v, want %v", err.Kind, KindUnmatchedJump)
		}
		if err.PC != 5 || err.Value != byte(']') {
			t.Errorf("PC=%v Value=%v", err.PC, err.Value)
		}
	})

	t.Run("InputEOF", func(t *testing.T) {
		if !errors.Is(InputEOF(), ErrInputEOF) {
			t.Error("InputEOF should match ErrInputEOF")
		}
	})

	t.Run("StepLimit", func(t *testing.T) {
		err := StepLimit(1000)
		if err.Kind != KindStepLimit || err.Phase != PhaseRuntime {
			t.Errorf("got %v/%v", err.Phase, err.Kind)
		}
		if !strings.Contains(err.Detail, "1000") {
			t.Errorf("Detail = %v, should contain limit", err.Detail)
		}
	})

	t.Run("BadInputValue", func(t *testing.T) {
		err := BadInput(PhaseDispatch, 'a', 0, 2)
		if err.Value != byte('a') {
			t.Errorf("Value = %v, want 'a'", err.Value)
		}
	})
}
