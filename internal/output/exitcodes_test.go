package output

import (
	"errors"
	"fmt"
	"testing"
)

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "nil error",
			err:  nil,
			want: ExitSuccess,
		},
		{
			name: "user error",
			err:  NewUserError("unknown habit"),
			want: ExitUserError,
		},
		{
			name: "system error",
			err:  NewSystemError("write failed"),
			want: ExitSystemError,
		},
		{
			name: "conflict error",
			err:  NewConflictError("habit already exists"),
			want: ExitConflict,
		},
		{
			name: "untyped error defaults to user error",
			err:  errors.New("something"),
			want: ExitUserError,
		},
		{
			name: "wrapped exit error",
			err:  fmt.Errorf("context: %w", NewConflictError("already done")),
			want: ExitConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetExitCode(tt.err); got != tt.want {
				t.Errorf("GetExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestExitError_Unwrap(t *testing.T) {
	sentinel := errors.New("data corrupt")

	tests := []struct {
		name string
		err  *ExitError
	}{
		{name: "user error with cause", err: NewUserErrorWithCause("failed to parse", sentinel)},
		{name: "system error with cause", err: NewSystemErrorWithCause("failed to write", sentinel)},
		{name: "conflict error with cause", err: NewConflictErrorWithCause("already done", sentinel)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, sentinel) {
				t.Error("expected errors.Is to see the cause through ExitError")
			}
		})
	}
}

func TestExitError_Message(t *testing.T) {
	err := NewUserError("unknown habit: \"swimming\"")
	if err.Error() != "unknown habit: \"swimming\"" {
		t.Errorf("Error() = %q", err.Error())
	}
}
