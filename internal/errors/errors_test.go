package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorMessage(t *testing.T) {
	err := New(ExitMenuInvalid, "invalid menu apps")
	if err.Error() != "invalid menu apps" {
		t.Errorf("Error() = %q", err.Error())
	}

	cause := fmt.Errorf("unexpected end of JSON input")
	wrapped := Wrap(ExitMenuInvalid, "invalid menu apps", cause)
	if !strings.Contains(wrapped.Error(), "unexpected end of JSON input") {
		t.Errorf("Error() = %q, want the cause included", wrapped.Error())
	}
}

func TestUnwrap(t *testing.T) {
	cause := fmt.Errorf("root cause")
	err := Wrap(ExitConfigError, "config failed", cause)
	if !errors.Is(err, cause) {
		t.Error("errors.Is did not find the wrapped cause")
	}
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"config error", ConfigError("bad config", nil), ExitConfigError},
		{"menu not found", MenuNotFound("apps", nil), ExitMenuNotFound},
		{"menu invalid", MenuInvalid("apps", nil), ExitMenuInvalid},
		{"select failed", SelectFailed(nil), ExitSelectFailed},
		{"launch failed", LaunchFailed("mail", nil), ExitLaunchFailed},
		{"plain error", fmt.Errorf("plain"), ExitGeneralError},
		{"wrapped launcher error", fmt.Errorf("outer: %w", MenuNotFound("x", nil)), ExitMenuNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetExitCode(tt.err); got != tt.want {
				t.Errorf("GetExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}
