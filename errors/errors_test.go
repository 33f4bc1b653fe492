package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseValidate,
				Kind:   KindInvalidDomain,
				Domain: "memory",
				Detail: "duplicate function name",
			},
			contains: []string{"[validate]", "invalid_domain", "memory", "duplicate function name"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseRender,
				Kind:  KindRenderFailure,
			},
			contains: []string{"[render]", "render_failure"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseWrite,
				Kind:   KindWriteFailure,
				Domain: "event",
				Detail: "write bridges/event",
				Cause:  errors.New("disk full"),
			},
			contains: []string{"[write]", "write_failure", "event", "caused by", "disk full"},
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
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := WriteFailure("memory", "out/memory", cause)

	if !errors.Is(err, cause) {
		t.Error("errors.Is did not match wrapped cause")
	}
	if errors.Unwrap(err) != cause {
		t.Error("Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	a := InvalidDomain("memory", "dup")
	b := InvalidDomain("hook", "other detail")

	if !errors.Is(a, b) {
		t.Error("errors with same phase and kind should match")
	}

	c := RenderFailure("memory", errors.New("boom"))
	if errors.Is(a, c) {
		t.Error("errors with different kinds should not match")
	}
}

func TestDomainOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"direct", InvalidDomain("schema", "bad"), "schema"},
		{"nested", WriteFailure("output", "p", errors.New("io")), "output"},
		{"plain error", errors.New("plain"), ""},
		{"nil domain then nested", &Error{Phase: PhaseWrite, Kind: KindWriteFailure, Cause: InvalidDomain("test", "x")}, "test"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DomainOf(tt.err); got != tt.want {
				t.Errorf("DomainOf = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDuplicateIdentifier(t *testing.T) {
	err := DuplicateIdentifier("memory", "guestMemoryStore", "store", "store")
	msg := err.Error()
	for _, s := range []string{"duplicate_identifier", "guestMemoryStore", "memory"} {
		if !strings.Contains(msg, s) {
			t.Errorf("error message %q does not contain %q", msg, s)
		}
	}
}
