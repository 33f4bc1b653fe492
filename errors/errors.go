package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in the generation pipeline the error occurred
type Phase string

const (
	PhaseValidate Phase = "validate" // specification model construction
	PhaseDerive   Phase = "derive"   // identifier derivation
	PhaseRender   Phase = "render"   // module text assembly
	PhaseWrite    Phase = "write"    // output persistence
	PhaseLoad     Phase = "load"     // specification file loading
)

// Kind categorizes the error
type Kind string

const (
	KindInvalidDomain       Kind = "invalid_domain"
	KindDuplicateIdentifier Kind = "duplicate_identifier"
	KindRenderFailure       Kind = "render_failure"
	KindWriteFailure        Kind = "write_failure"
	KindInvalidSpec         Kind = "invalid_spec"
)

// Error is the structured error type used throughout the generator
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Domain string
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Domain != "" {
		b.WriteString(" in domain ")
		b.WriteString(e.Domain)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Convenience constructors for the pipeline's failure modes

// InvalidDomain creates a model-construction error for a domain that
// violates a uniqueness or shape invariant.
func InvalidDomain(domain, detail string, args ...any) *Error {
	if len(args) > 0 {
		detail = fmt.Sprintf(detail, args...)
	}
	return &Error{
		Phase:  PhaseValidate,
		Kind:   KindInvalidDomain,
		Domain: domain,
		Detail: detail,
	}
}

// DuplicateIdentifier creates a derived-identifier collision error.
// Two functions in one domain can only collide if the uniqueness
// invariant was violated upstream, so this is a defensive check.
func DuplicateIdentifier(domain, ident, fnA, fnB string) *Error {
	return &Error{
		Phase:  PhaseDerive,
		Kind:   KindDuplicateIdentifier,
		Domain: domain,
		Detail: fmt.Sprintf("functions %q and %q both derive wrapper %s", fnA, fnB, ident),
	}
}

// RenderFailure wraps an error raised while assembling a module
func RenderFailure(domain string, cause error) *Error {
	return &Error{
		Phase:  PhaseRender,
		Kind:   KindRenderFailure,
		Domain: domain,
		Cause:  cause,
	}
}

// WriteFailure wraps a filesystem error while persisting output
func WriteFailure(domain, path string, cause error) *Error {
	return &Error{
		Phase:  PhaseWrite,
		Kind:   KindWriteFailure,
		Domain: domain,
		Detail: fmt.Sprintf("write %s", path),
		Cause:  cause,
	}
}

// InvalidSpec creates a specification-file loading error
func InvalidSpec(path string, cause error) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindInvalidSpec,
		Detail: fmt.Sprintf("load %s", path),
		Cause:  cause,
	}
}

// DomainOf extracts the domain name from a pipeline error, or "" when
// the error is not a structured pipeline error.
func DomainOf(err error) string {
	for err != nil {
		if e, ok := err.(*Error); ok && e.Domain != "" {
			return e.Domain
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return ""
		}
		err = u.Unwrap()
	}
	return ""
}
