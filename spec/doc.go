// Package spec defines the declarative specification model for one API
// domain exposed to the guest scripting runtime.
//
// A Domain lists the functions the bridge wraps, the constant groups it
// exports, and descriptive metadata. Domains are pure data: they are
// validated once at construction and never mutated afterwards. Declared
// order of functions and constant groups is preserved because generated
// registration tables and constant installation must be emitted in the
// same order on every run.
//
// Domains come from two sources: the built-in catalog (package domains)
// and external specification files in YAML or JSON (Load, LoadFile). Both
// pass through the same validation.
package spec
