// Package errors provides structured error types for the bridgegen pipeline.
//
// Errors are categorized by Phase (where in the pipeline the error occurred)
// and Kind (error category). Every error carries the name of the domain being
// processed so batch failures can be attributed.
//
// Use the convenience constructors for the common pipeline failures:
//
//	err := errors.InvalidDomain("memory", "duplicate function name %q", "store")
//	err := errors.WriteFailure("memory", path, cause)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
