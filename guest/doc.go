// Package guest defines the capability contract between generated bridge
// modules and the embedded guest scripting runtime.
//
// The generator never executes guest code; it only emits source that calls
// these contracts. An embedding application supplies the Runtime and Call
// implementations for its scripting engine.
//
// # Main Types
//
//   - Runtime: callable registration, table construction, namespace access
//   - Call: per-invocation argument introspection and result delivery
//   - HostContext: host-side state resolved at the start of every wrapper
//
// Raise is the error-translation helper: it turns any wrapper-side error
// into a guest-visible error signal and returns the CallFailed sentinel.
package guest
