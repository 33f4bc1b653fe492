// Package bridgegen generates binding ("bridge") source modules that expose
// host-side API surfaces to an embedded guest scripting runtime.
//
// Given a declarative description of an API domain (its functions, their
// documented call signatures, and its exported constant groups), the
// generator emits a complete, self-contained Go module implementing the
// marshalling glue between the guest runtime's native values and the host's
// generic exchange values.
//
// # Architecture Overview
//
// The repository is organized into packages with distinct responsibilities:
//
//	bridgegen/        Root package with the one-call Generate entry point
//	├── spec/         Declarative specification model + file loading
//	├── ident/        Identifier derivation for generated names
//	├── render/       Module renderer (eight fixed stages, deterministic)
//	├── batch/        Batch driver: render, write, report, fail-fast
//	├── domains/      Built-in catalog of API domains
//	├── guest/        Guest-runtime binding contract generated code targets
//	├── hostval/      Host generic exchange value + guest value conversion
//	├── errors/       Structured pipeline error types
//	└── cmd/bridgegen CLI for batch generation and interactive preview
//
// # Quick Start
//
// Generate every built-in domain into a directory:
//
//	report, err := bridgegen.Generate(domains.Catalog(), "./bridges")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, w := range report {
//	    fmt.Println("wrote", w.Path)
//	}
//
// # Determinism
//
// Rendering is a pure function of the domain specification: the same input
// always produces byte-identical output, so regenerating an unchanged
// catalog leaves the output tree byte-for-byte untouched.
//
// # Generated Module Contract
//
// Every generated module exposes the same lifecycle: Register installs the
// wrappers and constants into the guest runtime, Cleanup tears the bridge
// down. Wrappers resolve the host execution context, convert each guest
// argument into a hostval.Value, invoke the domain's implementation set,
// and convert the result back, translating any failure into a guest-visible
// error. The per-domain implementation sets are external collaborators: the
// generator assumes, but does not verify, that they exist at build time.
package bridgegen
