// Package render assembles bridge module source text from a validated
// domain specification.
//
// A module is built from eight fixed stages: header, imports, function
// count, error declarations, registration routine, cleanup hook, constant
// installation, and one wrapper per declared function. Each stage is a
// named method on Renderer so it can be unit-tested without rendering a
// whole module.
//
// Rendering is deterministic: the same domain always yields byte-identical
// output. The assembled text is passed through go/format before it is
// returned, so generated modules are always gofmt-clean.
package render
