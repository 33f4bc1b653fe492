// Package ident derives the identifiers used in generated bridge modules.
//
// All derivations are pure functions of the domain and function names, so
// repeated generation of the same specification yields identical output.
package ident

import "strings"

// wrapperPrefix marks an identifier as a guest-callable wrapper.
const wrapperPrefix = "guest"

// Wrapper derives the wrapper function identifier for one (domain, function)
// pair: each underscore-delimited segment is title-cased and the separators
// are stripped, e.g. ("memory", "list_keys") -> "guestMemoryListKeys".
func Wrapper(domain, fn string) string {
	var b strings.Builder
	b.WriteString(wrapperPrefix)
	b.WriteString(Camel(domain))
	b.WriteString(Camel(fn))
	return b.String()
}

// TableKey derives the dispatch-table key for a function. The guest runtime
// sees the function under its short declared name, unchanged.
func TableKey(fn string) string {
	return fn
}

// ImplName derives the exported name of the host-side implementation
// function a wrapper invokes, e.g. "list_keys" -> "ListKeys".
func ImplName(fn string) string {
	return Camel(fn)
}

// PackageName derives the Go package name of a generated module,
// e.g. "memory" -> "memorybridge".
func PackageName(domain string) string {
	return strings.ReplaceAll(strings.ToLower(domain), "_", "") + "bridge"
}

// Camel title-cases each underscore-delimited segment of a snake-case token
// and strips the separators. Empty segments are dropped.
func Camel(token string) string {
	var b strings.Builder
	for _, seg := range strings.Split(token, "_") {
		if seg == "" {
			continue
		}
		b.WriteString(strings.ToUpper(seg[:1]))
		b.WriteString(strings.ToLower(seg[1:]))
	}
	return b.String()
}
