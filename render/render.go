package render

import (
	"go/format"
	"strings"

	bgerrors "github.com/scriptkit/bridgegen/errors"
	"github.com/scriptkit/bridgegen/ident"
	"github.com/scriptkit/bridgegen/spec"
)

// Default import bases for the contract packages and the per-domain host
// implementation sets referenced by generated modules. The renderer treats
// both as fixed collaborator paths; it does not verify they resolve.
const (
	DefaultContractBase = "github.com/scriptkit/bridgegen"
	DefaultImplBase     = "github.com/scriptkit/bridgegen/hostapi"
)

// registerHeadroom is the extra registration storage reserved beyond the
// function table, for the constant tables installed right after.
const registerHeadroom = 5

// GeneratedModule is one rendered bridge: the complete source text and the
// number of functions it wraps. Immutable once produced.
type GeneratedModule struct {
	Domain        string
	Text          []byte
	FunctionCount int
}

// Renderer turns validated domains into bridge module source.
// The zero value is not usable; construct with New.
type Renderer struct {
	contractBase string
	implBase     string
}

// Option adjusts renderer collaborator paths.
type Option func(*Renderer)

// WithContractBase overrides the import base of the guest/hostval packages.
func WithContractBase(base string) Option {
	return func(r *Renderer) { r.contractBase = strings.TrimSuffix(base, "/") }
}

// WithImplBase overrides the import base of per-domain implementation sets.
func WithImplBase(base string) Option {
	return func(r *Renderer) { r.implBase = strings.TrimSuffix(base, "/") }
}

// New constructs a renderer.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		contractBase: DefaultContractBase,
		implBase:     DefaultImplBase,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Module renders one complete bridge module for d. Rendering is a pure,
// deterministic function of the domain: identical input yields byte-identical
// output. It never partially succeeds; validation and derivation errors are
// raised before any text is assembled.
func (r *Renderer) Module(d spec.Domain) (*GeneratedModule, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if err := checkIdentifiers(d); err != nil {
		return nil, err
	}

	var b strings.Builder
	stages := []func(spec.Domain) (string, error){
		r.Header,
		r.Imports,
		r.Count,
		r.ErrorDecls,
		r.Register,
		r.Cleanup,
		r.Constants,
	}
	for _, stage := range stages {
		text, err := stage(d)
		if err != nil {
			return nil, bgerrors.RenderFailure(d.Name, err)
		}
		b.WriteString(text)
		b.WriteByte('\n')
	}
	for _, fn := range d.Functions {
		text, err := r.Wrapper(d, fn)
		if err != nil {
			return nil, bgerrors.RenderFailure(d.Name, err)
		}
		b.WriteString(text)
		b.WriteByte('\n')
	}

	src, err := format.Source([]byte(b.String()))
	if err != nil {
		return nil, bgerrors.RenderFailure(d.Name, err)
	}

	return &GeneratedModule{
		Domain:        d.Name,
		Text:          src,
		FunctionCount: d.FunctionCount(),
	}, nil
}

// checkIdentifiers is the defensive double-check for derived wrapper
// collisions. It can only trip if the uniqueness invariant was violated
// upstream of validation.
func checkIdentifiers(d spec.Domain) error {
	seen := make(map[string]string, len(d.Functions))
	for _, fn := range d.Functions {
		w := ident.Wrapper(d.Name, fn.Name)
		if prev, ok := seen[w]; ok {
			return bgerrors.DuplicateIdentifier(d.Name, w, prev, fn.Name)
		}
		seen[w] = fn.Name
	}
	return nil
}

// Filename returns the output file name for a domain's bridge module.
func Filename(domain string) string {
	return domain + "_bridge.go"
}
