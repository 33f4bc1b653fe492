package render

import (
	"strings"

	"github.com/scriptkit/bridgegen/ident"
	"github.com/scriptkit/bridgegen/spec"
)

// The eight rendering stages, in the order Module assembles them. Each
// stage is a pure function of the domain and can be exercised alone.

func (r *Renderer) exec(name string, data any) (string, error) {
	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, name, data); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Header renders the traceability comment block and package clause.
func (r *Renderer) Header(d spec.Domain) (string, error) {
	return r.exec("header", struct {
		Package     string
		Domain      string
		Description string
	}{
		Package:     ident.PackageName(d.Name),
		Domain:      d.Name,
		Description: strings.TrimSuffix(d.Description, "."),
	})
}

// Imports renders the dependency declarations: the guest binding layer, the
// value-exchange and conversion package, and the domain's implementation
// set. Domains without functions skip the packages only wrappers use.
func (r *Renderer) Imports(d spec.Domain) (string, error) {
	return r.exec("imports", struct {
		ContractBase string
		ImplBase     string
		Domain       string
		HasFunctions bool
	}{
		ContractBase: r.contractBase,
		ImplBase:     r.implBase,
		Domain:       d.Name,
		HasFunctions: d.FunctionCount() > 0,
	})
}

// Count renders the function count constant.
func (r *Renderer) Count(d spec.Domain) (string, error) {
	return r.exec("count", struct{ Count int }{Count: d.FunctionCount()})
}

// ErrorDecls renders the domain-scoped error values. The shape is fixed
// regardless of function count.
func (r *Renderer) ErrorDecls(d spec.Domain) (string, error) {
	return r.exec("errors", struct {
		Domain string
		Camel  string
	}{
		Domain: d.Name,
		Camel:  ident.Camel(d.Name),
	})
}

type registerEntry struct {
	Name    string
	Wrapper string
}

// Register renders the registration routine: one table entry per function
// in declared order, the install loop, constant installation, and the
// registered-count debug record.
func (r *Renderer) Register(d spec.Domain) (string, error) {
	entries := make([]registerEntry, 0, len(d.Functions))
	for _, fn := range d.Functions {
		entries = append(entries, registerEntry{
			Name:    ident.TableKey(fn.Name),
			Wrapper: ident.Wrapper(d.Name, fn.Name),
		})
	}
	return r.exec("register", struct {
		Domain   string
		Headroom int
		Entries  []registerEntry
	}{
		Domain:   d.Name,
		Headroom: registerHeadroom,
		Entries:  entries,
	})
}

// Cleanup renders the unconditional teardown hook.
func (r *Renderer) Cleanup(d spec.Domain) (string, error) {
	return r.exec("cleanup", struct{ Domain string }{Domain: d.Name})
}

type constantValue struct {
	Name  string
	Lower string
}

type constantGroup struct {
	Name   string
	Values []constantValue
}

// Constants renders the constant-installation routine: one fresh guest
// table per group in declared order, keyed by the exact symbolic name with
// the lowercase form as value.
func (r *Renderer) Constants(d spec.Domain) (string, error) {
	groups := make([]constantGroup, 0, len(d.Constants))
	for _, g := range d.Constants {
		values := make([]constantValue, 0, len(g.Values))
		for _, v := range g.Values {
			values = append(values, constantValue{Name: v, Lower: strings.ToLower(v)})
		}
		groups = append(groups, constantGroup{Name: g.Name, Values: values})
	}
	return r.exec("constants", struct {
		Domain string
		Groups []constantGroup
	}{
		Domain: d.Name,
		Groups: groups,
	})
}

// Wrapper renders one guest-callable wrapper implementation. The body has
// a fixed five-step shape: resolve context, convert arguments, invoke the
// implementation, convert and push the result, release all intermediate
// storage on every exit path.
func (r *Renderer) Wrapper(d spec.Domain, fn spec.Function) (string, error) {
	return r.exec("wrapper", struct {
		Doc     string
		Wrapper string
		Impl    string
	}{
		Doc:     fn.Doc,
		Wrapper: ident.Wrapper(d.Name, fn.Name),
		Impl:    ident.ImplName(fn.Name),
	})
}
