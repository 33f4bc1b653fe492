package spec

import (
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"

	bgerrors "github.com/scriptkit/bridgegen/errors"
)

// Domain describes one API surface exposed to the guest runtime: the
// functions to wrap, the constant groups to install, and metadata used
// for traceability in the generated header.
type Domain struct {
	Name        string          `json:"name" yaml:"name" validate:"required,fn_token"`
	Description string          `json:"description" yaml:"description" validate:"required"`
	Functions   []Function      `json:"functions" yaml:"functions" validate:"dive"`
	Constants   []ConstantGroup `json:"constants,omitempty" yaml:"constants,omitempty" validate:"dive"`
}

// Function declares one guest-callable function: its short name (the
// dispatch-table key) and a one-line call-signature doc shown in the
// generated wrapper's comment.
type Function struct {
	Name string `json:"name" yaml:"name" validate:"required,fn_token"`
	Doc  string `json:"doc" yaml:"doc" validate:"required"`
}

// ConstantGroup declares one named table of symbolic constants installed
// on the domain's exported namespace.
type ConstantGroup struct {
	Name   string   `json:"name" yaml:"name" validate:"required,group_token"`
	Values []string `json:"values" yaml:"values" validate:"required,min=1,dive,required,const_token"`
}

var (
	fnTokenRe    = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)
	groupTokenRe = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)
	constTokenRe = regexp.MustCompile(`^[A-Z][A-Z0-9_]*$`)
)

// validate is a package-level singleton; constructing a validator per call
// is expensive and the instance is safe for concurrent use.
var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func instance() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New()
		_ = v.RegisterValidation("fn_token", func(fl validator.FieldLevel) bool {
			return fnTokenRe.MatchString(fl.Field().String())
		})
		_ = v.RegisterValidation("group_token", func(fl validator.FieldLevel) bool {
			return groupTokenRe.MatchString(fl.Field().String())
		})
		_ = v.RegisterValidation("const_token", func(fl validator.FieldLevel) bool {
			return constTokenRe.MatchString(fl.Field().String())
		})
		validate = v
	})
	return validate
}

// New constructs a validated Domain. It fails with an invalid_domain error
// when any shape or uniqueness invariant is violated, before the domain can
// reach rendering.
func New(name, description string, fns []Function, groups []ConstantGroup) (Domain, error) {
	d := Domain{
		Name:        name,
		Description: description,
		Functions:   fns,
		Constants:   groups,
	}
	if err := d.Validate(); err != nil {
		return Domain{}, err
	}
	return d, nil
}

// Validate checks the domain's shape and uniqueness invariants:
// function names unique within the domain, group names unique within the
// domain, value names unique within each group.
func (d Domain) Validate() error {
	if err := instance().Struct(d); err != nil {
		return bgerrors.InvalidDomain(d.Name, "shape validation failed: %v", err)
	}

	seenFns := make(map[string]bool, len(d.Functions))
	for _, fn := range d.Functions {
		if seenFns[fn.Name] {
			return bgerrors.InvalidDomain(d.Name, "duplicate function name %q", fn.Name)
		}
		seenFns[fn.Name] = true
	}

	seenGroups := make(map[string]bool, len(d.Constants))
	for _, g := range d.Constants {
		if seenGroups[g.Name] {
			return bgerrors.InvalidDomain(d.Name, "duplicate constant group %q", g.Name)
		}
		seenGroups[g.Name] = true

		seenValues := make(map[string]bool, len(g.Values))
		for _, v := range g.Values {
			if seenValues[v] {
				return bgerrors.InvalidDomain(d.Name, "duplicate value %q in constant group %q", v, g.Name)
			}
			seenValues[v] = true
		}
	}

	return nil
}

// FunctionCount returns the number of declared functions. The generated
// module embeds this as its registration presize constant.
func (d Domain) FunctionCount() int {
	return len(d.Functions)
}
