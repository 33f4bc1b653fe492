package render

import "text/template"

// Each rendering stage owns one template. Stages are assembled in fixed
// order by Module; keeping them separate lets every stage be exercised on
// its own.
var tmpl = template.Must(template.New("bridge").Parse(`
{{- define "header" -}}
// Code generated by bridgegen. DO NOT EDIT.

// Package {{.Package}} exposes the {{.Domain}} API domain to the guest runtime.
//
// {{.Description}}.
package {{.Package}}
{{end}}

{{- define "imports" -}}
import (
	"errors"

	"go.uber.org/zap"

	"{{.ContractBase}}/guest"
{{- if .HasFunctions}}
	"{{.ContractBase}}/hostval"
{{- end}}
{{- if .HasFunctions}}

	impl "{{.ImplBase}}/{{.Domain}}"
{{- end}}
)
{{end}}

{{- define "count" -}}
// functionCount is the number of guest-callable functions in this bridge,
// used to pre-size the runtime's registration storage.
const functionCount = {{.Count}}
{{end}}

{{- define "errors" -}}
// Domain-scoped error values. The translation layer contributes its own
// kinds (guest.ErrContextRequired, guest.ErrInvalidArgument,
// guest.ErrConversionFailed), surfaced through guest.Raise.
var (
	ErrInvalid{{.Camel}} = errors.New("{{.Domain}} bridge: invalid domain value")
	Err{{.Camel}}NotFound = errors.New("{{.Domain}} bridge: not found")
	ErrInvalidDefinition = errors.New("{{.Domain}} bridge: invalid definition")
	ErrExecutionFailed = errors.New("{{.Domain}} bridge: execution failed")
)
{{end}}

{{- define "register" -}}
// Register installs all {{.Domain}} bridge functions into the guest
// runtime's callable namespace, then installs the domain's constants.
func Register(rt guest.Runtime, hctx *guest.HostContext) error {
	rt.BindContext(hctx)
	rt.Presize(functionCount + {{.Headroom}})

	entries := []struct {
		name string
		fn   guest.Func
	}{
{{- range .Entries}}
		{name: "{{.Name}}", fn: {{.Wrapper}}},
{{- end}}
	}

	for _, e := range entries {
		if err := rt.RegisterFunc(e.name, e.fn); err != nil {
			return err
		}
	}

	installConstants(rt)
	guest.Logger().Debug("registered {{.Domain}} bridge functions", zap.Int("count", len(entries)))
	return nil
}
{{end}}

{{- define "cleanup" -}}
// Cleanup releases bridge resources. The {{.Domain}} bridge holds none; the
// hook exists so every bridge shares the register/cleanup lifecycle.
func Cleanup() {
	guest.Logger().Debug("cleaning up {{.Domain}} bridge resources")
}
{{end}}

{{- define "constants" -}}
func installConstants(rt guest.Runtime) {
{{- if .Groups}}
	ns := rt.Namespace("{{.Domain}}")
{{- range $i, $g := .Groups}}

	// {{$g.Name}} constants
	{{if eq $i 0}}tbl := {{else}}tbl = {{end}}rt.NewTable()
{{- range $g.Values}}
	tbl.Set("{{.Name}}", guest.String("{{.Lower}}"))
{{- end}}
	ns.Set("{{$g.Name}}", tbl)
{{- end}}
{{- else}}
	_ = rt.Namespace("{{.Domain}}")
{{- end}}
}
{{end}}

{{- define "wrapper" -}}
// {{.Doc}}
func {{.Wrapper}}(call guest.Call) int {
	hctx := call.Context()
	if hctx == nil {
		return guest.Raise(call, guest.ErrContextRequired)
	}

	argc := call.ArgCount()
	args := make([]hostval.Value, 0, argc)
	defer func() { hostval.ReleaseAll(args) }()

	for i := 1; i <= argc; i++ {
		v, err := hostval.Pull(call, i)
		if err != nil {
			return guest.Raise(call, err)
		}
		args = append(args, v)
	}

	result, err := impl.{{.Impl}}(hctx, args)
	if err != nil {
		return guest.Raise(call, errors.Join(ErrExecutionFailed, err))
	}
	defer result.Release()

	if err := hostval.Push(call, result); err != nil {
		return guest.Raise(call, err)
	}

	return guest.OneValue
}
{{end}}
`))
