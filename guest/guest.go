package guest

import (
	"errors"

	"go.uber.org/zap"
)

// Value is the guest runtime's native value representation. Its concrete
// shape is engine-specific; bridges move data through it only via the
// hostval converter.
type Value any

// Func is the native calling convention for guest-callable wrappers: one
// call handle in, the number of returned values out.
type Func func(Call) int

// Wrapper return conventions.
const (
	// OneValue is returned by a wrapper that pushed exactly one result.
	OneValue = 1
	// CallFailed is the sentinel a wrapper returns after raising an error.
	CallFailed = -1
)

// Sentinel errors contributed by the translation layer. Generated modules
// aggregate these with their domain-scoped error values.
var (
	ErrContextRequired  = errors.New("guest: script context required")
	ErrInvalidArgument  = errors.New("guest: invalid argument")
	ErrConversionFailed = errors.New("guest: value conversion failed")
)

// Table is a guest-runtime table (namespace) under construction.
type Table interface {
	// Set assigns a field on the table.
	Set(key string, v Value)
}

// Runtime is the registration surface of the embedded scripting engine.
// Implementations are supplied by the embedding application; the generator
// treats this as a fixed contract.
type Runtime interface {
	// RegisterFunc installs a wrapper into the guest's callable namespace.
	RegisterFunc(name string, fn Func) error
	// NewTable constructs a fresh guest table.
	NewTable() Table
	// Namespace returns the exported namespace table for a domain,
	// creating it if absent.
	Namespace(domain string) Table
	// Presize reserves internal storage for n upcoming registrations.
	Presize(n int)
	// BindContext attaches the host execution context resolved by every
	// wrapper invocation in this runtime.
	BindContext(hctx *HostContext)
}

// Call is one guest-to-host invocation in flight.
type Call interface {
	// Context resolves the host execution context bound to the runtime,
	// or nil when none was bound.
	Context() *HostContext
	// ArgCount reports how many positional arguments the guest passed.
	ArgCount() int
	// Arg returns the positional argument at pos (1-based, guest stack
	// convention).
	Arg(pos int) Value
	// Push places a return value on the guest stack.
	Push(v Value)
	// RaiseError writes a guest-visible error message for this call.
	RaiseError(msg string)
}

// HostContext carries the host-side state passed to every underlying
// implementation function.
type HostContext struct {
	Log   *zap.Logger
	State map[string]any
}

// Raise translates err into a guest-visible error signal: the message is
// written through the call and the CallFailed sentinel is returned for the
// wrapper to hand back to the runtime.
func Raise(call Call, err error) int {
	if err == nil {
		err = ErrConversionFailed
	}
	call.RaiseError(err.Error())
	Logger().Debug("bridge call failed", zap.Error(err))
	return CallFailed
}

// String wraps a host string as a guest native value.
func String(s string) Value {
	return s
}
