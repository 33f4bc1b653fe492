// Package hostval implements the host's generic value-exchange type and the
// bidirectional conversion between it and the guest runtime's native values.
//
// Generated wrappers pull every positional argument into a hostval.Value
// before invoking the underlying implementation, and push the result back
// as a guest value. Both directions are fallible; a wrapper aborts on the
// first conversion failure so no partial argument list reaches the host.
package hostval
