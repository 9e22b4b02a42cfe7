package throwable

import (
	"errors"
	"fmt"

	"github.com/tarantool/go-verdict/stacktrace"
)

// RemoteError stands in for an error whose Go type is not registered.
// It keeps the original type name and message. The cause is carried in
// its own Carrier, so a registered error wrapped by an unregistered one
// arrives as itself, with its stack.
type RemoteError struct {
	Type    string   `msgpack:"type"            yaml:"type"`
	Message string   `msgpack:"message"         yaml:"message"`
	Cause   *Carrier `msgpack:"cause,omitempty" yaml:"cause,omitempty"`

	trace stacktrace.Trace
}

func newRemoteError(err error) *RemoteError {
	if err == nil {
		return nil
	}

	out := &RemoteError{
		Type:    fmt.Sprintf("%T", err),
		Message: err.Error(),
		Cause:   nil,
		trace:   stacktrace.Of(err),
	}

	if cause := errors.Unwrap(err); cause != nil {
		carrier := NewCarrier(cause)
		out.Cause = &carrier
	}

	return out
}

// Error returns the original error message.
func (e *RemoteError) Error() string {
	return e.Message
}

// Unwrap returns the original cause, if any.
func (e *RemoteError) Unwrap() error {
	if e.Cause == nil {
		return nil
	}

	return e.Cause.Err()
}

// StackTrace implements stacktrace.Tracer.
func (e *RemoteError) StackTrace() stacktrace.Trace {
	return e.trace
}

// SetStackTrace implements stacktrace.Setter.
func (e *RemoteError) SetStackTrace(trace stacktrace.Trace) {
	e.trace = trace.Clone()
}
