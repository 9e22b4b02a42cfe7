package throwable

import (
	"fmt"

	"github.com/tarantool/go-verdict/stacktrace"
)

// PanicKind is the Exception kind used for recovered panics.
const PanicKind = "panic"

// Exception is a general purpose error that records where it was created.
//
// Only Kind and Message are visible to codecs; the stack is carried
// separately by a [Carrier] and put back after decoding.
type Exception struct {
	Kind    string `msgpack:"kind"    yaml:"kind"`
	Message string `msgpack:"message" yaml:"message"`

	trace stacktrace.Trace
}

// New creates an Exception with the stack of its caller.
func New(kind, message string) *Exception {
	return &Exception{
		Kind:    kind,
		Message: message,
		trace:   stacktrace.Capture(1),
	}
}

// Newf creates an Exception with a formatted message and the stack of its caller.
func Newf(kind, format string, args ...any) *Exception {
	return &Exception{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		trace:   stacktrace.Capture(1),
	}
}

// FromPanic converts a value returned by recover into an Exception.
// It must be called from the deferred function that recovered, so that
// the recorded stack still contains the panicking frames.
func FromPanic(recovered any) *Exception {
	return &Exception{
		Kind:    PanicKind,
		Message: fmt.Sprint(recovered),
		trace:   stacktrace.Capture(1),
	}
}

// Error implements the error interface.
func (e *Exception) Error() string {
	switch {
	case e.Kind == "":
		return e.Message
	case e.Message == "":
		return e.Kind
	default:
		return e.Kind + ": " + e.Message
	}
}

// StackTrace implements stacktrace.Tracer.
func (e *Exception) StackTrace() stacktrace.Trace {
	return e.trace
}

// SetStackTrace implements stacktrace.Setter.
func (e *Exception) SetStackTrace(trace stacktrace.Trace) {
	e.trace = trace.Clone()
}
