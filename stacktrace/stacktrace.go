// Package stacktrace provides a transportable representation of call stacks.
//
// Go errors do not carry their stack, and the runtime representation
// (program counters) is meaningless in another process. A [Trace] is a plain
// list of resolved frames, so it can be encoded, shipped and compared.
package stacktrace

import (
	"errors"
	"fmt"
	"runtime"
	"slices"
	"strings"
)

// maxDepth limits the number of frames recorded by Capture.
const maxDepth = 64

// Frame is a single resolved call site.
type Frame struct {
	_msgpack struct{} `msgpack:",as_array"` //nolint:unused

	Function string `msgpack:"function" yaml:"function"`
	File     string `msgpack:"file"     yaml:"file"`
	Line     int    `msgpack:"line"     yaml:"line"`
}

// NewFrame creates a new Frame.
func NewFrame(function, file string, line int) Frame {
	return Frame{Function: function, File: file, Line: line} //nolint:exhaustruct
}

// String returns the frame in "function (file:line)" form.
func (f Frame) String() string {
	return fmt.Sprintf("%s (%s:%d)", f.Function, f.File, f.Line)
}

// Trace is a list of frames, innermost call first.
type Trace []Frame

// Capture records the stack of the calling goroutine.
// skip is the number of frames to skip above the caller of Capture,
// zero means the trace starts at the caller.
func Capture(skip int) Trace {
	pcs := make([]uintptr, maxDepth)

	// Skip runtime.Callers and Capture itself.
	n := runtime.Callers(skip+2, pcs) //nolint:mnd
	if n == 0 {
		return Trace{}
	}

	frames := runtime.CallersFrames(pcs[:n])
	out := make(Trace, 0, n)

	for {
		frame, more := frames.Next()
		out = append(out, NewFrame(frame.Function, frame.File, frame.Line))

		if !more {
			break
		}
	}

	return out
}

// Clone returns an independent copy of the trace.
// A nil trace stays nil.
func (t Trace) Clone() Trace {
	return slices.Clone(t)
}

// Equal reports whether both traces contain the same frames in the same order.
func (t Trace) Equal(other Trace) bool {
	return slices.Equal(t, other)
}

// String returns one frame per line, each prefixed by a tab.
func (t Trace) String() string {
	var sb strings.Builder

	for i, frame := range t {
		if i > 0 {
			sb.WriteByte('\n')
		}

		sb.WriteByte('\t')
		sb.WriteString(frame.String())
	}

	return sb.String()
}

// Tracer is implemented by errors that know where they were created.
type Tracer interface {
	StackTrace() Trace
}

// Setter is implemented by errors whose stack can be replaced.
type Setter interface {
	SetStackTrace(trace Trace)
}

// Of returns a copy of the stack recorded by err or, when err does not
// record one, by the first error in its chain that does.
// It returns nil for a nil error and an empty trace when no error in the
// chain implements Tracer.
func Of(err error) Trace {
	if err == nil {
		return nil
	}

	var tracer Tracer
	if !errors.As(err, &tracer) {
		return Trace{}
	}

	trace := tracer.StackTrace().Clone()
	if trace == nil {
		return Trace{}
	}

	return trace
}
