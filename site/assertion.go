package site

import (
	"fmt"
	"io"

	"github.com/tarantool/go-verdict/stacktrace"
)

// defaultMessage is used when neither the site nor the cause has a message.
const defaultMessage = "assertion failed"

// AssertionError is a failed check annotated with its declaration site.
type AssertionError struct {
	site  *Site
	cause error
}

// Site returns the declaration site.
func (e *AssertionError) Site() *Site {
	return e.site
}

// Error returns "<site message>: <cause message>", dropping empty parts.
func (e *AssertionError) Error() string {
	message := e.siteMessage()

	switch {
	case e.cause == nil && message == "":
		return defaultMessage
	case e.cause == nil:
		return message
	case message == "":
		return e.cause.Error()
	default:
		return message + ": " + e.cause.Error()
	}
}

func (e *AssertionError) siteMessage() string {
	if e.site == nil {
		return ""
	}

	return e.site.Message
}

func (e *AssertionError) creation() stacktrace.Trace {
	if e.site == nil {
		return nil
	}

	return e.site.Creation
}

// Unwrap returns the original error, nil if the check failed without one.
func (e *AssertionError) Unwrap() error {
	return e.cause
}

// StackTrace returns the stack of the original error when it has one,
// and the declaration stack of the site otherwise.
func (e *AssertionError) StackTrace() stacktrace.Trace {
	if trace := stacktrace.Of(e.cause); len(trace) > 0 {
		return trace
	}

	return e.creation().Clone()
}

// Format implements fmt.Formatter. %+v prints the message, the failing
// stack and the declaration stack.
func (e *AssertionError) Format(state fmt.State, verb rune) {
	switch {
	case verb == 'v' && state.Flag('+'):
		_, _ = io.WriteString(state, e.Error())

		if trace := stacktrace.Of(e.cause); len(trace) > 0 {
			_, _ = io.WriteString(state, "\ncaused at:\n"+trace.String())
		}

		if creation := e.creation(); len(creation) > 0 {
			_, _ = io.WriteString(state, "\ndeclared at:\n"+creation.String())
		}
	case verb == 'q':
		_, _ = fmt.Fprintf(state, "%q", e.Error())
	default:
		_, _ = io.WriteString(state, e.Error())
	}
}
