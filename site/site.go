// Package site provides the default assertion site: the place, in user
// terms, where a check was declared.
package site

import (
	"strings"

	"github.com/tarantool/go-verdict/stacktrace"
)

// Site records the message of a check and the stack at its declaration.
type Site struct {
	Message  string           `msgpack:"message"  yaml:"message"`
	Creation stacktrace.Trace `msgpack:"creation" yaml:"creation,omitempty"`
}

// Capture creates a Site declared by the caller of Capture.
func Capture(message string) *Site {
	return &Site{
		Message:  message,
		Creation: stacktrace.Capture(1),
	}
}

// New creates a Site with an explicit creation trace.
func New(message string, creation stacktrace.Trace) *Site {
	return &Site{
		Message:  message,
		Creation: creation.Clone(),
	}
}

// Wrap combines cause with the site into an *AssertionError.
// cause may be nil for a check that failed without an error.
// A nil Site wraps as a site without message or creation stack.
func (s *Site) Wrap(cause error) error {
	if s == nil {
		s = &Site{Message: "", Creation: nil}
	}

	return &AssertionError{site: s, cause: cause}
}

// String returns the message followed by the declaring frame, if known.
func (s *Site) String() string {
	if s == nil {
		return ""
	}

	if len(s.Creation) == 0 {
		return s.Message
	}

	var sb strings.Builder

	sb.WriteString(s.Message)
	sb.WriteString(" (declared at ")
	sb.WriteString(s.Creation[0].String())
	sb.WriteString(")")

	return sb.String()
}
