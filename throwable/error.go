package throwable

import (
	"fmt"
)

// DecodeError is returned when a carried error cannot be rebuilt.
type DecodeError struct {
	text   string
	parent error
}

func errDecode(text string, parent error) error {
	if parent == nil {
		return nil
	}

	return DecodeError{text: text, parent: parent}
}

// Unwrap returns the underlying decoding failure.
func (e DecodeError) Unwrap() error {
	return e.parent
}

// Error returns a string representation of the decoding error.
func (e DecodeError) Error() string {
	return fmt.Sprintf("failed to decode carried error, %s: %s", e.text, e.parent)
}

// EncodeError is returned when a carried error cannot be encoded.
type EncodeError struct {
	text   string
	parent error
}

func errEncode(text string, parent error) error {
	if parent == nil {
		return nil
	}

	return EncodeError{text: text, parent: parent}
}

// Unwrap returns the underlying encoding failure.
func (e EncodeError) Unwrap() error {
	return e.parent
}

// Error returns a string representation of the encoding error.
func (e EncodeError) Error() string {
	return fmt.Sprintf("failed to encode carried error, %s: %s", e.text, e.parent)
}
