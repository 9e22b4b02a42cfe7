package seal

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// ValidationError represents an error when an envelope fails verification.
type ValidationError struct {
	text   string
	parent error
}

// Error returns a string representation of the validation error.
func (e ValidationError) Error() string {
	if e.parent == nil {
		return e.text
	}

	return fmt.Sprintf("%s: %s", e.text, e.parent)
}

// Unwrap returns the underlying error, if any.
func (e ValidationError) Unwrap() error {
	return e.parent
}

func errHashNotVerifiedMissing(hasherName string) error {
	return ValidationError{
		text:   fmt.Sprintf("hash \"%s\" not verified (missing)", hasherName),
		parent: nil,
	}
}

func errSignatureNotVerifiedMissing(verifierName string) error {
	return ValidationError{
		text:   fmt.Sprintf("signature \"%s\" not verified (missing)", verifierName),
		parent: nil,
	}
}

func errHashMismatch(hasherName string, expected, got []byte) error {
	return ValidationError{
		text:   fmt.Sprintf("hash mismatch for \"%s\"", hasherName),
		parent: hashMismatchDetailError{expected: expected, got: got},
	}
}

func errFailedToComputeHashWith(hasherName string, parent error) error {
	return ValidationError{
		text:   fmt.Sprintf("failed to calculate hash \"%s\"", hasherName),
		parent: parent,
	}
}

func errSignatureVerificationFailed(verifierName string, parent error) error {
	return ValidationError{
		text:   fmt.Sprintf("signature verification failed for \"%s\"", verifierName),
		parent: parent,
	}
}

func errFailedToUnmarshalEnvelope(parent error) error {
	return ValidationError{
		text:   "failed to unmarshal envelope",
		parent: parent,
	}
}

type hashMismatchDetailError struct {
	expected []byte
	got      []byte
}

func (h hashMismatchDetailError) Error() string {
	return fmt.Sprintf("expected \"%s\", got \"%s\"", hex.EncodeToString(h.expected), hex.EncodeToString(h.got))
}

// SealError represents an error when an outcome cannot be sealed.
type SealError struct {
	text   string
	parent error
}

func errSeal(text string, parent error) error {
	return SealError{text: text, parent: parent}
}

// Unwrap returns the underlying error that caused the failure.
func (e SealError) Unwrap() error {
	return e.parent
}

// Error returns a string representation of the seal error.
func (e SealError) Error() string {
	if e.parent == nil {
		return "failed to " + e.text
	}

	return "failed to " + e.text + ": " + e.parent.Error()
}

// AggregatedError collects every verification failure of an envelope.
type AggregatedError struct {
	parent []error
}

// Unwrap returns the underlying slice of errors.
func (e *AggregatedError) Unwrap() []error {
	return e.parent
}

// Append adds an error to the aggregated error.
func (e *AggregatedError) Append(err error) {
	if err != nil {
		e.parent = append(e.parent, err)
	}
}

// Error returns a string representation of the aggregated error.
func (e *AggregatedError) Error() string {
	switch {
	case len(e.parent) == 0:
		return ""
	case len(e.parent) == 1:
		return e.parent[0].Error()
	default:
		errStrings := make([]string, 0, len(e.parent))
		for _, p := range e.parent {
			errStrings = append(errStrings, p.Error())
		}

		return "aggregated error: " + strings.Join(errStrings, ", ")
	}
}

// Finalize returns nil if there are no errors, otherwise returns error or the aggregated error.
func (e *AggregatedError) Finalize() error {
	switch len(e.parent) {
	case 0:
		return nil
	case 1:
		return e.parent[0]
	default:
		return e
	}
}
