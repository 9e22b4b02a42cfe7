package verdict

import (
	"errors"
	"fmt"
)

// ErrInconsistentOutcome is returned when a decoded success carries
// a site or an error.
var ErrInconsistentOutcome = errors.New("success must not carry a site or an error")

// UnregisteredSiteError is returned when encoding an outcome whose site
// type was never registered with RegisterSite.
type UnregisteredSiteError struct {
	typeName string
}

func errUnregisteredSite(site Site) error {
	return UnregisteredSiteError{typeName: fmt.Sprintf("%T", site)}
}

// Error returns a string representation of the error.
func (e UnregisteredSiteError) Error() string {
	return "site type is not registered: " + e.typeName
}

// UnknownSiteError is returned when decoding an outcome whose site name
// is not registered on the receiving side.
type UnknownSiteError struct {
	name string
}

func errUnknownSite(name string) error {
	return UnknownSiteError{name: name}
}

// Error returns a string representation of the error.
func (e UnknownSiteError) Error() string {
	return "unknown site type: " + e.name
}

// SiteCodecError is returned when a site cannot be encoded or decoded.
type SiteCodecError struct {
	name   string
	parent error
}

func errSiteCodec(name string, parent error) error {
	if parent == nil {
		return nil
	}

	return SiteCodecError{name: name, parent: parent}
}

// Unwrap returns the underlying codec failure.
func (e SiteCodecError) Unwrap() error {
	return e.parent
}

// Error returns a string representation of the error.
func (e SiteCodecError) Error() string {
	return fmt.Sprintf("failed to process site %q: %s", e.name, e.parent)
}
