package verdict

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/tarantool/go-option"

	"github.com/tarantool/go-verdict/throwable"
)

// Site is where a check was declared. It turns the carried error into
// the error reported to the user.
//
// Sites travel by registered name, see RegisterSite.
type Site interface {
	// Wrap combines the site with cause, which may be nil.
	Wrap(cause error) error
}

// Outcome is the immutable result of a single check.
//
// The zero value is not a valid result: it reads as a failure without a
// carrier, a state Failure never produces. Decoders return it only together
// with an error. Build outcomes with Success, Failure or Check.
type Outcome struct {
	succeeded bool
	site      option.Generic[Site]
	carrier   option.Generic[throwable.Carrier]
}

// Success returns a passed outcome.
func Success() Outcome {
	return Outcome{
		succeeded: true,
		site:      option.None[Site](),
		carrier:   option.None[throwable.Carrier](),
	}
}

// Failure returns a failed outcome declared at site and caused by err.
//
// Both arguments may be nil; a nil pointer wrapped in Site counts as no
// site. Without a site the outcome has no
// AssertionError. Without err the failure still differs from a success:
// it reports that the check failed without an error explaining why.
// The site is held by reference and err is carried as is.
func Failure(site Site, err error) Outcome {
	out := Outcome{
		succeeded: false,
		site:      option.None[Site](),
		carrier:   option.Some(throwable.NewCarrier(err)),
	}

	if !isNilSite(site) {
		out.site = option.Some(site)
	}

	return out
}

func isNilSite(site Site) bool {
	if site == nil {
		return true
	}

	value := reflect.ValueOf(site)

	switch value.Kind() { //nolint:exhaustive
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return value.IsNil()
	default:
		return false
	}
}

// IsSuccess reports whether the check passed.
func (o Outcome) IsSuccess() bool {
	return o.succeeded
}

// Site returns the declaration site of a failure, or nil.
func (o Outcome) Site() Site {
	return o.site.UnwrapOr(nil)
}

// Cause returns the error carried by a failure, or nil.
func (o Outcome) Cause() error {
	return o.carrier.UnwrapOr(throwable.Carrier{}).Err() //nolint:exhaustruct
}

// AssertionError returns the carried error wrapped by the site.
// It is nil for a success and for a failure without a site.
// Every call wraps the same carried error again.
func (o Outcome) AssertionError() error {
	site := o.Site()
	if site == nil {
		return nil
	}

	return site.Wrap(o.Cause())
}

// String returns a debug representation, omitting absent fields.
func (o Outcome) String() string {
	var sb strings.Builder

	sb.WriteString("Outcome{isSuccess=")
	sb.WriteString(strconv.FormatBool(o.succeeded))

	if o.carrier.IsSome() {
		sb.WriteString(", ")
		sb.WriteString(o.carrier.UnwrapOr(throwable.Carrier{}).String()) //nolint:exhaustruct
	}

	sb.WriteString("}")

	return sb.String()
}
