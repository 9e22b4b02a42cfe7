// Package conclude decides what a received check outcome means for the
// coordinator: nothing on success, an error to report on failure.
package conclude

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	verdict "github.com/tarantool/go-verdict"
	"github.com/tarantool/go-verdict/internal/options"
	"github.com/tarantool/go-verdict/stacktrace"
)

// ErrCheckFailed is returned for a failure that has no site to build
// an assertion error from.
var ErrCheckFailed = errors.New("check failed")

// FailureHandler is called for every failed outcome with the error
// Conclude is about to return.
type FailureHandler func(outcome verdict.Outcome, err error)

type concludeOptions struct {
	logger    *zap.Logger
	onFailure FailureHandler
}

// Option configures Conclude.
type Option = options.Callback[concludeOptions]

func defaultOptions() concludeOptions {
	return concludeOptions{
		logger:    zap.NewNop(),
		onFailure: nil,
	}
}

// WithLogger sets the logger failures and successes are reported to.
// A nil logger keeps the default no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(opts *concludeOptions) {
		if logger != nil {
			opts.logger = logger
		}
	}
}

// WithFailureHandler sets a callback invoked for every failure.
func WithFailureHandler(handler FailureHandler) Option {
	return func(opts *concludeOptions) {
		opts.onFailure = handler
	}
}

// Conclude returns nil for a success. For a failure it returns the
// outcome's assertion error, or ErrCheckFailed wrapping the carried error
// when the failure has no site.
func Conclude(outcome verdict.Outcome, opts ...Option) error {
	cfg := options.Apply[concludeOptions](defaultOptions, opts...)

	if outcome.IsSuccess() {
		cfg.logger.Debug("check passed")
		return nil
	}

	err := failureError(outcome)

	cfg.logger.Error("check failed", failureFields(outcome, err)...)

	if cfg.onFailure != nil {
		cfg.onFailure(outcome, err)
	}

	return err
}

func failureError(outcome verdict.Outcome) error {
	if err := outcome.AssertionError(); err != nil {
		return err
	}

	if cause := outcome.Cause(); cause != nil {
		return fmt.Errorf("%w: %w", ErrCheckFailed, cause)
	}

	return ErrCheckFailed
}

func failureFields(outcome verdict.Outcome, err error) []zap.Field {
	fields := []zap.Field{zap.Error(err)}

	if site := outcome.Site(); site != nil {
		fields = append(fields, zap.Stringer("site", siteName{site: site}))
	}

	if cause := outcome.Cause(); cause != nil {
		trace := stacktrace.Of(cause)

		fields = append(fields,
			zap.String("cause_type", fmt.Sprintf("%T", cause)),
			zap.Int("frames", len(trace)),
		)

		if len(trace) > 0 {
			fields = append(fields, zap.Stringer("origin", trace[0]))
		}
	}

	return fields
}

// siteName prints a site through its String method when it has one.
type siteName struct {
	site verdict.Site
}

func (s siteName) String() string {
	if stringer, ok := s.site.(fmt.Stringer); ok {
		return stringer.String()
	}

	return fmt.Sprintf("%T", s.site)
}
