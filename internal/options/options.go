// Package options applies functional options on top of defaults.
package options

// Constructor returns the defaults an option list is applied to.
type Constructor[T any] func() T

// Callback changes one setting.
type Callback[T any] func(*T)

// Apply builds the defaults with constructor, or starts from the zero
// value when constructor is nil, then runs cbs in order. Nil callbacks
// are skipped.
func Apply[T any](constructor Constructor[T], cbs ...Callback[T]) T {
	var opts T

	if constructor != nil {
		opts = constructor()
	}

	for _, cb := range cbs {
		if cb != nil {
			cb(&opts)
		}
	}

	return opts
}
