// Package verdict carries the outcome of a single distributed check from
// the worker that ran it back to the process that reports it.
//
// An [Outcome] is either a success or a failure. A failure keeps the
// original error, with the stack trace it had on the worker, and the
// [Site] where the check was declared. Encoding an Outcome with msgpack or
// yaml and decoding it on the other side gives back an error whose stack
// is the one recorded on the worker, even though the codecs themselves
// drop it (see the [github.com/tarantool/go-verdict/throwable] package).
//
// The coordinator branches on [Outcome.IsSuccess] and turns a failure into
// an error with [Outcome.AssertionError]; the
// [github.com/tarantool/go-verdict/conclude] package does that with
// logging.
package verdict
