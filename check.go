package verdict

import (
	"github.com/tarantool/go-verdict/throwable"
)

// Check runs check once and reports its result as an Outcome.
// A returned error becomes a failure caused by it; a panic becomes a
// failure caused by a *throwable.Exception of kind throwable.PanicKind
// holding the panicking stack.
func Check(site Site, check func() error) (outcome Outcome) {
	defer func() {
		if recovered := recover(); recovered != nil {
			outcome = Failure(site, throwable.FromPanic(recovered))
		}
	}()

	if err := check(); err != nil {
		return Failure(site, err)
	}

	return Success()
}
