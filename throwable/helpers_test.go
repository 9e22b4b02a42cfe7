package throwable_test

import (
	"fmt"

	"github.com/tarantool/go-verdict/stacktrace"
	"github.com/tarantool/go-verdict/throwable"
)

func frames(n int) stacktrace.Trace {
	out := make(stacktrace.Trace, 0, n)
	for i := range n {
		out = append(out, stacktrace.NewFrame(
			fmt.Sprintf("worker.check%d", i),
			fmt.Sprintf("/src/worker/check%d.go", i),
			10+i,
		))
	}

	return out
}

func exceptionWithTrace(kind, message string, trace stacktrace.Trace) error {
	exc := throwable.New(kind, message)
	exc.SetStackTrace(trace)

	return exc
}
