package site_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarantool/go-verdict/site"
	"github.com/tarantool/go-verdict/stacktrace"
	"github.com/tarantool/go-verdict/throwable"
)

func TestCapture(t *testing.T) {
	t.Parallel()

	s := site.Capture("rows are sorted")

	assert.Equal(t, "rows are sorted", s.Message)
	require.NotEmpty(t, s.Creation)
	assert.True(t, strings.HasSuffix(s.Creation[0].Function, "site_test.TestCapture"), s.Creation[0].Function)
}

func TestSite_String(t *testing.T) {
	t.Parallel()

	t.Run("with creation", func(t *testing.T) {
		t.Parallel()

		s := site.New("Assert@Line42", stacktrace.Trace{stacktrace.NewFrame("job.Test", "/src/job.go", 42)})
		assert.Equal(t, "Assert@Line42 (declared at job.Test (/src/job.go:42))", s.String())
	})

	t.Run("without creation", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Assert@Line42", site.New("Assert@Line42", nil).String())
	})
}

func TestSite_Wrap(t *testing.T) {
	t.Parallel()

	creation := stacktrace.Trace{stacktrace.NewFrame("job.Test", "/src/job.go", 42)}
	failing := stacktrace.Trace{
		stacktrace.NewFrame("worker.check", "/src/worker.go", 7),
		stacktrace.NewFrame("worker.run", "/src/worker.go", 3),
	}

	t.Run("traced cause", func(t *testing.T) {
		t.Parallel()

		cause := throwable.New("IllegalStateException", "bad row")
		cause.SetStackTrace(failing)

		err := site.New("Assert@Line42", creation).Wrap(cause)

		var assertionErr *site.AssertionError
		require.ErrorAs(t, err, &assertionErr)
		assert.Equal(t, "Assert@Line42: IllegalStateException: bad row", err.Error())
		require.ErrorIs(t, err, cause)
		assert.True(t, failing.Equal(assertionErr.StackTrace()))
		assert.Equal(t, "Assert@Line42", assertionErr.Site().Message)
	})

	t.Run("plain cause", func(t *testing.T) {
		t.Parallel()

		cause := errors.New("bad row")
		err := site.New("", creation).Wrap(cause)

		var assertionErr *site.AssertionError
		require.ErrorAs(t, err, &assertionErr)
		assert.Equal(t, "bad row", err.Error())
		assert.True(t, creation.Equal(assertionErr.StackTrace()))
	})

	t.Run("no cause", func(t *testing.T) {
		t.Parallel()

		err := site.New("Assert@Line42", creation).Wrap(nil)
		assert.Equal(t, "Assert@Line42", err.Error())
		require.NoError(t, errors.Unwrap(err))

		assert.Equal(t, "assertion failed", site.New("", nil).Wrap(nil).Error())
	})
}

func TestAssertionError_Format(t *testing.T) {
	t.Parallel()

	cause := throwable.New("IllegalStateException", "bad row")
	cause.SetStackTrace(stacktrace.Trace{stacktrace.NewFrame("worker.check", "/src/worker.go", 7)})

	err := site.New("Assert@Line42", stacktrace.Trace{stacktrace.NewFrame("job.Test", "/src/job.go", 42)}).
		Wrap(cause)

	assert.Equal(t, "Assert@Line42: IllegalStateException: bad row", fmt.Sprintf("%v", err))
	assert.Equal(t, `"Assert@Line42: IllegalStateException: bad row"`, fmt.Sprintf("%q", err))
	assert.Equal(t, "Assert@Line42: IllegalStateException: bad row\n"+
		"caused at:\n\tworker.check (/src/worker.go:7)\n"+
		"declared at:\n\tjob.Test (/src/job.go:42)", fmt.Sprintf("%+v", err))
}

func TestAssertionError_NilSite(t *testing.T) {
	t.Parallel()

	var declared *site.Site

	t.Run("without cause", func(t *testing.T) {
		t.Parallel()

		err := declared.Wrap(nil)
		require.Error(t, err)
		assert.Equal(t, "assertion failed", err.Error())
		assert.Equal(t, "assertion failed", fmt.Sprintf("%+v", err))
		assert.Empty(t, declared.String())
	})

	t.Run("with cause", func(t *testing.T) {
		t.Parallel()

		err := declared.Wrap(errors.New("bad row"))
		assert.Equal(t, "bad row", err.Error())

		var assertionErr *site.AssertionError
		require.ErrorAs(t, err, &assertionErr)
		assert.Empty(t, assertionErr.StackTrace())
	})

	t.Run("zero value", func(t *testing.T) {
		t.Parallel()

		err := &site.AssertionError{}
		assert.NotPanics(t, func() {
			assert.Equal(t, "assertion failed", fmt.Sprintf("%+v", err))
			assert.Empty(t, err.StackTrace())
		})
	})
}
