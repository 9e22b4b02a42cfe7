package throwable

import (
	"reflect"

	"github.com/tarantool/go-verdict/internal/registry"
)

const (
	// ExceptionTypeName is the wire name of *Exception.
	ExceptionTypeName = "throwable.Exception"
	// RemoteErrorTypeName is the wire name of *RemoteError.
	RemoteErrorTypeName = "throwable.RemoteError"
)

//nolint:gochecknoglobals
var errorTypes = newErrorTypes()

func newErrorTypes() *registry.Registry[error] {
	reg := registry.New[error]()
	reg.Register(ExceptionTypeName, reflect.TypeFor[*Exception]())
	reg.Register(RemoteErrorTypeName, reflect.TypeFor[*RemoteError]())

	return reg
}

// Register makes errors of type T travel as themselves under name.
// Both sides of a transport must register the same types.
//
// Only fields visible to the codec survive transport. Implement
// stacktrace.Setter on T to get the stack back after decoding.
// Unregistered errors arrive as *RemoteError.
func Register[T error](name string) {
	if name == "" {
		panic("throwable: empty type name")
	}

	errorTypes.Register(name, reflect.TypeFor[T]())
}
