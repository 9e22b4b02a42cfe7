// Package marshaller converts values to and from their wire form.
package marshaller

// TypedMarshaller is a generic interface for typed marshalling operations.
// Implementations must return MarshalError and UnmarshalError on failure.
type TypedMarshaller[T any] interface {
	Marshal(data T) ([]byte, error)
	Unmarshal(data []byte) (T, error)
}

var (
	_ TypedMarshaller[int] = TypedMsgpackMarshaller[int]{}
	_ TypedMarshaller[int] = TypedYamlMarshaller[int]{}
)

func zero[T any]() T {
	var out T
	return out
}
