package marshaller

import (
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// TypedMsgpackMarshaller is a generic MessagePack marshaller for typed objects.
// It is the default wire format.
type TypedMsgpackMarshaller[T any] struct{}

// NewTypedMsgpackMarshaller creates a new TypedMsgpackMarshaller for the specified type.
func NewTypedMsgpackMarshaller[T any]() TypedMsgpackMarshaller[T] {
	return TypedMsgpackMarshaller[T]{}
}

// Marshal serializes the typed data to MessagePack format.
func (m TypedMsgpackMarshaller[T]) Marshal(data T) ([]byte, error) {
	marshalled, err := msgpack.Marshal(data)
	if err != nil {
		return []byte{}, errMarshal(formatMsgpack, err)
	}

	return marshalled, nil
}

// Unmarshal deserializes MessagePack data into a typed object.
func (m TypedMsgpackMarshaller[T]) Unmarshal(data []byte) (T, error) {
	var out T

	err := msgpack.Unmarshal(data, &out)
	if err != nil {
		return zero[T](), errUnmarshal(formatMsgpack, err)
	}

	return out, nil
}

// TypedYamlMarshaller is a generic YAML marshaller for typed objects.
// It is meant for reports and debugging rather than for transport.
type TypedYamlMarshaller[T any] struct{}

// NewTypedYamlMarshaller creates a new TypedYamlMarshaller for the specified type.
func NewTypedYamlMarshaller[T any]() TypedYamlMarshaller[T] {
	return TypedYamlMarshaller[T]{}
}

// Marshal serializes the typed data to YAML format.
func (m TypedYamlMarshaller[T]) Marshal(data T) ([]byte, error) {
	marshalled, err := yaml.Marshal(data)
	if err != nil {
		return []byte{}, errMarshal(formatYAML, err)
	}

	return marshalled, nil
}

// Unmarshal deserializes YAML data into a typed object.
func (m TypedYamlMarshaller[T]) Unmarshal(data []byte) (T, error) {
	var out T

	err := yaml.Unmarshal(data, &out)
	if err != nil {
		return zero[T](), errUnmarshal(formatYAML, err)
	}

	return out, nil
}
