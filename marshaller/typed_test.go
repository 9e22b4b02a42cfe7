package marshaller_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tarantool/go-verdict/marshaller"
)

type checkRecord struct {
	Name   string   `msgpack:"name"   yaml:"name"`
	Passed bool     `msgpack:"passed" yaml:"passed"`
	Tags   []string `msgpack:"tags,omitempty" yaml:"tags,omitempty"`
}

type batchRecord struct {
	ID    int         `msgpack:"id"    yaml:"id"`
	Check checkRecord `msgpack:"check" yaml:"check"`
}

func marshallers[T any]() map[string]marshaller.TypedMarshaller[T] {
	return map[string]marshaller.TypedMarshaller[T]{
		"msgpack": marshaller.NewTypedMsgpackMarshaller[T](),
		"yaml":    marshaller.NewTypedYamlMarshaller[T](),
	}
}

func TestTypedMarshaller_RoundTrip(t *testing.T) {
	t.Parallel()

	for name, marsh := range marshallers[checkRecord]() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			original := checkRecord{
				Name:   "rows are sorted",
				Passed: true,
				Tags:   []string{"a", "b", "c"},
			}

			marshaled, err := marsh.Marshal(original)
			require.NoError(t, err)
			require.NotEmpty(t, marshaled)

			unmarshaled, err := marsh.Unmarshal(marshaled)
			require.NoError(t, err)

			require.Equal(t, original, unmarshaled)
		})
	}
}

func TestTypedMarshaller_NestedStruct(t *testing.T) {
	t.Parallel()

	for name, marsh := range marshallers[batchRecord]() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			original := batchRecord{
				ID: 1,
				Check: checkRecord{
					Name:   "nested",
					Passed: false,
					Tags:   nil,
				},
			}

			marshaled, err := marsh.Marshal(original)
			require.NoError(t, err)

			unmarshaled, err := marsh.Unmarshal(marshaled)
			require.NoError(t, err)

			require.Equal(t, original, unmarshaled)
		})
	}
}

func TestTypedYamlMarshaller_Marshal(t *testing.T) {
	t.Parallel()

	marsh := marshaller.NewTypedYamlMarshaller[checkRecord]()

	result, err := marsh.Marshal(checkRecord{Name: "test", Passed: true, Tags: []string{"tag1"}})
	require.NoError(t, err)

	expectedYaml := `name: test
passed: true
tags:
    - tag1
`
	require.YAMLEq(t, expectedYaml, string(result))
}

func TestTypedYamlMarshaller_Unmarshal_EmptyYaml(t *testing.T) {
	t.Parallel()

	marsh := marshaller.NewTypedYamlMarshaller[checkRecord]()

	result, err := marsh.Unmarshal([]byte(``))
	require.NoError(t, err)
	require.Equal(t, checkRecord{Name: "", Passed: false, Tags: nil}, result)
}

func TestTypedYamlMarshaller_Unmarshal_Invalid(t *testing.T) {
	t.Parallel()

	marsh := marshaller.NewTypedYamlMarshaller[checkRecord]()

	_, err := marsh.Unmarshal([]byte("name: test\npassed: not_a_bool\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "Failed to unmarshal yaml")

	var unmarshalErr marshaller.UnmarshalError
	require.ErrorAs(t, err, &unmarshalErr)
}

func TestTypedMsgpackMarshaller_Unmarshal_Invalid(t *testing.T) {
	t.Parallel()

	marsh := marshaller.NewTypedMsgpackMarshaller[checkRecord]()

	_, err := marsh.Unmarshal([]byte{0xc1})
	require.Error(t, err)
	require.Contains(t, err.Error(), "Failed to unmarshal msgpack")
}

func TestTypedMsgpackMarshaller_Unmarshal_Truncated(t *testing.T) {
	t.Parallel()

	marsh := marshaller.NewTypedMsgpackMarshaller[checkRecord]()

	data, err := marsh.Marshal(checkRecord{Name: "truncated", Passed: true, Tags: nil})
	require.NoError(t, err)

	_, err = marsh.Unmarshal(data[:len(data)/2])
	require.Error(t, err)
}

func TestTypedMarshaller_WithPrimitiveType(t *testing.T) {
	t.Parallel()

	for name, marsh := range marshallers[int]() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			marshaled, err := marsh.Marshal(100)
			require.NoError(t, err)

			result, err := marsh.Unmarshal(marshaled)
			require.NoError(t, err)
			require.Equal(t, 100, result)
		})
	}
}
