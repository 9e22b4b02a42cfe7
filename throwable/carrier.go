// Package throwable carries an error, together with its stack trace,
// across a serialization boundary.
//
// Codecs only see exported fields, so the stack recorded inside an error
// value is lost on the way. A [Carrier] snapshots the stack when it is
// created and puts it back into the decoded error as the last step of
// decoding, before the value is returned to anyone.
package throwable

import (
	"fmt"

	"github.com/tarantool/go-option"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/tarantool/go-verdict/stacktrace"
)

// Carrier wraps an optional error for transport.
// The zero value carries no error.
type Carrier struct {
	err   option.Generic[error]
	trace option.Generic[stacktrace.Trace]
}

// NewCarrier wraps err as is and snapshots its current stack.
// A nil err produces a carrier without error and without trace.
func NewCarrier(err error) Carrier {
	if err == nil {
		return Carrier{
			err:   option.None[error](),
			trace: option.None[stacktrace.Trace](),
		}
	}

	return Carrier{
		err:   option.Some(err),
		trace: option.Some(stacktrace.Of(err)),
	}
}

// HasError reports whether an error is carried.
func (c Carrier) HasError() bool {
	return c.err.IsSome()
}

// Err returns the carried error or nil.
func (c Carrier) Err() error {
	return c.err.UnwrapOr(nil)
}

// Trace returns a copy of the snapshot taken when the carrier was created.
// It is nil when no error is carried.
func (c Carrier) Trace() stacktrace.Trace {
	return c.trace.UnwrapOr(nil).Clone()
}

// Repair resets the stack of the carried error to the snapshot.
// Errors that do not implement stacktrace.Setter are left untouched.
// Repair never panics and may be called any number of times.
func (c Carrier) Repair() {
	setter, ok := c.Err().(stacktrace.Setter) //nolint:errorlint
	if !ok {
		return
	}

	defer func() {
		_ = recover()
	}()

	setter.SetStackTrace(c.Trace())
}

// String returns a debug representation, omitting absent fields.
func (c Carrier) String() string {
	err := c.Err()
	if err == nil {
		return "Carrier{}"
	}

	return fmt.Sprintf("Carrier{error=%s, frames=%d}", err, len(c.trace.UnwrapOr(nil)))
}

// describe returns the wire name of the carried error and the value that
// represents it on the wire.
func (c Carrier) describe() (string, bool, any) {
	err := c.Err()

	if name, ok := errorTypes.NameOf(err); ok {
		return name, false, err
	}

	return fmt.Sprintf("%T", err), true, newRemoteError(err)
}

// restore rebuilds a carrier from decoded wire fields and repairs it.
func restore(name, message string, remote bool, trace stacktrace.Trace,
	decodeBody func(target any) error) (Carrier, error) {
	if name == "" {
		return NewCarrier(nil), nil
	}

	var err error

	target, value, ok := errorTypes.New(name)

	switch {
	case remote || !ok:
		remoteErr := &RemoteError{Type: name, Message: message, Cause: nil, trace: nil}
		if remote {
			if decErr := decodeBody(remoteErr); decErr != nil {
				return Carrier{}, errDecode("body of "+name, decErr)
			}
		}

		err = remoteErr
	default:
		if decErr := decodeBody(target); decErr != nil {
			return Carrier{}, errDecode("body of "+name, decErr)
		}

		err = value()
	}

	if trace == nil {
		trace = stacktrace.Trace{}
	}

	out := Carrier{
		err:   option.Some(err),
		trace: option.Some(trace),
	}
	out.Repair()

	return out, nil
}

type msgpackRecord struct {
	Type    string             `msgpack:"type,omitempty"`
	Message string             `msgpack:"message,omitempty"`
	Remote  bool               `msgpack:"remote,omitempty"`
	Body    msgpack.RawMessage `msgpack:"body,omitempty"`
	Trace   stacktrace.Trace   `msgpack:"trace,omitempty"`
}

// EncodeMsgpack implements msgpack.CustomEncoder.
func (c Carrier) EncodeMsgpack(encoder *msgpack.Encoder) error {
	record := msgpackRecord{} //nolint:exhaustruct

	if c.HasError() {
		name, remote, body := c.describe()

		raw, err := msgpack.Marshal(body)
		if err != nil {
			return errEncode("body of "+name, err)
		}

		record = msgpackRecord{
			Type:    name,
			Message: c.Err().Error(),
			Remote:  remote,
			Body:    raw,
			Trace:   c.Trace(),
		}
	}

	return encoder.Encode(record) //nolint:wrapcheck
}

// DecodeMsgpack implements msgpack.CustomDecoder.
// The carried error is repaired before DecodeMsgpack returns.
func (c *Carrier) DecodeMsgpack(decoder *msgpack.Decoder) error {
	var record msgpackRecord

	err := decoder.Decode(&record)
	if err != nil {
		return errDecode("record", err)
	}

	out, err := restore(record.Type, record.Message, record.Remote, record.Trace, func(target any) error {
		if len(record.Body) == 0 {
			return nil
		}

		return msgpack.Unmarshal(record.Body, target) //nolint:wrapcheck
	})
	if err != nil {
		return err
	}

	*c = out

	return nil
}

type yamlRecordOut struct {
	Type    string           `yaml:"type,omitempty"`
	Message string           `yaml:"message,omitempty"`
	Remote  bool             `yaml:"remote,omitempty"`
	Body    any              `yaml:"body,omitempty"`
	Trace   stacktrace.Trace `yaml:"trace,omitempty"`
}

type yamlRecordIn struct {
	Type    string           `yaml:"type"`
	Message string           `yaml:"message"`
	Remote  bool             `yaml:"remote"`
	Body    yaml.Node        `yaml:"body"`
	Trace   stacktrace.Trace `yaml:"trace"`
}

// MarshalYAML implements yaml.Marshaler.
func (c Carrier) MarshalYAML() (any, error) {
	if !c.HasError() {
		return yamlRecordOut{}, nil //nolint:exhaustruct
	}

	name, remote, body := c.describe()

	return yamlRecordOut{
		Type:    name,
		Message: c.Err().Error(),
		Remote:  remote,
		Body:    body,
		Trace:   c.Trace(),
	}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
// The carried error is repaired before UnmarshalYAML returns.
func (c *Carrier) UnmarshalYAML(node *yaml.Node) error {
	var record yamlRecordIn

	err := node.Decode(&record)
	if err != nil {
		return errDecode("record", err)
	}

	out, err := restore(record.Type, record.Message, record.Remote, record.Trace, func(target any) error {
		if record.Body.Kind == 0 {
			return nil
		}

		return record.Body.Decode(target) //nolint:wrapcheck
	})
	if err != nil {
		return err
	}

	*c = out

	return nil
}
