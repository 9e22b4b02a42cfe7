package verdict

import (
	"github.com/tarantool/go-option"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/tarantool/go-verdict/marshaller"
	"github.com/tarantool/go-verdict/throwable"
)

//nolint:gochecknoglobals
var wire = marshaller.NewTypedMsgpackMarshaller[Outcome]()

// Marshal encodes o in the default wire format (msgpack).
func Marshal(o Outcome) ([]byte, error) {
	return wire.Marshal(o) //nolint:wrapcheck
}

// Unmarshal decodes an outcome produced by Marshal.
// The carried error already has its original stack when Unmarshal returns.
func Unmarshal(data []byte) (Outcome, error) {
	return wire.Unmarshal(data) //nolint:wrapcheck
}

func (o Outcome) carrierRef() *throwable.Carrier {
	if !o.carrier.IsSome() {
		return nil
	}

	carrier := o.carrier.UnwrapOr(throwable.Carrier{}) //nolint:exhaustruct

	return &carrier
}

// build checks decoded fields and assembles an Outcome.
func build(succeeded bool, site Site, carrier *throwable.Carrier) (Outcome, error) {
	if succeeded {
		if site != nil || carrier != nil {
			return Outcome{}, ErrInconsistentOutcome //nolint:exhaustruct
		}

		return Success(), nil
	}

	out := Outcome{
		succeeded: false,
		site:      option.None[Site](),
		carrier:   option.None[throwable.Carrier](),
	}

	if site != nil {
		out.site = option.Some(site)
	}

	if carrier != nil {
		out.carrier = option.Some(*carrier)
	}

	return out, nil
}

// decodeSite rebuilds the site registered under name.
func decodeSite(name string, decode func(target any) error) (Site, error) {
	if name == "" {
		return nil, nil //nolint:nilnil
	}

	target, value, ok := sites.New(name)
	if !ok {
		return nil, errUnknownSite(name)
	}

	err := decode(target)
	if err != nil {
		return nil, errSiteCodec(name, err)
	}

	return value(), nil
}

type msgpackRecord struct {
	Succeeded bool               `msgpack:"succeeded"`
	SiteType  string             `msgpack:"site_type,omitempty"`
	Site      msgpack.RawMessage `msgpack:"site,omitempty"`
	Carrier   *throwable.Carrier `msgpack:"carrier,omitempty"`
}

// EncodeMsgpack implements msgpack.CustomEncoder.
func (o Outcome) EncodeMsgpack(encoder *msgpack.Encoder) error {
	record := msgpackRecord{
		Succeeded: o.succeeded,
		SiteType:  "",
		Site:      nil,
		Carrier:   o.carrierRef(),
	}

	if site := o.Site(); site != nil {
		name, ok := sites.NameOf(site)
		if !ok {
			return errUnregisteredSite(site)
		}

		raw, err := msgpack.Marshal(site)
		if err != nil {
			return errSiteCodec(name, err)
		}

		record.SiteType = name
		record.Site = raw
	}

	return encoder.Encode(record) //nolint:wrapcheck
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (o *Outcome) DecodeMsgpack(decoder *msgpack.Decoder) error {
	var record msgpackRecord

	err := decoder.Decode(&record)
	if err != nil {
		return err //nolint:wrapcheck
	}

	site, err := decodeSite(record.SiteType, func(target any) error {
		return msgpack.Unmarshal(record.Site, target) //nolint:wrapcheck
	})
	if err != nil {
		return err
	}

	out, err := build(record.Succeeded, site, record.Carrier)
	if err != nil {
		return err
	}

	*o = out

	return nil
}

type yamlRecordOut struct {
	Succeeded bool               `yaml:"succeeded"`
	SiteType  string             `yaml:"site_type,omitempty"`
	Site      any                `yaml:"site,omitempty"`
	Carrier   *throwable.Carrier `yaml:"carrier,omitempty"`
}

type yamlRecordIn struct {
	Succeeded bool               `yaml:"succeeded"`
	SiteType  string             `yaml:"site_type"`
	Site      yaml.Node          `yaml:"site"`
	Carrier   *throwable.Carrier `yaml:"carrier"`
}

// MarshalYAML implements yaml.Marshaler.
func (o Outcome) MarshalYAML() (any, error) {
	record := yamlRecordOut{
		Succeeded: o.succeeded,
		SiteType:  "",
		Site:      nil,
		Carrier:   o.carrierRef(),
	}

	if site := o.Site(); site != nil {
		name, ok := sites.NameOf(site)
		if !ok {
			return nil, errUnregisteredSite(site)
		}

		record.SiteType = name
		record.Site = site
	}

	return record, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (o *Outcome) UnmarshalYAML(node *yaml.Node) error {
	var record yamlRecordIn

	err := node.Decode(&record)
	if err != nil {
		return err //nolint:wrapcheck
	}

	site, err := decodeSite(record.SiteType, func(target any) error {
		return record.Site.Decode(target) //nolint:wrapcheck
	})
	if err != nil {
		return err
	}

	out, err := build(record.Succeeded, site, record.Carrier)
	if err != nil {
		return err
	}

	*o = out

	return nil
}
