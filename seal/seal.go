// Package seal protects encoded outcomes in transit.
//
// A worker seals an outcome into an [Envelope] holding the encoded
// outcome together with its hashes and signatures. The coordinator opens
// the envelope: every configured hash and signature is checked before the
// outcome is decoded, so a tampered or truncated payload never reaches
// the decoder.
package seal

import (
	"bytes"
	"maps"
	"slices"

	"github.com/vmihailenco/msgpack/v5"

	verdict "github.com/tarantool/go-verdict"
	"github.com/tarantool/go-verdict/crypto"
	"github.com/tarantool/go-verdict/hasher"
	"github.com/tarantool/go-verdict/internal/options"
	"github.com/tarantool/go-verdict/marshaller"
)

// Envelope is the sealed wire form of an outcome.
type Envelope struct {
	Payload    []byte            `msgpack:"payload"`
	Hashes     map[string][]byte `msgpack:"hashes,omitempty"`
	Signatures map[string][]byte `msgpack:"signatures,omitempty"`
}

type config struct {
	hashers    []hasher.Hasher
	signers    []crypto.Signer
	verifiers  []crypto.Verifier
	marshaller marshaller.TypedMarshaller[verdict.Outcome]
}

// Option configures a Sealer or an Opener.
type Option = options.Callback[config]

func defaultConfig() config {
	return config{
		hashers:    []hasher.Hasher{hasher.NewSHA256Hasher()},
		signers:    nil,
		verifiers:  nil,
		marshaller: marshaller.NewTypedMsgpackMarshaller[verdict.Outcome](),
	}
}

// WithHashers replaces the default SHA-256 hasher.
// Passing no hashers disables hashing.
func WithHashers(hashers ...hasher.Hasher) Option {
	return func(cfg *config) {
		cfg.hashers = slices.Clone(hashers)
	}
}

// WithSigners sets the signers used by a Sealer.
func WithSigners(signers ...crypto.Signer) Option {
	return func(cfg *config) {
		cfg.signers = slices.Clone(signers)
	}
}

// WithVerifiers sets the verifiers required by an Opener.
func WithVerifiers(verifiers ...crypto.Verifier) Option {
	return func(cfg *config) {
		cfg.verifiers = slices.Clone(verifiers)
	}
}

// WithMarshaller sets the codec of the payload. Default is msgpack.
func WithMarshaller(m marshaller.TypedMarshaller[verdict.Outcome]) Option {
	return func(cfg *config) {
		if m != nil {
			cfg.marshaller = m
		}
	}
}

// Sealer seals outcomes on the worker side.
type Sealer struct {
	marshaller marshaller.TypedMarshaller[verdict.Outcome]
	hashers    []hasher.Hasher
	signers    []crypto.Signer
}

// NewSealer creates a Sealer. Verifiers are ignored.
func NewSealer(opts ...Option) Sealer {
	cfg := options.Apply[config](defaultConfig, opts...)

	return Sealer{
		marshaller: cfg.marshaller,
		hashers:    cfg.hashers,
		signers:    cfg.signers,
	}
}

// Seal encodes outcome and wraps it into an encoded Envelope.
func (s Sealer) Seal(outcome verdict.Outcome) ([]byte, error) {
	payload, err := s.marshaller.Marshal(outcome)
	if err != nil {
		return nil, errSeal("marshal outcome", err)
	}

	envelope := Envelope{
		Payload:    payload,
		Hashes:     make(map[string][]byte, len(s.hashers)),
		Signatures: make(map[string][]byte, len(s.signers)),
	}

	for _, h := range s.hashers {
		digest, err := h.Hash(payload)
		if err != nil {
			return nil, errSeal("compute hash "+h.Name(), err)
		}

		envelope.Hashes[h.Name()] = digest
	}

	for _, signer := range s.signers {
		signature, err := signer.Sign(payload)
		if err != nil {
			return nil, errSeal("generate signature "+signer.Name(), err)
		}

		envelope.Signatures[signer.Name()] = signature
	}

	data, err := msgpack.Marshal(envelope)
	if err != nil {
		return nil, errSeal("marshal envelope", err)
	}

	return data, nil
}

// Opener verifies and opens envelopes on the coordinator side.
type Opener struct {
	marshaller marshaller.TypedMarshaller[verdict.Outcome]
	hashers    map[string]hasher.Hasher
	verifiers  map[string]crypto.Verifier
}

// NewOpener creates an Opener. Signers are ignored.
func NewOpener(opts ...Option) Opener {
	cfg := options.Apply[config](defaultConfig, opts...)

	hasherMap := make(map[string]hasher.Hasher, len(cfg.hashers))
	for _, h := range cfg.hashers {
		hasherMap[h.Name()] = h
	}

	verifierMap := make(map[string]crypto.Verifier, len(cfg.verifiers))
	for _, v := range cfg.verifiers {
		verifierMap[v.Name()] = v
	}

	return Opener{
		marshaller: cfg.marshaller,
		hashers:    hasherMap,
		verifiers:  verifierMap,
	}
}

// Open verifies an envelope produced by Sealer.Seal and decodes the outcome.
// Every configured hash and signature must be present and valid; hashes
// and signatures the Opener does not know are ignored.
func (o Opener) Open(data []byte) (verdict.Outcome, error) {
	var envelope Envelope

	err := msgpack.Unmarshal(data, &envelope)
	if err != nil {
		return verdict.Outcome{}, errFailedToUnmarshalEnvelope(err)
	}

	err = o.verify(envelope)
	if err != nil {
		return verdict.Outcome{}, err
	}

	outcome, err := o.marshaller.Unmarshal(envelope.Payload)
	if err != nil {
		return verdict.Outcome{}, errFailedToUnmarshalEnvelope(err)
	}

	return outcome, nil
}

func (o Opener) verify(envelope Envelope) error {
	aggregated := &AggregatedError{parent: nil}

	payload := envelope.Payload
	if payload == nil {
		payload = []byte{}
	}

	for _, name := range slices.Sorted(maps.Keys(o.hashers)) {
		expected, ok := envelope.Hashes[name]
		if !ok {
			aggregated.Append(errHashNotVerifiedMissing(name))
			continue
		}

		got, err := o.hashers[name].Hash(payload)

		switch {
		case err != nil:
			aggregated.Append(errFailedToComputeHashWith(name, err))
		case !bytes.Equal(expected, got):
			aggregated.Append(errHashMismatch(name, expected, got))
		}
	}

	for _, name := range slices.Sorted(maps.Keys(o.verifiers)) {
		signature, ok := envelope.Signatures[name]
		if !ok {
			aggregated.Append(errSignatureNotVerifiedMissing(name))
			continue
		}

		err := o.verifiers[name].Verify(payload, signature)
		if err != nil {
			aggregated.Append(errSignatureVerificationFailed(name, err))
		}
	}

	return aggregated.Finalize()
}
