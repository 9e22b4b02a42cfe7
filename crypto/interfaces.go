// Package crypto signs and verifies encoded outcomes.
package crypto

// Signer produces a named signature.
type Signer interface {
	// Name returns name of the crypto algorithm, used by signer.
	Name() string
	// Sign returns signature for passed data.
	Sign(data []byte) ([]byte, error)
}

// Verifier checks a named signature.
type Verifier interface {
	// Name returns name of the crypto algorithm, used by verifier.
	Name() string
	// Verify checks data and signature mapping.
	Verify(data []byte, signature []byte) error
}

// SignerVerifier common interface.
type SignerVerifier interface {
	Signer
	Verifier
}
