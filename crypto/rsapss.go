package crypto

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"fmt"

	"github.com/tarantool/go-verdict/hasher"
)

// RSAPSSName is the algorithm name reported by RSAPSS.
const RSAPSSName = "RSASSA-PSS"

var (
	// ErrNoPrivateKey is returned by Sign when only a public key is configured.
	ErrNoPrivateKey = errors.New("private key is not set")
	// ErrNoPublicKey is returned by Verify when no public key is configured.
	ErrNoPublicKey = errors.New("public key is not set")
)

// RSAPSS signs and verifies with RSASSA-PSS over a SHA-256 digest.
type RSAPSS struct {
	privateKey *rsa.PrivateKey
	publicKey  *rsa.PublicKey
	hash       crypto.Hash
	hasher     hasher.Hasher
}

// NewRSAPSS creates a signer and verifier from a private key.
func NewRSAPSS(privateKey *rsa.PrivateKey) RSAPSS {
	var publicKey *rsa.PublicKey
	if privateKey != nil {
		publicKey = &privateKey.PublicKey
	}

	return RSAPSS{
		privateKey: privateKey,
		publicKey:  publicKey,
		hash:       crypto.SHA256,
		hasher:     hasher.NewSHA256Hasher(),
	}
}

// NewRSAPSSVerifier creates a verify-only RSAPSS, as used by a coordinator
// that only holds the workers' public key.
func NewRSAPSSVerifier(publicKey *rsa.PublicKey) RSAPSS {
	return RSAPSS{
		privateKey: nil,
		publicKey:  publicKey,
		hash:       crypto.SHA256,
		hasher:     hasher.NewSHA256Hasher(),
	}
}

// Name implements SignerVerifier interface.
func (r RSAPSS) Name() string {
	return RSAPSSName
}

func (r RSAPSS) pssOptions() *rsa.PSSOptions {
	return &rsa.PSSOptions{
		SaltLength: rsa.PSSSaltLengthEqualsHash,
		Hash:       r.hash,
	}
}

// Sign generates SHA-256 digest and signs it using RSASSA-PSS.
func (r RSAPSS) Sign(data []byte) ([]byte, error) {
	if r.privateKey == nil {
		return nil, ErrNoPrivateKey
	}

	digest, err := r.hasher.Hash(data)
	if err != nil {
		return nil, fmt.Errorf("failed to get hash: %w", err)
	}

	signature, err := rsa.SignPSS(rand.Reader, r.privateKey, r.hash, digest, r.pssOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to sign: %w", err)
	}

	return signature, nil
}

// Verify compares data with signature.
func (r RSAPSS) Verify(data []byte, signature []byte) error {
	if r.publicKey == nil {
		return ErrNoPublicKey
	}

	digest, err := r.hasher.Hash(data)
	if err != nil {
		return fmt.Errorf("failed to get hash: %w", err)
	}

	err = rsa.VerifyPSS(r.publicKey, r.hash, digest, signature, r.pssOptions())
	if err != nil {
		return fmt.Errorf("failed to verify: %w", err)
	}

	return nil
}
