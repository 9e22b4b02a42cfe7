// Package hasher computes digests over encoded outcomes.
package hasher

import (
	"crypto/sha1" //nolint:gosec
	"crypto/sha256"
	"errors"
	"hash"
)

// ErrDataIsNil is returned if the passed data is nil.
var ErrDataIsNil = errors.New("data is nil")

const (
	// SHA256 is the name of the SHA-256 hasher.
	SHA256 = "sha256"
	// SHA1 is the name of the SHA-1 hasher.
	SHA1 = "sha1"
)

// Hasher computes a named digest.
// Implementations must be safe for concurrent use.
type Hasher interface {
	Name() string
	Hash(data []byte) ([]byte, error)
}

// digestHasher starts a fresh hash.Hash for every call.
type digestHasher struct {
	name    string
	newHash func() hash.Hash
}

// NewSHA256Hasher creates a SHA-256 Hasher.
func NewSHA256Hasher() Hasher {
	return digestHasher{name: SHA256, newHash: sha256.New}
}

// NewSHA1Hasher creates a SHA-1 Hasher.
func NewSHA1Hasher() Hasher {
	return digestHasher{name: SHA1, newHash: sha1.New}
}

// Name implements Hasher interface.
func (h digestHasher) Name() string {
	return h.name
}

// Hash implements Hasher interface.
func (h digestHasher) Hash(data []byte) ([]byte, error) {
	if data == nil {
		return nil, ErrDataIsNil
	}

	digest := h.newHash()
	_, _ = digest.Write(data) // hash.Hash.Write never fails.

	return digest.Sum(nil), nil
}
