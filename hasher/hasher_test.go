package hasher_test

import (
	"encoding/hex"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarantool/go-verdict/hasher"
)

func TestHasher(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		hasher hasher.Hasher
		in     []byte
		out    string
	}{
		{"sha1 empty", hasher.NewSHA1Hasher(), []byte(""), "da39a3ee5e6b4b0d3255bfef95601890afd80709"},
		{"sha1 abc", hasher.NewSHA1Hasher(), []byte("abc"), "a9993e364706816aba3e25717850c26c9cd0d89d"},
		{"sha256 empty", hasher.NewSHA256Hasher(), []byte(""),
			"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
		{"sha256 abc", hasher.NewSHA256Hasher(), []byte("abc"),
			"ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			result, err := test.hasher.Hash(test.in)
			require.NoError(t, err)

			assert.Equal(t, test.out, hex.EncodeToString(result))
		})
	}
}

func TestHasher_Name(t *testing.T) {
	t.Parallel()

	assert.Equal(t, hasher.SHA1, hasher.NewSHA1Hasher().Name())
	assert.Equal(t, hasher.SHA256, hasher.NewSHA256Hasher().Name())
}

func TestHasher_NilData(t *testing.T) {
	t.Parallel()

	for _, h := range []hasher.Hasher{hasher.NewSHA1Hasher(), hasher.NewSHA256Hasher()} {
		_, err := h.Hash(nil)
		require.ErrorIs(t, err, hasher.ErrDataIsNil)
	}
}

func TestHasher_Repeatable(t *testing.T) {
	t.Parallel()

	h := hasher.NewSHA256Hasher()

	first, err := h.Hash([]byte("abc"))
	require.NoError(t, err)

	second, err := h.Hash([]byte("abc"))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestHasher_Concurrent(t *testing.T) {
	t.Parallel()

	h := hasher.NewSHA256Hasher()
	expected, err := h.Hash([]byte("abc"))
	require.NoError(t, err)

	var wg sync.WaitGroup

	results := make([][]byte, 16)
	for i := range results {
		wg.Add(1)

		go func() {
			defer wg.Done()

			results[i], _ = h.Hash([]byte("abc"))
		}()
	}

	wg.Wait()

	for _, result := range results {
		assert.Equal(t, expected, result)
	}
}
