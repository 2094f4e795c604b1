package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newswire/config"
	domainerrors "newswire/internal/domain/errors"
	"newswire/internal/errors"
)

func newTestHasher() *bcryptHasher {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: 4}} // MinCost keeps tests fast
	return NewBcryptHasher(cfg).(*bcryptHasher)
}

func TestBcryptHasher_HashAndCheck_RoundTrip(t *testing.T) {
	hasher := newTestHasher()

	hash, err := hasher.Hash("Passw0rd!")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "Passw0rd!", hash, "hash must never equal the plaintext")

	ok, err := hasher.Check("Passw0rd!", hash)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestBcryptHasher_Check_Mismatch(t *testing.T) {
	hasher := newTestHasher()

	hash, err := hasher.Hash("correct-password")
	require.NoError(t, err)

	ok, err := hasher.Check("wrong-password", hash)
	require.NoError(t, err, "a mismatch is not an error")
	assert.False(t, ok)
}

func TestBcryptHasher_Hash_UniqueSalts(t *testing.T) {
	hasher := newTestHasher()

	first, err := hasher.Hash("same-password")
	require.NoError(t, err)
	second, err := hasher.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "each hash embeds its own salt")
}

func TestBcryptHasher_Check_CorruptHash(t *testing.T) {
	hasher := newTestHasher()

	ok, err := hasher.Check("anything", "not-a-bcrypt-hash")
	assert.False(t, ok)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCorruptCredential))
}
