package auth

import (
	"testing"

	"boardroom/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := newBcryptHasherWithCost(bcrypt.MinCost)

	password := "secret123"
	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("wrongpass", hash))
}

func TestBcryptHasher_HashIsSalted(t *testing.T) {
	hasher := newBcryptHasherWithCost(bcrypt.MinCost)

	password := "secret123"
	first, err := hasher.Hash(password)
	require.NoError(t, err)
	second, err := hasher.Hash(password)
	require.NoError(t, err)

	// Salted: same input, different outputs, both verifiable.
	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check(password, first))
	assert.True(t, hasher.Check(password, second))
}

func TestBcryptHasher_CheckNeverPanics(t *testing.T) {
	hasher := newBcryptHasherWithCost(bcrypt.MinCost)

	hash, err := hasher.Hash("secret123")
	require.NoError(t, err)

	// Garbage inputs report false, they never error out.
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check("secret123", "not-a-bcrypt-hash"))
	assert.False(t, hasher.Check("secret123", ""))
}

func TestBcryptHasher_ConfiguredCost(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: 6}}
	hasher := NewBcryptHasher(cfg)

	hash, err := hasher.Hash("secret123")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 6, cost)
	assert.True(t, hasher.Check("secret123", hash))
}

func TestBcryptHasher_DefaultCost(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{})

	impl, ok := hasher.(*bcryptHasher)
	require.True(t, ok)
	assert.Equal(t, bcrypt.DefaultCost, impl.cost)
}
