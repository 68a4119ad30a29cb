package auth

import (
	"testing"

	"bookstore/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	password := "Test1234#"
	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// Same input hashes differently because of the salt.
	second, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEqual(t, hash, second)
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)
	password := "Test1234#"

	hash, err := hasher.Hash(password)
	require.NoError(t, err)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("Test1234#1", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check(password, "invalid_hash"))
	assert.False(t, hasher.Check(password, password))
}

func TestBcryptHasher_UsesConfiguredCost(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: 5}})

	hash, err := hasher.Hash("Test1234#")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 5, cost)
}

func TestBcryptHasher_InvalidCostFallsBack(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.Config
		cost int
	}{
		{name: "nil config", cfg: nil},
		{name: "nil auth section", cfg: &config.Config{}},
		{name: "cost too low", cfg: &config.Config{Auth: &config.AuthConfig{BcryptCost: 1}}},
		{name: "cost too high", cfg: &config.Config{Auth: &config.AuthConfig{BcryptCost: 99}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hasher, ok := NewBcryptHasher(tt.cfg).(*bcryptHasher)
			require.True(t, ok)
			assert.Equal(t, DefaultBcryptCost, hasher.cost)
		})
	}
}
