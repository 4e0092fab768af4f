package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreatePasswordHash_RoundTrip(t *testing.T) {
	hash, err := CreatePasswordHash("winterfell")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "winterfell", hash)

	assert.True(t, CheckPassword("winterfell", hash))
	assert.False(t, CheckPassword("kingslanding", hash))
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	// malformed or empty hashes must report false, never panic or error out
	assert.False(t, CheckPassword("secret", ""))
	assert.False(t, CheckPassword("secret", "not-a-bcrypt-hash"))
	assert.False(t, CheckPassword("", ""))
}

func TestCreatePasswordHash_Unique(t *testing.T) {
	h1, err := CreatePasswordHash("secret")
	assert.NoError(t, err)
	h2, err := CreatePasswordHash("secret")
	assert.NoError(t, err)

	// bcrypt salts every hash
	assert.NotEqual(t, h1, h2)
	assert.True(t, CheckPassword("secret", h1))
	assert.True(t, CheckPassword("secret", h2))
}
