package jwt

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestJWT_GenerateAndGetUserID(t *testing.T) {
	j := New("test-secret", time.Minute)
	ctx := context.Background()

	token, err := j.Generate(ctx, "hodor")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	assert.NoError(t, j.Validate(ctx, token))

	userID, err := j.GetUserID(ctx, token)
	assert.NoError(t, err)
	assert.Equal(t, "hodor", userID)
}

func TestJWT_ExpiredToken(t *testing.T) {
	j := New("test-secret", -time.Minute) // already expired
	ctx := context.Background()

	token, err := j.Generate(ctx, "hodor")
	assert.NoError(t, err)

	assert.Error(t, j.Validate(ctx, token))

	userID, err := j.GetUserID(ctx, token)
	assert.Error(t, err)
	assert.Empty(t, userID)
}

func TestJWT_InvalidToken(t *testing.T) {
	j := New("test-secret", time.Minute)
	ctx := context.Background()

	assert.Error(t, j.Validate(ctx, "invalid.token.string"))

	userID, err := j.GetUserID(ctx, "invalid.token.string")
	assert.Error(t, err)
	assert.Empty(t, userID)
}

func TestJWT_WrongSecret(t *testing.T) {
	j1 := New("secret1", time.Minute)
	j2 := New("secret2", time.Minute)
	ctx := context.Background()

	token, err := j1.Generate(ctx, "hodor")
	assert.NoError(t, err)

	assert.Error(t, j2.Validate(ctx, token))
}

func TestJWT_GetTokenFromRequest(t *testing.T) {
	j := New("test-secret", time.Minute)
	ctx := context.Background()

	tests := []struct {
		name          string
		header        string
		expectedToken string
		expectError   bool
	}{
		{"ValidBearer", "Bearer mytoken123", "mytoken123", false},
		{"LowercaseBearer", "bearer mytoken123", "mytoken123", false},
		{"NoHeader", "", "", true},
		{"InvalidFormat", "Token mytoken123", "", true},
		{"TooManyParts", "Bearer a b c", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequestWithContext(ctx, http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			token, err := j.GetTokenFromRequest(ctx, req)
			if tt.expectError {
				assert.Error(t, err)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedToken, token)
			}
		})
	}
}
