package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestGenerateAndValidateToken(t *testing.T) {
	subject := TokenSubject{
		ID:    uuid.New(),
		Name:  "Alice",
		Email: "alice@example.com",
		Role:  "User",
	}

	token, err := GenerateToken(subject, testSecret, time.Hour)
	require.NoError(t, err)

	userCtx, err := ValidateTokenStringToUUID("Bearer "+token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, subject.ID, userCtx.ID)
	assert.Equal(t, "Alice", userCtx.Name)
	assert.Equal(t, "alice@example.com", userCtx.Email)
	assert.NotEmpty(t, userCtx.TokenID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), userCtx.ExpiresAt, 5*time.Second)
}

func TestValidateTokenErrors(t *testing.T) {
	subject := TokenSubject{ID: uuid.New(), Email: "bob@example.com"}

	expired, err := GenerateToken(subject, testSecret, -time.Minute)
	require.NoError(t, err)
	valid, err := GenerateToken(subject, testSecret, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		secret  string
		wantErr error
	}{
		{"missing", "", testSecret, ErrMissingToken},
		{"garbage", "not-a-jwt", testSecret, ErrInvalidToken},
		{"wrong secret", valid, "other-secret", ErrInvalidToken},
		{"expired", expired, testSecret, ErrExpiredToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateTokenStringToUUID(tt.token, tt.secret)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExtractTokenFromHeader(t *testing.T) {
	assert.Equal(t, "abc", ExtractTokenFromHeader("Bearer abc"))
	assert.Equal(t, "", ExtractTokenFromHeader("Basic abc"))
	assert.Equal(t, "", ExtractTokenFromHeader(""))
	assert.Equal(t, "", ExtractTokenFromHeader("Bearer"))
}
