package serviceimpl

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timeguard/domain/dto"
	"timeguard/pkg/apperrors"
	"timeguard/pkg/utils"
)

const testSecret = "test-secret"

type memoryRevocations struct {
	revoked map[string]time.Duration
}

func (m *memoryRevocations) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	m.revoked[tokenID] = ttl
	return nil
}

func (m *memoryRevocations) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	_, ok := m.revoked[tokenID]
	return ok, nil
}

func TestRegisterAndLogin(t *testing.T) {
	f := newFixture(t)
	revocations := &memoryRevocations{revoked: map[string]time.Duration{}}
	svc := NewUserService(f.users, revocations, testSecret, time.Hour)

	user, err := svc.Register(f.ctx, &dto.RegisterRequest{Name: "Alice", Email: "Alice@Example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.NotEqual(t, "secret123", user.Password)

	_, err = svc.Register(f.ctx, &dto.RegisterRequest{Name: "Other", Email: "alice@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	_, _, err = svc.Login(f.ctx, &dto.LoginRequest{Email: "alice@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrAuthentication)
	_, _, err = svc.Login(f.ctx, &dto.LoginRequest{Email: "nobody@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, apperrors.ErrAuthentication)

	token, loggedIn, err := svc.Login(f.ctx, &dto.LoginRequest{Email: "ALICE@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)

	claims, err := utils.ValidateTokenStringToUUID(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.ID)
	assert.NotEmpty(t, claims.TokenID)

	require.NoError(t, svc.Logout(f.ctx, claims.TokenID, claims.ExpiresAt))
	revoked, _ := revocations.IsRevoked(f.ctx, claims.TokenID)
	assert.True(t, revoked)
}

func TestLogoutWithoutRevocationStore(t *testing.T) {
	f := newFixture(t)
	svc := NewUserService(f.users, nil, testSecret, time.Hour)
	assert.NoError(t, svc.Logout(f.ctx, "jti", time.Now().Add(time.Hour)))
}

func TestProfileAndSearch(t *testing.T) {
	f := newFixture(t)
	svc := NewUserService(f.users, nil, testSecret, time.Hour)
	alice := f.createUser(t, "Alice", "alice@example.com")
	f.createUser(t, "Alicia", "alicia@example.com")
	f.createUser(t, "Bob", "bob@example.com")

	updated, err := svc.UpdateProfile(f.ctx, alice.ID, &dto.UpdateProfileRequest{Name: "  Alice Smith "})
	require.NoError(t, err)
	assert.Equal(t, "Alice Smith", updated.Name)

	found, err := svc.SearchUsers(f.ctx, alice.ID, &dto.UserSearchRequest{Search: "ALI"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Alicia", found[0].Name)
}
