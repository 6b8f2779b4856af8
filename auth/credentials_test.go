package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/abdallaElamawy03/plant-back-end/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type stubUserStore struct {
	users map[string]*models.User
	err   error
}

func (s *stubUserStore) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.users[username], nil
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestCredentialVerifier(t *testing.T) {
	ctx := context.Background()

	store := &stubUserStore{users: map[string]*models.User{
		"alice": {Username: "alice", PasswordHash: hashOf(t, "correct horse"), Roles: []string{"user", "admin"}, Active: true},
		"bob":   {Username: "bob", PasswordHash: hashOf(t, "hunter2"), Roles: []string{"user"}, Active: false},
	}}
	verifier := NewCredentialVerifier(store)

	t.Run("valid credentials return the stored identity", func(t *testing.T) {
		user, err := verifier.Verify(ctx, "alice", "correct horse")
		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, []string{"user", "admin"}, user.Roles)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := verifier.Verify(ctx, "alice", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown username", func(t *testing.T) {
		_, err := verifier.Verify(ctx, "mallory", "whatever")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("inactive account fails even with the correct password", func(t *testing.T) {
		_, err := verifier.Verify(ctx, "bob", "hunter2")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("store failure collapses into the same error", func(t *testing.T) {
		broken := NewCredentialVerifier(&stubUserStore{err: errors.New("connection reset")})
		_, err := broken.Verify(ctx, "alice", "correct horse")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
