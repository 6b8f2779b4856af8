package auth

import (
	"context"

	"github.com/abdallaElamawy03/plant-back-end/models"
	"golang.org/x/crypto/bcrypt"
)

// UserStore is the credential-store boundary: a single-field lookup by
// username, matched case-insensitively.
type UserStore interface {
	FindByUsername(ctx context.Context, username string) (*models.User, error)
}

// CredentialVerifier checks a presented username/password pair against
// stored user records.
type CredentialVerifier struct {
	store UserStore
}

func NewCredentialVerifier(store UserStore) *CredentialVerifier {
	return &CredentialVerifier{store: store}
}

// Verify returns the full stored identity on success. Unknown username,
// inactive account and password mismatch all return ErrInvalidCredentials.
func (cv *CredentialVerifier) Verify(ctx context.Context, username, password string) (*models.User, error) {
	user, err := cv.store.FindByUsername(ctx, username)
	if err != nil || user == nil || !user.Active {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
