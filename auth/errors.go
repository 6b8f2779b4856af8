package auth

import "errors"

var (
	// ErrInvalidCredentials covers unknown username, wrong password and
	// deactivated accounts alike, so a caller cannot probe for account
	// existence.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrBadToken covers signature, expiry and claim-shape failures for
	// both token classes.
	ErrBadToken = errors.New("invalid or expired token")
)
