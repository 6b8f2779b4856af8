package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// UserInfo is the identity wrapper embedded in access-token claims.
type UserInfo struct {
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
}

// AccessClaims is the self-contained access-token claim set. It carries the
// identity and its roles; nothing is stored server side.
type AccessClaims struct {
	UserInfo UserInfo `json:"UserInfo"`
	jwt.RegisteredClaims
}

// RefreshClaims carries only the username. Roles are deliberately absent and
// must be re-resolved from storage when the token is redeemed.
type RefreshClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies both token classes. Each class has its own
// secret; a signature made with one secret must never verify under the other.
type TokenService struct {
	cfg *Config
}

func NewTokenService(cfg *Config) *TokenService {
	return &TokenService{cfg: cfg}
}

func (ts *TokenService) IssueAccessToken(username string, roles RoleSet, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := AccessClaims{
		UserInfo: UserInfo{Username: username, Roles: roles},
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(ts.cfg.AccessSecret)
}

func (ts *TokenService) IssueRefreshToken(username string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := RefreshClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(ts.cfg.RefreshSecret)
}

// ParseAccess verifies tokenStr against the access secret and the access
// claim shape. The UserInfo wrapper must be present.
func (ts *TokenService) ParseAccess(tokenStr string) (*AccessClaims, error) {
	var claims AccessClaims
	token, err := jwt.ParseWithClaims(tokenStr, &claims, ts.keyfunc(ts.cfg.AccessSecret),
		jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !token.Valid {
		return nil, ErrBadToken
	}
	if claims.UserInfo.Username == "" {
		return nil, ErrBadToken
	}
	return &claims, nil
}

// ParseRefresh verifies tokenStr against the refresh secret.
func (ts *TokenService) ParseRefresh(tokenStr string) (*RefreshClaims, error) {
	var claims RefreshClaims
	token, err := jwt.ParseWithClaims(tokenStr, &claims, ts.keyfunc(ts.cfg.RefreshSecret),
		jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !token.Valid {
		return nil, ErrBadToken
	}
	if claims.Username == "" {
		return nil, ErrBadToken
	}
	return &claims, nil
}

// VerifyBearer resolves a bearer token into a Principal. Candidates are tried
// in order: access semantics first, refresh semantics second. A refresh token
// authenticates but carries no roles, so anything role-gated downstream fails
// closed. Both failures collapse into a single uniform error; the caller must
// not learn which secret rejected the token.
func (ts *TokenService) VerifyBearer(tokenStr string) (*Principal, error) {
	if ac, err := ts.ParseAccess(tokenStr); err == nil {
		return &Principal{Username: ac.UserInfo.Username, Roles: RoleSet(ac.UserInfo.Roles)}, nil
	}
	if rc, err := ts.ParseRefresh(tokenStr); err == nil {
		return &Principal{Username: rc.Username, Roles: RoleSet{}}, nil
	}
	return nil, ErrBadToken
}

func (ts *TokenService) keyfunc(secret []byte) jwt.Keyfunc {
	return func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	}
}
