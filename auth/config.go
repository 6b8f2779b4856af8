// Package auth holds the credential, token and policy logic shared by the
// middleware and the auth/user controllers.
package auth

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config carries the signing secrets and token lifetimes. Loaded once at
// process start and passed to components at construction; never re-read
// per request.
type Config struct {
	AccessSecret  []byte
	RefreshSecret []byte

	// Login and registration historically mint tokens with different
	// lifetimes. Both are kept as separate knobs on purpose.
	LoginAccessTTL     time.Duration
	RegisterAccessTTL  time.Duration
	LoginRefreshTTL    time.Duration
	RegisterRefreshTTL time.Duration

	// Lifetime of the refresh cookie itself, independent of the signed
	// expiry inside the token it carries.
	RefreshCookieMaxAge time.Duration

	CookieDomain string
	CookieSecure bool
}

func LoadConfig() (*Config, error) {
	access := os.Getenv("ACCESS_TOKEN_SECRET")
	refresh := os.Getenv("REFRESH_TOKEN_SECRET")
	if access == "" || refresh == "" {
		return nil, fmt.Errorf("missing ACCESS_TOKEN_SECRET or REFRESH_TOKEN_SECRET env vars")
	}

	cfg := &Config{
		AccessSecret:        []byte(access),
		RefreshSecret:       []byte(refresh),
		LoginAccessTTL:      minutesEnv("LOGIN_ACCESS_TOKEN_TTL_MINUTES", 30),
		RegisterAccessTTL:   minutesEnv("REGISTER_ACCESS_TOKEN_TTL_MINUTES", 60),
		LoginRefreshTTL:     minutesEnv("LOGIN_REFRESH_TOKEN_TTL_MINUTES", 30),
		RegisterRefreshTTL:  minutesEnv("REGISTER_REFRESH_TOKEN_TTL_MINUTES", 24*60),
		RefreshCookieMaxAge: minutesEnv("REFRESH_COOKIE_MAX_AGE_MINUTES", 7*24*60),
		CookieDomain:        os.Getenv("COOKIE_DOMAIN"),
		CookieSecure:        os.Getenv("COOKIE_SECURE") != "false",
	}
	return cfg, nil
}

func minutesEnv(key string, def int) time.Duration {
	min, _ := strconv.Atoi(os.Getenv(key))
	if min <= 0 {
		min = def
	}
	return time.Duration(min) * time.Minute
}
