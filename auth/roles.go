package auth

import (
	"fmt"
	"strings"
)

const (
	RoleUser    = "user"
	RoleAdmin   = "admin"
	RoleManager = "manager"
)

// RoleSet is a validated, non-empty set of role names.
type RoleSet []string

// DefaultRoles is what every identity gets when registration supplies none.
func DefaultRoles() RoleSet {
	return RoleSet{RoleUser}
}

// NewRoleSet validates the raw role list coming from a request body or a
// token claim. An empty list or an empty element is rejected rather than
// trusted at use time.
func NewRoleSet(raw []string) (RoleSet, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("roles must not be empty")
	}
	out := make(RoleSet, 0, len(raw))
	for _, r := range raw {
		r = strings.TrimSpace(r)
		if r == "" {
			return nil, fmt.Errorf("roles must not contain empty values")
		}
		out = append(out, r)
	}
	return out, nil
}

func (rs RoleSet) Has(role string) bool {
	for _, r := range rs {
		if r == role {
			return true
		}
	}
	return false
}
