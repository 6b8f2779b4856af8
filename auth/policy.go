package auth

import "go.mongodb.org/mongo-driver/v2/bson"

// Principal is the authenticated identity attached to a request by the
// middleware. Roles come straight from the token claim: current for an
// access token, empty for a refresh token used as a bearer credential.
type Principal struct {
	Username string
	Roles    RoleSet
}

// HasRole is the role rule: true iff role is in the principal's role set.
// Admin-only endpoints check exactly this and nothing else.
func (p *Principal) HasRole(role string) bool {
	if p == nil {
		return false
	}
	return p.Roles.Has(role)
}

// Owns is the ownership rule: true iff the resolved caller id equals the
// resource's creator id. Owner-only endpoints check exactly this and do not
// consult roles.
func Owns(userID, ownerID bson.ObjectID) bool {
	return !userID.IsZero() && userID == ownerID
}
