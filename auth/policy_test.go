package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestOwns(t *testing.T) {
	a := bson.NewObjectID()
	b := bson.NewObjectID()

	t.Run("owner matches regardless of roles", func(t *testing.T) {
		assert.True(t, Owns(a, a))
	})

	t.Run("non-owner never matches, even an admin", func(t *testing.T) {
		assert.False(t, Owns(b, a))
	})

	t.Run("zero ids never own anything", func(t *testing.T) {
		var zero bson.ObjectID
		assert.False(t, Owns(zero, zero))
		assert.False(t, Owns(zero, a))
	})
}

func TestPrincipalHasRole(t *testing.T) {
	p := &Principal{Username: "alice", Roles: RoleSet{"user", "admin"}}

	assert.True(t, p.HasRole(RoleAdmin))
	assert.True(t, p.HasRole(RoleUser))
	assert.False(t, p.HasRole(RoleManager))

	t.Run("nil principal has no roles", func(t *testing.T) {
		var nilP *Principal
		assert.False(t, nilP.HasRole(RoleAdmin))
	})

	t.Run("refresh-derived principal fails every role gate", func(t *testing.T) {
		stale := &Principal{Username: "alice", Roles: RoleSet{}}
		assert.False(t, stale.HasRole(RoleAdmin))
		assert.False(t, stale.HasRole(RoleUser))
	})
}
