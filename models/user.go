package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type User struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Username     string        `bson:"username" json:"username"`
	PasswordHash string        `bson:"password" json:"-"` // never expose
	Roles        []string      `bson:"roles" json:"roles"`
	Active       bool          `bson:"active" json:"active"`
	Phonenumber  string        `bson:"phonenumber" json:"phonenumber"`
	Country      string        `bson:"country" json:"country"`
	City         string        `bson:"city" json:"city"`
	Location     string        `bson:"location,omitempty" json:"location,omitempty"`
	CreatedAt    time.Time     `bson:"createdAt" json:"createdAt"`
	LastLogin    time.Time     `bson:"lastLogin,omitempty" json:"lastLogin,omitempty"`
}
