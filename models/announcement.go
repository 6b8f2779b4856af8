package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Announcement struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"id"`
	User         bson.ObjectID `bson:"user" json:"user"`
	Text         string        `bson:"text" json:"text"`
	AnnounceDate time.Time     `bson:"announcedate" json:"announcedate"`
}
