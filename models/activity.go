package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type ActivityType string

const (
	ActivitySoilAnalysis   ActivityType = "soil_analysis"
	ActivityPlantDiagnosis ActivityType = "plant_diagnosis"
	ActivityCommunityPost  ActivityType = "community_post"
	ActivityComment        ActivityType = "comment"
	ActivityLike           ActivityType = "like"
)

func ValidActivityType(t string) bool {
	switch ActivityType(t) {
	case ActivitySoilAnalysis, ActivityPlantDiagnosis, ActivityCommunityPost, ActivityComment, ActivityLike:
		return true
	}
	return false
}

type Activity struct {
	ID          bson.ObjectID  `bson:"_id,omitempty" json:"id"`
	User        bson.ObjectID  `bson:"user" json:"user"`
	Type        ActivityType   `bson:"type" json:"type"`
	Description string         `bson:"description" json:"description"`
	Link        string         `bson:"link,omitempty" json:"link,omitempty"`
	RelatedPost *bson.ObjectID `bson:"relatedPost,omitempty" json:"relatedPost,omitempty"`
	Timestamp   time.Time      `bson:"timestamp" json:"timestamp"`
}
