package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Comment struct {
	ID   bson.ObjectID `bson:"_id,omitempty" json:"id"`
	User bson.ObjectID `bson:"user" json:"user"`
	Text string        `bson:"text" json:"text"`
	Date time.Time     `bson:"date" json:"date"`
}

type Post struct {
	ID       bson.ObjectID   `bson:"_id,omitempty" json:"id"`
	User     bson.ObjectID   `bson:"user" json:"user"`
	Title    string          `bson:"title" json:"title"`
	PostDate time.Time       `bson:"post_date" json:"post_date"`
	Comments []Comment       `bson:"comments" json:"comments"`
	Likes    []bson.ObjectID `bson:"likes,omitempty" json:"likes,omitempty"`
}

// PostWithAuthor is the list-view projection joining the author's
// public fields onto the post.
type PostWithAuthor struct {
	Post   `bson:",inline"`
	Author struct {
		Username string `bson:"username" json:"username"`
		City     string `bson:"city" json:"city"`
	} `bson:"author" json:"author"`
}
