package database

import (
	"context"
	"errors"

	"github.com/abdallaElamawy03/plant-back-end/models"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// CaseInsensitive is the collation used for every username lookup, so
// usernames are unique and matchable regardless of letter case.
var CaseInsensitive = &options.Collation{Locale: "en", Strength: 2}

// Users implements auth.UserStore over the users collection.
type Users struct {
	col *mongo.Collection
}

func NewUsers() *Users {
	return &Users{col: OpenCollection("users")}
}

func (u *Users) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	opts := options.FindOne().SetCollation(CaseInsensitive)
	err := u.col.FindOne(ctx, bson.M{"username": username}, opts).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (u *Users) FindByID(ctx context.Context, id bson.ObjectID) (*models.User, error) {
	var user models.User
	err := u.col.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (u *Users) Save(ctx context.Context, user *models.User) error {
	if user.ID.IsZero() {
		user.ID = bson.NewObjectID()
		_, err := u.col.InsertOne(ctx, user)
		return err
	}
	_, err := u.col.ReplaceOne(ctx, bson.M{"_id": user.ID}, user)
	return err
}
