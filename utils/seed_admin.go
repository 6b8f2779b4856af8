package utils

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/abdallaElamawy03/plant-back-end/auth"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// SeedAdminUser makes sure a bootstrap admin account exists. The upsert is
// a no-op when the account is already there.
func SeedAdminUser(ctx context.Context, usersCol *mongo.Collection) error {
	username := NormalizeUsername(os.Getenv("ADMIN_USERNAME"))
	pass := os.Getenv("ADMIN_PASSWORD")

	if username == "" || pass == "" {
		return fmt.Errorf("missing ADMIN_USERNAME or ADMIN_PASSWORD env vars")
	}

	hash, err := HashPassword(pass)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	now := time.Now().UTC()

	filter := bson.M{"username": username}
	update := bson.M{
		"$setOnInsert": bson.M{
			"username":    username,
			"password":    hash,
			"roles":       []string{auth.RoleAdmin},
			"active":      true,
			"phonenumber": "",
			"country":     "",
			"city":        "",
			"createdAt":   now,
			"lastLogin":   now,
		},
	}

	opts := options.UpdateOne().SetUpsert(true).
		SetCollation(&options.Collation{Locale: "en", Strength: 2})

	res, err := usersCol.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return fmt.Errorf("seed admin upsert failed: %w", err)
	}

	if res.UpsertedCount == 1 {
		fmt.Println("Admin user seeded:", username)
	} else {
		fmt.Println("Admin user already exists:", username)
	}

	return nil
}
