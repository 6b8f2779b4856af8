package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/abdallaElamawy03/plant-back-end/database"
	"github.com/abdallaElamawy03/plant-back-end/dto"
	"github.com/abdallaElamawy03/plant-back-end/middleware"
	"github.com/abdallaElamawy03/plant-back-end/models"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// trackActivity records an activity best-effort: failures are logged and
// never fail the request that triggered them.
func trackActivity(ctx context.Context, userID bson.ObjectID, activityType models.ActivityType, description, link string, relatedPost *bson.ObjectID) {
	activity := models.Activity{
		ID:          bson.NewObjectID(),
		User:        userID,
		Type:        activityType,
		Description: description,
		Link:        link,
		RelatedPost: relatedPost,
		Timestamp:   time.Now().UTC(),
	}
	col := database.OpenCollection("activities")
	if _, err := col.InsertOne(ctx, activity); err != nil {
		log.Printf("Error tracking activity %s: %v", activityType, err)
	}
}

func recentActivities(ctx context.Context, userID bson.ObjectID, limit int64) ([]models.Activity, error) {
	col := database.OpenCollection("activities")
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(limit)
	cursor, err := col.Find(ctx, bson.M{"user": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	activities := make([]models.Activity, 0)
	if err := cursor.All(ctx, &activities); err != nil {
		return nil, err
	}
	return activities, nil
}

// POST /activity/track
func TrackActivity() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		p := middleware.Principal(c)
		if p == nil || p.Username == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "User not found in token"})
			return
		}

		var body dto.TrackActivityDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Type and description are required"})
			return
		}
		if !models.ValidActivityType(body.Type) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid activity type"})
			return
		}

		user, err := database.NewUsers().FindByUsername(ctx, p.Username)
		if err != nil || user == nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}

		activity := models.Activity{
			ID:          bson.NewObjectID(),
			User:        user.ID,
			Type:        models.ActivityType(body.Type),
			Description: body.Description,
			Link:        body.Link,
			Timestamp:   time.Now().UTC(),
		}

		col := database.OpenCollection("activities")
		if _, err := col.InsertOne(ctx, activity); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message": "Activity tracked successfully",
			"activity": gin.H{
				"id":          activity.ID,
				"type":        activity.Type,
				"description": activity.Description,
				"timestamp":   activity.Timestamp,
			},
		})
	}
}

// GET /stats/dashboard
func GetDashboardStats() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		p := middleware.Principal(c)
		if p == nil || p.Username == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "User not found in token"})
			return
		}

		user, err := database.NewUsers().FindByUsername(ctx, p.Username)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		if user == nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}

		activityCol := database.OpenCollection("activities")
		postsCol := database.OpenCollection("posts")

		soilCount, err := activityCol.CountDocuments(ctx, bson.M{"user": user.ID, "type": models.ActivitySoilAnalysis})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		diagnosisCount, err := activityCol.CountDocuments(ctx, bson.M{"user": user.ID, "type": models.ActivityPlantDiagnosis})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		postCount, err := postsCol.CountDocuments(ctx, bson.M{"user": user.ID})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}

		recent, err := recentActivities(ctx, user.ID, 5)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"stats": gin.H{
				"soilAnalysisCount":   soilCount,
				"plantDiagnosisCount": diagnosisCount,
				"communityPostsCount": postCount,
			},
			"recentActivities": recent,
		})
	}
}
