package controllers

import (
	"net/http"
	"time"

	"github.com/abdallaElamawy03/plant-back-end/auth"
	"github.com/abdallaElamawy03/plant-back-end/database"
	"github.com/abdallaElamawy03/plant-back-end/dto"
	"github.com/abdallaElamawy03/plant-back-end/middleware"
	"github.com/abdallaElamawy03/plant-back-end/models"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// GET /announce/get
func GetAnnouncements() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := database.OpenCollection("announcements")

		opts := options.Find().SetSort(bson.D{{Key: "announcedate", Value: -1}})
		cursor, err := col.Find(ctx, bson.M{}, opts)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while fetching announcements"})
			return
		}
		defer cursor.Close(ctx)

		announcements := make([]models.Announcement, 0)
		if err := cursor.All(ctx, &announcements); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while fetching announcements"})
			return
		}
		if len(announcements) == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "No announcements found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message":       "Announcements retrieved successfully",
			"count":         len(announcements),
			"announcements": announcements,
		})
	}
}

// POST /announce/add
// Admin only.
func AddAnnouncement() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		p := middleware.Principal(c)
		if p == nil || p.Username == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "the username field is required"})
			return
		}
		if !p.HasRole(auth.RoleAdmin) {
			c.JSON(http.StatusForbidden, gin.H{"message": "Unauthorized - Admin access only"})
			return
		}

		var body dto.CreateAnnouncementDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Title and message are required"})
			return
		}

		user, err := database.NewUsers().FindByUsername(ctx, p.Username)
		if err != nil || user == nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}

		announcement := models.Announcement{
			ID:           bson.NewObjectID(),
			User:         user.ID,
			Text:         body.Text,
			AnnounceDate: time.Now().UTC(),
		}

		col := database.OpenCollection("announcements")
		if _, err := col.InsertOne(ctx, announcement); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create announcement"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message":      "Announcement added successfully",
			"announcement": announcement,
		})
	}
}

// DELETE /announce/deleteannounce/:id
// Admin only.
func DeleteAnnouncement() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		p := middleware.Principal(c)
		if !p.HasRole(auth.RoleAdmin) {
			c.JSON(http.StatusForbidden, gin.H{"message": "Unauthorized - Admin access only"})
			return
		}

		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Announcement ID is required"})
			return
		}

		col := database.OpenCollection("announcements")
		res, err := col.DeleteOne(ctx, bson.M{"_id": id})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		if res.DeletedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "Announcement not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message":   "Announcement deleted successfully",
			"deletedBy": p.Username,
		})
	}
}
