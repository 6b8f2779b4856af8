package controllers

import (
	"net/http"
	"time"

	"github.com/abdallaElamawy03/plant-back-end/auth"
	"github.com/abdallaElamawy03/plant-back-end/database"
	"github.com/abdallaElamawy03/plant-back-end/dto"
	"github.com/abdallaElamawy03/plant-back-end/middleware"
	"github.com/abdallaElamawy03/plant-back-end/models"
	"github.com/abdallaElamawy03/plant-back-end/utils"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// GET /users
// Admin only.
func GetAllUsers() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		p := middleware.Principal(c)
		if p == nil || p.Username == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "User not found in token"})
			return
		}
		if !p.HasRole(auth.RoleAdmin) {
			c.JSON(http.StatusForbidden, gin.H{"message": "Unauthorized - Admin access only"})
			return
		}

		usersCol := database.OpenCollection("users")
		opts := options.Find().SetProjection(bson.M{"password": 0})
		cursor, err := usersCol.Find(ctx, bson.M{}, opts)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		defer cursor.Close(ctx)

		users := make([]models.User, 0)
		if err := cursor.All(ctx, &users); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		if len(users) == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "No users found"})
			return
		}

		c.JSON(http.StatusOK, users)
	}
}

// POST /users
// Public registration. Issues tokens right away so the new user is logged in.
func Register(cfg *auth.Config, ts *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var body dto.RegisterUserDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "all fields are required"})
			return
		}

		username := utils.NormalizeUsername(body.Username)
		usersCol := database.OpenCollection("users")

		dupOpts := options.FindOne().SetCollation(database.CaseInsensitive)
		if err := usersCol.FindOne(ctx, bson.M{"username": username}, dupOpts).Err(); err == nil {
			c.JSON(http.StatusConflict, gin.H{"message": "Duplicate username"})
			return
		}

		roles := auth.DefaultRoles()
		if len(body.Roles) > 0 {
			var err error
			roles, err = auth.NewRoleSet(body.Roles)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}
		}

		hash, err := utils.HashPassword(body.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to hash password"})
			return
		}

		now := time.Now().UTC()
		user := models.User{
			ID:           bson.NewObjectID(),
			Username:     username,
			PasswordHash: hash,
			Roles:        roles,
			Active:       true,
			Phonenumber:  body.Phonenumber,
			Country:      body.Country,
			City:         body.City,
			CreatedAt:    now,
			LastLogin:    now,
		}
		if _, err := usersCol.InsertOne(ctx, user); err != nil {
			if utils.IsDuplicateKey(err) {
				c.JSON(http.StatusConflict, gin.H{"message": "Duplicate username"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}

		accessToken, err := ts.IssueAccessToken(user.Username, roles, cfg.RegisterAccessTTL)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to generate access token"})
			return
		}
		refreshToken, err := ts.IssueRefreshToken(user.Username, cfg.RegisterRefreshTTL)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to generate refresh token"})
			return
		}

		utils.SetRefreshCookie(c, cfg, refreshToken)
		c.JSON(http.StatusCreated, gin.H{
			"accessToken": accessToken,
			"user":        user,
		})
	}
}

// GET /users/:id
func GetUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid user id"})
			return
		}

		user, err := database.NewUsers().FindByID(c.Request.Context(), id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		if user == nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"user": user})
	}
}

// PATCH /users/:id
func UpdateUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid user id"})
			return
		}

		var body dto.UpdateUserDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required"})
			return
		}

		users := database.NewUsers()
		user, err := users.FindByID(ctx, id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		if user == nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}

		username := utils.NormalizeUsername(body.Username)

		// The new username may collide with someone else, but matching the
		// user being updated is fine.
		duplicate, err := users.FindByUsername(ctx, username)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		if duplicate != nil && duplicate.ID != id {
			c.JSON(http.StatusConflict, gin.H{"message": "Duplicate username"})
			return
		}

		user.Username = username
		user.Phonenumber = body.Phonenumber
		user.Country = body.Country
		user.City = body.City
		if body.Active != nil {
			user.Active = *body.Active
		}
		if body.Password != "" {
			hash, err := utils.HashPassword(body.Password)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to hash password"})
				return
			}
			user.PasswordHash = hash
		}

		if err := users.Save(ctx, user); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": user.Username + " updated"})
	}
}

// DELETE /users
// Admin only. The user's posts go with them.
func DeleteUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		p := middleware.Principal(c)
		if p == nil || p.Username == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "User not found in token"})
			return
		}
		if !p.HasRole(auth.RoleAdmin) {
			c.JSON(http.StatusForbidden, gin.H{"message": "Unauthorized - Admin access only"})
			return
		}

		var body dto.DeleteUserDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "User ID is required"})
			return
		}
		id, err := bson.ObjectIDFromHex(body.ID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid user id"})
			return
		}

		user, err := database.NewUsers().FindByID(ctx, id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		if user == nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}

		postsCol := database.OpenCollection("posts")
		if _, err := postsCol.DeleteMany(ctx, bson.M{"user": id}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "the posts can't be deleted"})
			return
		}

		usersCol := database.OpenCollection("users")
		if _, err := usersCol.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "the user " + user.Username + " with id " + user.ID.Hex() + " has been deleted successfully",
		})
	}
}

// GET /users/profile
func GetProfile() gin.HandlerFunc {
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

		location := user.Location
		if location == "" {
			location = user.City + ", " + user.Country
		}

		c.JSON(http.StatusOK, gin.H{
			"profile": gin.H{
				"name":        user.Username,
				"location":    location,
				"memberSince": user.CreatedAt,
				"city":        user.City,
				"country":     user.Country,
				"phonenumber": user.Phonenumber,
			},
			"stats": gin.H{
				"soilAnalyses":   soilCount,
				"diagnoses":      diagnosisCount,
				"communityPosts": postCount,
			},
			"recentActivity": recent,
		})
	}
}
