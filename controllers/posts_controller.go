package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/abdallaElamawy03/plant-back-end/auth"
	"github.com/abdallaElamawy03/plant-back-end/database"
	"github.com/abdallaElamawy03/plant-back-end/dto"
	"github.com/abdallaElamawy03/plant-back-end/middleware"
	"github.com/abdallaElamawy03/plant-back-end/models"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// GET /posts/a/all
func GetPosts() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		postsCol := database.OpenCollection("posts")

		// Join the author's public fields, newest posts first.
		pipeline := []bson.M{
			{"$lookup": bson.M{
				"from":         "users",
				"localField":   "user",
				"foreignField": "_id",
				"as":           "author",
			}},
			{"$unwind": bson.M{"path": "$author", "preserveNullAndEmptyArrays": true}},
			{"$project": bson.M{
				"user": 1, "title": 1, "post_date": 1, "comments": 1, "likes": 1,
				"author.username": 1, "author.city": 1,
			}},
			{"$sort": bson.M{"post_date": -1}},
		}

		cursor, err := postsCol.Aggregate(ctx, pipeline)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while fetching posts"})
			return
		}
		defer cursor.Close(ctx)

		posts := make([]models.PostWithAuthor, 0)
		if err := cursor.All(ctx, &posts); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while fetching posts"})
			return
		}
		if len(posts) == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "No posts found"})
			return
		}

		c.JSON(http.StatusOK, posts)
	}
}

// POST /posts/addpost
func AddPost() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		p := middleware.Principal(c)
		if p == nil || p.Username == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "The username is required"})
			return
		}

		var body dto.CreatePostDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "The title field is required"})
			return
		}

		user, err := database.NewUsers().FindByUsername(ctx, p.Username)
		if err != nil || user == nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}

		post := models.Post{
			ID:       bson.NewObjectID(),
			User:     user.ID,
			Title:    body.Title,
			PostDate: time.Now().UTC(),
			Comments: []models.Comment{},
		}

		postsCol := database.OpenCollection("posts")
		if _, err := postsCol.InsertOne(ctx, post); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}

		trackActivity(ctx, user.ID, models.ActivityCommunityPost, "Created post: "+post.Title, "", &post.ID)

		c.JSON(http.StatusCreated, gin.H{
			"message": "Post created successfully",
			"post":    post,
		})
	}
}

// DELETE /posts/:id
// Owner only, no matter the caller's roles. Admins use the admin route.
func DeletePost() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		p := middleware.Principal(c)
		if p == nil || p.Username == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Username is required"})
			return
		}

		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Post ID is required"})
			return
		}

		user, post, ok := resolveUserAndPost(c, p.Username, id)
		if !ok {
			return
		}

		if !auth.Owns(user.ID, post.User) {
			c.JSON(http.StatusForbidden, gin.H{"message": "Unauthorized to delete this post"})
			return
		}

		postsCol := database.OpenCollection("posts")
		if _, err := postsCol.DeleteOne(ctx, bson.M{"_id": post.ID}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
	}
}

// DELETE /posts/a/:id
// Admin delete-any. This endpoint checks the role rule only; ownership is
// irrelevant here.
func DeletePostAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		p := middleware.Principal(c)
		if !p.HasRole(auth.RoleAdmin) {
			c.JSON(http.StatusForbidden, gin.H{"message": "Unauthorized - Admin access only"})
			return
		}

		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Post ID is required"})
			return
		}

		admin, err := database.NewUsers().FindByUsername(ctx, p.Username)
		if err != nil || admin == nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Admin user not found"})
			return
		}

		postsCol := database.OpenCollection("posts")
		res, err := postsCol.DeleteOne(ctx, bson.M{"_id": id})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		if res.DeletedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "Post not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": fmt.Sprintf("Post with ID %s deleted successfully by admin %s", id.Hex(), p.Username),
		})
	}
}

// PATCH /posts/:id
// Owner only.
func EditPost() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		p := middleware.Principal(c)
		if p == nil || p.Username == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Username is required"})
			return
		}

		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Post ID is required"})
			return
		}

		var body dto.UpdatePostDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Nothing to update"})
			return
		}

		user, post, ok := resolveUserAndPost(c, p.Username, id)
		if !ok {
			return
		}

		if !auth.Owns(user.ID, post.User) {
			c.JSON(http.StatusForbidden, gin.H{"message": "Unauthorized - You can only edit your own posts"})
			return
		}

		post.Title = body.Title

		postsCol := database.OpenCollection("posts")
		if _, err := postsCol.UpdateByID(ctx, post.ID, bson.M{"$set": bson.M{"title": post.Title}}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Post updated successfully",
			"post":    post,
		})
	}
}

// POST /posts/:id/like
// Toggles the caller's like on the post.
func LikePost() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		p := middleware.Principal(c)
		if p == nil || p.Username == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Username is required"})
			return
		}

		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Post ID is required"})
			return
		}

		user, post, ok := resolveUserAndPost(c, p.Username, id)
		if !ok {
			return
		}

		liked := false
		for _, l := range post.Likes {
			if l == user.ID {
				liked = true
				break
			}
		}

		postsCol := database.OpenCollection("posts")
		update := bson.M{"$addToSet": bson.M{"likes": user.ID}}
		if liked {
			update = bson.M{"$pull": bson.M{"likes": user.ID}}
		}
		if _, err := postsCol.UpdateByID(ctx, post.ID, update); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}

		message := "Post liked"
		likes := len(post.Likes) + 1
		if liked {
			message = "Post unliked"
			likes = len(post.Likes) - 1
		} else {
			trackActivity(ctx, user.ID, models.ActivityLike, "Liked post: "+post.Title, "", &post.ID)
		}

		c.JSON(http.StatusOK, gin.H{"message": message, "likes": likes})
	}
}

// POST /posts/addcomment/:id
func AddComment() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		p := middleware.Principal(c)
		if p == nil || p.Username == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Username is required"})
			return
		}

		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Post ID is required"})
			return
		}

		var body dto.AddCommentDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Comment text is required"})
			return
		}

		user, post, ok := resolveUserAndPost(c, p.Username, id)
		if !ok {
			return
		}

		comment := models.Comment{
			ID:   bson.NewObjectID(),
			User: user.ID,
			Text: body.Text,
			Date: time.Now().UTC(),
		}

		// Newest comment first.
		comments := append([]models.Comment{comment}, post.Comments...)

		postsCol := database.OpenCollection("posts")
		if _, err := postsCol.UpdateByID(ctx, post.ID, bson.M{"$set": bson.M{"comments": comments}}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}

		trackActivity(ctx, user.ID, models.ActivityComment, "Commented on post: "+post.Title, "", &post.ID)

		c.JSON(http.StatusCreated, gin.H{
			"message":  "Comment added successfully",
			"comments": comments,
		})
	}
}

// DELETE /posts/delete/:postId/:commentId
// Comment owner only.
func DeleteComment() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		p := middleware.Principal(c)
		if p == nil || p.Username == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Username is required"})
			return
		}

		postID, err := bson.ObjectIDFromHex(c.Param("postId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Post ID and Comment ID are required"})
			return
		}
		commentID, err := bson.ObjectIDFromHex(c.Param("commentId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Post ID and Comment ID are required"})
			return
		}

		user, post, ok := resolveUserAndPost(c, p.Username, postID)
		if !ok {
			return
		}

		idx := -1
		for i, cm := range post.Comments {
			if cm.ID == commentID {
				idx = i
				break
			}
		}
		if idx < 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "Comment not found"})
			return
		}

		if !auth.Owns(user.ID, post.Comments[idx].User) {
			c.JSON(http.StatusForbidden, gin.H{"message": "Unauthorized - You can only delete your own comments"})
			return
		}

		comments := append(post.Comments[:idx], post.Comments[idx+1:]...)

		postsCol := database.OpenCollection("posts")
		if _, err := postsCol.UpdateByID(ctx, post.ID, bson.M{"$set": bson.M{"comments": comments}}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message":  "Comment deleted successfully",
			"comments": comments,
		})
	}
}

// resolveUserAndPost loads the caller and the target post, writing the 404
// response itself when either is missing.
func resolveUserAndPost(c *gin.Context, username string, postID bson.ObjectID) (*models.User, *models.Post, bool) {
	ctx := c.Request.Context()

	user, err := database.NewUsers().FindByUsername(ctx, username)
	if err != nil || user == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return nil, nil, false
	}

	var post models.Post
	postsCol := database.OpenCollection("posts")
	if err := postsCol.FindOne(ctx, bson.M{"_id": postID}).Decode(&post); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Post not found"})
		return nil, nil, false
	}

	return user, &post, true
}
