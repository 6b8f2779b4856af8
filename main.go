package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/abdallaElamawy03/plant-back-end/auth"
	"github.com/abdallaElamawy03/plant-back-end/controllers"
	"github.com/abdallaElamawy03/plant-back-end/database"
	"github.com/abdallaElamawy03/plant-back-end/middleware"
	"github.com/abdallaElamawy03/plant-back-end/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"golang.org/x/time/rate"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := auth.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}
	tokens := auth.NewTokenService(cfg)

	//seeding admin user
	ctx := context.Background()
	usersCol := database.OpenCollection("users")
	if err := utils.SeedAdminUser(ctx, usersCol); err != nil {
		log.Fatal(err)
	}

	r := gin.New()

	origins := os.Getenv("ALLOWED_ORIGINS")
	allowedOrigins := map[string]bool{}
	for _, origin := range strings.Split(origins, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			allowedOrigins[origin] = true
		}
	}
	log.Printf("Allowed origins: %v", allowedOrigins)
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return allowedOrigins[origin]
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RequestID())
	r.Use(gin.Logger())
	r.Use(gin.Recovery())

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// 5 attempts per minute per IP on the credential exchange
	loginLimiter := middleware.LoginLimiter(rate.Every(12*time.Second), 5)

	authRoutes := r.Group("/auth")
	{
		authRoutes.POST("", loginLimiter, controllers.Login(cfg, tokens))
		authRoutes.GET("/refresh", controllers.Refresh(cfg, tokens))
		authRoutes.POST("/logout", controllers.Logout(cfg))
	}

	users := r.Group("/users")
	{
		users.POST("", loginLimiter, controllers.Register(cfg, tokens))
		users.GET("", middleware.Auth(tokens), controllers.GetAllUsers())
		users.DELETE("", middleware.Auth(tokens), controllers.DeleteUser())
		users.GET("/profile", middleware.Auth(tokens), controllers.GetProfile())
		users.GET("/:id", controllers.GetUser())
		users.PATCH("/:id", controllers.UpdateUser())
	}

	posts := r.Group("/posts")
	posts.Use(middleware.Auth(tokens))
	{
		posts.GET("/a/all", controllers.GetPosts())
		posts.DELETE("/a/:id", controllers.DeletePostAdmin())
		posts.POST("/addpost", controllers.AddPost())
		posts.DELETE("/:id", controllers.DeletePost())
		posts.PATCH("/:id", controllers.EditPost())
		posts.POST("/:id/like", controllers.LikePost())
		posts.POST("/addcomment/:id", controllers.AddComment())
		posts.DELETE("/delete/:postId/:commentId", controllers.DeleteComment())
	}

	announce := r.Group("/announce")
	announce.Use(middleware.Auth(tokens))
	{
		announce.GET("/get", controllers.GetAnnouncements())
		announce.POST("/add", controllers.AddAnnouncement())
		announce.DELETE("/deleteannounce/:id", controllers.DeleteAnnouncement())
	}

	activity := r.Group("/activity")
	activity.Use(middleware.Auth(tokens))
	{
		activity.POST("/track", controllers.TrackActivity())
	}

	stats := r.Group("/stats")
	stats.Use(middleware.Auth(tokens))
	{
		stats.GET("/dashboard", controllers.GetDashboardStats())
	}

	// Server will listen on 0.0.0.0:8080 (localhost:8080 on Windows)
	r.Run()
}
