package routes

import (
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ripplenet/ripple_backend/controllers"
	"github.com/ripplenet/ripple_backend/middleware"
	"github.com/ripplenet/ripple_backend/websocket"
)

// RegisterPostRoutes sets up post and feed routes
func RegisterPostRoutes(e *echo.Echo, db *mongo.Client, hub *websocket.Hub) {
	postController := controllers.NewPostController(db, hub)

	// Public and single-post reads; visibility of private posts is
	// enforced per post in the controller
	publicGroup := e.Group("/api/posts")
	publicGroup.Use(middleware.OptionalJWTMiddleware())
	publicGroup.GET("/public", postController.GetPublicPosts)
	publicGroup.GET("/user/:userId", postController.GetUserPosts)
	publicGroup.GET("/:id", postController.GetPost)

	authGroup := e.Group("/api/posts")
	authGroup.Use(middleware.JWTMiddleware())
	authGroup.GET("/feed", postController.GetFeed)
	authGroup.POST("", postController.CreatePost)
	authGroup.PUT("/:id", postController.UpdatePost)
	authGroup.DELETE("/:id", postController.DeletePost)
	authGroup.POST("/:id/like", postController.ToggleLike)
}
