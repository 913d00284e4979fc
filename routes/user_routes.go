package routes

import (
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ripplenet/ripple_backend/controllers"
	"github.com/ripplenet/ripple_backend/middleware"
	"github.com/ripplenet/ripple_backend/repositories"
	"github.com/ripplenet/ripple_backend/websocket"
)

// RegisterUserRoutes sets up profile and social-graph routes
func RegisterUserRoutes(e *echo.Echo, db *mongo.Client, hub *websocket.Hub) {
	followRepo := repositories.NewFollowRepository(db)
	userController := controllers.NewUserController(db, hub, followRepo)

	// Profile reads work for anonymous viewers too; a token only affects
	// the derived isLiked/isFollowing fields
	publicGroup := e.Group("/api/users")
	publicGroup.Use(middleware.OptionalJWTMiddleware())
	publicGroup.GET("/profile/:username", userController.GetProfileByUsername)
	publicGroup.GET("/search/:query", userController.SearchUsers)
	publicGroup.GET("/:id", userController.GetUserByID)
	publicGroup.GET("/:id/followers", userController.GetFollowers)
	publicGroup.GET("/:id/following", userController.GetFollowing)

	authGroup := e.Group("/api/users")
	authGroup.Use(middleware.JWTMiddleware())
	authGroup.POST("/follow/:id", userController.ToggleFollow)
	authGroup.GET("/suggested", userController.GetSuggestedUsers)
}
