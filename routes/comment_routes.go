package routes

import (
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ripplenet/ripple_backend/controllers"
	"github.com/ripplenet/ripple_backend/middleware"
	"github.com/ripplenet/ripple_backend/websocket"
)

// RegisterCommentRoutes sets up comment and reply routes
func RegisterCommentRoutes(e *echo.Echo, db *mongo.Client, hub *websocket.Hub) {
	commentController := controllers.NewCommentController(db, hub)

	publicGroup := e.Group("/api/comments")
	publicGroup.Use(middleware.OptionalJWTMiddleware())
	publicGroup.GET("/post/:postId", commentController.GetPostComments)
	publicGroup.GET("/:id", commentController.GetComment)
	publicGroup.GET("/:id/replies", commentController.GetCommentReplies)

	authGroup := e.Group("/api/comments")
	authGroup.Use(middleware.JWTMiddleware())
	authGroup.POST("/:postId", commentController.AddComment)
	authGroup.PUT("/:id", commentController.UpdateComment)
	authGroup.DELETE("/:id", commentController.DeleteComment)
	authGroup.POST("/:id/like", commentController.ToggleCommentLike)
}
