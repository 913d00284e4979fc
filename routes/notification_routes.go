package routes

import (
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ripplenet/ripple_backend/controllers"
	"github.com/ripplenet/ripple_backend/middleware"
)

// RegisterNotificationRoutes sets up the notification inbox routes
func RegisterNotificationRoutes(e *echo.Echo, db *mongo.Client) {
	notificationController := controllers.NewNotificationController(db)

	authGroup := e.Group("/api/notifications")
	authGroup.Use(middleware.JWTMiddleware())
	authGroup.GET("", notificationController.GetNotifications)
	authGroup.GET("/unread-count", notificationController.GetUnreadCount)
	authGroup.PUT("/read-all", notificationController.MarkAllAsRead)
	authGroup.PUT("/:id/read", notificationController.MarkAsRead)
	authGroup.DELETE("/delete-all", notificationController.DeleteAllNotifications)
	authGroup.DELETE("/:id", notificationController.DeleteNotification)
}
