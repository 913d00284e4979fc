package routes

import (
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ripplenet/ripple_backend/controllers"
	"github.com/ripplenet/ripple_backend/middleware"
)

// RegisterAuthRoutes sets up registration and session routes
func RegisterAuthRoutes(e *echo.Echo, db *mongo.Client) {
	authController := controllers.NewAuthController(db)

	// Public authentication routes
	e.POST("/api/auth/register", authController.Register)
	e.POST("/api/auth/login", authController.Login)

	// Authenticated session routes
	authGroup := e.Group("/api/auth")
	authGroup.Use(middleware.JWTMiddleware())
	authGroup.GET("/me", authController.Me)
	authGroup.PUT("/profile", authController.UpdateProfile)
	authGroup.POST("/logout", authController.Logout)
}
