package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ripplenet/ripple_backend/middleware"
	"github.com/ripplenet/ripple_backend/models"
	"github.com/ripplenet/ripple_backend/websocket"
)

// RegisterRoutes wires every route group plus the websocket endpoint
func RegisterRoutes(e *echo.Echo, db *mongo.Client, hub *websocket.Hub) {
	RegisterAuthRoutes(e, db)
	RegisterUserRoutes(e, db, hub)
	RegisterPostRoutes(e, db, hub)
	RegisterCommentRoutes(e, db, hub)
	RegisterNotificationRoutes(e, db)

	// Browsers cannot set an Authorization header on a websocket upgrade,
	// so the token rides in the query string instead
	e.GET("/api/ws", func(c echo.Context) error {
		tokenString := c.QueryParam("token")
		if tokenString == "" {
			return c.JSON(http.StatusUnauthorized, models.Response{
				Status:  http.StatusUnauthorized,
				Message: "Missing token",
			})
		}

		claims, err := middleware.ParseToken(tokenString)
		if err != nil || middleware.IsTokenBlacklisted(tokenString) {
			return c.JSON(http.StatusUnauthorized, models.Response{
				Status:  http.StatusUnauthorized,
				Message: "Invalid or expired token",
			})
		}

		userID, err := primitive.ObjectIDFromHex(claims.UserID)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, models.Response{
				Status:  http.StatusUnauthorized,
				Message: "Invalid token claims",
			})
		}

		return websocket.HandleWebSocket(c, hub, userID)
	})
}
