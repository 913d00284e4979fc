// utils/auth.go
package utils

import (
	"context"
	"errors"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ripplenet/ripple_backend/config"
	"github.com/ripplenet/ripple_backend/middleware"
	"github.com/ripplenet/ripple_backend/models"
)

// GetUserIDFromToken extracts the authenticated user's id from the JWT
func GetUserIDFromToken(c echo.Context) (primitive.ObjectID, error) {
	userID := middleware.GetUserIDFromContext(c)
	if userID == "" {
		return primitive.NilObjectID, echo.ErrUnauthorized
	}
	return primitive.ObjectIDFromHex(userID)
}

// ViewerIDFromContext returns the viewer's id on optional-auth routes,
// or NilObjectID for anonymous requests
func ViewerIDFromContext(c echo.Context) primitive.ObjectID {
	userID := middleware.GetUserIDFromContext(c)
	if userID == "" {
		return primitive.NilObjectID
	}
	objID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return primitive.NilObjectID
	}
	return objID
}

// GetUserFromToken loads the full user document for the authenticated caller
func GetUserFromToken(c echo.Context, db *mongo.Client) (*models.User, error) {
	userID, err := GetUserIDFromToken(c)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var user models.User
	err = config.GetCollection(db, "users").FindOne(ctx, bson.M{"_id": userID}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.New("user not found")
		}
		return nil, errors.New("error retrieving user")
	}

	// Don't return password in response
	user.Password = ""

	return &user, nil
}

// FetchUserSummaries performs the explicit author/sender join for a set of
// user ids, returned as a lookup map
func FetchUserSummaries(ctx context.Context, db *mongo.Client, ids []primitive.ObjectID) (map[primitive.ObjectID]models.UserSummary, error) {
	summaries := make(map[primitive.ObjectID]models.UserSummary)
	if len(ids) == 0 {
		return summaries, nil
	}

	cursor, err := config.GetCollection(db, "users").Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var user models.User
		if err := cursor.Decode(&user); err != nil {
			return nil, err
		}
		summaries[user.ID] = user.ToSummary()
	}
	return summaries, cursor.Err()
}
