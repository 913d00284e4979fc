// controllers/user_controller.go
package controllers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"regexp"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ripplenet/ripple_backend/config"
	"github.com/ripplenet/ripple_backend/models"
	"github.com/ripplenet/ripple_backend/repositories"
	"github.com/ripplenet/ripple_backend/utils"
	"github.com/ripplenet/ripple_backend/websocket"
)

// UserController contains profile and social-graph logic
type UserController struct {
	DB         *mongo.Client
	hub        *websocket.Hub
	followRepo *repositories.FollowRepository
}

// NewUserController creates a new user controller
func NewUserController(db *mongo.Client, hub *websocket.Hub, followRepo *repositories.FollowRepository) *UserController {
	return &UserController{DB: db, hub: hub, followRepo: followRepo}
}

// GetProfileByUsername handler returns a profile with its recent public posts
func (uc *UserController) GetProfileByUsername(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	username := c.Param("username")

	var user models.User
	err := config.GetCollection(uc.DB, "users").FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, models.Response{
				Status:  http.StatusNotFound,
				Message: "User not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to find user",
		})
	}

	viewer := utils.ViewerIDFromContext(c)

	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(10)

	cursor, err := config.GetCollection(uc.DB, "posts").Find(ctx, bson.M{
		"author":   user.ID,
		"isPublic": true,
	}, findOptions)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to load posts",
		})
	}
	defer cursor.Close(ctx)

	var posts []models.Post
	if err := cursor.All(ctx, &posts); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to decode posts",
		})
	}

	summary := user.ToSummary()
	views := make([]models.PostView, 0, len(posts))
	for _, post := range posts {
		views = append(views, models.NewPostView(post, &summary, viewer))
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Profile retrieved successfully",
		Data: map[string]interface{}{
			"user":  user.ToProfile(),
			"posts": views,
		},
	})
}

// GetUserByID handler returns a profile by id
func (uc *UserController) GetUserByID(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid user ID",
		})
	}

	var user models.User
	err = config.GetCollection(uc.DB, "users").FindOne(ctx, bson.M{"_id": userID}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, models.Response{
				Status:  http.StatusNotFound,
				Message: "User not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to find user",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "User retrieved successfully",
		Data:    user.ToProfile(),
	})
}

// ToggleFollow handler flips the follow edge between the caller and the
// target user. Following notifies the target; unfollowing is silent.
func (uc *UserController) ToggleFollow(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	viewer, err := utils.GetUserFromToken(c, uc.DB)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Unauthorized",
		})
	}

	targetID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid user ID",
		})
	}

	if viewer.ID == targetID {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "You cannot follow yourself",
		})
	}

	var target models.User
	err = config.GetCollection(uc.DB, "users").FindOne(ctx, bson.M{"_id": targetID}).Decode(&target)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, models.Response{
				Status:  http.StatusNotFound,
				Message: "User not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to find user",
		})
	}

	isFollowing, err := uc.followRepo.Toggle(ctx, viewer, targetID)
	if err != nil {
		log.Printf("Error toggling follow %s -> %s: %v", viewer.ID.Hex(), targetID.Hex(), err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to update follow state",
		})
	}

	message := "Unfollowed successfully"
	if isFollowing {
		message = "Followed successfully"

		_, err = utils.CreateNotification(uc.DB, uc.hub, models.Notification{
			Recipient: targetID,
			Sender:    viewer.ID,
			Type:      models.NotificationTypeFollow,
			Message:   fmt.Sprintf("%s started following you", viewer.Username),
		})
		if err != nil {
			log.Printf("Error creating follow notification: %v", err)
		}
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: message,
		Data: map[string]interface{}{
			"isFollowing": isFollowing,
		},
	})
}

// GetFollowers handler joins a user's follower references
func (uc *UserController) GetFollowers(c echo.Context) error {
	return uc.listFollowEdge(c, "followers")
}

// GetFollowing handler joins a user's following references
func (uc *UserController) GetFollowing(c echo.Context) error {
	return uc.listFollowEdge(c, "following")
}

func (uc *UserController) listFollowEdge(c echo.Context, field string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid user ID",
		})
	}

	var user models.User
	err = config.GetCollection(uc.DB, "users").FindOne(ctx, bson.M{"_id": userID}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, models.Response{
				Status:  http.StatusNotFound,
				Message: "User not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to find user",
		})
	}

	ids := user.Followers
	if field == "following" {
		ids = user.Following
	}

	summaries, err := utils.FetchUserSummaries(ctx, uc.DB, ids)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to load users",
		})
	}

	// Preserve reference order; a dangling reference is skipped rather
	// than treated as an error
	users := make([]models.UserSummary, 0, len(ids))
	for _, id := range ids {
		if summary, ok := summaries[id]; ok {
			users = append(users, summary)
		}
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Users retrieved successfully",
		Data:    map[string]interface{}{field: users},
	})
}

// SearchUsers handler does a case-insensitive substring match over
// username and bio
func (uc *UserController) SearchUsers(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	query := regexp.QuoteMeta(c.Param("query"))

	findOptions := options.Find().SetLimit(10)
	cursor, err := config.GetCollection(uc.DB, "users").Find(ctx, bson.M{
		"$or": []bson.M{
			{"username": bson.M{"$regex": query, "$options": "i"}},
			{"bio": bson.M{"$regex": query, "$options": "i"}},
		},
	}, findOptions)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to search users",
		})
	}
	defer cursor.Close(ctx)

	users := []models.UserSummary{}
	for cursor.Next(ctx) {
		var user models.User
		if err := cursor.Decode(&user); err != nil {
			return c.JSON(http.StatusInternalServerError, models.Response{
				Status:  http.StatusInternalServerError,
				Message: "Failed to decode users",
			})
		}
		users = append(users, user.ToSummary())
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Users retrieved successfully",
		Data:    map[string]interface{}{"users": users},
	})
}

// GetSuggestedUsers handler returns users the caller does not follow yet,
// most-followed first
func (uc *UserController) GetSuggestedUsers(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	viewer, err := utils.GetUserFromToken(c, uc.DB)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Unauthorized",
		})
	}

	exclude := append([]primitive.ObjectID{viewer.ID}, viewer.Following...)

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"_id": bson.M{"$nin": exclude}}}},
		{{Key: "$addFields", Value: bson.M{
			"followerCount": bson.M{"$size": bson.M{"$ifNull": []interface{}{"$followers", []interface{}{}}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "followerCount", Value: -1}}}},
		{{Key: "$limit", Value: 5}},
	}

	cursor, err := config.GetCollection(uc.DB, "users").Aggregate(ctx, pipeline)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to load suggested users",
		})
	}
	defer cursor.Close(ctx)

	type suggestedUser struct {
		models.UserSummary `bson:",inline"`
		FollowerCount      int `json:"followerCount" bson:"followerCount"`
	}

	users := []suggestedUser{}
	if err := cursor.All(ctx, &users); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to decode suggested users",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Suggested users retrieved successfully",
		Data:    map[string]interface{}{"suggestedUsers": users},
	})
}
