// controllers/notification_controller.go
package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ripplenet/ripple_backend/config"
	"github.com/ripplenet/ripple_backend/models"
	"github.com/ripplenet/ripple_backend/utils"
)

// NotificationController contains the notification inbox logic
type NotificationController struct {
	DB *mongo.Client
}

// NewNotificationController creates a new notification controller
func NewNotificationController(db *mongo.Client) *NotificationController {
	return &NotificationController{DB: db}
}

// GetNotifications handler lists the caller's notifications, newest first,
// with the sender join and the current unread count
func (nc *NotificationController) GetNotifications(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userID, err := utils.GetUserIDFromToken(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Unauthorized",
		})
	}

	page, limit, skip := utils.ParsePagination(c, 20)

	collection := config.GetCollection(nc.DB, "notifications")
	filter := bson.M{"recipient": userID}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))

	cursor, err := collection.Find(ctx, filter, findOptions)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to load notifications",
		})
	}
	defer cursor.Close(ctx)

	var notifications []models.Notification
	if err := cursor.All(ctx, &notifications); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to decode notifications",
		})
	}

	total, err := collection.CountDocuments(ctx, filter)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to count notifications",
		})
	}

	senderIDs := make([]primitive.ObjectID, 0, len(notifications))
	seen := make(map[primitive.ObjectID]bool)
	for _, notification := range notifications {
		if !seen[notification.Sender] {
			seen[notification.Sender] = true
			senderIDs = append(senderIDs, notification.Sender)
		}
	}

	summaries, err := utils.FetchUserSummaries(ctx, nc.DB, senderIDs)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to load notification senders",
		})
	}

	views := make([]models.NotificationView, 0, len(notifications))
	for _, notification := range notifications {
		var sender *models.UserSummary
		if summary, ok := summaries[notification.Sender]; ok {
			sender = &summary
		}
		views = append(views, models.NotificationView{
			Notification: notification,
			SenderInfo:   sender,
		})
	}

	unread, err := utils.UnreadCount(nc.DB, userID)
	if err != nil {
		log.Printf("Error counting unread notifications for %s: %v", userID.Hex(), err)
		unread = 0
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Notifications retrieved successfully",
		Data: models.PagedNotifications{
			Notifications: views,
			UnreadCount:   unread,
			CurrentPage:   page,
			TotalPages:    utils.TotalPages(total, limit),
			HasMore:       utils.HasMore(page, limit, total),
		},
	})
}

// GetUnreadCount handler returns only the unread counter, for badge polling
func (nc *NotificationController) GetUnreadCount(c echo.Context) error {
	userID, err := utils.GetUserIDFromToken(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Unauthorized",
		})
	}

	unread, err := utils.UnreadCount(nc.DB, userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to count notifications",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Unread count retrieved successfully",
		Data:    map[string]int64{"unreadCount": unread},
	})
}

// MarkAsRead handler marks one of the caller's notifications as read
func (nc *NotificationController) MarkAsRead(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userID, err := utils.GetUserIDFromToken(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Unauthorized",
		})
	}

	notificationID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid notification ID",
		})
	}

	collection := config.GetCollection(nc.DB, "notifications")

	var notification models.Notification
	err = collection.FindOne(ctx, bson.M{"_id": notificationID}).Decode(&notification)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, models.Response{
				Status:  http.StatusNotFound,
				Message: "Notification not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to load notification",
		})
	}

	if !notification.OwnedBy(userID) {
		return c.JSON(http.StatusForbidden, models.Response{
			Status:  http.StatusForbidden,
			Message: "Not authorized",
		})
	}

	_, err = collection.UpdateOne(ctx,
		bson.M{"_id": notificationID},
		bson.M{"$set": bson.M{"isRead": true}})
	if err != nil {
		log.Printf("Error marking notification %s as read: %v", notificationID.Hex(), err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to update notification",
		})
	}

	utils.InvalidateUnreadCount(userID)

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Notification marked as read",
	})
}

// MarkAllAsRead handler marks every unread notification of the caller
func (nc *NotificationController) MarkAllAsRead(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userID, err := utils.GetUserIDFromToken(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Unauthorized",
		})
	}

	result, err := config.GetCollection(nc.DB, "notifications").UpdateMany(ctx,
		bson.M{"recipient": userID, "isRead": false},
		bson.M{"$set": bson.M{"isRead": true}})
	if err != nil {
		log.Printf("Error marking notifications as read for %s: %v", userID.Hex(), err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to update notifications",
		})
	}

	utils.InvalidateUnreadCount(userID)

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "All notifications marked as read",
		Data:    map[string]int64{"modifiedCount": result.ModifiedCount},
	})
}

// DeleteNotification handler removes one of the caller's notifications
func (nc *NotificationController) DeleteNotification(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userID, err := utils.GetUserIDFromToken(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Unauthorized",
		})
	}

	notificationID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid notification ID",
		})
	}

	collection := config.GetCollection(nc.DB, "notifications")

	var notification models.Notification
	err = collection.FindOne(ctx, bson.M{"_id": notificationID}).Decode(&notification)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, models.Response{
				Status:  http.StatusNotFound,
				Message: "Notification not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to load notification",
		})
	}

	if !notification.OwnedBy(userID) {
		return c.JSON(http.StatusForbidden, models.Response{
			Status:  http.StatusForbidden,
			Message: "Not authorized",
		})
	}

	_, err = collection.DeleteOne(ctx, bson.M{"_id": notificationID})
	if err != nil {
		log.Printf("Error deleting notification %s: %v", notificationID.Hex(), err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to delete notification",
		})
	}

	utils.InvalidateUnreadCount(userID)

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Notification deleted successfully",
	})
}

// DeleteAllNotifications handler clears the caller's inbox
func (nc *NotificationController) DeleteAllNotifications(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	userID, err := utils.GetUserIDFromToken(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Unauthorized",
		})
	}

	result, err := config.GetCollection(nc.DB, "notifications").DeleteMany(ctx, bson.M{
		"recipient": userID,
	})
	if err != nil {
		log.Printf("Error deleting notifications for %s: %v", userID.Hex(), err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to delete notifications",
		})
	}

	utils.InvalidateUnreadCount(userID)

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "All notifications deleted successfully",
		Data:    map[string]int64{"deletedCount": result.DeletedCount},
	})
}
