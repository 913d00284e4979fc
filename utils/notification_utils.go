package utils

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ripplenet/ripple_backend/config"
	"github.com/ripplenet/ripple_backend/models"
	"github.com/ripplenet/ripple_backend/websocket"
)

const unreadCountTTL = 30 * time.Second

// ShouldNotify implements the suppression rule: actions on one's own
// content or identity never produce a notification.
func ShouldNotify(sender, recipient primitive.ObjectID) bool {
	return sender != recipient && recipient != primitive.NilObjectID
}

// CreateNotification persists a notification and pushes it once to the
// recipient's live channel. The push is fire-and-forget: a disconnected
// recipient or full connection simply misses the live event, the stored
// record remains the source of truth. Returns nil without error when the
// suppression rule applies.
func CreateNotification(db *mongo.Client, hub *websocket.Hub, notification models.Notification) (*models.Notification, error) {
	if !ShouldNotify(notification.Sender, notification.Recipient) {
		return nil, nil
	}

	notification.ID = primitive.NewObjectID()
	notification.IsRead = false
	notification.CreatedAt = time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := config.GetCollection(db, "notifications").InsertOne(ctx, notification)
	if err != nil {
		return nil, err
	}

	InvalidateUnreadCount(notification.Recipient)

	if hub != nil {
		if err := hub.NotifyUser(notification.Recipient, notification); err != nil {
			// Recipient not connected; the persisted record is enough
			log.Printf("Live notification dropped for %s: %v", notification.Recipient.Hex(), err)
		}
	}

	return &notification, nil
}

func unreadCountKey(userID primitive.ObjectID) string {
	return "notifications:unread:" + userID.Hex()
}

// UnreadCount returns the recipient's unread notification count, cached in
// Redis for a short window when available
func UnreadCount(db *mongo.Client, userID primitive.ObjectID) (int64, error) {
	if rdb := config.GetRedisClient(); rdb != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if cached, err := rdb.Get(ctx, unreadCountKey(userID)).Result(); err == nil {
			if count, convErr := strconv.ParseInt(cached, 10, 64); convErr == nil {
				return count, nil
			}
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := config.GetCollection(db, "notifications").CountDocuments(ctx, bson.M{
		"recipient": userID,
		"isRead":    false,
	})
	if err != nil {
		return 0, err
	}

	if rdb := config.GetRedisClient(); rdb != nil {
		cacheCtx, cacheCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cacheCancel()
		rdb.Set(cacheCtx, unreadCountKey(userID), fmt.Sprintf("%d", count), unreadCountTTL)
	}

	return count, nil
}

// InvalidateUnreadCount drops the cached unread count after any
// notification write for the recipient
func InvalidateUnreadCount(userID primitive.ObjectID) {
	if rdb := config.GetRedisClient(); rdb != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		rdb.Del(ctx, unreadCountKey(userID))
	}
}
