package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification types
const (
	NotificationTypeLike    = "like"
	NotificationTypeComment = "comment"
	NotificationTypeFollow  = "follow"
	NotificationTypeMention = "mention"
)

// Notification model
type Notification struct {
	ID        primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	Recipient primitive.ObjectID  `json:"recipient" bson:"recipient"`
	Sender    primitive.ObjectID  `json:"sender" bson:"sender"`
	Type      string              `json:"type" bson:"type"`
	Post      *primitive.ObjectID `json:"post,omitempty" bson:"post,omitempty"`
	Comment   *primitive.ObjectID `json:"comment,omitempty" bson:"comment,omitempty"`
	IsRead    bool                `json:"isRead" bson:"isRead"`
	Message   string              `json:"message" bson:"message"`
	CreatedAt time.Time           `json:"createdAt" bson:"createdAt"`
}

// OwnedBy reports whether the record belongs to the given recipient. Every
// inbox mutation checks this before touching the record.
func (n *Notification) OwnedBy(userID primitive.ObjectID) bool {
	return n.Recipient == userID
}

// NotificationView is a notification with the sender join attached
type NotificationView struct {
	Notification
	SenderInfo *UserSummary `json:"senderInfo,omitempty"`
}

// PagedNotifications is the paginated notification listing envelope
type PagedNotifications struct {
	Notifications []NotificationView `json:"notifications"`
	UnreadCount   int64              `json:"unreadCount"`
	CurrentPage   int                `json:"currentPage"`
	TotalPages    int                `json:"totalPages"`
	HasMore       bool               `json:"hasMore"`
}
