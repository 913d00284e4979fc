package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNotificationOwnedBy(t *testing.T) {
	recipient := primitive.NewObjectID()
	stranger := primitive.NewObjectID()

	notification := Notification{
		Recipient: recipient,
		Sender:    stranger,
		Type:      NotificationTypeLike,
	}

	assert.True(t, notification.OwnedBy(recipient))
	assert.False(t, notification.OwnedBy(stranger))
	assert.False(t, notification.OwnedBy(primitive.NilObjectID))
}
