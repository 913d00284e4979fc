package websocket

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func waitForConnected(t *testing.T, hub *Hub, userID primitive.ObjectID, want bool) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if hub.IsConnected(userID) == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	assert.Equal(t, want, hub.IsConnected(userID))
}

func TestHubRegisterUnregister(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	userID := primitive.NewObjectID()
	client := &Client{UserID: userID}

	assert.False(t, hub.IsConnected(userID))

	hub.Register(client)
	waitForConnected(t, hub, userID, true)

	hub.Unregister(client)
	waitForConnected(t, hub, userID, false)
}

func TestHubUnregisterIgnoresReplacedClient(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	userID := primitive.NewObjectID()
	first := &Client{UserID: userID}
	second := &Client{UserID: userID}

	hub.Register(first)
	waitForConnected(t, hub, userID, true)

	hub.Register(second)
	waitForConnected(t, hub, userID, true)

	// The stale connection's deferred unregister must not evict the
	// replacement
	hub.Unregister(first)
	time.Sleep(20 * time.Millisecond)
	assert.True(t, hub.IsConnected(userID))

	hub.Unregister(second)
	waitForConnected(t, hub, userID, false)
}

func TestSendToUserNotConnected(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	err := hub.SendToUser(primitive.NewObjectID(), Event{Type: EventTypeNotification})
	assert.Error(t, err)

	err = hub.NotifyUser(primitive.NewObjectID(), map[string]string{"message": "hi"})
	assert.Error(t, err)
}
