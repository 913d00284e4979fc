package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestUserIsFollowing(t *testing.T) {
	followed := primitive.NewObjectID()

	user := User{Following: []primitive.ObjectID{followed}}
	assert.True(t, user.IsFollowing(followed))
	assert.False(t, user.IsFollowing(primitive.NewObjectID()))

	empty := User{}
	assert.False(t, empty.IsFollowing(followed))
}

func TestUserToProfile(t *testing.T) {
	user := User{
		ID:       primitive.NewObjectID(),
		Username: "someone",
		Email:    "someone@example.com",
		Password: "$2a$10$hash",
		Followers: []primitive.ObjectID{
			primitive.NewObjectID(),
			primitive.NewObjectID(),
		},
		Following: []primitive.ObjectID{primitive.NewObjectID()},
	}

	profile := user.ToProfile()
	assert.Equal(t, user.ID, profile.ID)
	assert.Equal(t, 2, profile.FollowerCount)
	assert.Equal(t, 1, profile.FollowingCount)
	assert.Equal(t, user.Username, profile.Username)
}

func TestUserToSummary(t *testing.T) {
	user := User{
		ID:             primitive.NewObjectID(),
		Username:       "someone",
		Bio:            "hi",
		ProfilePicture: "/uploads/profiles/x.png",
	}

	summary := user.ToSummary()
	assert.Equal(t, user.ID, summary.ID)
	assert.Equal(t, "someone", summary.Username)
	assert.Equal(t, "hi", summary.Bio)
	assert.Equal(t, user.ProfilePicture, summary.ProfilePicture)
}
