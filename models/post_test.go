package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestPostCanView(t *testing.T) {
	author := primitive.NewObjectID()
	stranger := primitive.NewObjectID()

	tests := []struct {
		name     string
		isPublic bool
		viewer   primitive.ObjectID
		want     bool
	}{
		{"public post, anonymous viewer", true, primitive.NilObjectID, true},
		{"public post, stranger", true, stranger, true},
		{"public post, author", true, author, true},
		{"private post, anonymous viewer", false, primitive.NilObjectID, false},
		{"private post, stranger", false, stranger, false},
		{"private post, author", false, author, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			post := Post{Author: author, IsPublic: tt.isPublic}
			assert.Equal(t, tt.want, post.CanView(tt.viewer))
		})
	}
}

func TestPostLikedBy(t *testing.T) {
	liker := primitive.NewObjectID()
	other := primitive.NewObjectID()

	post := Post{Likes: []primitive.ObjectID{liker}}

	assert.True(t, post.LikedBy(liker))
	assert.False(t, post.LikedBy(other))
	assert.False(t, post.LikedBy(primitive.NilObjectID))

	empty := Post{}
	assert.False(t, empty.LikedBy(liker))
}

func TestNewPostView(t *testing.T) {
	viewer := primitive.NewObjectID()
	other := primitive.NewObjectID()

	post := Post{
		ID:       primitive.NewObjectID(),
		Author:   other,
		Content:  "hello",
		IsPublic: true,
		Likes:    []primitive.ObjectID{viewer, other},
		Comments: []primitive.ObjectID{primitive.NewObjectID()},
	}
	author := &UserSummary{ID: other, Username: "someone"}

	view := NewPostView(post, author, viewer)
	assert.Equal(t, 2, view.LikeCountN)
	assert.Equal(t, 1, view.CommentCount)
	assert.True(t, view.IsLiked)
	assert.Equal(t, author, view.AuthorInfo)

	anonymous := NewPostView(post, author, primitive.NilObjectID)
	assert.False(t, anonymous.IsLiked)
	assert.Equal(t, 2, anonymous.LikeCountN)
}
