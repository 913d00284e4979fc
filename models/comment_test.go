package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCommentIsReply(t *testing.T) {
	parent := primitive.NewObjectID()

	topLevel := Comment{}
	assert.False(t, topLevel.IsReply())

	reply := Comment{ParentComment: &parent}
	assert.True(t, reply.IsReply())
}

func TestCommentLikedBy(t *testing.T) {
	liker := primitive.NewObjectID()

	comment := Comment{Likes: []primitive.ObjectID{liker}}
	assert.True(t, comment.LikedBy(liker))
	assert.False(t, comment.LikedBy(primitive.NewObjectID()))
}

func TestNewCommentView(t *testing.T) {
	viewer := primitive.NewObjectID()
	authorID := primitive.NewObjectID()

	comment := Comment{
		ID:      primitive.NewObjectID(),
		Author:  authorID,
		Content: "nice",
		Likes:   []primitive.ObjectID{viewer},
		Replies: []primitive.ObjectID{primitive.NewObjectID(), primitive.NewObjectID()},
	}
	author := &UserSummary{ID: authorID, Username: "someone"}

	view := NewCommentView(comment, author, viewer)
	assert.Equal(t, 1, view.LikeCountN)
	assert.Equal(t, 2, view.ReplyCount)
	assert.True(t, view.IsLiked)
	assert.Empty(t, view.ReplyViews)

	anonymous := NewCommentView(comment, author, primitive.NilObjectID)
	assert.False(t, anonymous.IsLiked)
}
