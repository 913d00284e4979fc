package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MaxCommentContentLength bounds comment text
const MaxCommentContentLength = 500

// Comment model. ParentComment is nil for top-level comments; replies are
// one level deep, so a reply's own Replies list stays empty.
type Comment struct {
	ID            primitive.ObjectID   `json:"id,omitempty" bson:"_id,omitempty"`
	Author        primitive.ObjectID   `json:"author" bson:"author"`
	Post          primitive.ObjectID   `json:"post" bson:"post"`
	Content       string               `json:"content" bson:"content"`
	Likes         []primitive.ObjectID `json:"likes" bson:"likes"`
	ParentComment *primitive.ObjectID  `json:"parentComment,omitempty" bson:"parentComment,omitempty"`
	Replies       []primitive.ObjectID `json:"replies" bson:"replies"`
	CreatedAt     time.Time            `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time            `json:"updatedAt" bson:"updatedAt"`
}

// LikedBy reports membership in the like set
func (cm *Comment) LikedBy(userID primitive.ObjectID) bool {
	for _, id := range cm.Likes {
		if id == userID {
			return true
		}
	}
	return false
}

// IsReply reports whether the comment has a parent
func (cm *Comment) IsReply() bool { return cm.ParentComment != nil }

// CommentView is a comment with the author join, derived counts and
// optionally its joined replies
type CommentView struct {
	Comment
	AuthorInfo *UserSummary  `json:"authorInfo,omitempty"`
	LikeCountN int           `json:"likeCount"`
	ReplyCount int           `json:"replyCount"`
	IsLiked    bool          `json:"isLiked"`
	ReplyViews []CommentView `json:"replyViews,omitempty"`
}

// NewCommentView computes the derived fields for one viewer
func NewCommentView(cm Comment, author *UserSummary, viewer primitive.ObjectID) CommentView {
	return CommentView{
		Comment:    cm,
		AuthorInfo: author,
		LikeCountN: len(cm.Likes),
		ReplyCount: len(cm.Replies),
		IsLiked:    viewer != primitive.NilObjectID && cm.LikedBy(viewer),
	}
}

// CommentRequest is the body for creating a comment or reply
type CommentRequest struct {
	Content         string `json:"content" validate:"required"`
	ParentCommentID string `json:"parentCommentId,omitempty"`
}

// UpdateCommentRequest is the body for comment edits
type UpdateCommentRequest struct {
	Content string `json:"content" validate:"required"`
}

// PagedComments is the paginated comment listing envelope
type PagedComments struct {
	Comments    []CommentView `json:"comments"`
	CurrentPage int           `json:"currentPage"`
	TotalPages  int           `json:"totalPages"`
	HasMore     bool          `json:"hasMore"`
}
