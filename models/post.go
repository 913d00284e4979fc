package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	// MaxPostContentLength bounds post text
	MaxPostContentLength = 2000
	// MaxPostImages bounds the image list; enforced at the upload boundary
	MaxPostImages = 5
)

// Post model
type Post struct {
	ID        primitive.ObjectID   `json:"id,omitempty" bson:"_id,omitempty"`
	Author    primitive.ObjectID   `json:"author" bson:"author"`
	Content   string               `json:"content" bson:"content"`
	Images    []string             `json:"images" bson:"images"`
	IsPublic  bool                 `json:"isPublic" bson:"isPublic"`
	Likes     []primitive.ObjectID `json:"likes" bson:"likes"`
	Comments  []primitive.ObjectID `json:"comments" bson:"comments"`
	CreatedAt time.Time            `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time            `json:"updatedAt" bson:"updatedAt"`
}

// LikedBy reports membership in the like set
func (p *Post) LikedBy(userID primitive.ObjectID) bool {
	for _, id := range p.Likes {
		if id == userID {
			return true
		}
	}
	return false
}

// LikeCount derives the count from the live like set
func (p *Post) LikeCount() int { return len(p.Likes) }

// CanView reports whether viewer may read the post. Private posts are
// visible to their owner only; an anonymous viewer passes NilObjectID.
func (p *Post) CanView(viewer primitive.ObjectID) bool {
	if p.IsPublic {
		return true
	}
	return viewer != primitive.NilObjectID && viewer == p.Author
}

// PostView is a post with the author join and derived counts attached
type PostView struct {
	Post
	AuthorInfo   *UserSummary `json:"authorInfo,omitempty"`
	LikeCountN   int          `json:"likeCount"`
	CommentCount int          `json:"commentCount"`
	IsLiked      bool         `json:"isLiked"`
}

// NewPostView computes the derived fields for one viewer
func NewPostView(p Post, author *UserSummary, viewer primitive.ObjectID) PostView {
	return PostView{
		Post:         p,
		AuthorInfo:   author,
		LikeCountN:   len(p.Likes),
		CommentCount: len(p.Comments),
		IsLiked:      viewer != primitive.NilObjectID && p.LikedBy(viewer),
	}
}

// UpdatePostRequest is the body for partial post updates. Pointers
// distinguish "omitted" from zero values.
type UpdatePostRequest struct {
	Content  *string `json:"content,omitempty"`
	IsPublic *bool   `json:"isPublic,omitempty"`
}

// LikeResult is returned by like toggles on posts and comments
type LikeResult struct {
	IsLiked   bool `json:"isLiked"`
	LikeCount int  `json:"likeCount"`
}

// PagedPosts is the paginated feed/listing envelope
type PagedPosts struct {
	Posts       []PostView `json:"posts"`
	CurrentPage int        `json:"currentPage"`
	TotalPages  int        `json:"totalPages"`
	HasMore     bool       `json:"hasMore"`
}
