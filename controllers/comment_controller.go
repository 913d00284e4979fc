// controllers/comment_controller.go
package controllers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ripplenet/ripple_backend/config"
	"github.com/ripplenet/ripple_backend/models"
	"github.com/ripplenet/ripple_backend/utils"
	"github.com/ripplenet/ripple_backend/websocket"
)

// CommentController contains comment and reply logic
type CommentController struct {
	DB  *mongo.Client
	hub *websocket.Hub
}

// NewCommentController creates a new comment controller
func NewCommentController(db *mongo.Client, hub *websocket.Hub) *CommentController {
	return &CommentController{DB: db, hub: hub}
}

func (cc *CommentController) findComment(ctx context.Context, commentID primitive.ObjectID) (*models.Comment, error) {
	var comment models.Comment
	err := config.GetCollection(cc.DB, "comments").FindOne(ctx, bson.M{"_id": commentID}).Decode(&comment)
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// buildCommentViews performs the author join for a batch of comments
func (cc *CommentController) buildCommentViews(ctx context.Context, comments []models.Comment, viewerID primitive.ObjectID) ([]models.CommentView, error) {
	authorIDs := make([]primitive.ObjectID, 0, len(comments))
	seen := make(map[primitive.ObjectID]bool)
	for _, comment := range comments {
		if !seen[comment.Author] {
			seen[comment.Author] = true
			authorIDs = append(authorIDs, comment.Author)
		}
	}

	summaries, err := utils.FetchUserSummaries(ctx, cc.DB, authorIDs)
	if err != nil {
		return nil, err
	}

	views := make([]models.CommentView, 0, len(comments))
	for _, comment := range comments {
		var author *models.UserSummary
		if summary, ok := summaries[comment.Author]; ok {
			author = &summary
		}
		views = append(views, models.NewCommentView(comment, author, viewerID))
	}
	return views, nil
}

// attachReplies loads and joins the replies of a page of top-level comments
func (cc *CommentController) attachReplies(ctx context.Context, views []models.CommentView, viewerID primitive.ObjectID) error {
	parentIDs := make([]primitive.ObjectID, 0, len(views))
	for _, view := range views {
		if len(view.Replies) > 0 {
			parentIDs = append(parentIDs, view.ID)
		}
	}
	if len(parentIDs) == 0 {
		return nil
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := config.GetCollection(cc.DB, "comments").Find(ctx, bson.M{
		"parentComment": bson.M{"$in": parentIDs},
	}, findOptions)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	var replies []models.Comment
	if err := cursor.All(ctx, &replies); err != nil {
		return err
	}

	replyViews, err := cc.buildCommentViews(ctx, replies, viewerID)
	if err != nil {
		return err
	}

	byParent := make(map[primitive.ObjectID][]models.CommentView)
	for _, reply := range replyViews {
		if reply.ParentComment == nil {
			continue
		}
		byParent[*reply.ParentComment] = append(byParent[*reply.ParentComment], reply)
	}

	for i := range views {
		views[i].ReplyViews = byParent[views[i].ID]
	}
	return nil
}

// AddComment handler creates a comment or a single-level reply on a post
func (cc *CommentController) AddComment(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	viewer, err := utils.GetUserFromToken(c, cc.DB)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Unauthorized",
		})
	}

	postID, err := primitive.ObjectIDFromHex(c.Param("postId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid post ID",
		})
	}

	var req models.CommentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	content := strings.TrimSpace(req.Content)
	if content == "" {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Comment content is required",
		})
	}
	if len(content) > models.MaxCommentContentLength {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: fmt.Sprintf("Comment content must be at most %d characters", models.MaxCommentContentLength),
		})
	}

	var post models.Post
	err = config.GetCollection(cc.DB, "posts").FindOne(ctx, bson.M{"_id": postID}).Decode(&post)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, models.Response{
				Status:  http.StatusNotFound,
				Message: "Post not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to load post",
		})
	}

	var parentID *primitive.ObjectID
	if req.ParentCommentID != "" {
		id, err := primitive.ObjectIDFromHex(req.ParentCommentID)
		if err != nil {
			return c.JSON(http.StatusBadRequest, models.Response{
				Status:  http.StatusBadRequest,
				Message: "Invalid parent comment ID",
			})
		}

		parent, err := cc.findComment(ctx, id)
		if err != nil {
			if err == mongo.ErrNoDocuments {
				return c.JSON(http.StatusNotFound, models.Response{
					Status:  http.StatusNotFound,
					Message: "Parent comment not found",
				})
			}
			return c.JSON(http.StatusInternalServerError, models.Response{
				Status:  http.StatusInternalServerError,
				Message: "Failed to load parent comment",
			})
		}
		if parent.Post != postID {
			return c.JSON(http.StatusBadRequest, models.Response{
				Status:  http.StatusBadRequest,
				Message: "Parent comment does not belong to this post",
			})
		}
		// Replies stay one level deep
		if parent.IsReply() {
			return c.JSON(http.StatusBadRequest, models.Response{
				Status:  http.StatusBadRequest,
				Message: "Replies to replies are not allowed",
			})
		}
		parentID = &id
	}

	now := time.Now()
	comment := models.Comment{
		ID:            primitive.NewObjectID(),
		Author:        viewer.ID,
		Post:          postID,
		Content:       content,
		Likes:         []primitive.ObjectID{},
		ParentComment: parentID,
		Replies:       []primitive.ObjectID{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	_, err = config.GetCollection(cc.DB, "comments").InsertOne(ctx, comment)
	if err != nil {
		log.Printf("Error creating comment: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to create comment",
		})
	}

	_, err = config.GetCollection(cc.DB, "posts").UpdateOne(ctx,
		bson.M{"_id": postID},
		bson.M{"$push": bson.M{"comments": comment.ID}})
	if err != nil {
		log.Printf("Error linking comment %s to post %s: %v", comment.ID.Hex(), postID.Hex(), err)
	}

	if parentID != nil {
		_, err = config.GetCollection(cc.DB, "comments").UpdateOne(ctx,
			bson.M{"_id": *parentID},
			bson.M{"$push": bson.M{"replies": comment.ID}})
		if err != nil {
			log.Printf("Error linking reply %s to comment %s: %v", comment.ID.Hex(), parentID.Hex(), err)
		}
	}

	_, err = utils.CreateNotification(cc.DB, cc.hub, models.Notification{
		Recipient: post.Author,
		Sender:    viewer.ID,
		Type:      models.NotificationTypeComment,
		Post:      &postID,
		Comment:   &comment.ID,
		Message:   fmt.Sprintf("%s commented on your post", viewer.Username),
	})
	if err != nil {
		log.Printf("Error creating comment notification: %v", err)
	}

	summary := viewer.ToSummary()
	return c.JSON(http.StatusCreated, models.Response{
		Status:  http.StatusCreated,
		Message: "Comment created successfully",
		Data:    models.NewCommentView(comment, &summary, viewer.ID),
	})
}

// GetPostComments handler lists a post's top-level comments with their
// replies attached, newest first
func (cc *CommentController) GetPostComments(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	postID, err := primitive.ObjectIDFromHex(c.Param("postId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid post ID",
		})
	}

	var post models.Post
	err = config.GetCollection(cc.DB, "posts").FindOne(ctx, bson.M{"_id": postID}).Decode(&post)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, models.Response{
				Status:  http.StatusNotFound,
				Message: "Post not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to load post",
		})
	}

	viewerID := utils.ViewerIDFromContext(c)
	if !post.CanView(viewerID) {
		return c.JSON(http.StatusForbidden, models.Response{
			Status:  http.StatusForbidden,
			Message: "Access denied",
		})
	}

	page, limit, skip := utils.ParsePagination(c, 10)

	collection := config.GetCollection(cc.DB, "comments")
	filter := bson.M{"post": postID, "parentComment": nil}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))

	cursor, err := collection.Find(ctx, filter, findOptions)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to load comments",
		})
	}
	defer cursor.Close(ctx)

	var comments []models.Comment
	if err := cursor.All(ctx, &comments); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to decode comments",
		})
	}

	total, err := collection.CountDocuments(ctx, filter)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to count comments",
		})
	}

	views, err := cc.buildCommentViews(ctx, comments, viewerID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to load comment authors",
		})
	}

	if err := cc.attachReplies(ctx, views, viewerID); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to load replies",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Comments retrieved successfully",
		Data: models.PagedComments{
			Comments:    views,
			CurrentPage: page,
			TotalPages:  utils.TotalPages(total, limit),
			HasMore:     utils.HasMore(page, limit, total),
		},
	})
}

// GetComment handler returns a single comment with its replies
func (cc *CommentController) GetComment(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	commentID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid comment ID",
		})
	}

	comment, err := cc.findComment(ctx, commentID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, models.Response{
				Status:  http.StatusNotFound,
				Message: "Comment not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to load comment",
		})
	}

	viewerID := utils.ViewerIDFromContext(c)

	views, err := cc.buildCommentViews(ctx, []models.Comment{*comment}, viewerID)
	if err != nil || len(views) == 0 {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to load comment author",
		})
	}

	if err := cc.attachReplies(ctx, views, viewerID); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to load replies",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Comment retrieved successfully",
		Data:    views[0],
	})
}

// GetCommentReplies handler lists a comment's replies, oldest first
func (cc *CommentController) GetCommentReplies(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	commentID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid comment ID",
		})
	}

	if _, err := cc.findComment(ctx, commentID); err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, models.Response{
				Status:  http.StatusNotFound,
				Message: "Comment not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to load comment",
		})
	}

	viewerID := utils.ViewerIDFromContext(c)
	page, limit, skip := utils.ParsePagination(c, 10)

	collection := config.GetCollection(cc.DB, "comments")
	filter := bson.M{"parentComment": commentID}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: 1}}).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))

	cursor, err := collection.Find(ctx, filter, findOptions)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to load replies",
		})
	}
	defer cursor.Close(ctx)

	var replies []models.Comment
	if err := cursor.All(ctx, &replies); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to decode replies",
		})
	}

	total, err := collection.CountDocuments(ctx, filter)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to count replies",
		})
	}

	views, err := cc.buildCommentViews(ctx, replies, viewerID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to load reply authors",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Replies retrieved successfully",
		Data: models.PagedComments{
			Comments:    views,
			CurrentPage: page,
			TotalPages:  utils.TotalPages(total, limit),
			HasMore:     utils.HasMore(page, limit, total),
		},
	})
}

// UpdateComment handler edits a comment's content, author only
func (cc *CommentController) UpdateComment(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userID, err := utils.GetUserIDFromToken(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Unauthorized",
		})
	}

	commentID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid comment ID",
		})
	}

	var req models.UpdateCommentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	content := strings.TrimSpace(req.Content)
	if content == "" {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Comment content is required",
		})
	}
	if len(content) > models.MaxCommentContentLength {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: fmt.Sprintf("Comment content must be at most %d characters", models.MaxCommentContentLength),
		})
	}

	comment, err := cc.findComment(ctx, commentID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, models.Response{
				Status:  http.StatusNotFound,
				Message: "Comment not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to load comment",
		})
	}

	if comment.Author != userID {
		return c.JSON(http.StatusForbidden, models.Response{
			Status:  http.StatusForbidden,
			Message: "Not authorized",
		})
	}

	_, err = config.GetCollection(cc.DB, "comments").UpdateOne(ctx,
		bson.M{"_id": commentID},
		bson.M{"$set": bson.M{"content": content, "updatedAt": time.Now()}})
	if err != nil {
		log.Printf("Error updating comment %s: %v", commentID.Hex(), err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to update comment",
		})
	}

	comment, err = cc.findComment(ctx, commentID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to load updated comment",
		})
	}

	views, err := cc.buildCommentViews(ctx, []models.Comment{*comment}, userID)
	if err != nil || len(views) == 0 {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to load updated comment",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Comment updated successfully",
		Data:    views[0],
	})
}

// DeleteComment handler removes a comment. Allowed for the comment author
// and for the post owner moderating their own post. Deleting a top-level
// comment also deletes its replies.
func (cc *CommentController) DeleteComment(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	userID, err := utils.GetUserIDFromToken(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Unauthorized",
		})
	}

	commentID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid comment ID",
		})
	}

	comment, err := cc.findComment(ctx, commentID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, models.Response{
				Status:  http.StatusNotFound,
				Message: "Comment not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to load comment",
		})
	}

	var post models.Post
	err = config.GetCollection(cc.DB, "posts").FindOne(ctx, bson.M{"_id": comment.Post}).Decode(&post)
	if err != nil && err != mongo.ErrNoDocuments {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to load post",
		})
	}

	if comment.Author != userID && post.Author != userID {
		return c.JSON(http.StatusForbidden, models.Response{
			Status:  http.StatusForbidden,
			Message: "Not authorized",
		})
	}

	comments := config.GetCollection(cc.DB, "comments")

	// Remove the comment and, for a top-level comment, its replies
	removed := append([]primitive.ObjectID{commentID}, comment.Replies...)
	_, err = comments.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": removed}})
	if err != nil {
		log.Printf("Error deleting comment %s: %v", commentID.Hex(), err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to delete comment",
		})
	}

	_, err = config.GetCollection(cc.DB, "posts").UpdateOne(ctx,
		bson.M{"_id": comment.Post},
		bson.M{"$pull": bson.M{"comments": bson.M{"$in": removed}}})
	if err != nil {
		log.Printf("Error unlinking comment %s from post %s: %v", commentID.Hex(), comment.Post.Hex(), err)
	}

	if comment.ParentComment != nil {
		_, err = comments.UpdateOne(ctx,
			bson.M{"_id": *comment.ParentComment},
			bson.M{"$pull": bson.M{"replies": commentID}})
		if err != nil {
			log.Printf("Error unlinking reply %s from comment %s: %v", commentID.Hex(), comment.ParentComment.Hex(), err)
		}
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Comment deleted successfully",
	})
}

// ToggleCommentLike handler flips the caller's membership in the comment's
// like set, notifying the comment author on like
func (cc *CommentController) ToggleCommentLike(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	viewer, err := utils.GetUserFromToken(c, cc.DB)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Unauthorized",
		})
	}

	commentID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid comment ID",
		})
	}

	comment, err := cc.findComment(ctx, commentID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, models.Response{
				Status:  http.StatusNotFound,
				Message: "Comment not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to load comment",
		})
	}

	isLiked := comment.LikedBy(viewer.ID)

	var update bson.M
	if isLiked {
		update = bson.M{"$pull": bson.M{"likes": viewer.ID}}
	} else {
		update = bson.M{"$addToSet": bson.M{"likes": viewer.ID}}
	}

	collection := config.GetCollection(cc.DB, "comments")
	_, err = collection.UpdateOne(ctx, bson.M{"_id": commentID}, update)
	if err != nil {
		log.Printf("Error toggling like on comment %s: %v", commentID.Hex(), err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to update like",
		})
	}

	comment, err = cc.findComment(ctx, commentID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to load comment",
		})
	}

	message := "Comment unliked"
	if !isLiked {
		message = "Comment liked"

		_, err = utils.CreateNotification(cc.DB, cc.hub, models.Notification{
			Recipient: comment.Author,
			Sender:    viewer.ID,
			Type:      models.NotificationTypeLike,
			Post:      &comment.Post,
			Comment:   &comment.ID,
			Message:   fmt.Sprintf("%s liked your comment", viewer.Username),
		})
		if err != nil {
			log.Printf("Error creating comment like notification: %v", err)
		}
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: message,
		Data: models.LikeResult{
			IsLiked:   !isLiked,
			LikeCount: len(comment.Likes),
		},
	})
}
