// controllers/post_controller.go
package controllers

import (
	"context"
	"fmt"
	"log"
	"mime/multipart"
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

// PostController contains post and feed logic
type PostController struct {
	DB  *mongo.Client
	hub *websocket.Hub
}

// NewPostController creates a new post controller
func NewPostController(db *mongo.Client, hub *websocket.Hub) *PostController {
	return &PostController{DB: db, hub: hub}
}

// feedFilter builds the visibility filter for an authenticated viewer: all
// public posts plus everything authored by the viewer or anyone they follow.
func feedFilter(viewerID primitive.ObjectID, following []primitive.ObjectID) bson.M {
	authors := append([]primitive.ObjectID{viewerID}, following...)
	return bson.M{
		"$or": []bson.M{
			{"author": bson.M{"$in": authors}},
			{"isPublic": true},
		},
	}
}

// publicFilter builds the visibility filter for anonymous viewers
func publicFilter() bson.M {
	return bson.M{"isPublic": true}
}

// userPostsFilter builds the per-user listing filter: private posts are
// included only when the requester is the profile owner
func userPostsFilter(authorID, viewerID primitive.ObjectID) bson.M {
	filter := bson.M{"author": authorID}
	if viewerID != authorID {
		filter["isPublic"] = true
	}
	return filter
}

// listPosts runs a filtered, paginated reverse-chronological post query and
// attaches the author joins
func (pc *PostController) listPosts(ctx context.Context, filter bson.M, viewerID primitive.ObjectID, page, limit, skip int) (*models.PagedPosts, error) {
	collection := config.GetCollection(pc.DB, "posts")

	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))

	cursor, err := collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var posts []models.Post
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}

	total, err := collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	views, err := pc.buildPostViews(ctx, posts, viewerID)
	if err != nil {
		return nil, err
	}

	return &models.PagedPosts{
		Posts:       views,
		CurrentPage: page,
		TotalPages:  utils.TotalPages(total, limit),
		HasMore:     utils.HasMore(page, limit, total),
	}, nil
}

// buildPostViews performs the explicit author join for a page of posts
func (pc *PostController) buildPostViews(ctx context.Context, posts []models.Post, viewerID primitive.ObjectID) ([]models.PostView, error) {
	authorIDs := make([]primitive.ObjectID, 0, len(posts))
	seen := make(map[primitive.ObjectID]bool)
	for _, post := range posts {
		if !seen[post.Author] {
			seen[post.Author] = true
			authorIDs = append(authorIDs, post.Author)
		}
	}

	summaries, err := utils.FetchUserSummaries(ctx, pc.DB, authorIDs)
	if err != nil {
		return nil, err
	}

	views := make([]models.PostView, 0, len(posts))
	for _, post := range posts {
		var author *models.UserSummary
		if summary, ok := summaries[post.Author]; ok {
			author = &summary
		}
		views = append(views, models.NewPostView(post, author, viewerID))
	}
	return views, nil
}

// CreatePost handler creates a post from a multipart form with content,
// isPublic and up to 5 images
func (pc *PostController) CreatePost(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	userID, err := utils.GetUserIDFromToken(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Unauthorized",
		})
	}

	content := strings.TrimSpace(c.FormValue("content"))
	if len(content) > models.MaxPostContentLength {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: fmt.Sprintf("Post content must be at most %d characters", models.MaxPostContentLength),
		})
	}

	isPublic := c.FormValue("isPublic") != "false"

	var imageFiles []*multipart.FileHeader
	if form, err := c.MultipartForm(); err == nil && form != nil {
		imageFiles = form.File["images"]
	}

	// Image quota is enforced at this boundary, not in the store
	if len(imageFiles) > models.MaxPostImages {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: fmt.Sprintf("A post may have at most %d images", models.MaxPostImages),
		})
	}

	// A post needs text or at least one image
	if content == "" && len(imageFiles) == 0 {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Post content is required",
		})
	}

	images := []string{}
	for _, file := range imageFiles {
		url, err := utils.SaveImage(file, "posts")
		if err != nil {
			return c.JSON(http.StatusBadRequest, models.Response{
				Status:  http.StatusBadRequest,
				Message: err.Error(),
			})
		}
		images = append(images, url)
	}

	now := time.Now()
	post := models.Post{
		ID:        primitive.NewObjectID(),
		Author:    userID,
		Content:   content,
		Images:    images,
		IsPublic:  isPublic,
		Likes:     []primitive.ObjectID{},
		Comments:  []primitive.ObjectID{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err = config.GetCollection(pc.DB, "posts").InsertOne(ctx, post)
	if err != nil {
		log.Printf("Error creating post: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to create post",
		})
	}

	views, err := pc.buildPostViews(ctx, []models.Post{post}, userID)
	if err != nil || len(views) == 0 {
		// The post is saved; return it without the join rather than fail
		return c.JSON(http.StatusCreated, models.Response{
			Status:  http.StatusCreated,
			Message: "Post created successfully",
			Data:    post,
		})
	}

	return c.JSON(http.StatusCreated, models.Response{
		Status:  http.StatusCreated,
		Message: "Post created successfully",
		Data:    views[0],
	})
}

// GetFeed handler returns the authenticated viewer's paginated feed
func (pc *PostController) GetFeed(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	viewer, err := utils.GetUserFromToken(c, pc.DB)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Unauthorized",
		})
	}

	page, limit, skip := utils.ParsePagination(c, 10)

	paged, err := pc.listPosts(ctx, feedFilter(viewer.ID, viewer.Following), viewer.ID, page, limit, skip)
	if err != nil {
		log.Printf("Error loading feed for %s: %v", viewer.ID.Hex(), err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to load feed",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Feed retrieved successfully",
		Data:    paged,
	})
}

// GetPublicPosts handler returns the public feed for any viewer
func (pc *PostController) GetPublicPosts(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	viewerID := utils.ViewerIDFromContext(c)
	page, limit, skip := utils.ParsePagination(c, 10)

	paged, err := pc.listPosts(ctx, publicFilter(), viewerID, page, limit, skip)
	if err != nil {
		log.Printf("Error loading public posts: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to load posts",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Posts retrieved successfully",
		Data:    paged,
	})
}

// GetPost handler returns a single post, enforcing private-post visibility
func (pc *PostController) GetPost(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	postID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid post ID",
		})
	}

	var post models.Post
	err = config.GetCollection(pc.DB, "posts").FindOne(ctx, bson.M{"_id": postID}).Decode(&post)
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

	views, err := pc.buildPostViews(ctx, []models.Post{post}, viewerID)
	if err != nil || len(views) == 0 {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to load post",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Post retrieved successfully",
		Data:    views[0],
	})
}

// UpdatePost handler applies a partial content/visibility patch
func (pc *PostController) UpdatePost(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userID, err := utils.GetUserIDFromToken(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Unauthorized",
		})
	}

	postID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid post ID",
		})
	}

	var req models.UpdatePostRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	collection := config.GetCollection(pc.DB, "posts")

	var post models.Post
	err = collection.FindOne(ctx, bson.M{"_id": postID}).Decode(&post)
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

	if post.Author != userID {
		return c.JSON(http.StatusForbidden, models.Response{
			Status:  http.StatusForbidden,
			Message: "Not authorized",
		})
	}

	update := bson.M{"updatedAt": time.Now()}

	if req.Content != nil {
		content := strings.TrimSpace(*req.Content)
		if content == "" {
			return c.JSON(http.StatusBadRequest, models.Response{
				Status:  http.StatusBadRequest,
				Message: "Post content is required",
			})
		}
		if len(content) > models.MaxPostContentLength {
			return c.JSON(http.StatusBadRequest, models.Response{
				Status:  http.StatusBadRequest,
				Message: fmt.Sprintf("Post content must be at most %d characters", models.MaxPostContentLength),
			})
		}
		update["content"] = content
	}

	if req.IsPublic != nil {
		update["isPublic"] = *req.IsPublic
	}

	_, err = collection.UpdateOne(ctx, bson.M{"_id": postID}, bson.M{"$set": update})
	if err != nil {
		log.Printf("Error updating post %s: %v", postID.Hex(), err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to update post",
		})
	}

	if err := collection.FindOne(ctx, bson.M{"_id": postID}).Decode(&post); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to load updated post",
		})
	}

	views, err := pc.buildPostViews(ctx, []models.Post{post}, userID)
	if err != nil || len(views) == 0 {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to load updated post",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Post updated successfully",
		Data:    views[0],
	})
}

// DeletePost handler removes a post and cascades its comments. Comments
// are deleted rather than orphaned so nothing references a missing post.
func (pc *PostController) DeletePost(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	userID, err := utils.GetUserIDFromToken(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Unauthorized",
		})
	}

	postID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid post ID",
		})
	}

	collection := config.GetCollection(pc.DB, "posts")

	var post models.Post
	err = collection.FindOne(ctx, bson.M{"_id": postID}).Decode(&post)
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

	if post.Author != userID {
		return c.JSON(http.StatusForbidden, models.Response{
			Status:  http.StatusForbidden,
			Message: "Not authorized",
		})
	}

	// Cascade before removing the post itself
	_, err = config.GetCollection(pc.DB, "comments").DeleteMany(ctx, bson.M{"post": postID})
	if err != nil {
		log.Printf("Error deleting comments for post %s: %v", postID.Hex(), err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to delete post",
		})
	}

	_, err = collection.DeleteOne(ctx, bson.M{"_id": postID})
	if err != nil {
		log.Printf("Error deleting post %s: %v", postID.Hex(), err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to delete post",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Post deleted successfully",
	})
}

// ToggleLike handler flips the caller's membership in the post's like set.
// Liking someone else's post notifies its author; unliking is silent.
func (pc *PostController) ToggleLike(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	viewer, err := utils.GetUserFromToken(c, pc.DB)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Unauthorized",
		})
	}

	postID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid post ID",
		})
	}

	collection := config.GetCollection(pc.DB, "posts")

	var post models.Post
	err = collection.FindOne(ctx, bson.M{"_id": postID}).Decode(&post)
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

	isLiked := post.LikedBy(viewer.ID)

	// $addToSet/$pull keep concurrent likers from losing each other's
	// updates; each toggle touches only the caller's own membership
	var update bson.M
	if isLiked {
		update = bson.M{"$pull": bson.M{"likes": viewer.ID}}
	} else {
		update = bson.M{"$addToSet": bson.M{"likes": viewer.ID}}
	}

	_, err = collection.UpdateOne(ctx, bson.M{"_id": postID}, update)
	if err != nil {
		log.Printf("Error toggling like on post %s: %v", postID.Hex(), err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to update like",
		})
	}

	if err := collection.FindOne(ctx, bson.M{"_id": postID}).Decode(&post); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to load post",
		})
	}

	message := "Post unliked"
	if !isLiked {
		message = "Post liked"

		_, err = utils.CreateNotification(pc.DB, pc.hub, models.Notification{
			Recipient: post.Author,
			Sender:    viewer.ID,
			Type:      models.NotificationTypeLike,
			Post:      &post.ID,
			Message:   fmt.Sprintf("%s liked your post", viewer.Username),
		})
		if err != nil {
			log.Printf("Error creating like notification: %v", err)
		}
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: message,
		Data: models.LikeResult{
			IsLiked:   !isLiked,
			LikeCount: post.LikeCount(),
		},
	})
}

// GetUserPosts handler lists a user's posts; private posts appear only for
// the profile owner
func (pc *PostController) GetUserPosts(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	authorID, err := primitive.ObjectIDFromHex(c.Param("userId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid user ID",
		})
	}

	viewerID := utils.ViewerIDFromContext(c)
	page, limit, skip := utils.ParsePagination(c, 10)

	paged, err := pc.listPosts(ctx, userPostsFilter(authorID, viewerID), viewerID, page, limit, skip)
	if err != nil {
		log.Printf("Error loading posts for user %s: %v", authorID.Hex(), err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to load posts",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Posts retrieved successfully",
		Data:    paged,
	})
}
