package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ripplenet/ripple_backend/config"
	"github.com/ripplenet/ripple_backend/models"
)

// FollowRepository owns the two-sided follow-graph mutation. The paired
// writes are two separate UpdateOne calls with no transaction: a crash
// between them leaves a half-applied edge. Both operators are
// set-idempotent, so repeating the toggle heals any asymmetry, and read
// paths only ever consult the viewer's own side of the edge.
type FollowRepository struct {
	collection *mongo.Collection
}

func NewFollowRepository(db *mongo.Client) *FollowRepository {
	return &FollowRepository{
		collection: config.GetCollection(db, "users"),
	}
}

// followEdit is one side of the paired follow-graph write
type followEdit struct {
	filter bson.M
	update bson.M
}

// followEdits builds the paired writes that add the edge: the target joins
// the viewer's following set and the viewer joins the target's followers.
func followEdits(viewerID, targetID primitive.ObjectID, now time.Time) [2]followEdit {
	return [2]followEdit{
		{
			filter: bson.M{"_id": viewerID},
			update: bson.M{
				"$addToSet": bson.M{"following": targetID},
				"$set":      bson.M{"updatedAt": now},
			},
		},
		{
			filter: bson.M{"_id": targetID},
			update: bson.M{
				"$addToSet": bson.M{"followers": viewerID},
				"$set":      bson.M{"updatedAt": now},
			},
		},
	}
}

// unfollowEdits builds the paired writes that remove the same edge
func unfollowEdits(viewerID, targetID primitive.ObjectID, now time.Time) [2]followEdit {
	return [2]followEdit{
		{
			filter: bson.M{"_id": viewerID},
			update: bson.M{
				"$pull": bson.M{"following": targetID},
				"$set":  bson.M{"updatedAt": now},
			},
		},
		{
			filter: bson.M{"_id": targetID},
			update: bson.M{
				"$pull": bson.M{"followers": viewerID},
				"$set":  bson.M{"updatedAt": now},
			},
		},
	}
}

// Toggle flips the follow edge between viewer and target and returns the
// resulting state. The caller has already rejected self-follows and
// verified the target exists.
func (r *FollowRepository) Toggle(ctx context.Context, viewer *models.User, targetID primitive.ObjectID) (bool, error) {
	now := time.Now()

	following := !viewer.IsFollowing(targetID)

	var edits [2]followEdit
	if following {
		edits = followEdits(viewer.ID, targetID, now)
	} else {
		edits = unfollowEdits(viewer.ID, targetID, now)
	}

	for _, edit := range edits {
		if _, err := r.collection.UpdateOne(ctx, edit.filter, edit.update); err != nil {
			// Report the prior state; the next toggle repeats the same
			// idempotent writes
			return viewer.IsFollowing(targetID), err
		}
	}

	return following, nil
}
