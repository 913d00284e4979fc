package repositories

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func setOperand(t *testing.T, edit followEdit, operator, field string) primitive.ObjectID {
	t.Helper()
	operands, ok := edit.update[operator].(bson.M)
	require.True(t, ok, "update missing %s", operator)
	id, ok := operands[field].(primitive.ObjectID)
	require.True(t, ok, "%s missing field %s", operator, field)
	return id
}

func TestFollowEditsTouchBothSides(t *testing.T) {
	viewer := primitive.NewObjectID()
	target := primitive.NewObjectID()
	now := time.Now()

	edits := followEdits(viewer, target, now)

	assert.Equal(t, bson.M{"_id": viewer}, edits[0].filter)
	assert.Equal(t, target, setOperand(t, edits[0], "$addToSet", "following"))

	assert.Equal(t, bson.M{"_id": target}, edits[1].filter)
	assert.Equal(t, viewer, setOperand(t, edits[1], "$addToSet", "followers"))
}

func TestUnfollowEditsReverseTheSameEdge(t *testing.T) {
	viewer := primitive.NewObjectID()
	target := primitive.NewObjectID()
	now := time.Now()

	follow := followEdits(viewer, target, now)
	unfollow := unfollowEdits(viewer, target, now)

	// Unfollow pulls exactly the memberships follow added, on the same
	// documents, so follow followed by unfollow restores both sides
	for i := range follow {
		assert.Equal(t, follow[i].filter, unfollow[i].filter)
	}
	assert.Equal(t,
		setOperand(t, follow[0], "$addToSet", "following"),
		setOperand(t, unfollow[0], "$pull", "following"))
	assert.Equal(t,
		setOperand(t, follow[1], "$addToSet", "followers"),
		setOperand(t, unfollow[1], "$pull", "followers"))
}
