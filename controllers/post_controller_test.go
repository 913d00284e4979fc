package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestFeedFilter(t *testing.T) {
	viewer := primitive.NewObjectID()
	followed := primitive.NewObjectID()

	filter := feedFilter(viewer, []primitive.ObjectID{followed})

	clauses, ok := filter["$or"].([]bson.M)
	require.True(t, ok)
	require.Len(t, clauses, 2)

	authors, ok := clauses[0]["author"].(bson.M)["$in"].([]primitive.ObjectID)
	require.True(t, ok)
	assert.Contains(t, authors, viewer)
	assert.Contains(t, authors, followed)

	assert.Equal(t, true, clauses[1]["isPublic"])
}

func TestFeedFilterWithNoFollowing(t *testing.T) {
	viewer := primitive.NewObjectID()

	filter := feedFilter(viewer, nil)

	clauses := filter["$or"].([]bson.M)
	authors := clauses[0]["author"].(bson.M)["$in"].([]primitive.ObjectID)
	assert.Equal(t, []primitive.ObjectID{viewer}, authors)
}

func TestUserPostsFilter(t *testing.T) {
	author := primitive.NewObjectID()
	stranger := primitive.NewObjectID()

	// The profile owner sees private posts too
	own := userPostsFilter(author, author)
	assert.Equal(t, author, own["author"])
	_, restricted := own["isPublic"]
	assert.False(t, restricted)

	// Everyone else gets the public subset
	other := userPostsFilter(author, stranger)
	assert.Equal(t, true, other["isPublic"])

	anonymous := userPostsFilter(author, primitive.NilObjectID)
	assert.Equal(t, true, anonymous["isPublic"])
}
