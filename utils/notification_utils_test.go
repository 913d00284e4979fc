package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestShouldNotify(t *testing.T) {
	sender := primitive.NewObjectID()
	recipient := primitive.NewObjectID()

	tests := []struct {
		name      string
		sender    primitive.ObjectID
		recipient primitive.ObjectID
		want      bool
	}{
		{"distinct users", sender, recipient, true},
		{"self action is suppressed", sender, sender, false},
		{"missing recipient is suppressed", sender, primitive.NilObjectID, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShouldNotify(tt.sender, tt.recipient))
		})
	}
}
