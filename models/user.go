// models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User model
type User struct {
	ID             primitive.ObjectID   `json:"id,omitempty" bson:"_id,omitempty"`
	Username       string               `json:"username" bson:"username"`
	Email          string               `json:"email" bson:"email"`
	Password       string               `json:"password,omitempty" bson:"password"`
	Bio            string               `json:"bio,omitempty" bson:"bio,omitempty"`
	ProfilePicture string               `json:"profilePicture,omitempty" bson:"profilePicture,omitempty"`
	Followers      []primitive.ObjectID `json:"followers" bson:"followers"`
	Following      []primitive.ObjectID `json:"following" bson:"following"`
	IsOnline       bool                 `json:"isOnline" bson:"isOnline"`
	LastSeen       time.Time            `json:"lastSeen,omitempty" bson:"lastSeen,omitempty"`
	CreatedAt      time.Time            `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time            `json:"updatedAt" bson:"updatedAt"`
}

// UserSummary is the joined author/sender shape embedded in post, comment
// and notification responses
type UserSummary struct {
	ID             primitive.ObjectID `json:"id" bson:"_id"`
	Username       string             `json:"username" bson:"username"`
	ProfilePicture string             `json:"profilePicture,omitempty" bson:"profilePicture,omitempty"`
	Bio            string             `json:"bio,omitempty" bson:"bio,omitempty"`
}

// Profile is the public shape of a user, with derived counts
type Profile struct {
	ID             primitive.ObjectID   `json:"id"`
	Username       string               `json:"username"`
	Email          string               `json:"email"`
	Bio            string               `json:"bio"`
	ProfilePicture string               `json:"profilePicture"`
	Followers      []primitive.ObjectID `json:"followers"`
	Following      []primitive.ObjectID `json:"following"`
	FollowerCount  int                  `json:"followerCount"`
	FollowingCount int                  `json:"followingCount"`
	IsOnline       bool                 `json:"isOnline"`
	LastSeen       time.Time            `json:"lastSeen"`
	CreatedAt      time.Time            `json:"createdAt"`
}

// ToProfile strips the credential hash and derives follower counts from the
// live reference sets
func (u *User) ToProfile() Profile {
	return Profile{
		ID:             u.ID,
		Username:       u.Username,
		Email:          u.Email,
		Bio:            u.Bio,
		ProfilePicture: u.ProfilePicture,
		Followers:      u.Followers,
		Following:      u.Following,
		FollowerCount:  len(u.Followers),
		FollowingCount: len(u.Following),
		IsOnline:       u.IsOnline,
		LastSeen:       u.LastSeen,
		CreatedAt:      u.CreatedAt,
	}
}

// ToSummary returns the joined shape used by explicit fetches
func (u *User) ToSummary() UserSummary {
	return UserSummary{
		ID:             u.ID,
		Username:       u.Username,
		ProfilePicture: u.ProfilePicture,
		Bio:            u.Bio,
	}
}

// IsFollowing reports membership in the user's own following set. Follow
// edges are written in two documents without a transaction, so callers must
// never infer the reverse edge from this check.
func (u *User) IsFollowing(target primitive.ObjectID) bool {
	for _, id := range u.Following {
		if id == target {
			return true
		}
	}
	return false
}

// RegisterRequest is the body for user registration
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=30"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest is the body for login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse carries the token and profile returned by register/login
type AuthResponse struct {
	Token string  `json:"token"`
	User  Profile `json:"user"`
}

// Response model
type Response struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}
