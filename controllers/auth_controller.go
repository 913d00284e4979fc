// controllers/auth_controller.go
package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/ripplenet/ripple_backend/config"
	"github.com/ripplenet/ripple_backend/middleware"
	"github.com/ripplenet/ripple_backend/models"
	"github.com/ripplenet/ripple_backend/utils"
)

// AuthController contains registration and session logic
type AuthController struct {
	DB *mongo.Client
}

// NewAuthController creates a new auth controller
func NewAuthController(db *mongo.Client) *AuthController {
	return &AuthController{DB: db}
}

// Register handler creates a new user account
func (ac *AuthController) Register(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Username, email and password are required",
		})
	}

	email, err := utils.SanitizeEmail(req.Email)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid email format",
		})
	}

	username := utils.SanitizeInput(req.Username)
	if err := utils.ValidateUsername(username); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	collection := config.GetCollection(ac.DB, "users")

	// Check if user already exists
	var existing models.User
	err = collection.FindOne(ctx, bson.M{
		"$or": []bson.M{{"email": email}, {"username": username}},
	}).Decode(&existing)
	if err == nil {
		message := "Username already taken"
		if existing.Email == email {
			message = "Email already registered"
		}
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: message,
		})
	}
	if err != mongo.ErrNoDocuments {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to check existing users",
		})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to process password",
		})
	}

	now := time.Now()
	user := models.User{
		ID:        primitive.NewObjectID(),
		Username:  username,
		Email:     email,
		Password:  string(hashedPassword),
		Followers: []primitive.ObjectID{},
		Following: []primitive.ObjectID{},
		IsOnline:  false,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err = collection.InsertOne(ctx, user)
	if err != nil {
		// The unique index can still reject a concurrent duplicate
		if mongo.IsDuplicateKeyError(err) {
			return c.JSON(http.StatusBadRequest, models.Response{
				Status:  http.StatusBadRequest,
				Message: "Username or email already registered",
			})
		}
		log.Printf("Error creating user: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to create user",
		})
	}

	token, err := middleware.GenerateJWT(user.ID.Hex(), user.Username)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to generate token",
		})
	}

	return c.JSON(http.StatusCreated, models.Response{
		Status:  http.StatusCreated,
		Message: "User registered successfully",
		Data: models.AuthResponse{
			Token: token,
			User:  user.ToProfile(),
		},
	})
}

// Login handler verifies credentials and issues a token
func (ac *AuthController) Login(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Email and password are required",
		})
	}

	email, err := utils.SanitizeEmail(req.Email)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid credentials",
		})
	}

	collection := config.GetCollection(ac.DB, "users")

	var user models.User
	err = collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		// Same message for unknown email and wrong password
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid credentials",
		})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid credentials",
		})
	}

	now := time.Now()
	_, err = collection.UpdateOne(ctx, bson.M{"_id": user.ID}, bson.M{
		"$set": bson.M{"isOnline": true, "lastSeen": now, "updatedAt": now},
	})
	if err != nil {
		log.Printf("Error updating online status for %s: %v", user.ID.Hex(), err)
	}
	user.IsOnline = true
	user.LastSeen = now

	token, err := middleware.GenerateJWT(user.ID.Hex(), user.Username)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to generate token",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Login successful",
		Data: models.AuthResponse{
			Token: token,
			User:  user.ToProfile(),
		},
	})
}

// Me handler returns the caller's profile
func (ac *AuthController) Me(c echo.Context) error {
	user, err := utils.GetUserFromToken(c, ac.DB)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Unauthorized",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Profile retrieved successfully",
		Data:    user.ToProfile(),
	})
}

// UpdateProfile handler updates username, bio and/or profile picture from
// a multipart form
func (ac *AuthController) UpdateProfile(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	user, err := utils.GetUserFromToken(c, ac.DB)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Unauthorized",
		})
	}

	collection := config.GetCollection(ac.DB, "users")
	update := bson.M{"updatedAt": time.Now()}

	form, err := c.MultipartForm()
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid multipart form",
		})
	}

	if values, ok := form.Value["username"]; ok && len(values) > 0 {
		username := utils.SanitizeInput(values[0])
		if username != user.Username {
			if err := utils.ValidateUsername(username); err != nil {
				return c.JSON(http.StatusBadRequest, models.Response{
					Status:  http.StatusBadRequest,
					Message: err.Error(),
				})
			}

			count, err := collection.CountDocuments(ctx, bson.M{"username": username})
			if err != nil {
				return c.JSON(http.StatusInternalServerError, models.Response{
					Status:  http.StatusInternalServerError,
					Message: "Failed to check username",
				})
			}
			if count > 0 {
				return c.JSON(http.StatusBadRequest, models.Response{
					Status:  http.StatusBadRequest,
					Message: "Username already taken",
				})
			}
			update["username"] = username
		}
	}

	if values, ok := form.Value["bio"]; ok && len(values) > 0 {
		bio := utils.SanitizeInput(values[0])
		if len(bio) > 500 {
			return c.JSON(http.StatusBadRequest, models.Response{
				Status:  http.StatusBadRequest,
				Message: "Bio must be at most 500 characters",
			})
		}
		update["bio"] = bio
	}

	if file, err := c.FormFile("image"); err == nil {
		url, err := utils.SaveImage(file, "profiles")
		if err != nil {
			return c.JSON(http.StatusBadRequest, models.Response{
				Status:  http.StatusBadRequest,
				Message: err.Error(),
			})
		}
		update["profilePicture"] = url
	}

	_, err = collection.UpdateOne(ctx, bson.M{"_id": user.ID}, bson.M{"$set": update})
	if err != nil {
		log.Printf("Error updating profile for %s: %v", user.ID.Hex(), err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to update profile",
		})
	}

	var updated models.User
	if err := collection.FindOne(ctx, bson.M{"_id": user.ID}).Decode(&updated); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to load updated profile",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Profile updated successfully",
		Data:    updated.ToProfile(),
	})
}

// Logout handler revokes the presented token and marks the user offline
func (ac *AuthController) Logout(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userID, err := utils.GetUserIDFromToken(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Unauthorized",
		})
	}

	if token, ok := c.Get("user").(*jwt.Token); ok {
		claims := middleware.GetUserFromToken(c)
		expiry := time.Now().Add(middleware.TokenExpiry)
		if claims != nil && claims.ExpiresAt > 0 {
			expiry = time.Unix(claims.ExpiresAt, 0)
		}
		middleware.BlacklistToken(token.Raw, expiry)
	}

	now := time.Now()
	_, err = config.GetCollection(ac.DB, "users").UpdateOne(ctx, bson.M{"_id": userID}, bson.M{
		"$set": bson.M{"isOnline": false, "lastSeen": now, "updatedAt": now},
	})
	if err != nil {
		log.Printf("Error updating online status for %s: %v", userID.Hex(), err)
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Logged out successfully",
	})
}
