package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestMain(m *testing.M) {
	os.Setenv("JWT_SECRET", "test-secret")
	os.Exit(m.Run())
}

func TestGenerateAndParseToken(t *testing.T) {
	userID := primitive.NewObjectID().Hex()

	token, err := GenerateJWT(userID, "alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "alice", claims.Username)

	issuedAt := time.Unix(claims.IssuedAt, 0)
	expiresAt := time.Unix(claims.ExpiresAt, 0)
	assert.WithinDuration(t, issuedAt.Add(TokenExpiry), expiresAt, time.Second)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	_, err := ParseToken("not.a.token")
	assert.Error(t, err)

	_, err = ParseToken("")
	assert.Error(t, err)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	token, err := GenerateJWT(primitive.NewObjectID().Hex(), "alice")
	require.NoError(t, err)

	os.Setenv("JWT_SECRET", "different-secret")
	defer os.Setenv("JWT_SECRET", "test-secret")

	_, err = ParseToken(token)
	assert.Error(t, err)
}

func TestTokenBlacklist(t *testing.T) {
	token, err := GenerateJWT(primitive.NewObjectID().Hex(), "alice")
	require.NoError(t, err)

	assert.False(t, IsTokenBlacklisted(token))

	BlacklistToken(token, time.Now().Add(time.Hour))
	assert.True(t, IsTokenBlacklisted(token))
}

func TestJWTMiddlewareRejectsRevokedTokenBeforeHandler(t *testing.T) {
	userID := primitive.NewObjectID().Hex()
	token, err := GenerateJWT(userID, "alice")
	require.NoError(t, err)

	e := echo.New()
	handlerRan := false
	e.GET("/protected", func(c echo.Context) error {
		handlerRan = true
		return c.NoContent(http.StatusOK)
	}, JWTMiddleware())

	request := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	rec := request()
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, handlerRan)

	BlacklistToken(token, time.Now().Add(time.Hour))

	// A revoked token must not reach the handler at all
	handlerRan = false
	rec = request()
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, handlerRan)
}

func TestJWTMiddlewareRejectsMissingToken(t *testing.T) {
	e := echo.New()
	handlerRan := false
	e.GET("/protected", func(c echo.Context) error {
		handlerRan = true
		return c.NoContent(http.StatusOK)
	}, JWTMiddleware())

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, handlerRan)
}

func TestBlacklistIgnoresExpiredTokens(t *testing.T) {
	token, err := GenerateJWT(primitive.NewObjectID().Hex(), "bob")
	require.NoError(t, err)

	// Revoking a token past its expiry is a no-op
	BlacklistToken(token, time.Now().Add(-time.Minute))
	assert.False(t, IsTokenBlacklisted(token))
}
