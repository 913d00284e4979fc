package utils

import (
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{"simple", "alice", false},
		{"with digits and underscore", "alice_99", false},
		{"with dot", "a.lice", false},
		{"minimum length", "abc", false},
		{"maximum length", "abcdefghijklmnopqrstuvwxyz0123", false},
		{"too short", "ab", true},
		{"too long", "abcdefghijklmnopqrstuvwxyz01234", true},
		{"spaces", "a lice", true},
		{"hyphen", "a-lice", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.username)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSanitizeEmail(t *testing.T) {
	email, err := SanitizeEmail("  Alice@Example.COM ")
	assert.NoError(t, err)
	assert.Equal(t, "alice@example.com", email)

	_, err = SanitizeEmail("not-an-email")
	assert.Error(t, err)

	_, err = SanitizeEmail("missing@tld")
	assert.Error(t, err)

	_, err = SanitizeEmail("")
	assert.Error(t, err)
}

func TestSanitizeInput(t *testing.T) {
	assert.Equal(t, "hello", SanitizeInput("  hello  "))
	assert.Equal(t, "&lt;script&gt;", SanitizeInput("<script>"))
	assert.Equal(t, "ab", SanitizeInput("a\x00b"))
}

func TestIsValidImageFile(t *testing.T) {
	fileWithType := func(contentType string) *multipart.FileHeader {
		header := textproto.MIMEHeader{}
		if contentType != "" {
			header.Set("Content-Type", contentType)
		}
		return &multipart.FileHeader{Filename: "x", Header: header}
	}

	assert.True(t, IsValidImageFile(fileWithType("image/png")))
	assert.True(t, IsValidImageFile(fileWithType("image/jpeg")))
	assert.False(t, IsValidImageFile(fileWithType("application/pdf")))
	assert.False(t, IsValidImageFile(fileWithType("text/html")))
	assert.False(t, IsValidImageFile(fileWithType("")))
}
