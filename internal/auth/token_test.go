package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractAccessToken(t *testing.T) {
	t.Run("Cookie Preferred", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "access_token", Value: "cookie_token"})
		// Add header as well to ensure cookie takes precedence
		req.Header.Set("Authorization", "Bearer header_token")

		token := ExtractAccessToken(req)
		assert.Equal(t, "cookie_token", token)
	})

	t.Run("Header Fallback", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer header_token")

		token := ExtractAccessToken(req)
		assert.Equal(t, "header_token", token)
	})

	t.Run("Empty Cookie Falls Back to Header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "access_token", Value: ""})
		req.Header.Set("Authorization", "Bearer header_token")

		token := ExtractAccessToken(req)
		assert.Equal(t, "header_token", token)
	})

	t.Run("No Token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)

		token := ExtractAccessToken(req)
		assert.Empty(t, token)
	})

	t.Run("Malformed Header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Basic user:pass")

		token := ExtractAccessToken(req)
		assert.Empty(t, token)
	})
}

func TestJWT(t *testing.T) {
	const secret = "s3cret"

	t.Run("RoundTrip", func(t *testing.T) {
		tok, err := GenerateJWT(secret, "frontdesk", RoleStaff, time.Hour)
		require.NoError(t, err)

		claims, err := ParseJWT(secret, tok)
		require.NoError(t, err)
		assert.Equal(t, "frontdesk", claims.Subject)
		assert.Equal(t, RoleStaff, claims.Role)
	})

	t.Run("WrongSecret", func(t *testing.T) {
		tok, err := GenerateJWT(secret, "frontdesk", RoleStaff, time.Hour)
		require.NoError(t, err)

		_, err = ParseJWT("other", tok)
		assert.Error(t, err)
	})

	t.Run("Expired", func(t *testing.T) {
		tok, err := GenerateJWT(secret, "frontdesk", RoleStaff, -time.Minute)
		require.NoError(t, err)

		_, err = ParseJWT(secret, tok)
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("NoSecret", func(t *testing.T) {
		_, err := GenerateJWT("", "x", RoleStaff, time.Hour)
		assert.ErrorIs(t, err, ErrNoSecret)

		_, err = ParseJWT("", "x")
		assert.ErrorIs(t, err, ErrNoSecret)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := ParseJWT(secret, "not-a-token")
		assert.Error(t, err)
	})
}

func TestIsStaff(t *testing.T) {
	assert.True(t, IsStaff(RoleStaff))
	assert.True(t, IsStaff(RoleAdmin))
	assert.False(t, IsStaff("USER"))
	assert.False(t, IsStaff(""))
}
