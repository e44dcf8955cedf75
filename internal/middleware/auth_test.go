package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prajwalb/sameeksha/config"
	"github.com/prajwalb/sameeksha/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAuth() *Auth {
	return NewAuth(&config.Config{JWTSecret: "test-secret"})
}

func testRouter(auth *Auth, adminOnly bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	handlers := []gin.HandlerFunc{auth.RequireAuth()}
	if adminOnly {
		handlers = append(handlers, RequireAdmin())
	}
	handlers = append(handlers, func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"user_id": UserIDFromContext(ctx),
			"role":    RoleFromContext(ctx),
		})
	})
	router.GET("/protected", handlers...)
	return router
}

func TestRequireAuthMissingToken(t *testing.T) {
	router := testRouter(testAuth(), false)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "no token")
}

func TestRequireAuthInvalidToken(t *testing.T) {
	router := testRouter(testAuth(), false)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage.token.here")
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid token")
}

func TestRequireAuthWrongSecret(t *testing.T) {
	other := NewAuth(&config.Config{JWTSecret: "other-secret"})
	token, err := other.SignToken(1, model.RoleUser)
	require.NoError(t, err)

	router := testRouter(testAuth(), false)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuthAttachesClaims(t *testing.T) {
	auth := testAuth()
	token, err := auth.SignToken(42, model.RoleUser)
	require.NoError(t, err)

	router := testRouter(auth, false)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"user_id":42,"role":"user"}`, rec.Body.String())
}

func TestRequireAdminForbidsUsers(t *testing.T) {
	auth := testAuth()
	token, err := auth.SignToken(7, model.RoleUser)
	require.NoError(t, err)

	router := testRouter(auth, true)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireAdminAllowsAdmins(t *testing.T) {
	auth := testAuth()
	token, err := auth.SignToken(1, model.RoleAdmin)
	require.NoError(t, err)

	router := testRouter(auth, true)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSignTokenRoundTrip(t *testing.T) {
	auth := testAuth()
	token, err := auth.SignToken(5, model.RoleAdmin)
	require.NoError(t, err)

	claims, err := auth.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(5), claims.UserID)
	assert.Equal(t, model.RoleAdmin, claims.Role)
	assert.NotEmpty(t, claims.ID)
	require.NotNil(t, claims.ExpiresAt)
	assert.Greater(t, claims.ExpiresAt.Unix(), claims.IssuedAt.Unix())
}
