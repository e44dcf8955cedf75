package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/prajwalb/sameeksha/config"
	"github.com/prajwalb/sameeksha/internal/dto"
	"github.com/prajwalb/sameeksha/internal/model"
)

const (
	ContextUserIDKey = "auth_user_id"
	ContextRoleKey   = "auth_role"
)

const tokenTTL = 24 * time.Hour

type Claims struct {
	UserID uint   `json:"uid"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Auth signs and verifies bearer tokens. It never touches the store; the
// decoded {id, role} claim is everything downstream handlers get.
type Auth struct {
	secret []byte
}

func NewAuth(cfg *config.Config) *Auth {
	return &Auth{secret: []byte(cfg.JWTSecret)}
}

func (a *Auth) SignToken(userID uint, role string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.secret)
}

func (a *Auth) ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}

// RequireAuth rejects requests without a valid bearer token and attaches the
// decoded user id and role to the gin context.
func (a *Auth) RequireAuth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "no token"})
			return
		}
		tokenString := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		claims, err := a.ParseToken(tokenString)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "invalid token"})
			return
		}
		ctx.Set(ContextUserIDKey, claims.UserID)
		ctx.Set(ContextRoleKey, claims.Role)
		ctx.Next()
	}
}

// RequireAdmin assumes RequireAuth already ran.
func RequireAdmin() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if RoleFromContext(ctx) != model.RoleAdmin {
			ctx.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Message: "admin access required"})
			return
		}
		ctx.Next()
	}
}

func UserIDFromContext(ctx *gin.Context) uint {
	if id, ok := ctx.Get(ContextUserIDKey); ok {
		if userID, ok := id.(uint); ok {
			return userID
		}
	}
	return 0
}

func RoleFromContext(ctx *gin.Context) string {
	if role, ok := ctx.Get(ContextRoleKey); ok {
		if r, ok := role.(string); ok {
			return r
		}
	}
	return ""
}
