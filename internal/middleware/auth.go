package middleware

import (
	"strings"

	"fbr-invoice-backend/internal/apperr"
	"fbr-invoice-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Context keys set by RequireAuth.
const (
	ContextUserID   = "userID"
	ContextUserRole = "userRole"
)

const accessTokenCookie = "access_token"

// Auth validates HS256 tokens issued by the user service.
type Auth struct {
	secret []byte
}

func NewAuth(secret string) *Auth {
	return &Auth{secret: []byte(secret)}
}

// RequireAuth accepts "Authorization: Bearer <token>" and falls back to the access_token cookie.
func (a *Auth) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := bearerToken(c)
		if err != nil {
			apperr.Abort(c, err)
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return a.secret, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !token.Valid {
			apperr.Abort(c, apperr.Unauthorized("Invalid or expired token").Wrap(err))
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			apperr.Abort(c, apperr.Unauthorized("Invalid token claims"))
			return
		}
		userID, _ := claims["sub"].(string)
		role, _ := claims["role"].(string)
		if userID == "" {
			apperr.Abort(c, apperr.Unauthorized("Invalid token claims"))
			return
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextUserRole, role)
		c.Request = c.Request.WithContext(logger.WithUserID(c.Request.Context(), userID))
		c.Next()
	}
}

// RequireRole must run after RequireAuth.
func (a *Auth) RequireRole(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(ContextUserRole)
		for _, allowed := range allowedRoles {
			if role == allowed {
				c.Next()
				return
			}
		}
		apperr.Abort(c, apperr.Forbidden("You do not have permission to perform this action"))
	}
}

// CurrentUserID returns the authenticated user's id, or "" outside RequireAuth.
func CurrentUserID(c *gin.Context) string {
	return c.GetString(ContextUserID)
}

func bearerToken(c *gin.Context) (string, error) {
	if header := strings.TrimSpace(c.GetHeader("Authorization")); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			return "", apperr.Unauthorized("Invalid authorization format. Expected 'Bearer <token>'")
		}
		return strings.TrimSpace(parts[1]), nil
	}
	if cookie, err := c.Cookie(accessTokenCookie); err == nil && cookie != "" {
		return cookie, nil
	}
	return "", apperr.Unauthorized("You are not logged in. Please log in to get access.")
}
