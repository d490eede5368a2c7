package auth

import (
	"net/http"
	"strings"

	"channel-relay/internal/logger"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	service *AuthService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

// RequireAuth validates JWT tokens and sets user context. The caller's user id
// is stored both on the gin context and on the request context so that service
// and dispatch logs carry it.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			reject(c, "missing header", gin.H{"error": "Authorization header is required"})
			return
		}

		tokenString, ok := bearerToken(authHeader)
		if !ok {
			reject(c, "malformed header", gin.H{"error": "Invalid authorization header format"})
			return
		}

		claims, err := m.service.ValidateJWT(tokenString)
		if err != nil {
			reject(c, "invalid token", gin.H{"error": "Invalid token", "details": err.Error()})
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("auth_claims", claims)
		c.Request = c.Request.WithContext(logger.ContextWithUser(c.Request.Context(), claims.UserID))

		c.Next()
	}
}

// bearerToken extracts the token from an "Authorization: Bearer <token>" header.
// The scheme is case-insensitive.
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func reject(c *gin.Context, reason string, body gin.H) {
	logger.WithContext(c.Request.Context()).WithFields(map[string]interface{}{
		"reason": reason,
		"path":   c.FullPath(),
	}).Warn("Request rejected by auth")
	c.AbortWithStatusJSON(http.StatusUnauthorized, body)
}

// GetUserID is a helper function to extract user ID from context
func GetUserID(c *gin.Context) (int64, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}

	id, ok := userID.(int64)
	return id, ok
}

// GetAuthClaims is a helper function to extract full auth claims from context
func GetAuthClaims(c *gin.Context) (*AuthClaims, bool) {
	claims, exists := c.Get("auth_claims")
	if !exists {
		return nil, false
	}

	authClaims, ok := claims.(*AuthClaims)
	return authClaims, ok
}
