package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pickuphub/backend/pkg/responses"
	"github.com/pickuphub/backend/pkg/token"
)

// SessionCookieName is the HTTP-only cookie carrying the session token.
const SessionCookieName = "token"

const (
	AuthUserIDKey   = "auth_user_id"
	AuthUsernameKey = "auth_username"
)

// AuthMiddleware gates protected routes on the session cookie. A missing
// cookie and a failed verification are distinct failures; both reject the
// request with 401 before any handler side effect.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(SessionCookieName)
		if err != nil || tokenString == "" {
			responses.SendError(c, http.StatusUnauthorized, "No token provided")
			return
		}

		claims, err := token.ValidateJWT(tokenString, jwtSecret)
		if err != nil {
			responses.SendError(c, http.StatusUnauthorized, "Invalid token")
			return
		}

		c.Set(AuthUserIDKey, claims.UserID)
		c.Set(AuthUsernameKey, claims.Username)
		c.Next()
	}
}

// GetUserIDFromContext extracts the authenticated user's ID from the context.
func GetUserIDFromContext(c *gin.Context) (uint, error) {
	userID, exists := c.Get(AuthUserIDKey)
	if !exists {
		return 0, errors.New("user ID not found in context")
	}

	uid, ok := userID.(uint)
	if !ok {
		return 0, fmt.Errorf("user ID has unexpected type: %T", userID)
	}

	return uid, nil
}

// GetUsernameFromContext extracts the authenticated user's name from the context.
func GetUsernameFromContext(c *gin.Context) (string, error) {
	username, exists := c.Get(AuthUsernameKey)
	if !exists {
		return "", errors.New("username not found in context")
	}

	name, ok := username.(string)
	if !ok {
		return "", fmt.Errorf("username has unexpected type: %T", username)
	}

	return name, nil
}
