package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"service_marketplace/internal/model"
	"service_marketplace/internal/service"

	"github.com/gin-gonic/gin"
)

const AuthUserKey = "authUser"

// SessionAuthMiddleware resolves the session cookie to a user and stores it on the context.
// Requests without a valid session continue anonymously; RequireAuth rejects them.
// A failing session store aborts with 500.
func SessionAuthMiddleware(auth service.AuthService, cookieName string, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			c.Next()
			return
		}

		user, err := auth.Authenticate(c.Request.Context(), token)
		if errors.Is(err, service.ErrUnauthenticated) {
			c.Next()
			return
		}
		if err != nil {
			requestID, _ := c.Get(RequestIDKey)
			logger.Error("session lookup failed", "request_id", requestID, "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error", "request_id": requestID})
			return
		}

		c.Set(AuthUserKey, user)
		c.Next()
	}
}

// RequireAuth aborts with 401 unless a session user is present
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUser(c); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": service.ErrUnauthenticated.Error()})
			return
		}
		c.Next()
	}
}

// CurrentUser returns the session user set by SessionAuthMiddleware
func CurrentUser(c *gin.Context) (*model.User, bool) {
	val, exists := c.Get(AuthUserKey)
	if !exists {
		return nil, false
	}
	user, ok := val.(*model.User)
	return user, ok && user != nil
}
