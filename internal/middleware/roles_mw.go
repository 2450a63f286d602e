package middleware

import (
	"net/http"

	"service_marketplace/internal/model"
	"service_marketplace/internal/service"

	"github.com/gin-gonic/gin"
)

// UserTypeMiddleware only lets the listed account types through. Run it after RequireAuth.
func UserTypeMiddleware(allowed ...model.UserType) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": service.ErrUnauthenticated.Error()})
			return
		}

		isAllowed := false
		for _, t := range allowed {
			if user.UserType == t {
				isAllowed = true
				break
			}
		}

		if !isAllowed {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": service.ErrForbidden.Error()})
			return
		}

		c.Next()
	}
}

// WorkerOnly checks that the caller has a worker account
func WorkerOnly() gin.HandlerFunc {
	return UserTypeMiddleware(model.UserTypeWorker)
}

// CustomerOnly checks that the caller has a customer account
func CustomerOnly() gin.HandlerFunc {
	return UserTypeMiddleware(model.UserTypeCustomer)
}
