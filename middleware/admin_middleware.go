package middleware

import (
	"BistroBoss/utils"
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// RoleChecker reports whether an email belongs to an admin user.
type RoleChecker interface {
	IsAdmin(ctx context.Context, email string) (bool, error)
}

// AdminMiddleware allows only callers whose stored role is admin. It runs
// after AuthMiddleware and reads the email it stored.
func AdminMiddleware(users RoleChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString("email")
		if email == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "unauthorized access")
			return
		}

		isAdmin, err := users.IsAdmin(c.Request.Context(), email)
		if err != nil {
			utils.ErrorResponse(c, http.StatusInternalServerError, "failed to verify role")
			return
		}
		if !isAdmin {
			utils.ErrorResponse(c, http.StatusForbidden, "forbidden access")
			return
		}

		c.Next()
	}
}
