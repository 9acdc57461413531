package middleware

import (
	"BistroBoss/services"
	"BistroBoss/utils"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware verifies the bearer token and stores the caller's email in
// the context as "email". Every request is verified independently; no session
// state is kept.
func AuthMiddleware(tokenService *services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authorization := c.GetHeader("Authorization")
		if authorization == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "unauthorized access")
			return
		}

		parts := strings.SplitN(authorization, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			utils.ErrorResponse(c, http.StatusUnauthorized, "unauthorized access")
			return
		}

		email, err := tokenService.Verify(parts[1])
		if err != nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, "unauthorized access")
			return
		}

		c.Set("email", email)
		c.Next()
	}
}
