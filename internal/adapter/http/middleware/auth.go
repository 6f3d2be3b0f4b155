package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"taskapp/internal/core/port"
)

// JwtAuthMiddleware verifies the bearer token and exposes the claim email
// to downstream handlers as "x-user-email".
func JwtAuthMiddleware(tokens port.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		bearer := c.GetHeader("Authorization")

		if bearer == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"errors": []string{"Unauthorized request"},
			})

			c.Abort()
			return
		}

		if !strings.HasPrefix(bearer, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{
				"errors": []string{"Invalid authorization format"},
			})

			c.Abort()
			return
		}

		email, err := tokens.Verify(bearer[len("Bearer "):])

		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"errors": []string{"Unauthorized request", err.Error()},
			})
			c.Abort()
			return
		}

		c.Set("x-user-email", email)

		c.Next()
	}
}
