//go:build unit

package api_test

import (
	"pontomais/internal/domain/user"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// asCaller stands in for the auth middleware.
func asCaller(id uuid.UUID, email string, role user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", id)
		c.Set("user_email", email)
		c.Set("user_role", role)
		c.Next()
	}
}
