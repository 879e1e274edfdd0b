//go:build unit

package api_test

import (
	"net/http"

	"smartbus/internal/domain/user"

	"github.com/gin-gonic/gin"
)

const (
	headerTestActor = "X-Test-Actor"
	headerTestRole  = "X-Test-Role"
)

// stubAuth stands in for AuthMiddleware.RequireAuth. The actor defaults to
// rider 7 and can be overridden per request.
func stubAuth(c *gin.Context) {
	if c.GetHeader("Authorization") == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
		return
	}
	actor := c.GetHeader(headerTestActor)
	if actor == "" {
		actor = "7"
	}
	role := user.Role(c.GetHeader(headerTestRole))
	if role == "" {
		role = user.RoleRider
	}
	c.Set("actor_id", actor)
	c.Set("user_role", role)
	c.Next()
}

func asActor(actor string, role user.Role) map[string]string {
	return map[string]string{headerTestActor: actor, headerTestRole: string(role)}
}
