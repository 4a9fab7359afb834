package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/recruitdesk/recruitdesk/internal/domain"
)

// IdentityKey is the gin context key the guard stores the session identity
// under; handlers read it back with IdentityFrom.
const IdentityKey = "session_identity"

// IdentitySource yields the current session identity, if any.
type IdentitySource interface {
	Identity() (domain.Identity, bool)
}

// RequireRole rejects requests whose session is absent (401) or whose role
// does not match the route's scope (403). On success the identity is placed
// in the request context for handlers.
func RequireRole(sessions IdentitySource, role domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := sessions.Identity()
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "authentication required",
			})
			return
		}
		if identity.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "insufficient role for this resource",
			})
			return
		}

		c.Set(IdentityKey, identity)
		c.Next()
	}
}

// IdentityFrom reads the identity a RequireRole guard placed in the context.
func IdentityFrom(c *gin.Context) (domain.Identity, bool) {
	v, exists := c.Get(IdentityKey)
	if !exists {
		return domain.Identity{}, false
	}
	identity, ok := v.(domain.Identity)
	return identity, ok
}
