package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RoleMiddleware applique les restrictions de rôle sur les routes admin
type RoleMiddleware struct{}

// NewRoleMiddleware crée une nouvelle instance du middleware de rôle
func NewRoleMiddleware() *RoleMiddleware {
	return &RoleMiddleware{}
}

// RequireSuperAdmin restreint l'accès aux sessions superadmin.
// Doit être placé après le middleware de session.
func (m *RoleMiddleware) RequireSuperAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := GetSessionContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{
				"message": "Unauthenticated",
			})
			c.Abort()
			return
		}

		if !session.IsSuperAdmin() {
			c.JSON(http.StatusForbidden, gin.H{
				"message": "Unauthorized. Super admin access required.",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
