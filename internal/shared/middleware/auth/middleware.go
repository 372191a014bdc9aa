package auth

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"carte-scolaire-core/internal/modules/admin/services"
)

// AuthMiddlewares contient tous les middlewares d'authentification
type AuthMiddlewares struct {
	Session *SessionMiddleware
	Role    *RoleMiddleware
}

// NewAuthMiddlewares crée une nouvelle instance des middlewares d'authentification
func NewAuthMiddlewares(sessionService *services.SessionService) *AuthMiddlewares {
	return &AuthMiddlewares{
		Session: NewSessionMiddleware(sessionService),
		Role:    NewRoleMiddleware(),
	}
}

// AuthMiddlewareStack représente une pile de middlewares d'authentification
type AuthMiddlewareStack struct {
	SessionMiddleware *SessionMiddleware
	RoleMiddleware    *RoleMiddleware
}

// NewAuthMiddlewareStack crée une nouvelle pile de middlewares
func NewAuthMiddlewareStack(authMiddlewares *AuthMiddlewares) *AuthMiddlewareStack {
	return &AuthMiddlewareStack{
		SessionMiddleware: authMiddlewares.Session,
		RoleMiddleware:    authMiddlewares.Role,
	}
}

// ApplySessionAuth applique la validation de session
func (stack *AuthMiddlewareStack) ApplySessionAuth() []gin.HandlerFunc {
	return []gin.HandlerFunc{
		stack.SessionMiddleware.Handler(),
	}
}

// ApplySuperAdminAuth applique la validation de session puis le contrôle superadmin
func (stack *AuthMiddlewareStack) ApplySuperAdminAuth() []gin.HandlerFunc {
	middlewares := stack.ApplySessionAuth()
	middlewares = append(middlewares, stack.RoleMiddleware.RequireSuperAdmin())
	return middlewares
}

// Module Fx pour l'injection de dépendances
var AuthMiddlewareModule = fx.Options(
	fx.Provide(NewAuthMiddlewares),
	fx.Provide(NewAuthMiddlewareStack),
)

// Helpers pour les routes courantes

// Protected applique l'authentification de session
func Protected(stack *AuthMiddlewareStack) []gin.HandlerFunc {
	return stack.ApplySessionAuth()
}

// RequireSuperAdmin applique l'authentification réservée aux superadmins
func RequireSuperAdmin(stack *AuthMiddlewareStack) []gin.HandlerFunc {
	return stack.ApplySuperAdminAuth()
}
