package admin

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"carte-scolaire-core/internal/app/config"
	"carte-scolaire-core/internal/infrastructure/database/postgres"
	redisInfra "carte-scolaire-core/internal/infrastructure/database/redis"
	"carte-scolaire-core/internal/modules/admin/controllers"
	"carte-scolaire-core/internal/modules/admin/services"
	authMiddleware "carte-scolaire-core/internal/shared/middleware/auth"
)

// Module regroupe tous les providers du domaine Admin
var Module = fx.Options(
	// Services (utilisent queries directement)
	fx.Provide(NewSessionService),
	fx.Provide(services.NewAuthService),
	fx.Provide(services.NewComptesService),

	// Controllers
	fx.Provide(controllers.NewAuthController),
	fx.Provide(controllers.NewComptesController),

	// Configuration des routes
	fx.Invoke(RegisterAdminRoutes),
)

// NewSessionService construit le service de session avec le TTL configuré
func NewSessionService(db *postgres.Client, redisClient *redisInfra.Client, cfg *config.Config) *services.SessionService {
	return services.NewSessionService(db, redisClient, cfg.Session.TTL)
}

// RegisterAdminRoutes configure les routes Gin de l'espace admin
func RegisterAdminRoutes(
	r *gin.Engine,
	authController *controllers.AuthController,
	comptesController *controllers.ComptesController,
	authStack *authMiddleware.AuthMiddlewareStack,
) {
	// Route publique
	adminAPI := r.Group("/api/v1/admin")
	{
		adminAPI.POST("/login", authController.Login)
	}

	// Routes protégées par session
	protectedAPI := r.Group("/api/v1/admin")
	protectedAPI.Use(authMiddleware.Protected(authStack)...)
	{
		protectedAPI.POST("/logout", authController.Logout)
		protectedAPI.GET("/me", authController.Me)
		protectedAPI.GET("/dashboard", authController.Dashboard)
	}

	// Routes réservées aux superadmins
	superAdminAPI := r.Group("/api/v1/admin/admins")
	superAdminAPI.Use(authMiddleware.RequireSuperAdmin(authStack)...)
	{
		superAdminAPI.GET("", comptesController.ListAdmins)
		superAdminAPI.POST("", comptesController.CreateAdmin)
	}
}
