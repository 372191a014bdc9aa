package etablissements

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"carte-scolaire-core/internal/app/config"
	"carte-scolaire-core/internal/infrastructure/database/postgres"
	redisInfra "carte-scolaire-core/internal/infrastructure/database/redis"
	"carte-scolaire-core/internal/modules/etablissements/controllers"
	"carte-scolaire-core/internal/modules/etablissements/services"
	authMiddleware "carte-scolaire-core/internal/shared/middleware/auth"
)

// Module regroupe tous les providers du domaine Établissements
var Module = fx.Options(
	// Services (utilisent queries directement)
	fx.Provide(NewQueryService),
	fx.Provide(services.NewWriteService),

	// Controllers
	fx.Provide(controllers.NewEtablissementController),

	// Configuration des routes
	fx.Invoke(RegisterEtablissementRoutes),
)

// NewQueryService construit le service de lecture avec le TTL de cache configuré
func NewQueryService(db *postgres.Client, redisClient *redisInfra.Client, cfg *config.Config) *services.QueryService {
	return services.NewQueryService(db, redisClient, cfg.Cache.EtablissementsListTTL)
}

// RegisterEtablissementRoutes configure les routes Gin du répertoire
func RegisterEtablissementRoutes(
	r *gin.Engine,
	controller *controllers.EtablissementController,
	authStack *authMiddleware.AuthMiddlewareStack,
) {
	// Lectures publiques
	publicAPI := r.Group("/api/v1/etablissements")
	{
		publicAPI.GET("", controller.List)
		publicAPI.GET("/search", controller.Search)
		publicAPI.GET("/map", controller.MapView)
		publicAPI.GET("/:id", controller.Show)
	}

	// Écritures réservées aux admins authentifiés
	protectedAPI := r.Group("/api/v1/etablissements")
	protectedAPI.Use(authMiddleware.Protected(authStack)...)
	{
		protectedAPI.POST("", controller.Create)
		protectedAPI.PUT("/:id", controller.Update)
		protectedAPI.DELETE("/:id", controller.Delete)
	}
}
