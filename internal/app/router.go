package app

import (
	"net/http"

	"carte-scolaire-core/internal/app/config"
	"carte-scolaire-core/internal/infrastructure/database/postgres"
	redisInfra "carte-scolaire-core/internal/infrastructure/database/redis"
	"carte-scolaire-core/internal/infrastructure/logger"
	"carte-scolaire-core/internal/shared/middleware/core"
	"carte-scolaire-core/internal/shared/middleware/security"

	"github.com/gin-gonic/gin"
)

func NewRouter(
	cfg *config.Config,
	loggerMiddleware *logger.LoggerMiddleware,
	corsHandler security.CORSHandler,
	recoveryHandler core.RecoveryHandler,
	pgClient *postgres.Client,
	redisClient *redisInfra.Client,
) *gin.Engine {
	// Set Gin mode based on environment
	configureGinMode(cfg.Environment)

	// Create router without default middleware for custom configuration
	r := gin.New()

	// Middlewares dans l'ordre d'importance
	r.Use(loggerMiddleware.GinLogger())
	r.Use(gin.HandlerFunc(recoveryHandler))
	r.Use(gin.HandlerFunc(corsHandler))

	// Health check routes
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data": gin.H{
				"status": "healthy",
			},
		})
	})

	r.GET("/ready", func(c *gin.Context) {
		ctx := c.Request.Context()

		if err := pgClient.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"success": false,
				"data": gin.H{
					"status":   "not_ready",
					"postgres": err.Error(),
				},
			})
			return
		}

		if err := redisClient.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"success": false,
				"data": gin.H{
					"status": "not_ready",
					"redis":  err.Error(),
				},
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data": gin.H{
				"status": "ready",
			},
		})
	})

	// Les routes métier sont enregistrées par les modules via fx.Invoke

	return r
}

// configureGinMode configure le mode Gin selon l'environnement
func configureGinMode(environment string) {
	switch environment {
	case "docker":
		gin.SetMode(gin.ReleaseMode)
	case "development":
		gin.SetMode(gin.DebugMode)
	default:
		// Mode debug par défaut pour développement local
		gin.SetMode(gin.DebugMode)
	}
}
