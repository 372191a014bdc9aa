package security

import (
	"regexp"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"carte-scolaire-core/internal/app/config"
)

// CORSHandler type spécifique pour Fx
type CORSHandler gin.HandlerFunc

// CORSMiddleware configure les règles CORS de l'API publique
func CORSMiddleware(appConfig *config.Config) CORSHandler {
	corsConfig := appConfig.GetCORS()

	return CORSHandler(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			// 1. Autoriser les fronts locaux de développement
			allowedPattern := regexp.MustCompile(
				`^https?://localhost:(3000|3001|8080)$`,
			)
			if allowedPattern.MatchString(origin) {
				return true
			}

			// 2. Vérifier les origins configurés dans l'environnement
			for _, allowedOrigin := range corsConfig.AllowedOrigins {
				if origin == allowedOrigin {
					return true
				}
			}

			return false
		},

		// Méthodes HTTP autorisées
		AllowMethods: corsConfig.AllowedMethods,

		// Headers autorisés
		AllowHeaders: append(corsConfig.AllowedHeaders, "X-Request-Id"),

		// Headers exposés au client
		ExposeHeaders: []string{
			"Content-Length",
			"X-Request-Id",
		},

		// Autoriser les credentials (cookies, tokens)
		AllowCredentials: corsConfig.AllowCredentials,

		// Cache de la réponse preflight
		MaxAge: time.Duration(corsConfig.MaxAge) * time.Second,
	}))
}
