package middleware

import (
	"go.uber.org/fx"

	"carte-scolaire-core/internal/shared/middleware/auth"
	"carte-scolaire-core/internal/shared/middleware/core"
	"carte-scolaire-core/internal/shared/middleware/security"
)

// Module regroupe tous les providers des middlewares
var Module = fx.Options(
	// Middlewares d'authentification admin
	auth.AuthMiddlewareModule,

	// Middlewares transverses
	fx.Provide(security.CORSMiddleware),
	fx.Provide(core.RecoveryMiddleware),
)
