package app

import (
	"carte-scolaire-core/internal/app/bootstrap"
	"carte-scolaire-core/internal/app/config"
	"carte-scolaire-core/internal/infrastructure/database"
	"carte-scolaire-core/internal/infrastructure/database/seeds"
	"carte-scolaire-core/internal/infrastructure/logger"
	"carte-scolaire-core/internal/modules/admin"
	"carte-scolaire-core/internal/modules/etablissements"
	"carte-scolaire-core/internal/shared/middleware"

	"go.uber.org/fx"
)

var AppModule = fx.Options(
	// Configuration (doit être fournie en premier)
	fx.Provide(config.NewConfig),
	fx.Provide(config.NewPostgresConfig),
	fx.Provide(config.NewRedisConfig),

	// Infrastructure
	database.Module,
	logger.Module,

	// Middlewares partagés (après infrastructure, avant modules métier)
	middleware.Module,

	// Modules métier
	etablissements.Module,
	admin.Module,

	// Bootstrap System - Providers
	fx.Provide(seeds.NewSeedingService),
	fx.Provide(bootstrap.NewBootstrapExtensionManager),
	fx.Provide(bootstrap.NewBootstrapMigrationManager),
	fx.Provide(bootstrap.NewBootstrapSeedingManager),
	fx.Provide(bootstrap.NewBootstrapSystem),

	// Router
	fx.Provide(NewRouter),

	// Application
	fx.Provide(NewApplication),

	// Lifecycle management
	fx.Invoke(bootstrap.RegisterBootstrapLifecycle),
	fx.Invoke((*Application).Start),
)
