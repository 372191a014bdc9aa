package database

import (
	"go.uber.org/fx"

	"carte-scolaire-core/internal/infrastructure/database/postgres"
	"carte-scolaire-core/internal/infrastructure/database/redis"
)

var Module = fx.Options(

	// Modules database
	postgres.Module,
	redis.Module,
)
