package bootstrap

import (
	"database/sql"
	"fmt"

	"carte-scolaire-core/internal/app/config"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// MigrationManager applique les migrations SQL versionnées avec golang-migrate.
// Idempotent : seules les migrations en attente sont exécutées.
type MigrationManager struct {
	config *config.Config
}

// NewMigrationManager crée une nouvelle instance du gestionnaire de migrations
func NewMigrationManager(cfg *config.Config) *MigrationManager {
	return &MigrationManager{
		config: cfg,
	}
}

// EnsureMigrationsApplied applique toutes les migrations en attente
func (mm *MigrationManager) EnsureMigrationsApplied() error {
	if !mm.config.Migrations.Enabled {
		fmt.Printf("[MIGRATIONS] ⚠️  Migrations désactivées - skip\n")
		return nil
	}

	fmt.Printf("[MIGRATIONS] 🔍 Application migrations depuis %s\n", mm.config.Migrations.Path)

	// Connexion database/sql dédiée aux migrations (le pool pgx reste intact)
	db, err := sql.Open("pgx", mm.config.DatabaseURL())
	if err != nil {
		return fmt.Errorf("failed to open migration connection: %w", err)
	}
	defer db.Close()

	driver, err := migratepg.WithInstance(db, &migratepg.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", mm.config.Migrations.Path),
		"postgres", driver)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}

	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil {
			fmt.Printf("[MIGRATIONS] ⚠️  Fermeture source migrations: %v\n", srcErr)
		}
		if dbErr != nil {
			fmt.Printf("[MIGRATIONS] ⚠️  Fermeture connexion migrations: %v\n", dbErr)
		}
	}()

	err = m.Up()
	if err == migrate.ErrNoChange {
		fmt.Printf("[MIGRATIONS] ✅ Base de données déjà à jour\n")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	version, dirty, _ := m.Version()
	if dirty {
		return fmt.Errorf("migration version %d is dirty", version)
	}

	fmt.Printf("[MIGRATIONS] ✅ Migrations appliquées (version: %d)\n", version)
	return nil
}
