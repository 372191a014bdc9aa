package seeds

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"carte-scolaire-core/internal/app/config"
	"carte-scolaire-core/internal/infrastructure/database/postgres"
	"carte-scolaire-core/internal/shared/utils"

	"github.com/jackc/pgx/v5"
)

// Admins par défaut créés au premier démarrage
var defaultAdmins = []struct {
	Name  string
	Email string
	Role  string
}{
	{Name: "Super Admin", Email: "superadmin@example.com", Role: "superadmin"},
	{Name: "Admin User", Email: "admin@example.com", Role: "admin"},
}

// seedingService implémente SeedingService - référentiels et admins par défaut
type seedingService struct {
	pgClient *postgres.Client
	config   *config.Config
}

// NewSeedingService crée un nouveau service de seeding
func NewSeedingService(pgClient *postgres.Client, cfg *config.Config) SeedingService {
	return &seedingService{
		pgClient: pgClient,
		config:   cfg,
	}
}

// CheckSeedDataExists vérifie quelles données de seeding existent déjà
func (s *seedingService) CheckSeedDataExists(ctx context.Context) (*SeedDataStatus, error) {
	status := &SeedDataStatus{}

	referencesExist, err := s.checkReferencesExist(ctx)
	if err != nil {
		return nil, fmt.Errorf("erreur vérification référentiels: %w", err)
	}
	status.ReferencesExist = referencesExist

	adminsExist, err := s.checkAdminsExist(ctx)
	if err != nil {
		return nil, fmt.Errorf("erreur vérification admins: %w", err)
	}
	status.AdminsExist = adminsExist

	status.AllDataExists = status.ReferencesExist && status.AdminsExist

	return status, nil
}

// ValidateRequiredTables valide que toutes les tables requises existent
func (s *seedingService) ValidateRequiredTables(ctx context.Context) error {
	requiredTables := []string{
		"milieux",
		"statuts",
		"systemes",
		"annees",
		"admins",
	}

	for _, table := range requiredTables {
		exists, err := s.checkTableExists(ctx, table)
		if err != nil {
			return fmt.Errorf("erreur vérification table %s: %w", table, err)
		}
		if !exists {
			return ErrTableNotExists(table)
		}
	}

	return nil
}

// SeedReferencesFromJSON seed les référentiels depuis un fichier JSON
// INSERT uniquement : les libellés existants ne sont jamais modifiés
func (s *seedingService) SeedReferencesFromJSON(ctx context.Context, jsonPath string) error {
	references, err := s.LoadReferencesFromFile(jsonPath)
	if err != nil {
		return fmt.Errorf("chargement référentiels JSON: %w", err)
	}

	tx, err := s.pgClient.Pool().Begin(ctx)
	if err != nil {
		return fmt.Errorf("début transaction référentiels: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := s.seedVocabulary(ctx, tx, "milieux", "libelle_type_milieu", references.Milieux); err != nil {
		return fmt.Errorf("seeding milieux: %w", err)
	}
	if err := s.seedVocabulary(ctx, tx, "statuts", "libelle_type_statut_etab", references.Statuts); err != nil {
		return fmt.Errorf("seeding statuts: %w", err)
	}
	if err := s.seedVocabulary(ctx, tx, "systemes", "libelle_type_systeme", references.Systemes); err != nil {
		return fmt.Errorf("seeding systemes: %w", err)
	}
	if err := s.seedVocabulary(ctx, tx, "annees", "libelle_type_annee", references.Annees); err != nil {
		return fmt.Errorf("seeding annees: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction référentiels: %w", err)
	}

	return nil
}

// LoadReferencesFromFile charge les référentiels depuis un fichier JSON
func (s *seedingService) LoadReferencesFromFile(jsonPath string) (*ReferencesJSONStructure, error) {
	data, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, ErrJSONLoad(jsonPath, err)
	}

	var references ReferencesJSONStructure
	if err := json.Unmarshal(data, &references); err != nil {
		return nil, ErrJSONLoad(jsonPath, err)
	}

	return &references, nil
}

// seedVocabulary insère les libellés manquants d'un référentiel
func (s *seedingService) seedVocabulary(ctx context.Context, tx pgx.Tx, table, column string, labels []string) error {
	insertQuery := fmt.Sprintf(`
		INSERT INTO %s (%s, created_at, updated_at)
		VALUES ($1, $2, $2)
		ON CONFLICT (%s) DO NOTHING
	`, table, column, column)

	for _, label := range labels {
		if label == "" {
			return ErrValidation(fmt.Sprintf("libellé vide dans le référentiel %s", table))
		}

		if _, err := tx.Exec(ctx, insertQuery, label, time.Now()); err != nil {
			return ErrDatabaseOperation(fmt.Sprintf("insertion %s", table), err)
		}
	}

	fmt.Printf("[SEEDING] ✅ Référentiel %s traité (%d libellés)\n", table, len(labels))
	return nil
}

// SeedDefaultAdmins crée les admins par défaut (INSERT uniquement si l'email est absent)
func (s *seedingService) SeedDefaultAdmins(ctx context.Context) error {
	password := s.config.Seed.DefaultAdminPassword
	if password == "" {
		if s.config.Environment != "development" {
			return ErrValidation("SEED_ADMIN_PASSWORD requis hors environnement development")
		}
		password = "password123"
	}

	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash mot de passe admin par défaut: %w", err)
	}

	tx, err := s.pgClient.Pool().Begin(ctx)
	if err != nil {
		return fmt.Errorf("début transaction admins: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, admin := range defaultAdmins {
		exists, err := s.checkAdminExists(ctx, admin.Email)
		if err != nil {
			return fmt.Errorf("vérification admin %s: %w", admin.Email, err)
		}

		if exists {
			fmt.Printf("[SEEDING] ⏭️  Admin %s existe déjà - Ignoré\n", admin.Email)
			continue
		}

		insertQuery := `
			INSERT INTO admins (name, email, password_hash, role, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $5)
		`
		if _, err := tx.Exec(ctx, insertQuery,
			admin.Name, admin.Email, passwordHash, admin.Role, time.Now(),
		); err != nil {
			return ErrDatabaseOperation(fmt.Sprintf("insertion admin %s", admin.Email), err)
		}

		fmt.Printf("[SEEDING] ➕ Admin %s créé (%s)\n", admin.Email, admin.Role)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction admins: %w", err)
	}

	return nil
}

// Méthodes utilitaires privées
func (s *seedingService) checkReferencesExist(ctx context.Context) (bool, error) {
	query := `
		SELECT EXISTS(SELECT 1 FROM milieux)
		   AND EXISTS(SELECT 1 FROM statuts)
		   AND EXISTS(SELECT 1 FROM systemes)
	`

	var exists bool
	err := s.pgClient.Pool().QueryRow(ctx, query).Scan(&exists)
	return exists, err
}

func (s *seedingService) checkAdminsExist(ctx context.Context) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM admins WHERE role = 'superadmin')`

	var exists bool
	err := s.pgClient.Pool().QueryRow(ctx, query).Scan(&exists)
	return exists, err
}

func (s *seedingService) checkTableExists(ctx context.Context, tableName string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM information_schema.tables
			WHERE table_name = $1
		)
	`

	var exists bool
	err := s.pgClient.Pool().QueryRow(ctx, query, tableName).Scan(&exists)
	return exists, err
}

func (s *seedingService) checkAdminExists(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM admins WHERE email = $1)`

	var exists bool
	err := s.pgClient.Pool().QueryRow(ctx, query, email).Scan(&exists)
	return exists, err
}
