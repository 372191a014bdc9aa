package bootstrap

import (
	"context"
	"fmt"
	"os"

	"carte-scolaire-core/internal/app/config"
	"carte-scolaire-core/internal/infrastructure/database/seeds"
)

// SeedingManager gère le seeding intelligent des données initiales :
// référentiels (milieux, statuts, systèmes, années) et admins par défaut
type SeedingManager struct {
	config      *config.Config
	seedService seeds.SeedingService
}

// NewSeedingManager crée une nouvelle instance du gestionnaire de seeding
func NewSeedingManager(seedService seeds.SeedingService, cfg *config.Config) *SeedingManager {
	return &SeedingManager{
		config:      cfg,
		seedService: seedService,
	}
}

// CheckSeedDataExists vérifie quelles données de seeding existent déjà
func (sm *SeedingManager) CheckSeedDataExists(ctx context.Context) (*seeds.SeedDataStatus, error) {
	fmt.Printf("[SEEDING] Vérification données existantes\n")

	if err := sm.seedService.ValidateRequiredTables(ctx); err != nil {
		return nil, fmt.Errorf("tables de seeding manquantes: %w", err)
	}

	status, err := sm.seedService.CheckSeedDataExists(ctx)
	if err != nil {
		return nil, fmt.Errorf("erreur vérification données seeding: %w", err)
	}

	fmt.Printf("[SEEDING] État données: referentiels=%t, admins=%t\n",
		status.ReferencesExist, status.AdminsExist)

	return status, nil
}

// ApplySeeding applique le seeding selon les données manquantes
func (sm *SeedingManager) ApplySeeding(ctx context.Context, status *seeds.SeedDataStatus) error {
	if status.AllDataExists {
		fmt.Printf("[SEEDING] ✅ Toutes les données initiales sont déjà présentes\n")
		return nil
	}

	fmt.Printf("[SEEDING] 🌱 Application seeding données manquantes: %v\n", status.GetMissingSeeds())

	// 1. Créer les référentiels si manquants (depuis JSON)
	if !status.ReferencesExist {
		if err := sm.seedReferences(ctx); err != nil {
			return fmt.Errorf("échec seeding référentiels: %w", err)
		}
	}

	// 2. Créer les admins par défaut si manquants
	if !status.AdminsExist {
		if err := sm.seedDefaultAdmins(ctx); err != nil {
			return fmt.Errorf("échec seeding admins: %w", err)
		}
	}

	fmt.Printf("[SEEDING] ✅ Seeding terminé avec succès\n")
	return nil
}

// seedReferences exécute le seeding des référentiels depuis le fichier JSON
func (sm *SeedingManager) seedReferences(ctx context.Context) error {
	jsonPath := sm.config.Seed.ReferencesPath

	fmt.Printf("[SEEDING] 📋 Création référentiels depuis %s\n", jsonPath)

	if err := sm.seedService.SeedReferencesFromJSON(ctx, jsonPath); err != nil {
		return fmt.Errorf("seeding référentiels JSON: %w", err)
	}

	fmt.Printf("[SEEDING] ✅ Référentiels créés depuis JSON\n")
	return nil
}

// seedDefaultAdmins exécute le seeding des comptes admin par défaut
func (sm *SeedingManager) seedDefaultAdmins(ctx context.Context) error {
	fmt.Printf("[SEEDING] 👤 Création admins par défaut\n")

	if err := sm.seedService.SeedDefaultAdmins(ctx); err != nil {
		return fmt.Errorf("seeding admins par défaut: %w", err)
	}

	fmt.Printf("[SEEDING] ✅ Admins par défaut créés\n")
	return nil
}

// ValidateSeedFiles vérifie que le fichier de référentiels est présent
func (sm *SeedingManager) ValidateSeedFiles() error {
	if _, err := os.Stat(sm.config.Seed.ReferencesPath); os.IsNotExist(err) {
		return fmt.Errorf("fichier de seeding manquant: %s", sm.config.Seed.ReferencesPath)
	}
	return nil
}
