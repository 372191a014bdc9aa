package seeds

import (
	"context"
)

// SeedDataStatus représente l'état des données de seeding
type SeedDataStatus struct {
	ReferencesExist bool `json:"references_exist"`
	AdminsExist     bool `json:"admins_exist"`
	AllDataExists   bool `json:"all_data_exists"`
}

// ReferencesJSONStructure représente la structure complète du fichier JSON des référentiels
type ReferencesJSONStructure struct {
	Milieux  []string `json:"milieux"`
	Statuts  []string `json:"statuts"`
	Systemes []string `json:"systemes"`
	Annees   []string `json:"annees"`
}

// SeedingService gère le seeding des référentiels et des admins par défaut
type SeedingService interface {
	// Vérifications d'état
	CheckSeedDataExists(ctx context.Context) (*SeedDataStatus, error)
	ValidateRequiredTables(ctx context.Context) error

	// Seeding des référentiels (milieux, statuts, systèmes, années)
	SeedReferencesFromJSON(ctx context.Context, jsonPath string) error

	// Seeding des admins par défaut
	SeedDefaultAdmins(ctx context.Context) error

	// Utilitaires
	LoadReferencesFromFile(jsonPath string) (*ReferencesJSONStructure, error)
}

// IsComplete vérifie si le seeding initial est complet
func (s *SeedDataStatus) IsComplete() bool {
	return s.ReferencesExist && s.AdminsExist
}

// GetMissingSeeds retourne la liste des seeds manquants
func (s *SeedDataStatus) GetMissingSeeds() []string {
	var missing []string

	if !s.ReferencesExist {
		missing = append(missing, "references")
	}
	if !s.AdminsExist {
		missing = append(missing, "admins")
	}

	return missing
}
