package bootstrap

import (
	"context"
	"fmt"
	"time"

	"carte-scolaire-core/internal/app/config"
	pgInfra "carte-scolaire-core/internal/infrastructure/database/postgres"
	"carte-scolaire-core/internal/infrastructure/database/seeds"

	"go.uber.org/fx"
)

// BootstrapSystem orchestre le processus de démarrage automatique.
// 3 phases séquentielles : extensions, migrations, seeding.
type BootstrapSystem struct {
	extensionManager *ExtensionManager
	migrationManager *MigrationManager
	seedingManager   *SeedingManager
	config           *config.Config
	timeout          time.Duration
}

// BootstrapResult contient le résultat d'exécution du bootstrap
type BootstrapResult struct {
	Success        bool          `json:"success"`
	TotalDuration  time.Duration `json:"total_duration"`
	PhasesExecuted []PhaseResult `json:"phases_executed"`
	ErrorMessage   string        `json:"error_message,omitempty"`
}

// PhaseResult contient le résultat d'une phase du bootstrap
type PhaseResult struct {
	Phase       string        `json:"phase"`
	Success     bool          `json:"success"`
	Duration    time.Duration `json:"duration"`
	Description string        `json:"description"`
	Error       string        `json:"error,omitempty"`
}

// NewBootstrapSystem crée une nouvelle instance du système de bootstrap
func NewBootstrapSystem(
	extensionManager *ExtensionManager,
	migrationManager *MigrationManager,
	seedingManager *SeedingManager,
	config *config.Config,
) *BootstrapSystem {
	return &BootstrapSystem{
		extensionManager: extensionManager,
		migrationManager: migrationManager,
		seedingManager:   seedingManager,
		config:           config,
		timeout:          5 * time.Minute, // Timeout global 5 minutes
	}
}

// Execute lance le processus de bootstrap complet avec les 3 phases
func (bs *BootstrapSystem) Execute() (*BootstrapResult, error) {
	startTime := time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), bs.timeout)
	defer cancel()

	fmt.Printf("[BOOTSTRAP] Démarrage BootstrapSystem (timeout: %v)\n", bs.timeout)

	result := &BootstrapResult{
		Success:        true,
		PhasesExecuted: []PhaseResult{},
	}

	// Phase 0: Extensions PostgreSQL
	phase0Result := bs.executePhase0(ctx)
	result.PhasesExecuted = append(result.PhasesExecuted, phase0Result)
	if !phase0Result.Success {
		result.Success = false
		result.ErrorMessage = fmt.Sprintf("Phase 0 échouée: %s", phase0Result.Error)
		return bs.finalizeResult(result, startTime), fmt.Errorf("bootstrap failed at phase 0: %s", phase0Result.Error)
	}

	// Phase 1: Migrations SQL
	phase1Result := bs.executePhase1()
	result.PhasesExecuted = append(result.PhasesExecuted, phase1Result)
	if !phase1Result.Success {
		result.Success = false
		result.ErrorMessage = fmt.Sprintf("Phase 1 échouée: %s", phase1Result.Error)
		return bs.finalizeResult(result, startTime), fmt.Errorf("bootstrap failed at phase 1: %s", phase1Result.Error)
	}

	// Phase 2: Seeding données
	phase2Result := bs.executePhase2(ctx)
	result.PhasesExecuted = append(result.PhasesExecuted, phase2Result)
	if !phase2Result.Success {
		result.Success = false
		result.ErrorMessage = fmt.Sprintf("Phase 2 échouée: %s", phase2Result.Error)
		return bs.finalizeResult(result, startTime), fmt.Errorf("bootstrap failed at phase 2: %s", phase2Result.Error)
	}

	result = bs.finalizeResult(result, startTime)
	fmt.Printf("[BOOTSTRAP] ✅ BootstrapSystem terminé avec succès en %v\n", result.TotalDuration)
	fmt.Printf("[BOOTSTRAP] 🎯 Application prête pour démarrage serveur HTTP\n")

	return result, nil
}

// executePhase0 exécute la Phase 0: Extensions PostgreSQL
func (bs *BootstrapSystem) executePhase0(ctx context.Context) PhaseResult {
	startTime := time.Now()
	phase := "Phase 0: Extensions PostgreSQL"

	fmt.Printf("[BOOTSTRAP] 🔧 Démarrage %s\n", phase)

	err := bs.extensionManager.EnsureRequiredExtensions(ctx)
	duration := time.Since(startTime)

	if err != nil {
		fmt.Printf("[BOOTSTRAP] ❌ %s échouée en %v: %v\n", phase, duration, err)
		return PhaseResult{
			Phase:       phase,
			Success:     false,
			Duration:    duration,
			Description: "Création extension pg_trgm",
			Error:       err.Error(),
		}
	}

	fmt.Printf("[BOOTSTRAP] ✅ %s terminée en %v\n", phase, duration)
	return PhaseResult{
		Phase:       phase,
		Success:     true,
		Duration:    duration,
		Description: "Extensions PostgreSQL installées",
	}
}

// executePhase1 exécute la Phase 1: Migrations SQL
func (bs *BootstrapSystem) executePhase1() PhaseResult {
	startTime := time.Now()
	phase := "Phase 1: Migrations SQL"

	fmt.Printf("[BOOTSTRAP] 🗄️  Démarrage %s\n", phase)

	err := bs.migrationManager.EnsureMigrationsApplied()
	duration := time.Since(startTime)

	if err != nil {
		fmt.Printf("[BOOTSTRAP] ❌ %s échouée en %v: %v\n", phase, duration, err)
		return PhaseResult{
			Phase:       phase,
			Success:     false,
			Duration:    duration,
			Description: "Application migrations golang-migrate",
			Error:       err.Error(),
		}
	}

	fmt.Printf("[BOOTSTRAP] ✅ %s terminée en %v\n", phase, duration)
	return PhaseResult{
		Phase:       phase,
		Success:     true,
		Duration:    duration,
		Description: "Migrations SQL appliquées avec succès",
	}
}

// executePhase2 exécute la Phase 2: Seeding données
func (bs *BootstrapSystem) executePhase2(ctx context.Context) PhaseResult {
	startTime := time.Now()
	phase := "Phase 2: Seeding données"

	fmt.Printf("[BOOTSTRAP] 🌱 Démarrage %s\n", phase)

	status, err := bs.seedingManager.CheckSeedDataExists(ctx)
	if err != nil {
		duration := time.Since(startTime)
		fmt.Printf("[BOOTSTRAP] ❌ %s - Erreur vérification données en %v: %v\n", phase, duration, err)
		return PhaseResult{
			Phase:       phase,
			Success:     false,
			Duration:    duration,
			Description: "Vérification données existantes",
			Error:       fmt.Sprintf("data check failed: %v", err),
		}
	}

	err = bs.seedingManager.ApplySeeding(ctx, status)
	duration := time.Since(startTime)

	if err != nil {
		fmt.Printf("[BOOTSTRAP] ❌ %s échouée en %v: %v\n", phase, duration, err)
		return PhaseResult{
			Phase:       phase,
			Success:     false,
			Duration:    duration,
			Description: "Application seeding données",
			Error:       err.Error(),
		}
	}

	fmt.Printf("[BOOTSTRAP] ✅ %s terminée en %v\n", phase, duration)
	return PhaseResult{
		Phase:       phase,
		Success:     true,
		Duration:    duration,
		Description: "Référentiels et admins par défaut créés avec succès",
	}
}

// finalizeResult finalise le résultat avec la durée totale
func (bs *BootstrapSystem) finalizeResult(result *BootstrapResult, startTime time.Time) *BootstrapResult {
	result.TotalDuration = time.Since(startTime)
	return result
}

// GetTimeout retourne le timeout configuré
func (bs *BootstrapSystem) GetTimeout() time.Duration {
	return bs.timeout
}

// SetTimeout configure un nouveau timeout (utile pour les tests)
func (bs *BootstrapSystem) SetTimeout(timeout time.Duration) {
	bs.timeout = timeout
}

// Providers Fx pour le système de bootstrap

// NewBootstrapExtensionManager provider pour le gestionnaire d'extensions
func NewBootstrapExtensionManager(pgClient *pgInfra.Client, cfg *config.Config) *ExtensionManager {
	return NewExtensionManager(pgClient, cfg)
}

// NewBootstrapMigrationManager provider pour le gestionnaire de migrations
func NewBootstrapMigrationManager(cfg *config.Config) *MigrationManager {
	return NewMigrationManager(cfg)
}

// NewBootstrapSeedingManager provider pour le gestionnaire de seeding
func NewBootstrapSeedingManager(seedService seeds.SeedingService, cfg *config.Config) *SeedingManager {
	return NewSeedingManager(seedService, cfg)
}

// RegisterBootstrapLifecycle enregistre le système de bootstrap dans le cycle de vie Fx
func RegisterBootstrapLifecycle(
	lc fx.Lifecycle,
	bootstrap *BootstrapSystem,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			fmt.Printf("[LIFECYCLE] 🚀 Démarrage BootstrapSystem AVANT serveur HTTP\n")

			result, err := bootstrap.Execute()
			if err != nil {
				fmt.Printf("[LIFECYCLE] ❌ Bootstrap échoué: %v\n", err)
				return fmt.Errorf("bootstrap system failed: %w", err)
			}

			fmt.Printf("[LIFECYCLE] ✅ Bootstrap terminé en %v\n", result.TotalDuration)
			fmt.Printf("[LIFECYCLE] 🎯 Système prêt pour démarrage serveur HTTP\n")

			return nil
		},
		OnStop: func(ctx context.Context) error {
			fmt.Printf("[LIFECYCLE] 🛑 Arrêt BootstrapSystem\n")
			return nil
		},
	})
}
