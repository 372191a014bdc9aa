package services

import (
	"context"
	"fmt"

	"carte-scolaire-core/internal/infrastructure/database/postgres"
	"carte-scolaire-core/internal/modules/etablissements/dto"
	"carte-scolaire-core/internal/modules/etablissements/queries"

	"github.com/jackc/pgx/v5"
)

// WriteService gère les écritures du répertoire des établissements.
// Chaque opération est exécutée dans une transaction unique ; les lignes
// satellites (équipements, effectifs, infrastructures) suivent le parent.
type WriteService struct {
	db           *postgres.Client
	txManager    *postgres.TransactionManager
	queryService *QueryService
}

// NewWriteService crée une nouvelle instance du service d'écriture
func NewWriteService(db *postgres.Client, txManager *postgres.TransactionManager, queryService *QueryService) *WriteService {
	return &WriteService{
		db:           db,
		txManager:    txManager,
		queryService: queryService,
	}
}

// Create crée un établissement avec ses lignes satellites
func (s *WriteService) Create(ctx context.Context, req *dto.CreateEtablissementRequest) (*dto.Etablissement, error) {
	validation := dto.NewValidationError()

	// Unicité du code
	var codeExists bool
	if err := s.db.QueryRow(ctx, queries.EtablissementQueries.ExistsByCode, req.CodeEtablissement).Scan(&codeExists); err != nil {
		return nil, fmt.Errorf("vérification code établissement: %w", err)
	}
	if codeExists {
		validation.Add("code_etablissement", "The code etablissement has already been taken.")
	}

	// Résolution des référentiels (seed-only : libellé inconnu = erreur de champ)
	milieuID, err := resolveReferenceID(ctx, s.db, queries.EtablissementQueries.ResolveMilieu,
		req.LibelleTypeMilieu, "libelle_type_milieu", validation)
	if err != nil {
		return nil, err
	}
	statutID, err := resolveReferenceID(ctx, s.db, queries.EtablissementQueries.ResolveStatut,
		req.LibelleTypeStatutEtab, "libelle_type_statut_etab", validation)
	if err != nil {
		return nil, err
	}
	systemeID, err := resolveReferenceID(ctx, s.db, queries.EtablissementQueries.ResolveSysteme,
		req.LibelleTypeSysteme, "libelle_type_systeme", validation)
	if err != nil {
		return nil, err
	}

	var anneeID *int64
	if req.LibelleTypeAnnee != nil && *req.LibelleTypeAnnee != "" {
		id, err := resolveReferenceID(ctx, s.db, queries.EtablissementQueries.ResolveAnnee,
			*req.LibelleTypeAnnee, "libelle_type_annee", validation)
		if err != nil {
			return nil, err
		}
		anneeID = &id
	}

	if validation.HasErrors() {
		return nil, validation
	}

	var etablissementID int64
	err = s.txManager.WithTransaction(ctx, func(tx *postgres.Transaction) error {
		localisationID, err := s.findOrCreateLocalisation(ctx, tx,
			req.Region, req.Prefecture, req.CantonVillageAutonome,
			req.VilleVillageQuartier, req.CommuneEtab)
		if err != nil {
			return err
		}

		row := tx.QueryRow(ctx, queries.EtablissementQueries.InsertEtablissement,
			req.CodeEtablissement, req.NomEtablissement,
			req.Latitude, req.Longitude,
			localisationID, milieuID, statutID, systemeID, anneeID)
		if err := row.Scan(&etablissementID); err != nil {
			return fmt.Errorf("insertion établissement: %w", err)
		}

		if err := tx.Exec(ctx, queries.EtablissementQueries.InsertEquipement,
			etablissementID,
			boolOrDefault(req.ExisteElect),
			boolOrDefault(req.ExisteLatrine),
			boolOrDefault(req.ExisteLatrineFonct),
			boolOrDefault(req.AccesTouteSaison),
			boolOrDefault(req.Eau),
		); err != nil {
			return fmt.Errorf("insertion équipements: %w", err)
		}

		if err := tx.Exec(ctx, queries.EtablissementQueries.InsertEffectif,
			etablissementID,
			intOrDefault(req.SommedenbEffG),
			intOrDefault(req.SommedenbEffF),
			intOrDefault(req.Tot),
			intOrDefault(req.SommedenbEnsH),
			intOrDefault(req.SommedenbEnsF),
			intOrDefault(req.TotalEnse),
		); err != nil {
			return fmt.Errorf("insertion effectifs: %w", err)
		}

		if err := tx.Exec(ctx, queries.EtablissementQueries.InsertInfrastructure,
			etablissementID,
			intOrDefault(req.SommedenbSallesClassesDur),
			intOrDefault(req.SommedenbSallesClassesBanco),
			intOrDefault(req.SommedenbSallesClassesAutre),
		); err != nil {
			return fmt.Errorf("insertion infrastructures: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.queryService.GetByID(ctx, etablissementID)
}

// Update applique une mise à jour partielle : seuls les champs présents
// remplacent l'état courant, le reste est conservé.
func (s *WriteService) Update(ctx context.Context, id int64, req *dto.UpdateEtablissementRequest) (*dto.Etablissement, error) {
	current, err := s.queryService.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Payload vide : rien à appliquer, l'enregistrement reste inchangé
	if !req.HasChanges() {
		return current, nil
	}

	validation := dto.NewValidationError()

	// Fusion champ par champ avec l'état courant
	code := current.CodeEtablissement
	if req.CodeEtablissement != nil {
		code = *req.CodeEtablissement
	}

	if code != current.CodeEtablissement {
		var codeExists bool
		if err := s.db.QueryRow(ctx, queries.EtablissementQueries.ExistsByCodeExcluding, code, id).Scan(&codeExists); err != nil {
			return nil, fmt.Errorf("vérification code établissement: %w", err)
		}
		if codeExists {
			validation.Add("code_etablissement", "The code etablissement has already been taken.")
		}
	}

	nom := current.NomEtablissement
	if req.NomEtablissement != nil {
		nom = *req.NomEtablissement
	}

	latitude := current.Latitude
	if req.Latitude != nil {
		latitude = req.Latitude
	}
	longitude := current.Longitude
	if req.Longitude != nil {
		longitude = req.Longitude
	}

	// Référentiels : libellé fourni sinon libellé courant, re-résolu en id
	milieuLabel := current.LibelleTypeMilieu
	if req.LibelleTypeMilieu != nil {
		milieuLabel = *req.LibelleTypeMilieu
	}
	statutLabel := current.LibelleTypeStatutEtab
	if req.LibelleTypeStatutEtab != nil {
		statutLabel = *req.LibelleTypeStatutEtab
	}
	systemeLabel := current.LibelleTypeSysteme
	if req.LibelleTypeSysteme != nil {
		systemeLabel = *req.LibelleTypeSysteme
	}
	anneeLabel := current.LibelleTypeAnnee
	if req.LibelleTypeAnnee != nil {
		anneeLabel = req.LibelleTypeAnnee
	}

	milieuID, err := resolveReferenceID(ctx, s.db, queries.EtablissementQueries.ResolveMilieu,
		milieuLabel, "libelle_type_milieu", validation)
	if err != nil {
		return nil, err
	}
	statutID, err := resolveReferenceID(ctx, s.db, queries.EtablissementQueries.ResolveStatut,
		statutLabel, "libelle_type_statut_etab", validation)
	if err != nil {
		return nil, err
	}
	systemeID, err := resolveReferenceID(ctx, s.db, queries.EtablissementQueries.ResolveSysteme,
		systemeLabel, "libelle_type_systeme", validation)
	if err != nil {
		return nil, err
	}

	var anneeID *int64
	if anneeLabel != nil && *anneeLabel != "" {
		resolved, err := resolveReferenceID(ctx, s.db, queries.EtablissementQueries.ResolveAnnee,
			*anneeLabel, "libelle_type_annee", validation)
		if err != nil {
			return nil, err
		}
		anneeID = &resolved
	}

	if validation.HasErrors() {
		return nil, validation
	}

	// Localisation : fusion avec le 5-uplet courant puis find-or-create
	region := current.Region
	if req.Region != nil {
		region = *req.Region
	}
	prefecture := current.Prefecture
	if req.Prefecture != nil {
		prefecture = *req.Prefecture
	}
	canton := current.CantonVillageAutonome
	if req.CantonVillageAutonome != nil {
		canton = *req.CantonVillageAutonome
	}
	ville := current.VilleVillageQuartier
	if req.VilleVillageQuartier != nil {
		ville = *req.VilleVillageQuartier
	}
	commune := current.CommuneEtab
	if req.CommuneEtab != nil {
		commune = req.CommuneEtab
	}

	err = s.txManager.WithTransaction(ctx, func(tx *postgres.Transaction) error {
		localisationID, err := s.findOrCreateLocalisation(ctx, tx,
			region, prefecture, canton, ville, commune)
		if err != nil {
			return err
		}

		if err := tx.Exec(ctx, queries.EtablissementQueries.UpdateEtablissement,
			id, code, nom, latitude, longitude,
			localisationID, milieuID, statutID, systemeID, anneeID,
		); err != nil {
			return fmt.Errorf("mise à jour établissement: %w", err)
		}

		if err := tx.Exec(ctx, queries.EtablissementQueries.UpdateEquipement,
			id,
			mergeBool(req.ExisteElect, current.ExisteElect),
			mergeBool(req.ExisteLatrine, current.ExisteLatrine),
			mergeBool(req.ExisteLatrineFonct, current.ExisteLatrineFonct),
			mergeBool(req.AccesTouteSaison, current.AccesTouteSaison),
			mergeBool(req.Eau, current.Eau),
		); err != nil {
			return fmt.Errorf("mise à jour équipements: %w", err)
		}

		if err := tx.Exec(ctx, queries.EtablissementQueries.UpdateEffectif,
			id,
			mergeInt(req.SommedenbEffG, current.SommedenbEffG),
			mergeInt(req.SommedenbEffF, current.SommedenbEffF),
			mergeInt(req.Tot, current.Tot),
			mergeInt(req.SommedenbEnsH, current.SommedenbEnsH),
			mergeInt(req.SommedenbEnsF, current.SommedenbEnsF),
			mergeInt(req.TotalEnse, current.TotalEnse),
		); err != nil {
			return fmt.Errorf("mise à jour effectifs: %w", err)
		}

		if err := tx.Exec(ctx, queries.EtablissementQueries.UpdateInfrastructure,
			id,
			mergeInt(req.SommedenbSallesClassesDur, current.SommedenbSallesClassesDur),
			mergeInt(req.SommedenbSallesClassesBanco, current.SommedenbSallesClassesBanco),
			mergeInt(req.SommedenbSallesClassesAutre, current.SommedenbSallesClassesAutre),
		); err != nil {
			return fmt.Errorf("mise à jour infrastructures: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.queryService.GetByID(ctx, id)
}

// Delete supprime un établissement, satellites compris (cascade FK).
// Renvoie pgx.ErrNoRows si l'id est inconnu.
func (s *WriteService) Delete(ctx context.Context, id int64) error {
	if _, err := s.queryService.GetByID(ctx, id); err != nil {
		return err
	}

	return s.db.Exec(ctx, queries.EtablissementQueries.Delete, id)
}

// rowQuerier est la surface minimale du store utilisée pour la résolution
type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

// resolveReferenceID résout un libellé de référentiel en id.
// Libellé inconnu : erreur de champ ajoutée à la validation.
// Panne du store : erreur remontée à l'appelant, jamais une erreur de champ.
func resolveReferenceID(ctx context.Context, db rowQuerier, query, label, field string, validation *dto.ValidationError) (int64, error) {
	var id int64
	err := db.QueryRow(ctx, query, label).Scan(&id)
	if err == pgx.ErrNoRows {
		validation.Add(field, fmt.Sprintf("The selected %s is invalid.", field))
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("résolution %s: %w", field, err)
	}
	return id, nil
}

// findOrCreateLocalisation retrouve ou crée le 5-uplet de localisation
func (s *WriteService) findOrCreateLocalisation(ctx context.Context, tx *postgres.Transaction,
	region, prefecture, canton, ville string, commune *string) (int64, error) {

	var id int64
	err := tx.QueryRow(ctx, queries.EtablissementQueries.FindLocalisation,
		region, prefecture, canton, ville, commune).Scan(&id)
	if err == nil {
		return id, nil
	}
	if err != pgx.ErrNoRows {
		return 0, fmt.Errorf("recherche localisation: %w", err)
	}

	err = tx.QueryRow(ctx, queries.EtablissementQueries.CreateLocalisation,
		region, prefecture, canton, ville, commune).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("création localisation: %w", err)
	}

	return id, nil
}

func boolOrDefault(value *bool) bool {
	if value == nil {
		return false
	}
	return *value
}

func intOrDefault(value *int) int {
	if value == nil {
		return 0
	}
	return *value
}

func mergeBool(value *bool, current bool) bool {
	if value == nil {
		return current
	}
	return *value
}

func mergeInt(value *int, current int) int {
	if value == nil {
		return current
	}
	return *value
}
