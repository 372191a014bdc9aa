package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"carte-scolaire-core/internal/infrastructure/database/postgres"
	redisInfra "carte-scolaire-core/internal/infrastructure/database/redis"
	"carte-scolaire-core/internal/modules/etablissements/dto"
	"carte-scolaire-core/internal/modules/etablissements/queries"

	"github.com/jackc/pgx/v5"
)

// QueryService sert les lectures publiques du répertoire des établissements
type QueryService struct {
	db          *postgres.Client
	redisClient *redisInfra.Client
	listTTL     time.Duration
}

// NewQueryService crée une nouvelle instance du service de lecture
func NewQueryService(db *postgres.Client, redisClient *redisInfra.Client, listTTL time.Duration) *QueryService {
	if listTTL <= 0 {
		listTTL = 60 * time.Second
	}
	return &QueryService{
		db:          db,
		redisClient: redisClient,
		listTTL:     listTTL,
	}
}

// List retourne une page de la liste, servie depuis le cache Redis quand
// la clé page/per_page est encore chaude. Les écritures n'invalident pas
// ce cache : une page peut rester périmée pendant un TTL.
func (s *QueryService) List(ctx context.Context, page, perPage int, path string) (*dto.PaginatedResponse, error) {
	cacheKey, keyErr := s.redisClient.GenerateKey("cache_etablissements",
		fmt.Sprintf("page_%d_per_page_%d", page, perPage))

	// Cache-first
	if keyErr == nil {
		if cached, err := s.redisClient.Get(ctx, cacheKey); err == nil && cached != "" {
			var response dto.PaginatedResponse
			if err := json.Unmarshal([]byte(cached), &response); err == nil {
				return &response, nil
			}
			// Entrée illisible : on la laisse expirer et on repart de PostgreSQL
		}
	}

	var total int
	if err := s.db.QueryRow(ctx, queries.EtablissementQueries.Count).Scan(&total); err != nil {
		return nil, fmt.Errorf("comptage établissements: %w", err)
	}

	offset := (page - 1) * perPage
	rows, err := s.db.Query(ctx, queries.EtablissementQueries.List, perPage, offset)
	if err != nil {
		return nil, fmt.Errorf("liste établissements: %w", err)
	}
	defer rows.Close()

	data, err := scanEtablissements(rows)
	if err != nil {
		return nil, err
	}

	response := dto.NewPaginatedResponse(data, total, page, perPage, path)

	// Alimenter le cache (best effort)
	if keyErr == nil {
		if payload, err := json.Marshal(response); err == nil {
			if err := s.redisClient.Set(ctx, cacheKey, payload, s.listTTL); err != nil {
				log.Printf("[ETABLISSEMENTS] Warning: cache liste indisponible: %v", err)
			}
		}
	}

	return response, nil
}

// Search retourne une page filtrée, jamais mise en cache
func (s *QueryService) Search(ctx context.Context, filters *dto.SearchFilters, page, perPage int, path string) (*dto.PaginatedResponse, error) {
	args := []interface{}{
		filters.NomEtablissement,
		filters.Region,
		filters.Prefecture,
		filters.LibelleTypeMilieu,
		filters.LibelleTypeStatutEtab,
		filters.LibelleTypeSysteme,
		filters.ExisteElect,
		filters.ExisteLatrine,
		filters.ExisteLatrineFonct,
		filters.AccesTouteSaison,
		filters.Eau,
	}

	var total int
	if err := s.db.QueryRow(ctx, queries.EtablissementQueries.SearchCount, args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("comptage recherche: %w", err)
	}

	offset := (page - 1) * perPage
	pageArgs := append(args, perPage, offset)

	rows, err := s.db.Query(ctx, queries.EtablissementQueries.SearchPage, pageArgs...)
	if err != nil {
		return nil, fmt.Errorf("recherche établissements: %w", err)
	}
	defer rows.Close()

	data, err := scanEtablissements(rows)
	if err != nil {
		return nil, err
	}

	return dto.NewPaginatedResponse(data, total, page, perPage, path), nil
}

// MapPoints retourne la projection cartographique de tout le répertoire
func (s *QueryService) MapPoints(ctx context.Context) ([]dto.MapPoint, error) {
	rows, err := s.db.Query(ctx, queries.EtablissementQueries.MapProjection)
	if err != nil {
		return nil, fmt.Errorf("projection carte: %w", err)
	}
	defer rows.Close()

	points := []dto.MapPoint{}
	for rows.Next() {
		var point dto.MapPoint
		if err := rows.Scan(&point.ID, &point.NomEtablissement, &point.Latitude, &point.Longitude); err != nil {
			return nil, fmt.Errorf("scan point carte: %w", err)
		}
		points = append(points, point)
	}

	return points, rows.Err()
}

// GetByID retourne le détail plat d'un établissement.
// Renvoie pgx.ErrNoRows si l'id est inconnu.
func (s *QueryService) GetByID(ctx context.Context, id int64) (*dto.Etablissement, error) {
	row := s.db.QueryRow(ctx, queries.EtablissementQueries.GetByID, id)

	etablissement, err := scanEtablissement(row)
	if err != nil {
		return nil, err
	}

	return etablissement, nil
}

// scanEtablissement lit une ligne de la projection plate
func scanEtablissement(row pgx.Row) (*dto.Etablissement, error) {
	var e dto.Etablissement

	err := row.Scan(
		&e.ID,
		&e.CodeEtablissement,
		&e.NomEtablissement,
		&e.Region,
		&e.Prefecture,
		&e.CantonVillageAutonome,
		&e.VilleVillageQuartier,
		&e.CommuneEtab,
		&e.LibelleTypeMilieu,
		&e.LibelleTypeStatutEtab,
		&e.LibelleTypeSysteme,
		&e.LibelleTypeAnnee,
		&e.ExisteElect,
		&e.ExisteLatrine,
		&e.ExisteLatrineFonct,
		&e.AccesTouteSaison,
		&e.Eau,
		&e.SommedenbEffG,
		&e.SommedenbEffF,
		&e.Tot,
		&e.SommedenbEnsH,
		&e.SommedenbEnsF,
		&e.TotalEnse,
		&e.SommedenbSallesClassesDur,
		&e.SommedenbSallesClassesBanco,
		&e.SommedenbSallesClassesAutre,
		&e.Latitude,
		&e.Longitude,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &e, nil
}

// scanEtablissements lit toutes les lignes d'une page
func scanEtablissements(rows pgx.Rows) ([]dto.Etablissement, error) {
	data := []dto.Etablissement{}
	for rows.Next() {
		etablissement, err := scanEtablissement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan établissement: %w", err)
		}
		data = append(data, *etablissement)
	}

	return data, rows.Err()
}
