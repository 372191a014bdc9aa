package dto

import (
	"fmt"
	"math"
	"time"
)

// Etablissement représente la projection plate d'un établissement :
// les libellés des référentiels sont portés sous leurs noms historiques.
type Etablissement struct {
	ID               int64  `json:"id"`
	CodeEtablissement string `json:"code_etablissement"`
	NomEtablissement  string `json:"nom_etablissement"`

	// Localisation
	Region                string  `json:"region"`
	Prefecture            string  `json:"prefecture"`
	CantonVillageAutonome string  `json:"canton_village_autonome"`
	VilleVillageQuartier  string  `json:"ville_village_quartier"`
	CommuneEtab           *string `json:"commune_etab"`

	// Référentiels
	LibelleTypeMilieu     string  `json:"libelle_type_milieu"`
	LibelleTypeStatutEtab string  `json:"libelle_type_statut_etab"`
	LibelleTypeSysteme    string  `json:"libelle_type_systeme"`
	LibelleTypeAnnee      *string `json:"libelle_type_annee"`

	// Équipements
	ExisteElect        bool `json:"existe_elect"`
	ExisteLatrine      bool `json:"existe_latrine"`
	ExisteLatrineFonct bool `json:"existe_latrine_fonct"`
	AccesTouteSaison   bool `json:"acces_toute_saison"`
	Eau                bool `json:"eau"`

	// Effectifs
	SommedenbEffG int `json:"sommedenb_eff_g"`
	SommedenbEffF int `json:"sommedenb_eff_f"`
	Tot           int `json:"tot"`
	SommedenbEnsH int `json:"sommedenb_ens_h"`
	SommedenbEnsF int `json:"sommedenb_ens_f"`
	TotalEnse     int `json:"total_ense"`

	// Infrastructures
	SommedenbSallesClassesDur   int `json:"sommedenb_salles_classes_dur"`
	SommedenbSallesClassesBanco int `json:"sommedenb_salles_classes_banco"`
	SommedenbSallesClassesAutre int `json:"sommedenb_salles_classes_autre"`

	// Coordonnées (chaînes, comme collectées sur le terrain)
	Latitude  *string `json:"latitude"`
	Longitude *string `json:"longitude"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MapPoint représente la projection cartographique d'un établissement
type MapPoint struct {
	ID               int64   `json:"id"`
	NomEtablissement string  `json:"nom_etablissement"`
	Latitude         *string `json:"latitude"`
	Longitude        *string `json:"longitude"`
}

// CreateEtablissementRequest représente la requête de création (payload plat)
type CreateEtablissementRequest struct {
	CodeEtablissement     string  `json:"code_etablissement" validate:"required"`
	NomEtablissement      string  `json:"nom_etablissement" validate:"required"`
	Region                string  `json:"region" validate:"required"`
	Prefecture            string  `json:"prefecture" validate:"required"`
	CantonVillageAutonome string  `json:"canton_village_autonome" validate:"required"`
	VilleVillageQuartier  string  `json:"ville_village_quartier" validate:"required"`
	CommuneEtab           *string `json:"commune_etab"`

	LibelleTypeMilieu     string  `json:"libelle_type_milieu" validate:"required"`
	LibelleTypeStatutEtab string  `json:"libelle_type_statut_etab" validate:"required"`
	LibelleTypeSysteme    string  `json:"libelle_type_systeme" validate:"required"`
	LibelleTypeAnnee      *string `json:"libelle_type_annee"`

	ExisteElect        *bool `json:"existe_elect"`
	ExisteLatrine      *bool `json:"existe_latrine"`
	ExisteLatrineFonct *bool `json:"existe_latrine_fonct"`
	AccesTouteSaison   *bool `json:"acces_toute_saison"`
	Eau                *bool `json:"eau"`

	SommedenbEffG *int `json:"sommedenb_eff_g"`
	SommedenbEffF *int `json:"sommedenb_eff_f"`
	Tot           *int `json:"tot"`
	SommedenbEnsH *int `json:"sommedenb_ens_h"`
	SommedenbEnsF *int `json:"sommedenb_ens_f"`
	TotalEnse     *int `json:"total_ense"`

	SommedenbSallesClassesDur   *int `json:"sommedenb_salles_classes_dur"`
	SommedenbSallesClassesBanco *int `json:"sommedenb_salles_classes_banco"`
	SommedenbSallesClassesAutre *int `json:"sommedenb_salles_classes_autre"`

	Latitude  string `json:"latitude" validate:"required"`
	Longitude string `json:"longitude" validate:"required"`
}

// UpdateEtablissementRequest représente la requête de mise à jour partielle :
// seuls les champs présents dans le payload sont appliqués.
type UpdateEtablissementRequest struct {
	CodeEtablissement     *string `json:"code_etablissement"`
	NomEtablissement      *string `json:"nom_etablissement"`
	Region                *string `json:"region"`
	Prefecture            *string `json:"prefecture"`
	CantonVillageAutonome *string `json:"canton_village_autonome"`
	VilleVillageQuartier  *string `json:"ville_village_quartier"`
	CommuneEtab           *string `json:"commune_etab"`

	LibelleTypeMilieu     *string `json:"libelle_type_milieu"`
	LibelleTypeStatutEtab *string `json:"libelle_type_statut_etab"`
	LibelleTypeSysteme    *string `json:"libelle_type_systeme"`
	LibelleTypeAnnee      *string `json:"libelle_type_annee"`

	ExisteElect        *bool `json:"existe_elect"`
	ExisteLatrine      *bool `json:"existe_latrine"`
	ExisteLatrineFonct *bool `json:"existe_latrine_fonct"`
	AccesTouteSaison   *bool `json:"acces_toute_saison"`
	Eau                *bool `json:"eau"`

	SommedenbEffG *int `json:"sommedenb_eff_g"`
	SommedenbEffF *int `json:"sommedenb_eff_f"`
	Tot           *int `json:"tot"`
	SommedenbEnsH *int `json:"sommedenb_ens_h"`
	SommedenbEnsF *int `json:"sommedenb_ens_f"`
	TotalEnse     *int `json:"total_ense"`

	SommedenbSallesClassesDur   *int `json:"sommedenb_salles_classes_dur"`
	SommedenbSallesClassesBanco *int `json:"sommedenb_salles_classes_banco"`
	SommedenbSallesClassesAutre *int `json:"sommedenb_salles_classes_autre"`

	Latitude  *string `json:"latitude"`
	Longitude *string `json:"longitude"`
}

// HasChanges indique si au moins un champ est présent dans le payload.
// Un payload vide laisse l'enregistrement intact, updated_at compris.
func (r *UpdateEtablissementRequest) HasChanges() bool {
	textes := []*string{
		r.CodeEtablissement, r.NomEtablissement,
		r.Region, r.Prefecture, r.CantonVillageAutonome, r.VilleVillageQuartier, r.CommuneEtab,
		r.LibelleTypeMilieu, r.LibelleTypeStatutEtab, r.LibelleTypeSysteme, r.LibelleTypeAnnee,
		r.Latitude, r.Longitude,
	}
	for _, champ := range textes {
		if champ != nil {
			return true
		}
	}

	indicateurs := []*bool{
		r.ExisteElect, r.ExisteLatrine, r.ExisteLatrineFonct, r.AccesTouteSaison, r.Eau,
	}
	for _, champ := range indicateurs {
		if champ != nil {
			return true
		}
	}

	compteurs := []*int{
		r.SommedenbEffG, r.SommedenbEffF, r.Tot,
		r.SommedenbEnsH, r.SommedenbEnsF, r.TotalEnse,
		r.SommedenbSallesClassesDur, r.SommedenbSallesClassesBanco, r.SommedenbSallesClassesAutre,
	}
	for _, champ := range compteurs {
		if champ != nil {
			return true
		}
	}

	return false
}

// SearchFilters représente les filtres épars de la recherche.
// Un champ nil ne contraint pas la requête.
type SearchFilters struct {
	NomEtablissement      *string
	Region                *string
	Prefecture            *string
	LibelleTypeMilieu     *string
	LibelleTypeStatutEtab *string
	LibelleTypeSysteme    *string

	ExisteElect        *bool
	ExisteLatrine      *bool
	ExisteLatrineFonct *bool
	AccesTouteSaison   *bool
	Eau                *bool
}

// ValidationError porte les erreurs de validation par champ
type ValidationError struct {
	Champs map[string][]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation échouée (%d champs)", len(e.Champs))
}

// NewValidationError crée une erreur de validation vide
func NewValidationError() *ValidationError {
	return &ValidationError{Champs: make(map[string][]string)}
}

// Add ajoute un message d'erreur pour un champ
func (e *ValidationError) Add(field, message string) {
	e.Champs[field] = append(e.Champs[field], message)
}

// HasErrors indique si au moins un champ est en erreur
func (e *ValidationError) HasErrors() bool {
	return len(e.Champs) > 0
}

// PaginatedResponse reproduit l'enveloppe du paginator utilisée par les fronts
type PaginatedResponse struct {
	Data        []Etablissement `json:"data"`
	CurrentPage int             `json:"current_page"`
	PerPage     int             `json:"per_page"`
	Total       int             `json:"total"`
	LastPage    int             `json:"last_page"`
	From        *int            `json:"from"`
	To          *int            `json:"to"`
	Path        string          `json:"path"`
	FirstPageURL string         `json:"first_page_url"`
	LastPageURL  string         `json:"last_page_url"`
	NextPageURL  *string        `json:"next_page_url"`
	PrevPageURL  *string        `json:"prev_page_url"`
}

// NewPaginatedResponse construit l'enveloppe de pagination
func NewPaginatedResponse(data []Etablissement, total, page, perPage int, path string) *PaginatedResponse {
	lastPage := int(math.Ceil(float64(total) / float64(perPage)))
	if lastPage < 1 {
		lastPage = 1
	}

	response := &PaginatedResponse{
		Data:         data,
		CurrentPage:  page,
		PerPage:      perPage,
		Total:        total,
		LastPage:     lastPage,
		Path:         path,
		FirstPageURL: pageURL(path, 1),
		LastPageURL:  pageURL(path, lastPage),
	}

	if len(data) > 0 {
		from := (page-1)*perPage + 1
		to := from + len(data) - 1
		response.From = &from
		response.To = &to
	}

	if page < lastPage {
		next := pageURL(path, page+1)
		response.NextPageURL = &next
	}
	if page > 1 {
		prev := pageURL(path, page-1)
		response.PrevPageURL = &prev
	}

	return response
}

func pageURL(path string, page int) string {
	return fmt.Sprintf("%s?page=%d", path, page)
}
