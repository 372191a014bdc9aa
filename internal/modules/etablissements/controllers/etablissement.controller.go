package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5"

	"carte-scolaire-core/internal/modules/etablissements/dto"
	"carte-scolaire-core/internal/modules/etablissements/services"
)

const (
	defaultPerPage = 10
	maxPerPage     = 100

	notFoundMessage = "Établissement non trouvé"
)

type EtablissementController struct {
	queryService *services.QueryService
	writeService *services.WriteService
	validator    *validator.Validate
}

// NewEtablissementController crée une nouvelle instance du contrôleur
func NewEtablissementController(queryService *services.QueryService, writeService *services.WriteService) *EtablissementController {
	return &EtablissementController{
		queryService: queryService,
		writeService: writeService,
		validator:    validator.New(),
	}
}

// List - GET /api/v1/etablissements
func (c *EtablissementController) List(ctx *gin.Context) {
	page, perPage := parsePagination(ctx)

	response, err := c.queryService.List(ctx.Request.Context(), page, perPage, ctx.FullPath())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error": "Erreur lors de la récupération des établissements",
		})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// Search - GET /api/v1/etablissements/search
// Filtres épars : un paramètre absent ne contraint pas la recherche
func (c *EtablissementController) Search(ctx *gin.Context) {
	filters, validationErrs := parseSearchFilters(ctx)
	if len(validationErrs) > 0 {
		ctx.JSON(http.StatusBadRequest, validationErrs)
		return
	}

	page, perPage := parsePagination(ctx)

	response, err := c.queryService.Search(ctx.Request.Context(), filters, page, perPage, ctx.FullPath())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error": "Erreur lors de la recherche des établissements",
		})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// MapView - GET /api/v1/etablissements/map
func (c *EtablissementController) MapView(ctx *gin.Context) {
	points, err := c.queryService.MapPoints(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error": "Erreur lors de la récupération des coordonnées",
		})
		return
	}

	ctx.JSON(http.StatusOK, points)
}

// Show - GET /api/v1/etablissements/:id
func (c *EtablissementController) Show(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		respondNotFound(ctx)
		return
	}

	etablissement, err := c.queryService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		if err == pgx.ErrNoRows {
			respondNotFound(ctx)
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error": "Erreur lors de la récupération de l'établissement",
		})
		return
	}

	ctx.JSON(http.StatusOK, etablissement)
}

// Create - POST /api/v1/etablissements
func (c *EtablissementController) Create(ctx *gin.Context) {
	var req dto.CreateEtablissementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"body": []string{"Invalid request payload."},
		})
		return
	}

	if errs := c.validateCreateRequest(&req); errs.HasErrors() {
		ctx.JSON(http.StatusBadRequest, errs.Champs)
		return
	}

	etablissement, err := c.writeService.Create(ctx.Request.Context(), &req)
	if err != nil {
		if validationErr, ok := err.(*dto.ValidationError); ok {
			ctx.JSON(http.StatusBadRequest, validationErr.Champs)
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error": "Erreur lors de la création de l'établissement",
		})
		return
	}

	ctx.JSON(http.StatusCreated, etablissement)
}

// Update - PUT /api/v1/etablissements/:id
// Sémantique partielle : seuls les champs présents sont appliqués
func (c *EtablissementController) Update(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		respondNotFound(ctx)
		return
	}

	var req dto.UpdateEtablissementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"body": []string{"Invalid request payload."},
		})
		return
	}

	etablissement, err := c.writeService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		if err == pgx.ErrNoRows {
			respondNotFound(ctx)
			return
		}
		if validationErr, ok := err.(*dto.ValidationError); ok {
			ctx.JSON(http.StatusBadRequest, validationErr.Champs)
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error": "Erreur lors de la mise à jour de l'établissement",
		})
		return
	}

	ctx.JSON(http.StatusOK, etablissement)
}

// Delete - DELETE /api/v1/etablissements/:id
func (c *EtablissementController) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		respondNotFound(ctx)
		return
	}

	if err := c.writeService.Delete(ctx.Request.Context(), id); err != nil {
		if err == pgx.ErrNoRows {
			respondNotFound(ctx)
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error": "Erreur lors de la suppression de l'établissement",
		})
		return
	}

	ctx.Status(http.StatusNoContent)
}

// validateCreateRequest valide les champs requis du payload de création
func (c *EtablissementController) validateCreateRequest(req *dto.CreateEtablissementRequest) *dto.ValidationError {
	validation := dto.NewValidationError()

	err := c.validator.Struct(req)
	if err == nil {
		return validation
	}

	for _, fieldErr := range err.(validator.ValidationErrors) {
		field := etablissementFieldName(fieldErr.Field())
		validation.Add(field, fieldMessage(field, fieldErr))
	}

	return validation
}

// parseID coerce le paramètre de chemin en identifiant entier.
// Un id non numérique se comporte comme un id inconnu.
func parseID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// parsePagination lit page et per_page avec défauts et bornes
func parsePagination(ctx *gin.Context) (int, int) {
	page, err := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	perPage, err := strconv.Atoi(ctx.DefaultQuery("per_page", strconv.Itoa(defaultPerPage)))
	if err != nil || perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}

	return page, perPage
}

// parseSearchFilters construit les filtres épars depuis la query string
func parseSearchFilters(ctx *gin.Context) (*dto.SearchFilters, map[string][]string) {
	filters := &dto.SearchFilters{}
	errs := map[string][]string{}

	stringFilter := func(name string) *string {
		if value, exists := ctx.GetQuery(name); exists {
			return &value
		}
		return nil
	}

	boolFilter := func(name string) *bool {
		value, exists := ctx.GetQuery(name)
		if !exists {
			return nil
		}
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			errs[name] = append(errs[name],
				fmt.Sprintf("The %s field must be true or false.", strings.ReplaceAll(name, "_", " ")))
			return nil
		}
		return &parsed
	}

	filters.NomEtablissement = stringFilter("nom_etablissement")
	filters.Region = stringFilter("region")
	filters.Prefecture = stringFilter("prefecture")
	filters.LibelleTypeMilieu = stringFilter("libelle_type_milieu")
	filters.LibelleTypeStatutEtab = stringFilter("libelle_type_statut_etab")
	filters.LibelleTypeSysteme = stringFilter("libelle_type_systeme")

	filters.ExisteElect = boolFilter("existe_elect")
	filters.ExisteLatrine = boolFilter("existe_latrine")
	filters.ExisteLatrineFonct = boolFilter("existe_latrine_fonct")
	filters.AccesTouteSaison = boolFilter("acces_toute_saison")
	filters.Eau = boolFilter("eau")

	return filters, errs
}

func respondNotFound(ctx *gin.Context) {
	ctx.JSON(http.StatusNotFound, gin.H{
		"error": notFoundMessage,
	})
}

// etablissementFieldName convertit un nom de champ Go en nom JSON
func etablissementFieldName(fieldName string) string {
	mapping := map[string]string{
		"CodeEtablissement":     "code_etablissement",
		"NomEtablissement":      "nom_etablissement",
		"Region":                "region",
		"Prefecture":            "prefecture",
		"CantonVillageAutonome": "canton_village_autonome",
		"VilleVillageQuartier":  "ville_village_quartier",
		"CommuneEtab":           "commune_etab",
		"LibelleTypeMilieu":     "libelle_type_milieu",
		"LibelleTypeStatutEtab": "libelle_type_statut_etab",
		"LibelleTypeSysteme":    "libelle_type_systeme",
		"LibelleTypeAnnee":      "libelle_type_annee",
		"Latitude":              "latitude",
		"Longitude":             "longitude",
	}

	if jsonName, exists := mapping[fieldName]; exists {
		return jsonName
	}
	return strings.ToLower(fieldName)
}

// fieldMessage construit le message de validation attendu par les fronts
func fieldMessage(field string, err validator.FieldError) string {
	attribute := strings.ReplaceAll(field, "_", " ")

	switch err.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", attribute)
	case "max":
		return fmt.Sprintf("The %s field must not be greater than %s characters.", attribute, err.Param())
	default:
		return fmt.Sprintf("The %s field is invalid.", attribute)
	}
}
