package controllers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T, url string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
	ctx.Request = httptest.NewRequest("GET", url, nil)
	return ctx
}

func TestParseID(t *testing.T) {
	tests := []struct {
		name     string
		param    string
		expected int64
		ok       bool
	}{
		{name: "id numérique", param: "42", expected: 42, ok: true},
		{name: "id non numérique", param: "abc", ok: false},
		{name: "id négatif", param: "-1", ok: false},
		{name: "id zéro", param: "0", ok: false},
		{name: "id vide", param: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := newTestContext(t, "/api/v1/etablissements/"+tt.param)
			ctx.Params = gin.Params{{Key: "id", Value: tt.param}}

			id, ok := parseID(ctx)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, id)
			}
		})
	}
}

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name            string
		url             string
		expectedPage    int
		expectedPerPage int
	}{
		{
			name:            "défauts sans paramètres",
			url:             "/api/v1/etablissements",
			expectedPage:    1,
			expectedPerPage: 10,
		},
		{
			name:            "valeurs explicites",
			url:             "/api/v1/etablissements?page=3&per_page=25",
			expectedPage:    3,
			expectedPerPage: 25,
		},
		{
			name:            "valeurs invalides retombent sur les défauts",
			url:             "/api/v1/etablissements?page=abc&per_page=xyz",
			expectedPage:    1,
			expectedPerPage: 10,
		},
		{
			name:            "page négative retombe sur 1",
			url:             "/api/v1/etablissements?page=-2",
			expectedPage:    1,
			expectedPerPage: 10,
		},
		{
			name:            "per_page plafonné",
			url:             "/api/v1/etablissements?per_page=500",
			expectedPage:    1,
			expectedPerPage: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := newTestContext(t, tt.url)

			page, perPage := parsePagination(ctx)
			assert.Equal(t, tt.expectedPage, page)
			assert.Equal(t, tt.expectedPerPage, perPage)
		})
	}
}

func TestParseSearchFilters(t *testing.T) {
	t.Run("aucun paramètre donne des filtres nil", func(t *testing.T) {
		ctx := newTestContext(t, "/api/v1/etablissements/search")

		filters, errs := parseSearchFilters(ctx)
		require.Empty(t, errs)

		assert.Nil(t, filters.NomEtablissement)
		assert.Nil(t, filters.Region)
		assert.Nil(t, filters.Prefecture)
		assert.Nil(t, filters.LibelleTypeMilieu)
		assert.Nil(t, filters.ExisteElect)
		assert.Nil(t, filters.Eau)
	})

	t.Run("paramètres présents sont retenus", func(t *testing.T) {
		ctx := newTestContext(t,
			"/api/v1/etablissements/search?nom_etablissement=EPP&region=Maritime&existe_elect=true&eau=false")

		filters, errs := parseSearchFilters(ctx)
		require.Empty(t, errs)

		require.NotNil(t, filters.NomEtablissement)
		assert.Equal(t, "EPP", *filters.NomEtablissement)

		require.NotNil(t, filters.Region)
		assert.Equal(t, "Maritime", *filters.Region)

		require.NotNil(t, filters.ExisteElect)
		assert.True(t, *filters.ExisteElect)

		require.NotNil(t, filters.Eau)
		assert.False(t, *filters.Eau)

		// Les absents restent nil
		assert.Nil(t, filters.Prefecture)
		assert.Nil(t, filters.ExisteLatrine)
	})

	t.Run("paramètre vide présent reste contraignant", func(t *testing.T) {
		ctx := newTestContext(t, "/api/v1/etablissements/search?region=")

		filters, errs := parseSearchFilters(ctx)
		require.Empty(t, errs)

		require.NotNil(t, filters.Region)
		assert.Equal(t, "", *filters.Region)
	})

	t.Run("booléen invalide remonte une erreur de champ", func(t *testing.T) {
		ctx := newTestContext(t, "/api/v1/etablissements/search?existe_elect=peut-etre")

		_, errs := parseSearchFilters(ctx)
		require.Contains(t, errs, "existe_elect")
		assert.Equal(t,
			"The existe elect field must be true or false.",
			errs["existe_elect"][0],
		)
	})
}

func TestEtablissementFieldName(t *testing.T) {
	assert.Equal(t, "code_etablissement", etablissementFieldName("CodeEtablissement"))
	assert.Equal(t, "canton_village_autonome", etablissementFieldName("CantonVillageAutonome"))
	assert.Equal(t, "latitude", etablissementFieldName("Latitude"))
	assert.Equal(t, "tot", etablissementFieldName("Tot"))
}
