package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPaginatedResponse(t *testing.T) {
	makeData := func(n int) []Etablissement {
		data := make([]Etablissement, n)
		for i := range data {
			data[i] = Etablissement{ID: int64(i + 1)}
		}
		return data
	}

	path := "/api/v1/etablissements"

	t.Run("page intermédiaire", func(t *testing.T) {
		response := NewPaginatedResponse(makeData(10), 45, 2, 10, path)

		assert.Equal(t, 2, response.CurrentPage)
		assert.Equal(t, 10, response.PerPage)
		assert.Equal(t, 45, response.Total)
		assert.Equal(t, 5, response.LastPage)

		require.NotNil(t, response.From)
		require.NotNil(t, response.To)
		assert.Equal(t, 11, *response.From)
		assert.Equal(t, 20, *response.To)

		assert.Equal(t, path, response.Path)
		assert.Equal(t, path+"?page=1", response.FirstPageURL)
		assert.Equal(t, path+"?page=5", response.LastPageURL)

		require.NotNil(t, response.NextPageURL)
		require.NotNil(t, response.PrevPageURL)
		assert.Equal(t, path+"?page=3", *response.NextPageURL)
		assert.Equal(t, path+"?page=1", *response.PrevPageURL)
	})

	t.Run("première page sans précédente", func(t *testing.T) {
		response := NewPaginatedResponse(makeData(10), 45, 1, 10, path)

		assert.Nil(t, response.PrevPageURL)
		require.NotNil(t, response.NextPageURL)
		assert.Equal(t, path+"?page=2", *response.NextPageURL)

		require.NotNil(t, response.From)
		assert.Equal(t, 1, *response.From)
		assert.Equal(t, 10, *response.To)
	})

	t.Run("dernière page partielle", func(t *testing.T) {
		response := NewPaginatedResponse(makeData(5), 45, 5, 10, path)

		assert.Nil(t, response.NextPageURL)
		require.NotNil(t, response.PrevPageURL)
		assert.Equal(t, path+"?page=4", *response.PrevPageURL)

		require.NotNil(t, response.From)
		require.NotNil(t, response.To)
		assert.Equal(t, 41, *response.From)
		assert.Equal(t, 45, *response.To)
	})

	t.Run("répertoire vide", func(t *testing.T) {
		response := NewPaginatedResponse([]Etablissement{}, 0, 1, 10, path)

		assert.Equal(t, 0, response.Total)
		assert.Equal(t, 1, response.LastPage)
		assert.Nil(t, response.From)
		assert.Nil(t, response.To)
		assert.Nil(t, response.NextPageURL)
		assert.Nil(t, response.PrevPageURL)
		assert.NotNil(t, response.Data)
	})

	t.Run("page au-delà de la dernière", func(t *testing.T) {
		response := NewPaginatedResponse([]Etablissement{}, 45, 9, 10, path)

		assert.Equal(t, 9, response.CurrentPage)
		assert.Equal(t, 5, response.LastPage)
		assert.Nil(t, response.From)
		assert.Nil(t, response.To)
		assert.Nil(t, response.NextPageURL)
		require.NotNil(t, response.PrevPageURL)
	})

	t.Run("total non divisible arrondi au supérieur", func(t *testing.T) {
		response := NewPaginatedResponse(makeData(10), 41, 1, 10, path)
		assert.Equal(t, 5, response.LastPage)
	})
}

func TestUpdateRequestHasChanges(t *testing.T) {
	t.Run("payload vide", func(t *testing.T) {
		req := &UpdateEtablissementRequest{}
		assert.False(t, req.HasChanges())
	})

	t.Run("un champ texte suffit", func(t *testing.T) {
		nom := "EPP NOUVEAU"
		req := &UpdateEtablissementRequest{NomEtablissement: &nom}
		assert.True(t, req.HasChanges())
	})

	t.Run("un indicateur explicite suffit, même à false", func(t *testing.T) {
		faux := false
		req := &UpdateEtablissementRequest{Eau: &faux}
		assert.True(t, req.HasChanges())
	})

	t.Run("un compteur explicite suffit, même à zéro", func(t *testing.T) {
		zero := 0
		req := &UpdateEtablissementRequest{Tot: &zero}
		assert.True(t, req.HasChanges())
	})
}

func TestValidationError(t *testing.T) {
	validation := NewValidationError()
	assert.False(t, validation.HasErrors())

	validation.Add("code_etablissement", "The code etablissement field is required.")
	validation.Add("code_etablissement", "The code etablissement has already been taken.")
	validation.Add("region", "The region field is required.")

	assert.True(t, validation.HasErrors())
	assert.Len(t, validation.Champs["code_etablissement"], 2)
	assert.Len(t, validation.Champs["region"], 1)
	assert.NotEmpty(t, validation.Error())
}
