package seeds

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadReferencesFromFile(t *testing.T) {
	service := &seedingService{}

	t.Run("fichier valide", func(t *testing.T) {
		jsonPath := filepath.Join(t.TempDir(), "references.json")
		content := `{
			"milieux": ["Urbain", "Rural"],
			"statuts": ["Public", "Privé Laïc"],
			"systemes": ["Primaire"],
			"annees": ["2022-2023"]
		}`
		require.NoError(t, os.WriteFile(jsonPath, []byte(content), 0o644))

		references, err := service.LoadReferencesFromFile(jsonPath)
		require.NoError(t, err)

		assert.Equal(t, []string{"Urbain", "Rural"}, references.Milieux)
		assert.Equal(t, []string{"Public", "Privé Laïc"}, references.Statuts)
		assert.Equal(t, []string{"Primaire"}, references.Systemes)
		assert.Equal(t, []string{"2022-2023"}, references.Annees)
	})

	t.Run("fichier absent", func(t *testing.T) {
		_, err := service.LoadReferencesFromFile(filepath.Join(t.TempDir(), "absent.json"))
		assert.Error(t, err)
	})

	t.Run("JSON invalide", func(t *testing.T) {
		jsonPath := filepath.Join(t.TempDir(), "references.json")
		require.NoError(t, os.WriteFile(jsonPath, []byte("{pas du json"), 0o644))

		_, err := service.LoadReferencesFromFile(jsonPath)
		assert.Error(t, err)
	})
}

func TestSeedDataStatus(t *testing.T) {
	complete := &SeedDataStatus{ReferencesExist: true, AdminsExist: true}
	assert.True(t, complete.IsComplete())
	assert.Empty(t, complete.GetMissingSeeds())

	partial := &SeedDataStatus{ReferencesExist: true}
	assert.False(t, partial.IsComplete())
	assert.Equal(t, []string{"admins"}, partial.GetMissingSeeds())

	empty := &SeedDataStatus{}
	assert.Equal(t, []string{"references", "admins"}, empty.GetMissingSeeds())
}
