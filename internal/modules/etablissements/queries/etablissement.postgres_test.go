package queries

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchNomFilterEstSensibleALaCasse(t *testing.T) {
	// Le filtre sur le nom est une sous-chaîne en sémantique LIKE :
	// "école" ne doit pas matcher "École".
	assert.Contains(t, EtablissementQueries.SearchPage, "LIKE '%' || $1 || '%'")
	assert.False(t, strings.Contains(EtablissementQueries.SearchPage, "ILIKE"))
	assert.False(t, strings.Contains(EtablissementQueries.SearchCount, "ILIKE"))
}

func TestSearchFiltersSontEpars(t *testing.T) {
	// Chaque paramètre NULL doit laisser passer toutes les lignes
	for i := 1; i <= 11; i++ {
		assert.Contains(t, EtablissementQueries.SearchCount, fmt.Sprintf("$%d::", i))
	}
	assert.Equal(t, 11, strings.Count(EtablissementQueries.SearchCount, "IS NULL OR"))
}
