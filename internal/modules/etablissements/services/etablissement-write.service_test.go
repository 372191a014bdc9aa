package services

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carte-scolaire-core/internal/modules/etablissements/dto"
	"carte-scolaire-core/internal/modules/etablissements/queries"
)

type fakeRow struct {
	id  int64
	err error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if ptr, ok := dest[0].(*int64); ok {
		*ptr = r.id
	}
	return nil
}

type fakeQuerier struct {
	row fakeRow
}

func (q fakeQuerier) QueryRow(_ context.Context, _ string, _ ...interface{}) pgx.Row {
	return q.row
}

func TestResolveReferenceID(t *testing.T) {
	ctx := context.Background()
	query := queries.EtablissementQueries.ResolveMilieu

	t.Run("libellé connu", func(t *testing.T) {
		validation := dto.NewValidationError()
		db := fakeQuerier{row: fakeRow{id: 7}}

		id, err := resolveReferenceID(ctx, db, query, "Urbain", "libelle_type_milieu", validation)
		require.NoError(t, err)
		assert.Equal(t, int64(7), id)
		assert.False(t, validation.HasErrors())
	})

	t.Run("libellé inconnu donne une erreur de champ", func(t *testing.T) {
		validation := dto.NewValidationError()
		db := fakeQuerier{row: fakeRow{err: pgx.ErrNoRows}}

		id, err := resolveReferenceID(ctx, db, query, "Lunaire", "libelle_type_milieu", validation)
		require.NoError(t, err)
		assert.Equal(t, int64(0), id)
		require.True(t, validation.HasErrors())
		assert.Equal(t,
			[]string{"The selected libelle_type_milieu is invalid."},
			validation.Champs["libelle_type_milieu"],
		)
	})

	t.Run("panne du store remonte à l'appelant", func(t *testing.T) {
		validation := dto.NewValidationError()
		cause := errors.New("connexion perdue")
		db := fakeQuerier{row: fakeRow{err: cause}}

		_, err := resolveReferenceID(ctx, db, query, "Urbain", "libelle_type_milieu", validation)
		require.Error(t, err)
		assert.ErrorIs(t, err, cause)
		// Une panne n'est jamais présentée comme une faute du client
		assert.False(t, validation.HasErrors())
	})
}

func TestMergeHelpers(t *testing.T) {
	vrai := true
	assert.True(t, mergeBool(&vrai, false))
	assert.True(t, mergeBool(nil, true))
	assert.False(t, mergeBool(nil, false))

	quinze := 15
	assert.Equal(t, 15, mergeInt(&quinze, 3))
	assert.Equal(t, 3, mergeInt(nil, 3))
}
