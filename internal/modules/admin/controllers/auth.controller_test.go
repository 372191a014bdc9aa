package controllers

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carte-scolaire-core/internal/modules/admin/dto"
)

func TestValidateStructLoginRequest(t *testing.T) {
	v := validator.New()

	t.Run("requête valide", func(t *testing.T) {
		errs := validateStruct(v, dto.LoginRequest{
			Email:    "admin@example.com",
			Password: "password123",
		})
		assert.Nil(t, errs)
	})

	t.Run("champs manquants", func(t *testing.T) {
		errs := validateStruct(v, dto.LoginRequest{})
		require.NotNil(t, errs)

		require.Contains(t, errs, "email")
		require.Contains(t, errs, "password")
		assert.Equal(t, "The email field is required.", errs["email"][0])
		assert.Equal(t, "The password field is required.", errs["password"][0])
	})

	t.Run("email invalide", func(t *testing.T) {
		errs := validateStruct(v, dto.LoginRequest{
			Email:    "pas-un-email",
			Password: "password123",
		})
		require.Contains(t, errs, "email")
		assert.Equal(t, "The email field must be a valid email address.", errs["email"][0])
	})
}

func TestValidateStructCreateAdminRequest(t *testing.T) {
	v := validator.New()

	t.Run("requête valide", func(t *testing.T) {
		errs := validateStruct(v, dto.CreateAdminRequest{
			Name:     "Nouvel Admin",
			Email:    "nouvel.admin@example.com",
			Password: "motdepasse",
			Role:     dto.RoleAdmin,
		})
		assert.Nil(t, errs)
	})

	t.Run("mot de passe trop court", func(t *testing.T) {
		errs := validateStruct(v, dto.CreateAdminRequest{
			Name:     "Nouvel Admin",
			Email:    "nouvel.admin@example.com",
			Password: "court",
			Role:     dto.RoleAdmin,
		})
		require.Contains(t, errs, "password")
		assert.Equal(t, "The password field must be at least 8 characters.", errs["password"][0])
	})

	t.Run("rôle hors énumération", func(t *testing.T) {
		errs := validateStruct(v, dto.CreateAdminRequest{
			Name:     "Nouvel Admin",
			Email:    "nouvel.admin@example.com",
			Password: "motdepasse",
			Role:     "root",
		})
		require.Contains(t, errs, "role")
		assert.Equal(t, "The selected role is invalid.", errs["role"][0])
	})
}

func TestJSONFieldName(t *testing.T) {
	assert.Equal(t, "name", jsonFieldName("Name"))
	assert.Equal(t, "email", jsonFieldName("Email"))
	assert.Equal(t, "password", jsonFieldName("Password"))
	assert.Equal(t, "role", jsonFieldName("Role"))
	assert.Equal(t, "autre", jsonFieldName("Autre"))
}
