package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carte-scolaire-core/internal/modules/admin/dto"
)

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		expected string
	}{
		{
			name:     "token bearer standard",
			header:   "Bearer 0c48cbad-3c4f-4f62-9b41-1d0b6f9f0001",
			expected: "0c48cbad-3c4f-4f62-9b41-1d0b6f9f0001",
		},
		{
			name:     "schéma en minuscules accepté",
			header:   "bearer mon-token",
			expected: "mon-token",
		},
		{
			name:     "header vide",
			header:   "",
			expected: "",
		},
		{
			name:     "mauvais schéma",
			header:   "Basic dXNlcjpwYXNz",
			expected: "",
		},
		{
			name:     "token manquant",
			header:   "Bearer",
			expected: "",
		},
		{
			name:     "trop de segments",
			header:   "Bearer abc def",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractBearerToken(tt.header))
		})
	}
}

func TestGetSessionContext(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("session présente", func(t *testing.T) {
		ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
		ctx.Set("session", SessionContext{
			AdminID: 42,
			Role:    dto.RoleSuperAdmin,
		})

		session, ok := GetSessionContext(ctx)
		require.True(t, ok)
		assert.Equal(t, int64(42), session.AdminID)
		assert.True(t, session.IsSuperAdmin())
	})

	t.Run("session absente", func(t *testing.T) {
		ctx, _ := gin.CreateTestContext(httptest.NewRecorder())

		_, ok := GetSessionContext(ctx)
		assert.False(t, ok)
	})

	t.Run("valeur d'un autre type", func(t *testing.T) {
		ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
		ctx.Set("session", "pas-une-session")

		_, ok := GetSessionContext(ctx)
		assert.False(t, ok)
	})
}

func TestSessionContextIsSuperAdmin(t *testing.T) {
	assert.True(t, (&SessionContext{Role: dto.RoleSuperAdmin}).IsSuperAdmin())
	assert.False(t, (&SessionContext{Role: dto.RoleAdmin}).IsSuperAdmin())
	assert.False(t, (&SessionContext{}).IsSuperAdmin())
}
