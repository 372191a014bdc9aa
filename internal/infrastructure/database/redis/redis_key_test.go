package redis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateKey(t *testing.T) {
	rkg := NewRedisKeyGenerator()

	tests := []struct {
		name        string
		patternName string
		identifier  []string
		expected    string
		expectError bool
	}{
		{
			name:        "session avec token",
			patternName: "auth_session",
			identifier:  []string{"0c48cbad-3c4f-4f62-9b41-1d0b6f9f0001"},
			expected:    "carte_scolaire_auth_session:0c48cbad-3c4f-4f62-9b41-1d0b6f9f0001",
		},
		{
			name:        "cache liste avec identifiants multiples",
			patternName: "cache_etablissements",
			identifier:  []string{"page_1", "per_page_10"},
			expected:    "carte_scolaire_cache_etablissements:page_1_per_page_10",
		},
		{
			name:        "clé singleton sans identifiant",
			patternName: "auth_blacklist",
			expected:    "carte_scolaire_auth_blacklist",
		},
		{
			name:        "pattern inconnu",
			patternName: "inconnu",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := rkg.GenerateKey(tt.patternName, tt.identifier...)
			if tt.expectError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, key)
		})
	}
}

func TestGetTTL(t *testing.T) {
	rkg := NewRedisKeyGenerator()

	ttl, err := rkg.GetTTL("cache_etablissements")
	require.NoError(t, err)
	assert.Equal(t, 60, ttl)

	ttl, err = rkg.GetTTL("auth_ratelimit")
	require.NoError(t, err)
	assert.Equal(t, 900, ttl)

	_, err = rkg.GetTTL("inconnu")
	assert.Error(t, err)
}

func TestValidateKey(t *testing.T) {
	rkg := NewRedisKeyGenerator()

	tests := []struct {
		name        string
		key         string
		expectError bool
	}{
		{
			name: "clé valide avec identifiant",
			key:  "carte_scolaire_auth_session:abc-123",
		},
		{
			name: "clé valide avec email",
			key:  "carte_scolaire_auth_ratelimit:admin@example.com",
		},
		{
			name:        "clé vide",
			key:         "",
			expectError: true,
		},
		{
			name:        "mauvais préfixe",
			key:         "soins_auth_session:abc",
			expectError: true,
		},
		{
			name:        "caractères invalides",
			key:         "carte_scolaire_auth_session:abc def",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := rkg.ValidateKey(tt.key)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAnalyzeKey(t *testing.T) {
	rkg := NewRedisKeyGenerator()

	info := rkg.AnalyzeKey("carte_scolaire_auth_admin_sessions:42")
	assert.True(t, info.IsValid)
	assert.Equal(t, "auth", info.Domain)
	assert.Equal(t, "admin_sessions", info.Context)
	assert.Equal(t, "42", info.Identifier)

	info = rkg.AnalyzeKey("invalide")
	assert.False(t, info.IsValid)
	assert.NotEmpty(t, info.Error)
}

func TestGenerateWildcardPattern(t *testing.T) {
	rkg := NewRedisKeyGenerator()
	assert.Equal(t, "carte_scolaire_cache_etablissements*", rkg.GenerateWildcardPattern("cache", "etablissements"))
}
