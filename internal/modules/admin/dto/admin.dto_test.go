package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidRole(t *testing.T) {
	assert.True(t, IsValidRole(RoleAdmin))
	assert.True(t, IsValidRole(RoleSuperAdmin))
	assert.False(t, IsValidRole("root"))
	assert.False(t, IsValidRole(""))
}

func TestAdminRolePredicates(t *testing.T) {
	superAdmin := &Admin{Role: RoleSuperAdmin}
	assert.True(t, superAdmin.IsSuperAdmin())
	assert.True(t, superAdmin.IsAdmin())

	admin := &Admin{Role: RoleAdmin}
	assert.False(t, admin.IsSuperAdmin())
	assert.True(t, admin.IsAdmin())

	unknown := &Admin{Role: "root"}
	assert.False(t, unknown.IsSuperAdmin())
	assert.False(t, unknown.IsAdmin())
}

func TestNewAdminResponse(t *testing.T) {
	admin := &Admin{
		ID:           7,
		Name:         "Super Admin",
		Email:        "superadmin@example.com",
		PasswordHash: "$2a$12$secret",
		Role:         RoleSuperAdmin,
	}

	response := NewAdminResponse(admin)

	assert.Equal(t, int64(7), response.ID)
	assert.Equal(t, "Super Admin", response.Name)
	assert.Equal(t, "superadmin@example.com", response.Email)
	assert.Equal(t, RoleSuperAdmin, response.Role)
	assert.True(t, response.IsSuperAdmin)
}

func TestSessionDataRoundTrip(t *testing.T) {
	session := &SessionData{
		Token:        "0c48cbad-3c4f-4f62-9b41-1d0b6f9f0001",
		AdminID:      42,
		Name:         "Admin User",
		Email:        "admin@example.com",
		Role:         RoleAdmin,
		IPAddress:    "127.0.0.1",
		UserAgent:    "curl/8.0",
		CreatedAt:    "2026-08-27T10:00:00Z",
		LastActivity: "2026-08-27T10:05:00Z",
		ExpiresAt:    "2026-08-27T11:00:00Z",
	}

	asMap := session.ToMap()
	assert.Equal(t, "42", asMap["admin_id"])

	// Redis HGETALL retourne map[string]string
	redisMap := make(map[string]string, len(asMap))
	for key, value := range asMap {
		redisMap[key] = value.(string)
	}

	restored := SessionFromMap(redisMap)
	require.NotNil(t, restored)
	assert.Equal(t, session, restored)
}

func TestSessionFromMapInvalidAdminID(t *testing.T) {
	restored := SessionFromMap(map[string]string{
		"token":    "abc",
		"admin_id": "pas-un-nombre",
	})

	assert.Equal(t, int64(0), restored.AdminID)
	assert.Equal(t, "abc", restored.Token)
}

func TestSessionDataIsSuperAdmin(t *testing.T) {
	assert.True(t, (&SessionData{Role: RoleSuperAdmin}).IsSuperAdmin())
	assert.False(t, (&SessionData{Role: RoleAdmin}).IsSuperAdmin())
}

func TestAuthError(t *testing.T) {
	err := NewAuthError("INVALID_CREDENTIALS", "The provided credentials are incorrect.", nil)
	assert.Equal(t, "The provided credentials are incorrect.", err.Error())
	assert.Equal(t, "INVALID_CREDENTIALS", err.Code)
}
