package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthKeys(t *testing.T) {
	assert.Equal(t,
		"carte_scolaire_auth_session:0c48cbad-3c4f-4f62-9b41-1d0b6f9f0001",
		AuthSessionKey("0c48cbad-3c4f-4f62-9b41-1d0b6f9f0001"),
	)
	assert.Equal(t,
		"carte_scolaire_auth_admin_sessions:42",
		AuthAdminSessionsKey(42),
	)
	assert.Equal(t,
		"carte_scolaire_auth_ratelimit:admin@example.com",
		AuthRateLimitKey("admin@example.com"),
	)
	assert.Equal(t,
		"carte_scolaire_auth_blacklist:0c48cbad-3c4f-4f62-9b41-1d0b6f9f0001",
		AuthBlacklistKey("0c48cbad-3c4f-4f62-9b41-1d0b6f9f0001"),
	)
}
