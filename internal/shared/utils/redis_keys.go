package utils

import "fmt"

// RedisKeyHelpers contient les helpers pour générer les clés Redis selon les conventions
// Pattern: carte_scolaire_{domain}_{context}:{identifier}

// AuthSessionKey génère la clé de session d'un token admin
func AuthSessionKey(token string) string {
	return fmt.Sprintf("carte_scolaire_auth_session:%s", token)
}

// AuthAdminSessionsKey génère la clé d'index des sessions d'un admin
func AuthAdminSessionsKey(adminID int64) string {
	return fmt.Sprintf("carte_scolaire_auth_admin_sessions:%d", adminID)
}

// AuthRateLimitKey génère la clé de rate limiting des tentatives de login
func AuthRateLimitKey(email string) string {
	return fmt.Sprintf("carte_scolaire_auth_ratelimit:%s", email)
}

// AuthBlacklistKey génère la clé de blacklist pour un token révoqué
func AuthBlacklistKey(token string) string {
	return fmt.Sprintf("carte_scolaire_auth_blacklist:%s", token)
}
