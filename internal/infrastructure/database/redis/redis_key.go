package redis

import (
	"fmt"
	"regexp"
	"strings"
)

// RedisKeyGenerator génère et valide les clés Redis selon les conventions Carte Scolaire
type RedisKeyGenerator struct{}

// NewRedisKeyGenerator crée une nouvelle instance du générateur
func NewRedisKeyGenerator() *RedisKeyGenerator {
	return &RedisKeyGenerator{}
}

// RedisKeyPattern définit les patterns standards des clés selon les conventions
// Pattern: carte_scolaire_{domain}_{context}:{identifier}
type RedisKeyPattern struct {
	Domain  string // auth, cache, etc.
	Context string // session, blacklist, etablissements, etc.
	TTL     int    // TTL en secondes, 0 = pas d'expiration (géré par l'appelant)
}

// Patterns prédéfinis selon les conventions du projet
// Note : Seuls les patterns réellement implémentés sont listés ici
var RedisKeyPatterns = map[string]RedisKeyPattern{
	// Auth - sessions admin et révocation
	"auth_session":        {Domain: "auth", Context: "session", TTL: 0},        // TTL appliqué depuis la config session
	"auth_admin_sessions": {Domain: "auth", Context: "admin_sessions", TTL: 0}, // index des tokens par admin
	"auth_blacklist":      {Domain: "auth", Context: "blacklist", TTL: 0},      // tokens révoqués
	"auth_ratelimit":      {Domain: "auth", Context: "ratelimit", TTL: 900},    // compteur d'échecs login (15 min)

	// Cache - liste paginée des établissements
	"cache_etablissements": {Domain: "cache", Context: "etablissements", TTL: 60},
}

// GenerateKey génère une clé Redis selon la convention : carte_scolaire_{domain}_{context}:{identifier}
func (rkg *RedisKeyGenerator) GenerateKey(patternName string, identifier ...string) (string, error) {
	pattern, exists := RedisKeyPatterns[patternName]
	if !exists {
		return "", fmt.Errorf("pattern Redis non trouvé: %s", patternName)
	}

	// Construction de la clé selon la convention
	// Format: carte_scolaire_{domain}_{context}:{identifier}
	prefix := fmt.Sprintf("carte_scolaire_%s_%s", pattern.Domain, pattern.Context)

	if len(identifier) > 0 {
		// Joindre les identifiants avec "_" s'il y en a plusieurs
		identifierStr := strings.Join(identifier, "_")
		return fmt.Sprintf("%s:%s", prefix, identifierStr), nil
	}

	// Si pas d'identifier, retourner juste le préfixe (pour les clés singleton)
	return prefix, nil
}

// GetTTL récupère le TTL d'un pattern
func (rkg *RedisKeyGenerator) GetTTL(patternName string) (int, error) {
	pattern, exists := RedisKeyPatterns[patternName]
	if !exists {
		return 0, fmt.Errorf("pattern Redis non trouvé: %s", patternName)
	}
	return pattern.TTL, nil
}

// ValidateKey valide qu'une clé respecte les conventions
func (rkg *RedisKeyGenerator) ValidateKey(key string) error {
	// Vérifications de base
	if len(key) == 0 {
		return fmt.Errorf("clé vide")
	}

	if len(key) > 250 {
		return fmt.Errorf("clé trop longue (max 250 caractères): %d", len(key))
	}

	// Vérification format général
	validKeyRegex := regexp.MustCompile(`^[a-zA-Z0-9_:\-@.]+$`)
	if !validKeyRegex.MatchString(key) {
		return fmt.Errorf("clé contient des caractères invalides: %s", key)
	}

	// Vérification convention carte_scolaire_{domain}_{context}
	if !strings.HasPrefix(key, "carte_scolaire_") {
		return fmt.Errorf("clé doit commencer par 'carte_scolaire_': %s", key)
	}

	// Extraction des parties pour validation
	parts := strings.SplitN(key, ":", 2)
	prefix := parts[0]

	// Vérification structure du préfixe
	prefixParts := strings.Split(prefix, "_")
	if len(prefixParts) < 4 {
		return fmt.Errorf("structure préfixe invalide (format: carte_scolaire_domain_context): %s", prefix)
	}

	if prefixParts[0] != "carte" || prefixParts[1] != "scolaire" {
		return fmt.Errorf("préfixe incorrect: doit commencer par 'carte_scolaire': %s", prefix)
	}

	return nil
}

// GenerateWildcardPattern génère un pattern wildcard pour recherche par domaine/context
func (rkg *RedisKeyGenerator) GenerateWildcardPattern(domain, context string) string {
	return fmt.Sprintf("carte_scolaire_%s_%s*", domain, context)
}

// RedisKeyInfo contient les informations d'une clé analysée selon les conventions
type RedisKeyInfo struct {
	Domain     string
	Context    string
	Identifier string
	IsValid    bool
	Error      string
}

// AnalyzeKey analyse et décompose une clé Redis selon les conventions
func (rkg *RedisKeyGenerator) AnalyzeKey(key string) RedisKeyInfo {
	info := RedisKeyInfo{
		IsValid: false,
	}

	// Validation préliminaire
	if err := rkg.ValidateKey(key); err != nil {
		info.Error = err.Error()
		return info
	}

	// Découpage de la clé
	parts := strings.SplitN(key, ":", 2)
	prefix := parts[0]

	if len(parts) > 1 {
		info.Identifier = parts[1]
	}

	// Analyse du préfixe carte_scolaire_domain_context
	prefixParts := strings.Split(prefix, "_")
	if len(prefixParts) >= 4 {
		info.Domain = prefixParts[2]
		// Si plus de 4 parties, joindre le reste pour le context
		info.Context = strings.Join(prefixParts[3:], "_")
	}

	info.IsValid = true
	return info
}
