package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"carte-scolaire-core/internal/modules/admin/dto"
	"carte-scolaire-core/internal/modules/admin/services"
)

// SessionContext contient les informations de session injectées dans le contexte Gin
type SessionContext struct {
	AdminID      int64  `json:"admin_id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	Token        string `json:"token"`
	IPAddress    string `json:"ip_address"`
	UserAgent    string `json:"user_agent"`
	CreatedAt    string `json:"created_at"`
	LastActivity string `json:"last_activity"`
	ExpiresAt    string `json:"expires_at"`
}

// IsSuperAdmin indique si la session porte le rôle superadmin
func (s *SessionContext) IsSuperAdmin() bool {
	return s.Role == dto.RoleSuperAdmin
}

type SessionMiddleware struct {
	sessionService *services.SessionService
}

// NewSessionMiddleware crée une nouvelle instance du middleware de session
func NewSessionMiddleware(sessionService *services.SessionService) *SessionMiddleware {
	return &SessionMiddleware{
		sessionService: sessionService,
	}
}

// Handler retourne le middleware Gin pour la validation de session.
// Token absent, invalide, expiré ou révoqué : même réponse 401.
func (m *SessionMiddleware) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Extraire le token Bearer
		token := ExtractBearerToken(c.GetHeader("Authorization"))
		if token == "" {
			m.respondUnauthenticated(c)
			return
		}

		// 2. Valider la session (blacklist, Redis, fallback PostgreSQL)
		session, err := m.sessionService.ValidateSession(c.Request.Context(), token)
		if err != nil {
			m.respondUnauthenticated(c)
			return
		}

		// 3. Enrichir le contexte Gin avec les données de session
		sessionContext := SessionContext{
			AdminID:      session.AdminID,
			Name:         session.Name,
			Email:        session.Email,
			Role:         session.Role,
			Token:        token,
			IPAddress:    session.IPAddress,
			UserAgent:    session.UserAgent,
			CreatedAt:    session.CreatedAt,
			LastActivity: session.LastActivity,
			ExpiresAt:    session.ExpiresAt,
		}

		c.Set("session", sessionContext)
		c.Set("admin_id", session.AdminID)
		c.Set("admin_role", session.Role)

		c.Next()
	}
}

// ExtractBearerToken extrait le token depuis le header Authorization
func ExtractBearerToken(authHeader string) string {
	if authHeader == "" {
		return ""
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return ""
	}

	return parts[1]
}

// GetSessionContext récupère la session depuis le contexte Gin
func GetSessionContext(c *gin.Context) (SessionContext, bool) {
	value, exists := c.Get("session")
	if !exists {
		return SessionContext{}, false
	}

	session, ok := value.(SessionContext)
	return session, ok
}

// respondUnauthenticated envoie la réponse 401 standardisée
func (m *SessionMiddleware) respondUnauthenticated(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"message": "Unauthenticated",
	})
	c.Abort()
}
