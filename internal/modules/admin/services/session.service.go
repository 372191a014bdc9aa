package services

import (
	"context"
	"time"

	"carte-scolaire-core/internal/infrastructure/database/postgres"
	redisInfra "carte-scolaire-core/internal/infrastructure/database/redis"
	"carte-scolaire-core/internal/modules/admin/dto"
	"carte-scolaire-core/internal/modules/admin/queries"
	"carte-scolaire-core/internal/shared/utils"

	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
)

type SessionService struct {
	db          *postgres.Client
	redisClient *redisInfra.Client
	sessionTTL  time.Duration
}

// NewSessionService crée une nouvelle instance du service de session
func NewSessionService(db *postgres.Client, redisClient *redisInfra.Client, sessionTTL time.Duration) *SessionService {
	if sessionTTL <= 0 {
		sessionTTL = time.Hour
	}
	return &SessionService{
		db:          db,
		redisClient: redisClient,
		sessionTTL:  sessionTTL,
	}
}

// CreateSession crée une nouvelle session dans Redis avec fallback PostgreSQL
func (s *SessionService) CreateSession(ctx context.Context, sessionData *dto.SessionData) error {
	// Essayer Redis d'abord
	if err := s.createSessionRedis(ctx, sessionData); err == nil {
		// Créer aussi en PostgreSQL pour fallback
		s.createSessionPostgres(ctx, sessionData)
		return nil
	}

	// Si Redis échoue, utiliser PostgreSQL uniquement
	return s.createSessionPostgres(ctx, sessionData)
}

// ValidateSession valide un token et retourne la session
func (s *SessionService) ValidateSession(ctx context.Context, token string) (*dto.SessionData, error) {
	// Vérifier d'abord si le token est blacklisté
	if s.isTokenBlacklisted(ctx, token) {
		return nil, dto.NewAuthError("TOKEN_REVOKED", "Token révoqué", nil)
	}

	// Essayer Redis d'abord
	session, err := s.getSessionRedis(ctx, token)
	if err == nil {
		s.updateLastActivity(ctx, token)
		return session, nil
	}

	// Fallback PostgreSQL
	session, err = s.getSessionPostgres(ctx, token)
	if err != nil {
		return nil, dto.NewAuthError("INVALID_TOKEN", "Session invalide ou expirée", nil)
	}

	// Re-sync vers Redis si disponible
	go s.createSessionRedis(context.Background(), session)

	return session, nil
}

// RevokeSession révoque exactement le token présenté, de manière idempotente.
// Les autres sessions du même admin restent actives.
func (s *SessionService) RevokeSession(ctx context.Context, token string, adminID int64) error {
	// 1. Ajouter à la blacklist Redis (SET avec TTL, idempotent par nature)
	s.redisClient.Set(ctx, utils.AuthBlacklistKey(token),
		"revoked_at:"+time.Now().Format(time.RFC3339), s.sessionTTL)

	// 2. Supprimer de Redis avec pipeline (idempotent)
	pipe := s.redisClient.Client().Pipeline()
	pipe.Del(ctx, utils.AuthSessionKey(token))
	if adminID > 0 {
		pipe.SRem(ctx, utils.AuthAdminSessionsKey(adminID), token)
	}
	// Pas de gestion d'erreur - si Redis est down, la session est quand
	// même supprimée de PostgreSQL
	pipe.Exec(ctx)

	// 3. Supprimer de PostgreSQL (DELETE idempotent par nature)
	s.db.Exec(ctx, queries.AdminQueries.DeleteSession, token)

	return nil
}

// CleanExpiredSessions nettoie les sessions expirées de PostgreSQL
func (s *SessionService) CleanExpiredSessions(ctx context.Context) error {
	return s.db.Exec(ctx, queries.AdminQueries.CleanExpiredSessions)
}

// createSessionRedis crée une session dans Redis avec pipeline
func (s *SessionService) createSessionRedis(ctx context.Context, sessionData *dto.SessionData) error {
	pipe := s.redisClient.Client().Pipeline()

	// 1. Session principale
	sessionKey := utils.AuthSessionKey(sessionData.Token)
	pipe.HSet(ctx, sessionKey, sessionData.ToMap())
	pipe.Expire(ctx, sessionKey, s.sessionTTL)

	// 2. Index des sessions de l'admin
	adminSessionsKey := utils.AuthAdminSessionsKey(sessionData.AdminID)
	pipe.SAdd(ctx, adminSessionsKey, sessionData.Token)
	pipe.Expire(ctx, adminSessionsKey, s.sessionTTL)

	_, err := pipe.Exec(ctx)
	return err
}

// getSessionRedis récupère une session depuis Redis
func (s *SessionService) getSessionRedis(ctx context.Context, token string) (*dto.SessionData, error) {
	sessionData := s.redisClient.Client().HGetAll(ctx, utils.AuthSessionKey(token)).Val()
	if len(sessionData) == 0 {
		return nil, redis.Nil
	}

	return dto.SessionFromMap(sessionData), nil
}

// createSessionPostgres crée une session dans PostgreSQL
func (s *SessionService) createSessionPostgres(ctx context.Context, sessionData *dto.SessionData) error {
	expiresAt, _ := time.Parse(time.RFC3339, sessionData.ExpiresAt)

	return s.db.Exec(ctx, queries.AdminQueries.CreateSession,
		sessionData.Token,
		sessionData.AdminID,
		sessionData.IPAddress,
		sessionData.UserAgent,
		expiresAt,
	)
}

// getSessionPostgres récupère une session depuis PostgreSQL
func (s *SessionService) getSessionPostgres(ctx context.Context, token string) (*dto.SessionData, error) {
	var session dto.SessionData
	var createdAt, lastActivity, expiresAt time.Time

	row := s.db.QueryRow(ctx, queries.AdminQueries.GetSessionByToken, token)
	err := row.Scan(
		&session.Token,
		&session.AdminID,
		&session.Name,
		&session.Email,
		&session.Role,
		&session.IPAddress,
		&session.UserAgent,
		&createdAt,
		&lastActivity,
		&expiresAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, err
		}
		return nil, err
	}

	session.CreatedAt = createdAt.Format(time.RFC3339)
	session.LastActivity = lastActivity.Format(time.RFC3339)
	session.ExpiresAt = expiresAt.Format(time.RFC3339)

	return &session, nil
}

// updateLastActivity met à jour la dernière activité
func (s *SessionService) updateLastActivity(ctx context.Context, token string) {
	now := time.Now().Format(time.RFC3339)

	// Mettre à jour Redis
	s.redisClient.Client().HSet(ctx, utils.AuthSessionKey(token), "last_activity", now)

	// Mettre à jour PostgreSQL en arrière-plan
	go func() {
		s.db.Exec(context.Background(), queries.AdminQueries.UpdateLastActivity, token)
	}()
}

// isTokenBlacklisted vérifie si un token est blacklisté
func (s *SessionService) isTokenBlacklisted(ctx context.Context, token string) bool {
	exists, err := s.redisClient.Exists(ctx, utils.AuthBlacklistKey(token))
	return err == nil && exists
}
