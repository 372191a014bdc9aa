package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"carte-scolaire-core/internal/app/config"
	"carte-scolaire-core/internal/infrastructure/database/postgres"
	redisInfra "carte-scolaire-core/internal/infrastructure/database/redis"
	"carte-scolaire-core/internal/modules/admin/dto"
	"carte-scolaire-core/internal/modules/admin/queries"
	"carte-scolaire-core/internal/shared/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	maxLoginAttempts  = 5
	loginAttemptsTTL  = 15 * time.Minute
	invalidCredsError = "The provided credentials are incorrect."
)

type AuthService struct {
	db             *postgres.Client
	redisClient    *redisInfra.Client
	sessionService *SessionService
	config         *config.Config
}

// NewAuthService crée une nouvelle instance du service d'authentification
func NewAuthService(
	db *postgres.Client,
	redisClient *redisInfra.Client,
	sessionService *SessionService,
	cfg *config.Config,
) *AuthService {
	return &AuthService{
		db:             db,
		redisClient:    redisClient,
		sessionService: sessionService,
		config:         cfg,
	}
}

// Login authentifie un admin et crée une session
//
// Email inconnu et mot de passe erroné produisent la même erreur 401
// pour empêcher l'énumération des comptes.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest, ipAddress, userAgent string) (*dto.LoginResult, error) {
	// 1. Vérifier le rate limiting par email
	attempts, err := s.getLoginAttempts(ctx, req.Email)
	if err == nil && attempts >= maxLoginAttempts {
		return nil, dto.NewAuthError("RATE_LIMITED",
			"Too many login attempts. Please try again later.", map[string]interface{}{
				"retry_after_seconds": int(loginAttemptsTTL.Seconds()),
			})
	}

	// 2. Récupérer l'admin par email
	admin, err := s.getAdminByEmail(ctx, req.Email)
	if err != nil {
		if err == pgx.ErrNoRows {
			s.registerLoginFailure(ctx, req.Email)
			return nil, dto.NewAuthError("INVALID_CREDENTIALS", invalidCredsError, nil)
		}
		return nil, fmt.Errorf("récupération admin: %w", err)
	}

	// 3. Vérifier le mot de passe
	if !utils.VerifyPassword(req.Password, admin.PasswordHash) {
		s.registerLoginFailure(ctx, req.Email)
		return nil, dto.NewAuthError("INVALID_CREDENTIALS", invalidCredsError, nil)
	}

	// 4. Réinitialiser le compteur d'échecs
	s.clearLoginFailures(ctx, req.Email)

	// 5. Générer un token opaque et créer la session
	token := uuid.New().String()
	now := time.Now()
	expiresAt := now.Add(s.config.Session.TTL)

	sessionData := &dto.SessionData{
		Token:        token,
		AdminID:      admin.ID,
		Name:         admin.Name,
		Email:        admin.Email,
		Role:         admin.Role,
		IPAddress:    ipAddress,
		UserAgent:    userAgent,
		CreatedAt:    now.Format(time.RFC3339),
		LastActivity: now.Format(time.RFC3339),
		ExpiresAt:    expiresAt.Format(time.RFC3339),
	}

	if err := s.sessionService.CreateSession(ctx, sessionData); err != nil {
		return nil, fmt.Errorf("création session: %w", err)
	}

	log.Printf("[AUTH] Login admin %s (%s) depuis %s", admin.Email, admin.Role, ipAddress)

	return &dto.LoginResult{
		Admin:     admin,
		Token:     token,
		ExpiresAt: expiresAt.Format(time.RFC3339),
	}, nil
}

// LogoutByToken révoque exactement le token présenté (idempotent)
func (s *AuthService) LogoutByToken(ctx context.Context, token string, adminID int64) error {
	if err := s.sessionService.RevokeSession(ctx, token, adminID); err != nil {
		// Le logout reste un succès même si la révocation échoue partiellement
		log.Printf("[AUTH] Warning: révocation partielle du token: %v", err)
	}
	return nil
}

// GetAdminByID récupère un admin par son id
func (s *AuthService) GetAdminByID(ctx context.Context, id int64) (*dto.Admin, error) {
	var admin dto.Admin

	row := s.db.QueryRow(ctx, queries.AdminQueries.GetByID, id)
	err := row.Scan(
		&admin.ID,
		&admin.Name,
		&admin.Email,
		&admin.PasswordHash,
		&admin.Role,
		&admin.CreatedAt,
		&admin.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &admin, nil
}

// GetDashboardStats calcule les compteurs du dashboard admin
func (s *AuthService) GetDashboardStats(ctx context.Context) (*dto.DashboardStats, error) {
	var stats dto.DashboardStats

	row := s.db.QueryRow(ctx, queries.AdminQueries.CountByRole)
	if err := row.Scan(&stats.TotalAdmins, &stats.RegularAdmins, &stats.SuperAdmins); err != nil {
		return nil, fmt.Errorf("calcul statistiques admins: %w", err)
	}

	return &stats, nil
}

// getAdminByEmail récupère un admin par email
func (s *AuthService) getAdminByEmail(ctx context.Context, email string) (*dto.Admin, error) {
	var admin dto.Admin

	row := s.db.QueryRow(ctx, queries.AdminQueries.GetByEmail, email)
	err := row.Scan(
		&admin.ID,
		&admin.Name,
		&admin.Email,
		&admin.PasswordHash,
		&admin.Role,
		&admin.CreatedAt,
		&admin.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &admin, nil
}

// registerLoginFailure incrémente le compteur d'échecs de login
func (s *AuthService) registerLoginFailure(ctx context.Context, email string) {
	key := utils.AuthRateLimitKey(email)

	pipe := s.redisClient.Client().Pipeline()
	pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, loginAttemptsTTL)
	pipe.Exec(ctx)
	// Si Redis est down, le rate limiting est simplement inactif
}

// getLoginAttempts récupère le compteur d'échecs de login
func (s *AuthService) getLoginAttempts(ctx context.Context, email string) (int, error) {
	return s.redisClient.Client().Get(ctx, utils.AuthRateLimitKey(email)).Int()
}

// clearLoginFailures réinitialise le compteur d'échecs après un login réussi
func (s *AuthService) clearLoginFailures(ctx context.Context, email string) {
	s.redisClient.Del(ctx, utils.AuthRateLimitKey(email))
}
