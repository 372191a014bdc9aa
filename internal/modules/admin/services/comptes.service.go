package services

import (
	"context"
	"fmt"

	"carte-scolaire-core/internal/infrastructure/database/postgres"
	"carte-scolaire-core/internal/modules/admin/dto"
	"carte-scolaire-core/internal/modules/admin/queries"
	"carte-scolaire-core/internal/shared/utils"
)

// ComptesService gère les comptes admin (réservé aux superadmins)
type ComptesService struct {
	db        *postgres.Client
	txManager *postgres.TransactionManager
}

// NewComptesService crée une nouvelle instance du service comptes
func NewComptesService(db *postgres.Client, txManager *postgres.TransactionManager) *ComptesService {
	return &ComptesService{
		db:        db,
		txManager: txManager,
	}
}

// ListAdmins liste tous les admins sans exposer le hash
func (s *ComptesService) ListAdmins(ctx context.Context) ([]dto.AdminListItem, error) {
	rows, err := s.db.Query(ctx, queries.AdminQueries.List)
	if err != nil {
		return nil, fmt.Errorf("liste admins: %w", err)
	}
	defer rows.Close()

	admins := []dto.AdminListItem{}
	for rows.Next() {
		var admin dto.AdminListItem
		if err := rows.Scan(&admin.ID, &admin.Name, &admin.Email, &admin.Role, &admin.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan admin: %w", err)
		}
		admins = append(admins, admin)
	}

	return admins, rows.Err()
}

// CreateAdmin crée un nouvel admin avec mot de passe hashé
func (s *ComptesService) CreateAdmin(ctx context.Context, req *dto.CreateAdminRequest) (*dto.Admin, error) {
	// Vérifier l'unicité de l'email
	var exists bool
	if err := s.db.QueryRow(ctx, queries.AdminQueries.ExistsByEmail, req.Email).Scan(&exists); err != nil {
		return nil, fmt.Errorf("vérification email: %w", err)
	}
	if exists {
		return nil, dto.NewAuthError("EMAIL_EXISTS",
			"The email has already been taken.", map[string]interface{}{
				"email": req.Email,
			})
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash mot de passe: %w", err)
	}

	var admin dto.Admin
	err = s.txManager.WithTransaction(ctx, func(tx *postgres.Transaction) error {
		row := tx.QueryRow(ctx, queries.AdminQueries.Create,
			req.Name, req.Email, passwordHash, req.Role)

		return row.Scan(
			&admin.ID,
			&admin.Name,
			&admin.Email,
			&admin.PasswordHash,
			&admin.Role,
			&admin.CreatedAt,
			&admin.UpdatedAt,
		)
	})
	if err != nil {
		return nil, fmt.Errorf("création admin: %w", err)
	}

	return &admin, nil
}
