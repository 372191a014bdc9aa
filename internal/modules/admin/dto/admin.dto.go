package dto

import (
	"strconv"
	"time"
)

// Rôles admin
const (
	RoleAdmin      = "admin"
	RoleSuperAdmin = "superadmin"
)

// IsValidRole vérifie qu'un rôle appartient à l'énumération fermée
func IsValidRole(role string) bool {
	return role == RoleAdmin || role == RoleSuperAdmin
}

// Admin représente un compte administrateur
type Admin struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsSuperAdmin indique si le compte a le rôle superadmin
func (a *Admin) IsSuperAdmin() bool {
	return a.Role == RoleSuperAdmin
}

// IsAdmin indique si le compte a un rôle administrateur valide
func (a *Admin) IsAdmin() bool {
	return a.Role == RoleAdmin || a.Role == RoleSuperAdmin
}

// AdminResponse représente un admin dans les réponses login/me/dashboard
type AdminResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	IsSuperAdmin bool   `json:"is_superadmin"`
}

// NewAdminResponse construit la projection publique d'un admin
func NewAdminResponse(admin *Admin) AdminResponse {
	return AdminResponse{
		ID:           admin.ID,
		Name:         admin.Name,
		Email:        admin.Email,
		Role:         admin.Role,
		IsSuperAdmin: admin.IsSuperAdmin(),
	}
}

// AdminListItem représente un admin dans la liste réservée aux superadmins
type AdminListItem struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginRequest représente la requête de connexion
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResult représente le résultat d'une connexion réussie
type LoginResult struct {
	Admin     *Admin
	Token     string
	ExpiresAt string
}

// CreateAdminRequest représente la requête de création d'un admin
type CreateAdminRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,oneof=admin superadmin"`
}

// DashboardStats représente les compteurs du dashboard admin
type DashboardStats struct {
	TotalAdmins   int `json:"total_admins"`
	RegularAdmins int `json:"regular_admins"`
	SuperAdmins   int `json:"super_admins"`
}

// SessionData représente les données de session Redis
type SessionData struct {
	Token        string `json:"token"`
	AdminID      int64  `json:"admin_id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	IPAddress    string `json:"ip_address"`
	UserAgent    string `json:"user_agent"`
	CreatedAt    string `json:"created_at"`
	LastActivity string `json:"last_activity"`
	ExpiresAt    string `json:"expires_at"`
}

// ToMap convertit SessionData en map pour Redis HSET
func (s *SessionData) ToMap() map[string]interface{} {
	return map[string]interface{}{
		"token":         s.Token,
		"admin_id":      strconv.FormatInt(s.AdminID, 10),
		"name":          s.Name,
		"email":         s.Email,
		"role":          s.Role,
		"ip_address":    s.IPAddress,
		"user_agent":    s.UserAgent,
		"created_at":    s.CreatedAt,
		"last_activity": s.LastActivity,
		"expires_at":    s.ExpiresAt,
	}
}

// SessionFromMap créé SessionData depuis map Redis
func SessionFromMap(data map[string]string) *SessionData {
	adminID, _ := strconv.ParseInt(data["admin_id"], 10, 64)

	return &SessionData{
		Token:        data["token"],
		AdminID:      adminID,
		Name:         data["name"],
		Email:        data["email"],
		Role:         data["role"],
		IPAddress:    data["ip_address"],
		UserAgent:    data["user_agent"],
		CreatedAt:    data["created_at"],
		LastActivity: data["last_activity"],
		ExpiresAt:    data["expires_at"],
	}
}

// IsSuperAdmin indique si la session porte le rôle superadmin
func (s *SessionData) IsSuperAdmin() bool {
	return s.Role == RoleSuperAdmin
}

// AuthError représente les erreurs d'authentification
type AuthError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

func (e *AuthError) Error() string {
	return e.Message
}

// NewAuthError crée une nouvelle erreur d'authentification
func NewAuthError(code, message string, details map[string]interface{}) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Details: details,
	}
}
