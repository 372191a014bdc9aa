package controllers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"carte-scolaire-core/internal/modules/admin/dto"
	"carte-scolaire-core/internal/modules/admin/services"
	authMiddleware "carte-scolaire-core/internal/shared/middleware/auth"
)

type AuthController struct {
	authService *services.AuthService
	validator   *validator.Validate
}

// NewAuthController crée une nouvelle instance du contrôleur d'authentification
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
		validator:   validator.New(),
	}
}

// Login - POST /api/v1/admin/login
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{
			"message": "The given data was invalid.",
			"errors": gin.H{
				"body": []string{"Invalid request payload."},
			},
		})
		return
	}

	if errs := validateStruct(c.validator, req); errs != nil {
		respondValidationErrors(ctx, errs)
		return
	}

	result, err := c.authService.Login(
		ctx.Request.Context(),
		&req,
		ctx.ClientIP(),
		ctx.GetHeader("User-Agent"),
	)

	if err != nil {
		if authErr, ok := err.(*dto.AuthError); ok {
			var statusCode int
			switch authErr.Code {
			case "INVALID_CREDENTIALS":
				statusCode = http.StatusUnauthorized
			case "RATE_LIMITED":
				statusCode = http.StatusTooManyRequests
			default:
				statusCode = http.StatusInternalServerError
			}

			ctx.JSON(statusCode, gin.H{
				"message": authErr.Message,
			})
			return
		}

		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error": "Erreur interne lors de l'authentification",
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message":    "Login successful",
		"admin":      dto.NewAdminResponse(result.Admin),
		"token":      result.Token,
		"expires_at": result.ExpiresAt,
	})
}

// Logout - POST /api/v1/admin/logout
// Idempotent : révoque uniquement le token présenté, toujours 200
func (c *AuthController) Logout(ctx *gin.Context) {
	session, _ := authMiddleware.GetSessionContext(ctx)

	c.authService.LogoutByToken(ctx.Request.Context(), session.Token, session.AdminID)

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Logged out successfully",
	})
}

// Me - GET /api/v1/admin/me
func (c *AuthController) Me(ctx *gin.Context) {
	session, ok := authMiddleware.GetSessionContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{
			"message": "Unauthenticated",
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"admin": dto.AdminResponse{
			ID:           session.AdminID,
			Name:         session.Name,
			Email:        session.Email,
			Role:         session.Role,
			IsSuperAdmin: session.IsSuperAdmin(),
		},
	})
}

// Dashboard - GET /api/v1/admin/dashboard
func (c *AuthController) Dashboard(ctx *gin.Context) {
	session, ok := authMiddleware.GetSessionContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{
			"message": "Unauthenticated",
		})
		return
	}

	stats, err := c.authService.GetDashboardStats(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error": "Erreur lors du calcul des statistiques",
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Welcome to admin dashboard",
		"admin": gin.H{
			"name":          session.Name,
			"email":         session.Email,
			"role":          session.Role,
			"is_superadmin": session.IsSuperAdmin(),
		},
		"stats": stats,
	})
}

// validateStruct valide une struct et retourne les erreurs par champ JSON
func validateStruct(v *validator.Validate, req interface{}) map[string][]string {
	err := v.Struct(req)
	if err == nil {
		return nil
	}

	errs := make(map[string][]string)
	for _, fieldErr := range err.(validator.ValidationErrors) {
		field := jsonFieldName(fieldErr.Field())
		errs[field] = append(errs[field], validationMessage(field, fieldErr))
	}

	return errs
}

// respondValidationErrors envoie la réponse 422 {message, errors}
func respondValidationErrors(ctx *gin.Context, errs map[string][]string) {
	message := "The given data was invalid."
	for _, messages := range errs {
		if len(messages) > 0 {
			message = messages[0]
			break
		}
	}

	ctx.JSON(http.StatusUnprocessableEntity, gin.H{
		"message": message,
		"errors":  errs,
	})
}

// jsonFieldName convertit un nom de champ Go en nom JSON
func jsonFieldName(fieldName string) string {
	mapping := map[string]string{
		"Name":     "name",
		"Email":    "email",
		"Password": "password",
		"Role":     "role",
	}

	if jsonName, exists := mapping[fieldName]; exists {
		return jsonName
	}
	return strings.ToLower(fieldName)
}

// validationMessage construit le message de validation attendu par les fronts
func validationMessage(field string, err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", field)
	case "email":
		return fmt.Sprintf("The %s field must be a valid email address.", field)
	case "min":
		return fmt.Sprintf("The %s field must be at least %s characters.", field, err.Param())
	case "max":
		return fmt.Sprintf("The %s field must not be greater than %s characters.", field, err.Param())
	case "oneof":
		return fmt.Sprintf("The selected %s is invalid.", field)
	default:
		return fmt.Sprintf("The %s field is invalid.", field)
	}
}
