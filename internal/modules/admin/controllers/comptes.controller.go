package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"carte-scolaire-core/internal/modules/admin/dto"
	"carte-scolaire-core/internal/modules/admin/services"
)

// ComptesController expose la gestion des comptes admin (superadmin uniquement)
type ComptesController struct {
	service   *services.ComptesService
	validator *validator.Validate
}

func NewComptesController(service *services.ComptesService) *ComptesController {
	return &ComptesController{
		service:   service,
		validator: validator.New(),
	}
}

// ListAdmins - GET /api/v1/admin/admins
func (c *ComptesController) ListAdmins(ctx *gin.Context) {
	admins, err := c.service.ListAdmins(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error": "Erreur lors de la récupération des admins",
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"admins": admins,
	})
}

// CreateAdmin - POST /api/v1/admin/admins
func (c *ComptesController) CreateAdmin(ctx *gin.Context) {
	var req dto.CreateAdminRequest
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

	admin, err := c.service.CreateAdmin(ctx.Request.Context(), &req)
	if err != nil {
		if authErr, ok := err.(*dto.AuthError); ok && authErr.Code == "EMAIL_EXISTS" {
			respondValidationErrors(ctx, map[string][]string{
				"email": {authErr.Message},
			})
			return
		}

		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error": "Erreur lors de la création de l'admin",
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Admin created successfully",
		"admin": gin.H{
			"id":    admin.ID,
			"name":  admin.Name,
			"email": admin.Email,
			"role":  admin.Role,
		},
	})
}
