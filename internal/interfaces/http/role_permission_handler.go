package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Talento-api/internal/application/dto"
	"github.com/jhoicas/Talento-api/internal/application/usecase"
)

// RolePermissionHandler administración de permisos por rol. Los cambios surten
// efecto inmediato porque la resolución de permisos es por request.
type RolePermissionHandler struct {
	uc *usecase.RolePermissionUseCase
}

// NewRolePermissionHandler construye el handler de permisos de rol.
func NewRolePermissionHandler(uc *usecase.RolePermissionUseCase) *RolePermissionHandler {
	return &RolePermissionHandler{uc: uc}
}

// Grant godoc
// @Summary      Otorgar un permiso a un rol
// @Tags         permissions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.RolePermissionRequest  true  "role_id, permission_id"
// @Success      200   {object}  dto.MessageResponse
// @Router       /api/role-permissions [post]
func (h *RolePermissionHandler) Grant(c *fiber.Ctx) error {
	var in dto.RolePermissionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Grant(c.Context(), GetUserID(c), in); err != nil {
		return mutationError(c, err)
	}
	return c.JSON(dto.MessageResponse{Success: true, Message: "permiso otorgado"})
}

// Revoke godoc
// @Summary      Retirar un permiso de un rol
// @Tags         permissions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.RolePermissionRequest  true  "role_id, permission_id"
// @Success      200   {object}  dto.MessageResponse
// @Router       /api/role-permissions [delete]
func (h *RolePermissionHandler) Revoke(c *fiber.Ctx) error {
	var in dto.RolePermissionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Revoke(c.Context(), GetUserID(c), in); err != nil {
		return mutationError(c, err)
	}
	return c.JSON(dto.MessageResponse{Success: true, Message: "permiso retirado"})
}
