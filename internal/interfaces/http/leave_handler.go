package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Talento-api/internal/application/dto"
	"github.com/jhoicas/Talento-api/internal/application/usecase"
)

// LeaveHandler solicitudes de licencia y su aprobación.
type LeaveHandler struct {
	uc *usecase.LeaveUseCase
}

// NewLeaveHandler construye el handler de licencias.
func NewLeaveHandler(uc *usecase.LeaveUseCase) *LeaveHandler {
	return &LeaveHandler{uc: uc}
}

// ListByEmployee godoc
// @Summary      Licencias de un empleado
// @Tags         leaves
// @Produce      json
// @Security     BearerAuth
// @Param        employeeId  path  int  true  "employee_id"
// @Success      200  {array}  dto.LeaveRequestResponse
// @Router       /api/leaves/employee/{employeeId} [get]
func (h *LeaveHandler) ListByEmployee(c *fiber.Ctx) error {
	employeeID, err := c.ParamsInt("employeeId")
	if err != nil || employeeID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "employeeId inválido"})
	}
	out, err := h.uc.ListByEmployee(c.Context(), employeeID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Solicitar una licencia
// @Tags         leaves
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.LeaveRequestCreate  true  "datos de la solicitud"
// @Success      201   {object}  dto.LeaveRequestResponse
// @Router       /api/leaves [post]
func (h *LeaveHandler) Create(c *fiber.Ctx) error {
	var in dto.LeaveRequestCreate
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return mutationError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Approve godoc
// @Summary      Aprobar una solicitud de licencia
// @Tags         leaves
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  int  true  "leave_request_id"
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/leaves/{id}/approve [put]
func (h *LeaveHandler) Approve(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	if err := h.uc.Approve(c.Context(), GetUserID(c), id); err != nil {
		return mutationError(c, err)
	}
	return c.JSON(dto.MessageResponse{Success: true, Message: "solicitud aprobada"})
}

// Reject godoc
// @Summary      Rechazar una solicitud de licencia
// @Tags         leaves
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  int  true  "leave_request_id"
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/leaves/{id}/reject [put]
func (h *LeaveHandler) Reject(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	if err := h.uc.Reject(c.Context(), GetUserID(c), id); err != nil {
		return mutationError(c, err)
	}
	return c.JSON(dto.MessageResponse{Success: true, Message: "solicitud rechazada"})
}
