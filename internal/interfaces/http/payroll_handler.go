package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Talento-api/internal/application/dto"
	"github.com/jhoicas/Talento-api/internal/application/usecase"
	"github.com/jhoicas/Talento-api/internal/domain"
)

// PayrollHandler lectura del histórico de nómina.
type PayrollHandler struct {
	uc *usecase.PayrollUseCase
}

// NewPayrollHandler construye el handler de nómina.
func NewPayrollHandler(uc *usecase.PayrollUseCase) *PayrollHandler {
	return &PayrollHandler{uc: uc}
}

// HistoryByEmployee godoc
// @Summary      Histórico de nómina de un empleado
// @Tags         payroll
// @Produce      json
// @Security     BearerAuth
// @Param        employeeId  path  int  true  "employee_id"
// @Success      200  {array}  dto.PayrollResponse
// @Router       /api/payroll/employee/{employeeId} [get]
func (h *PayrollHandler) HistoryByEmployee(c *fiber.Ctx) error {
	employeeID, err := c.ParamsInt("employeeId")
	if err != nil || employeeID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "employeeId inválido"})
	}
	out, err := h.uc.HistoryByEmployee(c.Context(), employeeID)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "employeeId inválido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(out)
}
