package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Talento-api/internal/application/dto"
	"github.com/jhoicas/Talento-api/internal/application/usecase"
	"github.com/jhoicas/Talento-api/internal/domain"
)

// JobOpeningHandler CRUD HTTP de vacantes.
type JobOpeningHandler struct {
	uc *usecase.JobOpeningUseCase
}

// NewJobOpeningHandler construye el handler de vacantes.
func NewJobOpeningHandler(uc *usecase.JobOpeningUseCase) *JobOpeningHandler {
	return &JobOpeningHandler{uc: uc}
}

// List godoc
// @Summary      Listar vacantes
// @Tags         job-openings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.JobOpeningResponse
// @Router       /api/job-openings [get]
func (h *JobOpeningHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener una vacante
// @Tags         job-openings
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  int  true  "job_opening_id"
// @Success      200  {object}  dto.JobOpeningResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/job-openings/{id} [get]
func (h *JobOpeningHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "vacante no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Publicar una vacante
// @Tags         job-openings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.JobOpeningRequest  true  "datos de la vacante"
// @Success      201   {object}  dto.JobOpeningResponse
// @Router       /api/job-openings [post]
func (h *JobOpeningHandler) Create(c *fiber.Ctx) error {
	var in dto.JobOpeningRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return mutationError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar una vacante
// @Tags         job-openings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int                    true  "job_opening_id"
// @Param        body  body  dto.JobOpeningRequest  true  "datos de la vacante"
// @Success      200   {object}  dto.MessageResponse
// @Router       /api/job-openings/{id} [put]
func (h *JobOpeningHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	var in dto.JobOpeningRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Update(c.Context(), GetUserID(c), id, in); err != nil {
		return mutationError(c, err)
	}
	return c.JSON(dto.MessageResponse{Success: true, Message: "vacante actualizada"})
}

// Delete godoc
// @Summary      Eliminar una vacante
// @Tags         job-openings
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  int  true  "job_opening_id"
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/job-openings/{id} [delete]
func (h *JobOpeningHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	if err := h.uc.Delete(c.Context(), GetUserID(c), id); err != nil {
		return mutationError(c, err)
	}
	return c.JSON(dto.MessageResponse{Success: true, Message: "vacante eliminada"})
}
