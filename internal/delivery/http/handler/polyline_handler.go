package handler

import (
	"github.com/geomark-service/internal/delivery/http/middleware"
	"github.com/geomark-service/internal/pkg/utils"
	"github.com/geomark-service/internal/pkg/validator"
	"github.com/geomark-service/internal/usecase"
	"github.com/geomark-service/internal/usecase/dto"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type PolylineHandler struct {
	polylineUC *usecase.PolylineUseCase
	logger     *zap.Logger
}

func NewPolylineHandler(polylineUC *usecase.PolylineUseCase, logger *zap.Logger) *PolylineHandler {
	return &PolylineHandler{
		polylineUC: polylineUC,
		logger:     logger,
	}
}

// List returns all polylines owned by the caller
// @Summary List polylines
// @Tags polylines
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.Polyline
// @Router /polylines [get]
func (h *PolylineHandler) List(c *fiber.Ctx) error {
	polylines, err := h.polylineUC.List(c.Context(), middleware.UserID(c))
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(polylines)
}

// Create inserts a polyline for the caller
// @Summary Create a polyline
// @Tags polylines
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreatePolylineRequest true "Polyline"
// @Success 201 {object} dto.CreateResponse
// @Router /polylines [post]
func (h *PolylineHandler) Create(c *fiber.Ctx) error {
	var req dto.CreatePolylineRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	result, err := h.polylineUC.Create(c.Context(), middleware.UserID(c), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(result)
}

// Update applies a partial update to a polyline
// @Summary Update a polyline
// @Tags polylines
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Polyline id"
// @Param request body dto.UpdatePolylineRequest true "Fields to change"
// @Success 200 {object} dto.MessageResponse
// @Router /polylines/{id} [put]
func (h *PolylineHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid id"})
	}

	var req dto.UpdatePolylineRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := h.polylineUC.Update(c.Context(), id, middleware.UserID(c), req); err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(dto.MessageResponse{Message: "Polyline updated"})
}

// Delete removes a polyline
// @Summary Delete a polyline
// @Tags polylines
// @Produce json
// @Security BearerAuth
// @Param id path int true "Polyline id"
// @Success 200 {object} dto.MessageResponse
// @Router /polylines/{id} [delete]
func (h *PolylineHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid id"})
	}

	if err := h.polylineUC.Delete(c.Context(), id, middleware.UserID(c)); err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(dto.MessageResponse{Message: "Polyline deleted"})
}

// DeleteAll removes every polyline owned by the caller
// @Summary Delete all polylines
// @Tags polylines
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.MessageResponse
// @Router /polylines [delete]
func (h *PolylineHandler) DeleteAll(c *fiber.Ctx) error {
	if err := h.polylineUC.DeleteAll(c.Context(), middleware.UserID(c)); err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(dto.MessageResponse{Message: "All polylines deleted"})
}
