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

type PolygonHandler struct {
	polygonUC *usecase.PolygonUseCase
	logger    *zap.Logger
}

func NewPolygonHandler(polygonUC *usecase.PolygonUseCase, logger *zap.Logger) *PolygonHandler {
	return &PolygonHandler{
		polygonUC: polygonUC,
		logger:    logger,
	}
}

// List returns all polygons owned by the caller
// @Summary List polygons
// @Tags polygons
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.Polygon
// @Router /polygons [get]
func (h *PolygonHandler) List(c *fiber.Ctx) error {
	polygons, err := h.polygonUC.List(c.Context(), middleware.UserID(c))
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(polygons)
}

// Create inserts a polygon for the caller
// @Summary Create a polygon
// @Tags polygons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreatePolygonRequest true "Polygon"
// @Success 201 {object} dto.CreateResponse
// @Router /polygons [post]
func (h *PolygonHandler) Create(c *fiber.Ctx) error {
	var req dto.CreatePolygonRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	result, err := h.polygonUC.Create(c.Context(), middleware.UserID(c), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(result)
}

// Update applies a partial update to a polygon
// @Summary Update a polygon
// @Tags polygons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Polygon id"
// @Param request body dto.UpdatePolygonRequest true "Fields to change"
// @Success 200 {object} dto.MessageResponse
// @Router /polygons/{id} [put]
func (h *PolygonHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid id"})
	}

	var req dto.UpdatePolygonRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := h.polygonUC.Update(c.Context(), id, middleware.UserID(c), req); err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(dto.MessageResponse{Message: "Polygon updated"})
}

// Delete removes a polygon
// @Summary Delete a polygon
// @Tags polygons
// @Produce json
// @Security BearerAuth
// @Param id path int true "Polygon id"
// @Success 200 {object} dto.MessageResponse
// @Router /polygons/{id} [delete]
func (h *PolygonHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid id"})
	}

	if err := h.polygonUC.Delete(c.Context(), id, middleware.UserID(c)); err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(dto.MessageResponse{Message: "Polygon deleted"})
}

// DeleteAll removes every polygon owned by the caller
// @Summary Delete all polygons
// @Tags polygons
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.MessageResponse
// @Router /polygons [delete]
func (h *PolygonHandler) DeleteAll(c *fiber.Ctx) error {
	if err := h.polygonUC.DeleteAll(c.Context(), middleware.UserID(c)); err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(dto.MessageResponse{Message: "All polygons deleted"})
}
