package handler

import (
	"strconv"

	"github.com/geomark-service/internal/delivery/http/middleware"
	"github.com/geomark-service/internal/pkg/utils"
	"github.com/geomark-service/internal/pkg/validator"
	"github.com/geomark-service/internal/usecase"
	"github.com/geomark-service/internal/usecase/dto"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type MarkerHandler struct {
	markerUC *usecase.MarkerUseCase
	logger   *zap.Logger
}

func NewMarkerHandler(markerUC *usecase.MarkerUseCase, logger *zap.Logger) *MarkerHandler {
	return &MarkerHandler{
		markerUC: markerUC,
		logger:   logger,
	}
}

// List returns all markers owned by the caller
// @Summary List markers
// @Tags markers
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.Marker
// @Router /markers [get]
func (h *MarkerHandler) List(c *fiber.Ctx) error {
	markers, err := h.markerUC.List(c.Context(), middleware.UserID(c))
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(markers)
}

// Create inserts a marker for the caller
// @Summary Create a marker
// @Tags markers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateMarkerRequest true "Marker"
// @Success 201 {object} dto.CreateResponse
// @Router /markers [post]
func (h *MarkerHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateMarkerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	result, err := h.markerUC.Create(c.Context(), middleware.UserID(c), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(result)
}

// Update applies a partial update to a marker
// @Summary Update a marker
// @Tags markers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Marker id"
// @Param request body dto.UpdateMarkerRequest true "Fields to change"
// @Success 200 {object} dto.MessageResponse
// @Router /markers/{id} [put]
func (h *MarkerHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid id"})
	}

	var req dto.UpdateMarkerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if err := h.markerUC.Update(c.Context(), id, middleware.UserID(c), req); err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(dto.MessageResponse{Message: "Marker updated"})
}

// Delete removes a marker
// @Summary Delete a marker
// @Tags markers
// @Produce json
// @Security BearerAuth
// @Param id path int true "Marker id"
// @Success 200 {object} dto.MessageResponse
// @Router /markers/{id} [delete]
func (h *MarkerHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid id"})
	}

	if err := h.markerUC.Delete(c.Context(), id, middleware.UserID(c)); err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(dto.MessageResponse{Message: "Marker deleted"})
}

// DeleteAll removes every marker owned by the caller
// @Summary Delete all markers
// @Tags markers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.MessageResponse
// @Router /markers [delete]
func (h *MarkerHandler) DeleteAll(c *fiber.Ctx) error {
	if err := h.markerUC.DeleteAll(c.Context(), middleware.UserID(c)); err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(dto.MessageResponse{Message: "All markers deleted"})
}

func parseID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}
