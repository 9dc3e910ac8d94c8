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

type CircleHandler struct {
	circleUC *usecase.CircleUseCase
	logger   *zap.Logger
}

func NewCircleHandler(circleUC *usecase.CircleUseCase, logger *zap.Logger) *CircleHandler {
	return &CircleHandler{
		circleUC: circleUC,
		logger:   logger,
	}
}

// List returns all circles owned by the caller
// @Summary List circles
// @Tags circles
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.Circle
// @Router /circles [get]
func (h *CircleHandler) List(c *fiber.Ctx) error {
	circles, err := h.circleUC.List(c.Context(), middleware.UserID(c))
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(circles)
}

// Create inserts a circle for the caller
// @Summary Create a circle
// @Tags circles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCircleRequest true "Circle"
// @Success 201 {object} dto.CreateResponse
// @Router /circles [post]
func (h *CircleHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateCircleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	result, err := h.circleUC.Create(c.Context(), middleware.UserID(c), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(result)
}

// Update applies a partial update to a circle
// @Summary Update a circle
// @Tags circles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Circle id"
// @Param request body dto.UpdateCircleRequest true "Fields to change"
// @Success 200 {object} dto.MessageResponse
// @Router /circles/{id} [put]
func (h *CircleHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid id"})
	}

	var req dto.UpdateCircleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if err := h.circleUC.Update(c.Context(), id, middleware.UserID(c), req); err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(dto.MessageResponse{Message: "Circle updated"})
}

// Delete removes a circle
// @Summary Delete a circle
// @Tags circles
// @Produce json
// @Security BearerAuth
// @Param id path int true "Circle id"
// @Success 200 {object} dto.MessageResponse
// @Router /circles/{id} [delete]
func (h *CircleHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid id"})
	}

	if err := h.circleUC.Delete(c.Context(), id, middleware.UserID(c)); err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(dto.MessageResponse{Message: "Circle deleted"})
}

// DeleteAll removes every circle owned by the caller
// @Summary Delete all circles
// @Tags circles
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.MessageResponse
// @Router /circles [delete]
func (h *CircleHandler) DeleteAll(c *fiber.Ctx) error {
	if err := h.circleUC.DeleteAll(c.Context(), middleware.UserID(c)); err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(dto.MessageResponse{Message: "All circles deleted"})
}
