package handler

import (
	"strconv"

	"github.com/geomark-service/internal/pkg/utils"
	"github.com/geomark-service/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type GeocodeHandler struct {
	geocodeUC *usecase.GeocodeUseCase
	logger    *zap.Logger
}

func NewGeocodeHandler(geocodeUC *usecase.GeocodeUseCase, logger *zap.Logger) *GeocodeHandler {
	return &GeocodeHandler{
		geocodeUC: geocodeUC,
		logger:    logger,
	}
}

// Reverse resolves coordinates to place names
// @Summary Reverse geocode a coordinate
// @Tags geocode
// @Produce json
// @Security BearerAuth
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Success 200 {object} domain.Address
// @Failure 502 {object} utils.ErrorResponse
// @Router /geocode/reverse [get]
func (h *GeocodeHandler) Reverse(c *fiber.Ctx) error {
	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lng, errLng := strconv.ParseFloat(c.Query("lng"), 64)
	if errLat != nil || errLng != nil {
		return c.Status(400).JSON(fiber.Map{"error": "lat and lng query parameters are required"})
	}

	addr, err := h.geocodeUC.Reverse(c.Context(), lat, lng)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(addr)
}
