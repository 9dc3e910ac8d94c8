package handler

import (
	"github.com/geomark-service/internal/pkg/utils"
	"github.com/geomark-service/internal/pkg/validator"
	"github.com/geomark-service/internal/usecase"
	"github.com/geomark-service/internal/usecase/dto"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authUC *usecase.AuthUseCase
	logger *zap.Logger
}

func NewAuthHandler(authUC *usecase.AuthUseCase, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authUC: authUC,
		logger: logger,
	}
}

// Register creates a new user account
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Credentials"
// @Success 201 {object} dto.RegisterResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	result, err := h.authUC.Register(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(result)
}

// Login exchanges credentials for a session token
// @Summary Log in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	result, err := h.authUC.Login(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(result)
}
