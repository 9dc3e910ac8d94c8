package middleware

import (
	"strings"

	"github.com/geomark-service/internal/pkg/auth"
	"github.com/geomark-service/internal/pkg/errors"
	"github.com/geomark-service/internal/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

// UserIDKey is the locals key under which the authenticated user id is stored.
const UserIDKey = "user_id"

// Auth validates the bearer token and attaches the user identity to the
// request. It is the sole authorization boundary: every protected handler
// reads the owner id from locals, never from the payload.
func Auth(tokens *auth.TokenManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return utils.SendError(c, errors.ErrUnauthorized)
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			return utils.SendError(c, errors.ErrUnauthorized)
		}

		userID, err := tokens.Validate(parts[1])
		if err != nil {
			return utils.SendError(c, errors.ErrUnauthorized)
		}

		c.Locals(UserIDKey, userID)
		return c.Next()
	}
}

// UserID reads the authenticated user id attached by Auth.
func UserID(c *fiber.Ctx) int64 {
	id, _ := c.Locals(UserIDKey).(int64)
	return id
}
