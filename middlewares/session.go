package middlewares

import (
	"time"

	"banksampah/database"
	"banksampah/helpers"
	"banksampah/models"

	"github.com/gofiber/fiber/v2"
)

// SessionAuth resolves X-Session-ID into the acting account. The account in
// Locals is the only identity downstream handlers may trust; body fields
// never name the actor.
func SessionAuth(c *fiber.Ctx) error {
	sid := c.Get("X-Session-ID")
	if sid == "" {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "SESSION_ID_REQUIRED")
	}

	var sess models.Session
	if err := database.DB.Preload("Account").Where("sid = ?", sid).First(&sess).Error; err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "INVALID_SESSION")
	}

	if time.Now().After(sess.ExpiresAt) {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "SESSION_EXPIRED")
	}

	if !sess.Account.IsActive || sess.Account.IsBlocked {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "ACCOUNT_UNAVAILABLE")
	}

	c.Locals("actor", sess.Account)
	c.Locals("sid", sess.SID)
	return c.Next()
}

func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, ok := c.Locals("actor").(models.Account)
		if !ok {
			return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "INVALID_SESSION")
		}
		for _, role := range roles {
			if actor.Role == role {
				return c.Next()
			}
		}
		return helpers.JSONErrorStatus(c, fiber.StatusForbidden, "INSUFFICIENT_AUTHORITY")
	}
}
