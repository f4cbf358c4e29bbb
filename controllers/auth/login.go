package auth

import (
	"banksampah/database"
	"banksampah/helpers"
	"banksampah/models"
	"banksampah/services"

	"github.com/gofiber/fiber/v2"
)

var hasher = helpers.NewBcryptPinHasher()

type LoginRequest struct {
	Nickname string `json:"nickname"`
	Pin      string `json:"pin"`
}

func Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	if req.Nickname == "" || req.Pin == "" {
		return helpers.JSONError(c, "NICKNAME_AND_PIN_REQUIRED")
	}

	cfg := services.GateConfigFromEnv()

	acc, err := services.Authenticate(database.DB, hasher, cfg, req.Nickname, req.Pin)
	if err != nil {
		return helpers.JSONServiceError(c, err)
	}

	sess, err := services.NewSession(database.DB, cfg, acc.ID)
	if err != nil {
		return helpers.JSONServiceError(c, err)
	}

	return helpers.JSONSuccess(c, "Login successful", fiber.Map{
		"session_id":      sess.SID,
		"account_id":      acc.ID,
		"nickname":        acc.Nickname,
		"role":            acc.Role,
		"unit_id":         acc.UnitID,
		"must_change_pin": acc.MustChangePin,
		"expires_at":      sess.ExpiresAt,
	})
}

func Logout(c *fiber.Ctx) error {
	sid, _ := c.Locals("sid").(string)
	if sid != "" {
		database.DB.Where("sid = ?", sid).Delete(&models.Session{})
	}
	return helpers.JSONSuccess(c, "Logged out", nil)
}
