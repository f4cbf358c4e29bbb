package auth

import (
	"banksampah/database"
	"banksampah/helpers"
	"banksampah/models"
	"banksampah/services"

	"github.com/gofiber/fiber/v2"
)

type ChangePinRequest struct {
	OldPin string `json:"old_pin"`
	NewPin string `json:"new_pin"`
}

func ChangePin(c *fiber.Ctx) error {
	var req ChangePinRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	actor, ok := c.Locals("actor").(models.Account)
	if !ok {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "INVALID_SESSION")
	}

	cfg := services.GateConfigFromEnv()
	if err := services.ChangePin(database.DB, hasher, cfg, actor.ID, req.OldPin, req.NewPin); err != nil {
		return helpers.JSONServiceError(c, err)
	}

	return helpers.JSONSuccess(c, "PIN changed successfully", nil)
}
