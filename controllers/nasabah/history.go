package nasabah

import (
	"banksampah/database"
	"banksampah/helpers"
	"banksampah/models"
	"banksampah/services"

	"github.com/gofiber/fiber/v2"
)

func Me(c *fiber.Ctx) error {
	actor, ok := c.Locals("actor").(models.Account)
	if !ok {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "INVALID_SESSION")
	}

	return helpers.JSONSuccess(c, "Account retrieved successfully", fiber.Map{
		"account_id":      actor.ID,
		"nickname":        actor.Nickname,
		"full_name":       actor.FullName,
		"unit_id":         actor.UnitID,
		"balance":         actor.Balance,
		"must_change_pin": actor.MustChangePin,
	})
}

// History lists the caller's own ledger only; the nasabah filter is pinned
// to the session identity.
func History(c *fiber.Ctx) error {
	actor, ok := c.Locals("actor").(models.Account)
	if !ok {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "INVALID_SESSION")
	}

	f := helpers.ParseHistoryFilter(c)
	f.NasabahID = &actor.ID
	f.UnitID = nil

	page, err := services.ListTransactions(database.DB, f)
	if err != nil {
		return helpers.JSONServiceError(c, err)
	}

	return helpers.JSONSuccess(c, "History retrieved successfully", page)
}
