package petugas

import (
	"banksampah/database"
	"banksampah/helpers"
	"banksampah/models"
	"banksampah/services"

	"github.com/gofiber/fiber/v2"
)

// ListTransactions pages through the petugas's own unit ledger.
func ListTransactions(c *fiber.Ctx) error {
	actor, ok := c.Locals("actor").(models.Account)
	if !ok || actor.UnitID == nil {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "INVALID_SESSION")
	}

	f := helpers.ParseHistoryFilter(c)
	f.UnitID = actor.UnitID

	page, err := services.ListTransactions(database.DB, f)
	if err != nil {
		return helpers.JSONServiceError(c, err)
	}

	return helpers.JSONSuccess(c, "Transactions retrieved successfully", page)
}

func UnitSummary(c *fiber.Ctx) error {
	actor, ok := c.Locals("actor").(models.Account)
	if !ok || actor.UnitID == nil {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "INVALID_SESSION")
	}

	sum, err := services.Summarize(database.DB, actor.UnitID)
	if err != nil {
		return helpers.JSONServiceError(c, err)
	}

	return helpers.JSONSuccess(c, "Unit summary", sum)
}
