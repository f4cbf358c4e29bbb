package admin

import (
	"banksampah/database"
	"banksampah/helpers"
	"banksampah/services"

	"github.com/gofiber/fiber/v2"
)

// ListTransactions gives the admin a cross-unit view, optionally scoped with
// ?unit_id=.
func ListTransactions(c *fiber.Ctx) error {
	f := helpers.ParseHistoryFilter(c)
	if v := c.QueryInt("unit_id", 0); v > 0 {
		id := uint(v)
		f.UnitID = &id
	}

	page, err := services.ListTransactions(database.DB, f)
	if err != nil {
		return helpers.JSONServiceError(c, err)
	}

	return helpers.JSONSuccess(c, "Transactions retrieved successfully", page)
}

func Summary(c *fiber.Ctx) error {
	var unitID *uint
	if v := c.QueryInt("unit_id", 0); v > 0 {
		id := uint(v)
		unitID = &id
	}

	sum, err := services.Summarize(database.DB, unitID)
	if err != nil {
		return helpers.JSONServiceError(c, err)
	}

	return helpers.JSONSuccess(c, "Ledger summary", sum)
}
