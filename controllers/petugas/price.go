package petugas

import (
	"banksampah/database"
	"banksampah/helpers"
	"banksampah/models"
	"banksampah/services"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type LocalPriceRequest struct {
	ItemID     uint            `json:"item_id"`
	PricePerKg decimal.Decimal `json:"price_per_kg"`
}

// SetLocalPrice sets the harga lokal for the petugas's own unit. Committed
// transaction lines keep their snapshot regardless of later changes here.
func SetLocalPrice(c *fiber.Ctx) error {
	var req LocalPriceRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	actor, ok := c.Locals("actor").(models.Account)
	if !ok || actor.UnitID == nil {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "INVALID_SESSION")
	}

	local, err := services.SetLocalPrice(database.DB, *actor.UnitID, req.ItemID, req.PricePerKg)
	if err != nil {
		return helpers.JSONServiceError(c, err)
	}

	return helpers.JSONSuccess(c, "Local price saved", fiber.Map{
		"unit_id":      local.UnitID,
		"item_id":      local.WasteItemID,
		"price_per_kg": local.PricePerKg,
	})
}

// EffectivePrice shows what a deposit line would snapshot right now.
func EffectivePrice(c *fiber.Ctx) error {
	itemID, err := c.ParamsInt("id")
	if err != nil {
		return helpers.JSONError(c, "INVALID_ITEM_ID")
	}

	actor, ok := c.Locals("actor").(models.Account)
	if !ok || actor.UnitID == nil {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "INVALID_SESSION")
	}

	price, err := services.ResolvePrice(database.DB, *actor.UnitID, uint(itemID))
	if err != nil {
		return helpers.JSONServiceError(c, err)
	}

	return helpers.JSONSuccess(c, "Effective price resolved", fiber.Map{
		"unit_id":      *actor.UnitID,
		"item_id":      itemID,
		"price_per_kg": price,
	})
}
