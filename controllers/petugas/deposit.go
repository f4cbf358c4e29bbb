package petugas

import (
	"banksampah/database"
	"banksampah/helpers"
	"banksampah/models"
	"banksampah/services"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type DepositLineRequest struct {
	ItemID   uint            `json:"item_id"`
	WeightKg decimal.Decimal `json:"weight_kg"`
}

type DepositRequest struct {
	NasabahID      uint                 `json:"nasabah_id"`
	DepositSubtype string               `json:"deposit_subtype"`
	RefID          string               `json:"ref_id"`
	Lines          []DepositLineRequest `json:"lines"`
}

// RecordDeposit books a setoran. The acting petugas and the unit come from
// the session, never from the body.
func RecordDeposit(c *fiber.Ctx) error {
	var req DepositRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	actor, ok := c.Locals("actor").(models.Account)
	if !ok || actor.UnitID == nil {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "INVALID_SESSION")
	}

	lines := make([]services.DepositLineInput, 0, len(req.Lines))
	for _, l := range req.Lines {
		lines = append(lines, services.DepositLineInput{WasteItemID: l.ItemID, WeightKg: l.WeightKg})
	}

	trx, err := services.RecordDeposit(database.DB, services.DepositInput{
		UnitID:    *actor.UnitID,
		PetugasID: actor.ID,
		NasabahID: req.NasabahID,
		Subtype:   req.DepositSubtype,
		RefID:     req.RefID,
		Lines:     lines,
	})
	if err != nil {
		return helpers.JSONServiceError(c, err)
	}

	return helpers.JSONSuccess(c, "Deposit recorded successfully", fiber.Map{
		"transaction_id": trx.ID,
		"ref_id":         trx.RefID,
		"amount":         trx.Amount,
		"balance_after":  trx.BalanceAfter,
		"lines":          trx.Lines,
	})
}
