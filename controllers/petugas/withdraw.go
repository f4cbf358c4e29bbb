package petugas

import (
	"banksampah/database"
	"banksampah/helpers"
	"banksampah/models"
	"banksampah/services"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type WithdrawalRequest struct {
	NasabahID uint            `json:"nasabah_id"`
	Amount    decimal.Decimal `json:"amount"`
	RefID     string          `json:"ref_id"`
}

// RecordWithdrawal books a penarikan against the nasabah balance.
func RecordWithdrawal(c *fiber.Ctx) error {
	var req WithdrawalRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	actor, ok := c.Locals("actor").(models.Account)
	if !ok || actor.UnitID == nil {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "INVALID_SESSION")
	}

	trx, err := services.RecordWithdrawal(database.DB, services.WithdrawalInput{
		UnitID:    *actor.UnitID,
		PetugasID: actor.ID,
		NasabahID: req.NasabahID,
		Amount:    req.Amount,
		RefID:     req.RefID,
	})
	if err != nil {
		return helpers.JSONServiceError(c, err)
	}

	return helpers.JSONSuccess(c, "Withdrawal recorded successfully", fiber.Map{
		"transaction_id": trx.ID,
		"ref_id":         trx.RefID,
		"amount":         trx.Amount,
		"balance_after":  trx.BalanceAfter,
	})
}
