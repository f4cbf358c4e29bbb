package petugas

import (
	"banksampah/database"
	"banksampah/helpers"
	"banksampah/models"
	"banksampah/services"

	"github.com/gofiber/fiber/v2"
)

var hasher = helpers.NewBcryptPinHasher()

type CreateNasabahRequest struct {
	Nickname string `json:"nickname"`
	FullName string `json:"full_name"`
}

// CreateNasabah opens a depositor account in the petugas's own unit.
func CreateNasabah(c *fiber.Ctx) error {
	var req CreateNasabahRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	actor, ok := c.Locals("actor").(models.Account)
	if !ok {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "INVALID_SESSION")
	}

	cfg := services.GateConfigFromEnv()
	acc, err := services.CreateAccount(database.DB, hasher, cfg, services.ActorFromAccount(actor), services.NewAccountInput{
		Nickname: req.Nickname,
		FullName: req.FullName,
		Role:     models.RoleNasabah,
		UnitID:   actor.UnitID,
	})
	if err != nil {
		return helpers.JSONServiceError(c, err)
	}

	return helpers.JSONSuccess(c, "Nasabah registered successfully", fiber.Map{
		"account_id":      acc.ID,
		"nickname":        acc.Nickname,
		"unit_id":         acc.UnitID,
		"must_change_pin": acc.MustChangePin,
	})
}

func targetFromParams(c *fiber.Ctx) (models.Account, error) {
	id, err := c.ParamsInt("id")
	if err != nil {
		return models.Account{}, services.ErrNotFound
	}
	return services.FindTarget(database.DB, uint(id))
}

// ResetNasabahPin resets a nasabah PIN; cross-unit attempts bounce off the
// authorization table before the target is touched.
func ResetNasabahPin(c *fiber.Ctx) error {
	actor, ok := c.Locals("actor").(models.Account)
	if !ok {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "INVALID_SESSION")
	}

	target, err := targetFromParams(c)
	if err != nil {
		return helpers.JSONServiceError(c, err)
	}

	if err := services.Authorize(services.ActorFromAccount(actor), services.ActorFromAccount(target), services.OpResetPin); err != nil {
		return helpers.JSONServiceError(c, err)
	}

	cfg := services.GateConfigFromEnv()
	if err := services.ResetPin(database.DB, hasher, cfg, target.ID); err != nil {
		return helpers.JSONServiceError(c, err)
	}

	return helpers.JSONSuccess(c, "PIN reset to default", fiber.Map{"account_id": target.ID})
}

func UnblockNasabah(c *fiber.Ctx) error {
	actor, ok := c.Locals("actor").(models.Account)
	if !ok {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "INVALID_SESSION")
	}

	target, err := targetFromParams(c)
	if err != nil {
		return helpers.JSONServiceError(c, err)
	}

	if err := services.Authorize(services.ActorFromAccount(actor), services.ActorFromAccount(target), services.OpUnblock); err != nil {
		return helpers.JSONServiceError(c, err)
	}

	if err := services.Unblock(database.DB, target.ID); err != nil {
		return helpers.JSONServiceError(c, err)
	}

	return helpers.JSONSuccess(c, "Account unblocked", fiber.Map{"account_id": target.ID})
}
