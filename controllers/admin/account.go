package admin

import (
	"banksampah/database"
	"banksampah/helpers"
	"banksampah/models"
	"banksampah/services"

	"github.com/gofiber/fiber/v2"
)

var hasher = helpers.NewBcryptPinHasher()

// CreateStaff opens a PETUGAS or ADMIN account. The new account starts on
// the default PIN and must change it at first login.
func CreateStaff(c *fiber.Ctx) error {
	var req services.NewAccountInput
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	actor, ok := c.Locals("actor").(models.Account)
	if !ok {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "INVALID_SESSION")
	}

	cfg := services.GateConfigFromEnv()
	acc, err := services.CreateAccount(database.DB, hasher, cfg, services.ActorFromAccount(actor), req)
	if err != nil {
		return helpers.JSONServiceError(c, err)
	}

	return helpers.JSONSuccess(c, "Account created successfully", fiber.Map{
		"account_id":      acc.ID,
		"nickname":        acc.Nickname,
		"role":            acc.Role,
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

func ResetPin(c *fiber.Ctx) error {
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

func Unblock(c *fiber.Ctx) error {
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

func Deactivate(c *fiber.Ctx) error {
	actor, ok := c.Locals("actor").(models.Account)
	if !ok {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "INVALID_SESSION")
	}

	target, err := targetFromParams(c)
	if err != nil {
		return helpers.JSONServiceError(c, err)
	}

	if err := services.Authorize(services.ActorFromAccount(actor), services.ActorFromAccount(target), services.OpDeactivate); err != nil {
		return helpers.JSONServiceError(c, err)
	}

	if err := services.DeactivateAccount(database.DB, target.ID); err != nil {
		return helpers.JSONServiceError(c, err)
	}

	return helpers.JSONSuccess(c, "Account deactivated", fiber.Map{"account_id": target.ID})
}
