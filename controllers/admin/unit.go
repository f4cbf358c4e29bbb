package admin

import (
	"banksampah/database"
	"banksampah/helpers"
	"banksampah/models"

	"github.com/gofiber/fiber/v2"
)

type CreateUnitRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

func CreateUnit(c *fiber.Ctx) error {
	var req CreateUnitRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	if req.Name == "" {
		return helpers.JSONError(c, "UNIT_NAME_REQUIRED")
	}

	var existing models.Unit
	if err := database.DB.Where("name = ?", req.Name).First(&existing).Error; err == nil {
		return helpers.JSONError(c, "UNIT_ALREADY_EXISTS")
	}

	unit := models.Unit{
		UnitCode: helpers.GenerateUnitCode(),
		Name:     req.Name,
		Address:  req.Address,
		IsActive: true,
	}
	if err := database.DB.Create(&unit).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_CREATE_UNIT")
	}

	return helpers.JSONSuccess(c, "Unit created successfully", fiber.Map{
		"unit_id":   unit.ID,
		"unit_code": unit.UnitCode,
		"name":      unit.Name,
	})
}

func ListUnits(c *fiber.Ctx) error {
	var units []models.Unit
	if err := database.DB.Order("id asc").Find(&units).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_LIST_UNITS")
	}
	return helpers.JSONSuccess(c, "Units retrieved successfully", units)
}

// DeactivateUnit flips the active flag; units are never deleted so the
// ledger keeps its unit references.
func DeactivateUnit(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helpers.JSONError(c, "INVALID_UNIT_ID")
	}

	var unit models.Unit
	if err := database.DB.First(&unit, id).Error; err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusNotFound, "UNIT_NOT_FOUND")
	}

	unit.IsActive = false
	if err := database.DB.Save(&unit).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_UPDATE_UNIT")
	}

	return helpers.JSONSuccess(c, "Unit deactivated", fiber.Map{"unit_id": unit.ID})
}
