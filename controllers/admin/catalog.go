package admin

import (
	"banksampah/database"
	"banksampah/helpers"
	"banksampah/models"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type CatalogItemRequest struct {
	Name       string          `json:"name"`
	PricePerKg decimal.Decimal `json:"price_per_kg"`
}

func CreateCatalogItem(c *fiber.Ctx) error {
	var req CatalogItemRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	if req.Name == "" || !req.PricePerKg.IsPositive() {
		return helpers.JSONError(c, "NAME_AND_VALID_PRICE_REQUIRED")
	}

	var existing models.WasteItem
	if err := database.DB.Where("name = ?", req.Name).First(&existing).Error; err == nil {
		return helpers.JSONError(c, "ITEM_ALREADY_EXISTS")
	}

	item := models.WasteItem{
		Name:       req.Name,
		PricePerKg: req.PricePerKg,
		IsActive:   true,
	}
	if err := database.DB.Create(&item).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_CREATE_ITEM")
	}

	return helpers.JSONSuccess(c, "Catalog item created", item)
}

func UpdateCatalogItem(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helpers.JSONError(c, "INVALID_ITEM_ID")
	}

	var req CatalogItemRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	var item models.WasteItem
	if err := database.DB.First(&item, id).Error; err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusNotFound, "ITEM_NOT_FOUND")
	}

	// Editing the base price never touches committed transaction lines;
	// those carry their own snapshot.
	if req.PricePerKg.IsPositive() {
		item.PricePerKg = req.PricePerKg
	}
	if req.Name != "" {
		item.Name = req.Name
	}
	if err := database.DB.Save(&item).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_UPDATE_ITEM")
	}

	return helpers.JSONSuccess(c, "Catalog item updated", item)
}

func DeactivateCatalogItem(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helpers.JSONError(c, "INVALID_ITEM_ID")
	}

	var item models.WasteItem
	if err := database.DB.First(&item, id).Error; err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusNotFound, "ITEM_NOT_FOUND")
	}

	item.IsActive = false
	if err := database.DB.Save(&item).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_UPDATE_ITEM")
	}

	return helpers.JSONSuccess(c, "Catalog item deactivated", fiber.Map{"item_id": item.ID})
}

func ListCatalog(c *fiber.Ctx) error {
	var items []models.WasteItem
	if err := database.DB.Order("name asc").Find(&items).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_LIST_CATALOG")
	}
	return helpers.JSONSuccess(c, "Catalog retrieved successfully", items)
}
