package services

import (
	"errors"

	"banksampah/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ResolvePrice returns the effective price per kg for a waste item at a unit:
// the harga lokal override when one exists, the catalog base price otherwise.
// Callers must snapshot the result into the transaction line; re-resolving
// later can observe a different price.
func ResolvePrice(db *gorm.DB, unitID, itemID uint) (decimal.Decimal, error) {
	_, price, err := resolveItemPrice(db, unitID, itemID)
	return price, err
}

func resolveItemPrice(db *gorm.DB, unitID, itemID uint) (models.WasteItem, decimal.Decimal, error) {
	var item models.WasteItem
	if err := db.Where("id = ? AND is_active = true", itemID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.WasteItem{}, decimal.Zero, ErrItemNotFound
		}
		return models.WasteItem{}, decimal.Zero, err
	}

	var local models.UnitPrice
	err := db.Where("unit_id = ? AND waste_item_id = ?", unitID, itemID).First(&local).Error
	if err == nil {
		return item, local.PricePerKg, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.WasteItem{}, decimal.Zero, err
	}

	return item, item.PricePerKg, nil
}

// SetLocalPrice upserts the harga lokal for (unit, item). Authorization is
// the caller's job; this only validates the item and the price itself.
func SetLocalPrice(db *gorm.DB, unitID, itemID uint, pricePerKg decimal.Decimal) (models.UnitPrice, error) {
	if !pricePerKg.IsPositive() {
		return models.UnitPrice{}, ErrValidation
	}

	var item models.WasteItem
	if err := db.Where("id = ? AND is_active = true", itemID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.UnitPrice{}, ErrItemNotFound
		}
		return models.UnitPrice{}, err
	}

	var local models.UnitPrice
	err := db.Where("unit_id = ? AND waste_item_id = ?", unitID, itemID).First(&local).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		local = models.UnitPrice{UnitID: unitID, WasteItemID: itemID, PricePerKg: pricePerKg}
		if err := db.Create(&local).Error; err != nil {
			return models.UnitPrice{}, err
		}
		return local, nil
	}
	if err != nil {
		return models.UnitPrice{}, err
	}

	local.PricePerKg = pricePerKg
	if err := db.Save(&local).Error; err != nil {
		return models.UnitPrice{}, err
	}
	return local, nil
}
