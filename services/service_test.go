package services

import (
	"testing"

	"banksampah/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type plainHasher struct{}

func (plainHasher) Hash(pin string) (string, error) { return "h:" + pin, nil }
func (plainHasher) Verify(hash, pin string) bool    { return hash == "h:"+pin }

func testGateConfig() GateConfig {
	return GateConfig{AttemptLimit: 5, DefaultPin: "123456"}
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("raw db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.Unit{},
		&models.Account{},
		&models.WasteItem{},
		&models.UnitPrice{},
		&models.Transaction{},
		&models.TransactionLine{},
		&models.Session{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return db
}

func createUnit(t *testing.T, db *gorm.DB, name string) models.Unit {
	t.Helper()
	unit := models.Unit{UnitCode: "bs-" + name, Name: name, IsActive: true}
	if err := db.Create(&unit).Error; err != nil {
		t.Fatalf("create unit: %v", err)
	}
	return unit
}

func createAccount(t *testing.T, db *gorm.DB, nickname, role string, unitID *uint) models.Account {
	t.Helper()
	acc := models.Account{
		Nickname: nickname,
		Role:     role,
		UnitID:   unitID,
		PinHash:  "h:111111",
		IsActive: true,
	}
	if err := db.Create(&acc).Error; err != nil {
		t.Fatalf("create account %s: %v", nickname, err)
	}
	return acc
}

func createItem(t *testing.T, db *gorm.DB, name string, price string) models.WasteItem {
	t.Helper()
	item := models.WasteItem{
		Name:       name,
		PricePerKg: decimal.RequireFromString(price),
		IsActive:   true,
	}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("create item %s: %v", name, err)
	}
	return item
}

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	return decimal.RequireFromString(s)
}
