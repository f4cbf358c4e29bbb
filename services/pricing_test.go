package services

import (
	"errors"
	"testing"
)

func TestResolvePriceBaseAndOverride(t *testing.T) {
	db := setupTestDB(t)
	u1 := createUnit(t, db, "melati")
	u2 := createUnit(t, db, "kenanga")
	plastic := createItem(t, db, "Plastic", "2000")

	price, err := ResolvePrice(db, u1.ID, plastic.ID)
	if err != nil {
		t.Fatalf("resolve base: %v", err)
	}
	if !price.Equal(dec(t, "2000")) {
		t.Fatalf("want base 2000, got %s", price)
	}

	if _, err := SetLocalPrice(db, u1.ID, plastic.ID, dec(t, "2500")); err != nil {
		t.Fatalf("set local price: %v", err)
	}

	price, err = ResolvePrice(db, u1.ID, plastic.ID)
	if err != nil {
		t.Fatalf("resolve override: %v", err)
	}
	if !price.Equal(dec(t, "2500")) {
		t.Fatalf("want override 2500, got %s", price)
	}

	// The other unit keeps the catalog price.
	price, err = ResolvePrice(db, u2.ID, plastic.ID)
	if err != nil {
		t.Fatalf("resolve other unit: %v", err)
	}
	if !price.Equal(dec(t, "2000")) {
		t.Fatalf("want base 2000 at other unit, got %s", price)
	}
}

func TestResolvePriceInactiveOrMissingItem(t *testing.T) {
	db := setupTestDB(t)
	u1 := createUnit(t, db, "melati")
	plastic := createItem(t, db, "Plastic", "2000")

	if _, err := ResolvePrice(db, u1.ID, 9999); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("missing item: want ErrItemNotFound, got %v", err)
	}

	plastic.IsActive = false
	db.Save(&plastic)

	if _, err := ResolvePrice(db, u1.ID, plastic.ID); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("inactive item: want ErrItemNotFound, got %v", err)
	}
}

func TestSetLocalPriceUpsertsAndValidates(t *testing.T) {
	db := setupTestDB(t)
	u1 := createUnit(t, db, "melati")
	plastic := createItem(t, db, "Plastic", "2000")

	if _, err := SetLocalPrice(db, u1.ID, plastic.ID, dec(t, "0")); !errors.Is(err, ErrValidation) {
		t.Fatalf("zero price: want ErrValidation, got %v", err)
	}
	if _, err := SetLocalPrice(db, u1.ID, 9999, dec(t, "2500")); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("unknown item: want ErrItemNotFound, got %v", err)
	}

	first, err := SetLocalPrice(db, u1.ID, plastic.ID, dec(t, "2500"))
	if err != nil {
		t.Fatalf("create override: %v", err)
	}
	second, err := SetLocalPrice(db, u1.ID, plastic.ID, dec(t, "2600"))
	if err != nil {
		t.Fatalf("update override: %v", err)
	}
	if first.ID != second.ID {
		t.Fatalf("expected update of the same row, got new row")
	}
	if !second.PricePerKg.Equal(dec(t, "2600")) {
		t.Fatalf("want 2600, got %s", second.PricePerKg)
	}
}
