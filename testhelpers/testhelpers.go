// Package testhelpers provides utilities for testing PocketBase-based
// applications.
package testhelpers

import (
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"rentaldesk/collections"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test
// finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// CreateTestQuotation creates a quotation record with the given client name
// and charges, and returns it.
func CreateTestQuotation(t *testing.T, app *pocketbase.PocketBase, kind, clientName string, charges map[string]float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("quotations")
	if err != nil {
		t.Fatalf("failed to find quotations collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("kind", kind)
	record.Set("client_name", clientName)
	record.Set("client_no", "9876543210")
	record.Set("executive_name", "Test Executive")
	record.Set("venue_address", "Test Venue, Bangalore")
	record.Set("quote_time", "Morning")
	for field, value := range charges {
		record.Set(field, value)
	}

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test quotation: %v", err)
	}

	return record
}

// CreateTestSlot creates a slot record linked to a quotation and returns it.
func CreateTestSlot(t *testing.T, app *pocketbase.PocketBase, quotationID, slotName, quoteDate, endDate string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("slots")
	if err != nil {
		t.Fatalf("failed to find slots collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("quotation", quotationID)
	record.Set("sort_order", 1)
	record.Set("slot_name", slotName)
	record.Set("quote_date", quoteDate)
	record.Set("end_date", endDate)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test slot: %v", err)
	}

	return record
}

// CreateTestLineItem creates a line item record under a slot.
func CreateTestLineItem(t *testing.T, app *pocketbase.PocketBase, slotID string, sortOrder int, productName string, unitPrice, quantity float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("line_items")
	if err != nil {
		t.Fatalf("failed to find line_items collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("slot", slotID)
	record.Set("sort_order", sortOrder)
	record.Set("product_name", productName)
	record.Set("unit_price", unitPrice)
	record.Set("quantity", quantity)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test line item: %v", err)
	}

	return record
}

// CreateTestProduct creates a product record and returns it.
func CreateTestProduct(t *testing.T, app *pocketbase.PocketBase, name, image string, price float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("products")
	if err != nil {
		t.Fatalf("failed to find products collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("image", image)
	record.Set("price", price)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test product: %v", err)
	}

	return record
}
