package collections_test

import (
	"testing"

	"rentaldesk/collections"
	"rentaldesk/testhelpers"
)

func TestSeed_CreatesData(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if err := collections.Seed(app); err != nil {
		t.Fatalf("Seed() error: %v", err)
	}

	// Verify products were created
	productsCol, _ := app.FindCollectionByNameOrId("products")
	products, err := app.FindAllRecords(productsCol)
	if err != nil {
		t.Fatalf("query products error: %v", err)
	}
	if len(products) != 4 {
		t.Errorf("expected 4 products, got %d", len(products))
	}

	// Verify the quotation was created
	quotationsCol, _ := app.FindCollectionByNameOrId("quotations")
	quotations, err := app.FindAllRecords(quotationsCol)
	if err != nil {
		t.Fatalf("query quotations error: %v", err)
	}
	if len(quotations) != 1 {
		t.Fatalf("expected 1 quotation, got %d", len(quotations))
	}
	q := quotations[0]
	if q.GetString("client_name") != "Sterling Events Pvt Ltd" {
		t.Errorf("client_name = %q, want %q", q.GetString("client_name"), "Sterling Events Pvt Ltd")
	}
	if q.GetFloat("discount_percent") != 10 {
		t.Errorf("discount_percent = %v, want 10", q.GetFloat("discount_percent"))
	}

	// Verify the slot is linked to the quotation
	slotsCol, _ := app.FindCollectionByNameOrId("slots")
	slots, _ := app.FindAllRecords(slotsCol)
	if len(slots) != 1 {
		t.Fatalf("expected 1 slot, got %d", len(slots))
	}
	if slots[0].GetString("quotation") != q.Id {
		t.Errorf("slot quotation = %q, want %q", slots[0].GetString("quotation"), q.Id)
	}
	if slots[0].GetString("quote_date") != "14-02-2026" {
		t.Errorf("slot quote_date = %q, want 14-02-2026", slots[0].GetString("quote_date"))
	}

	// Verify line items hang off the slot
	itemsCol, _ := app.FindCollectionByNameOrId("line_items")
	items, _ := app.FindAllRecords(itemsCol)
	if len(items) != 3 {
		t.Fatalf("expected 3 line items, got %d", len(items))
	}
	for _, it := range items {
		if it.GetString("slot") != slots[0].Id {
			t.Errorf("line item %q not linked to seeded slot", it.GetString("product_name"))
		}
	}
}

func TestSeed_Idempotent(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if err := collections.Seed(app); err != nil {
		t.Fatalf("first Seed() error: %v", err)
	}
	if err := collections.Seed(app); err != nil {
		t.Fatalf("second Seed() error: %v", err)
	}

	quotationsCol, _ := app.FindCollectionByNameOrId("quotations")
	quotations, _ := app.FindAllRecords(quotationsCol)
	if len(quotations) != 1 {
		t.Errorf("expected 1 quotation after double seed, got %d", len(quotations))
	}

	productsCol, _ := app.FindCollectionByNameOrId("products")
	products, _ := app.FindAllRecords(productsCol)
	if len(products) != 4 {
		t.Errorf("expected 4 products after double seed, got %d", len(products))
	}
}
