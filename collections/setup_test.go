package collections_test

import (
	"testing"

	"rentaldesk/collections"
	"rentaldesk/testhelpers"

	"github.com/pocketbase/pocketbase/core"
)

// expectedCollections is the full list of collections that Setup() must create.
var expectedCollections = []string{
	"products",
	"quotations",
	"slots",
	"line_items",
}

func TestSetup_AllCollectionsExist(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	for _, name := range expectedCollections {
		col, err := app.FindCollectionByNameOrId(name)
		if err != nil {
			t.Errorf("collection %q not found after Setup(): %v", name, err)
			continue
		}
		if col.Name != name {
			t.Errorf("expected collection name %q, got %q", name, col.Name)
		}
	}
}

func TestSetup_Idempotent(t *testing.T) {
	app := testhelpers.NewTestApp(t) // Setup() already called once via NewTestApp

	// Collect IDs from first run
	ids := make(map[string]string)
	for _, name := range expectedCollections {
		col, _ := app.FindCollectionByNameOrId(name)
		ids[name] = col.Id
	}

	// Run Setup() again
	collections.Setup(app)

	// IDs should not change
	for _, name := range expectedCollections {
		col, err := app.FindCollectionByNameOrId(name)
		if err != nil {
			t.Errorf("collection %q missing after second Setup(): %v", name, err)
			continue
		}
		if col.Id != ids[name] {
			t.Errorf("collection %q id changed after second Setup(): %s -> %s", name, ids[name], col.Id)
		}
	}
}

func TestSetup_QuotationsFields(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	col, _ := app.FindCollectionByNameOrId("quotations")

	fields := []string{
		"kind", "client_name", "client_no", "executive_name", "place_address",
		"venue_address", "quote_time", "incharge_name", "incharge_phone",
		"transport_charge", "labour_charge", "refurbishment",
		"discount_percent", "gst_percent", "created", "updated",
	}
	for _, f := range fields {
		if col.Fields.GetByName(f) == nil {
			t.Errorf("quotations: missing field %q", f)
		}
	}

	// Verify kind is a select field with expected values
	kindField := col.Fields.GetByName("kind")
	if sf, ok := kindField.(*core.SelectField); ok {
		expected := map[string]bool{"quotation": true, "order": true}
		for _, v := range sf.Values {
			if !expected[v] {
				t.Errorf("quotations: unexpected kind value %q", v)
			}
		}
		if len(sf.Values) != 2 {
			t.Errorf("quotations: kind has %d values, want 2", len(sf.Values))
		}
	} else {
		t.Error("quotations: kind is not a select field")
	}
}

func TestSetup_SlotsFields(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	col, _ := app.FindCollectionByNameOrId("slots")

	for _, f := range []string{"quotation", "sort_order", "slot_name", "quote_date", "end_date"} {
		if col.Fields.GetByName(f) == nil {
			t.Errorf("slots: missing field %q", f)
		}
	}

	// Deleting a quotation must remove its slots
	relField := col.Fields.GetByName("quotation")
	if rf, ok := relField.(*core.RelationField); ok {
		if !rf.CascadeDelete {
			t.Error("slots: quotation relation should cascade delete")
		}
	} else {
		t.Error("slots: quotation is not a relation field")
	}
}

func TestSetup_LineItemsFields(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	col, _ := app.FindCollectionByNameOrId("line_items")

	fields := []string{
		"slot", "product", "sort_order", "product_name", "slot_label",
		"image", "unit_price", "quantity", "start_date", "end_date",
	}
	for _, f := range fields {
		if col.Fields.GetByName(f) == nil {
			t.Errorf("line_items: missing field %q", f)
		}
	}

	slotField := col.Fields.GetByName("slot")
	if rf, ok := slotField.(*core.RelationField); ok {
		if !rf.CascadeDelete {
			t.Error("line_items: slot relation should cascade delete")
		}
	} else {
		t.Error("line_items: slot is not a relation field")
	}
}
