package collections

import (
	"fmt"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// ── Definition structs ───────────────────────────────────────────────────

type productDef struct {
	name  string
	image string
	price float64
}

type itemDef struct {
	sortOrder   int
	productName string
	slotLabel   string
	image       string
	unitPrice   float64
	quantity    float64
	startDate   string
	endDate     string
}

type slotDef struct {
	sortOrder int
	slotName  string
	quoteDate string
	endDate   string
	items     []itemDef
}

type quotationDef struct {
	kind            string
	clientName      string
	clientNo        string
	executiveName   string
	placeAddress    string
	venueAddress    string
	quoteTime       string
	inchargeName    string
	inchargePhone   string
	transportCharge float64
	labourCharge    float64
	refurbishment   float64
	discountPercent float64
	gstPercent      float64
	slots           []slotDef
}

var seedProducts = []productDef{
	{name: "Chiavari Chair (Gold)", image: "chiavari_gold.jpg", price: 180},
	{name: "Round Banquet Table 6ft", image: "round_table_6ft.jpg", price: 450},
	{name: "Lounge Sofa (White Leather)", image: "lounge_sofa_white.jpg", price: 1200},
	{name: "Cocktail Table", image: "cocktail_table.jpg", price: 350},
}

var seedQuotation = quotationDef{
	kind:            "quotation",
	clientName:      "Sterling Events Pvt Ltd",
	clientNo:        "9845012345",
	executiveName:   "Priya Nair",
	placeAddress:    "12 Residency Road, Bangalore",
	venueAddress:    "Palace Grounds, Gate 3, Bangalore",
	quoteTime:       "Morning",
	inchargeName:    "Suresh",
	inchargePhone:   "9900112233",
	transportCharge: 2500,
	labourCharge:    1500,
	discountPercent: 10,
	gstPercent:      18,
	slots: []slotDef{
		{
			sortOrder: 1,
			slotName:  "Main Event",
			quoteDate: "14-02-2026",
			endDate:   "16-02-2026",
			items: []itemDef{
				{sortOrder: 1, productName: "Chiavari Chair (Gold)", image: "chiavari_gold.jpg", unitPrice: 180, quantity: 120},
				{sortOrder: 2, productName: "Round Banquet Table 6ft", image: "round_table_6ft.jpg", unitPrice: 450, quantity: 15},
				{sortOrder: 3, productName: "Lounge Sofa (White Leather)", slotLabel: "Evening", image: "lounge_sofa_white.jpg", unitPrice: 1200, quantity: 4, startDate: "14-02-2026", endDate: "14-02-2026"},
			},
		},
	},
}

// Seed populates the database with a sample quotation when it is empty, so
// the export endpoints have something to render on first run.
func Seed(app *pocketbase.PocketBase) error {
	existing, err := app.FindRecordsByFilter("quotations", "id != ''", "", 1, 0)
	if err == nil && len(existing) > 0 {
		return nil
	}

	productsCol, err := app.FindCollectionByNameOrId("products")
	if err != nil {
		return fmt.Errorf("products collection not found: %w", err)
	}
	for _, p := range seedProducts {
		rec := core.NewRecord(productsCol)
		rec.Set("name", p.name)
		rec.Set("image", p.image)
		rec.Set("price", p.price)
		if err := app.Save(rec); err != nil {
			return fmt.Errorf("seed product %q: %w", p.name, err)
		}
	}

	return seedQuotationTree(app, seedQuotation)
}

func seedQuotationTree(app *pocketbase.PocketBase, def quotationDef) error {
	quotationsCol, err := app.FindCollectionByNameOrId("quotations")
	if err != nil {
		return fmt.Errorf("quotations collection not found: %w", err)
	}
	slotsCol, err := app.FindCollectionByNameOrId("slots")
	if err != nil {
		return fmt.Errorf("slots collection not found: %w", err)
	}
	itemsCol, err := app.FindCollectionByNameOrId("line_items")
	if err != nil {
		return fmt.Errorf("line_items collection not found: %w", err)
	}

	q := core.NewRecord(quotationsCol)
	q.Set("kind", def.kind)
	q.Set("client_name", def.clientName)
	q.Set("client_no", def.clientNo)
	q.Set("executive_name", def.executiveName)
	q.Set("place_address", def.placeAddress)
	q.Set("venue_address", def.venueAddress)
	q.Set("quote_time", def.quoteTime)
	q.Set("incharge_name", def.inchargeName)
	q.Set("incharge_phone", def.inchargePhone)
	q.Set("transport_charge", def.transportCharge)
	q.Set("labour_charge", def.labourCharge)
	q.Set("refurbishment", def.refurbishment)
	q.Set("discount_percent", def.discountPercent)
	q.Set("gst_percent", def.gstPercent)
	if err := app.Save(q); err != nil {
		return fmt.Errorf("seed quotation: %w", err)
	}

	for _, s := range def.slots {
		slot := core.NewRecord(slotsCol)
		slot.Set("quotation", q.Id)
		slot.Set("sort_order", s.sortOrder)
		slot.Set("slot_name", s.slotName)
		slot.Set("quote_date", s.quoteDate)
		slot.Set("end_date", s.endDate)
		if err := app.Save(slot); err != nil {
			return fmt.Errorf("seed slot %q: %w", s.slotName, err)
		}

		for _, it := range s.items {
			item := core.NewRecord(itemsCol)
			item.Set("slot", slot.Id)
			item.Set("sort_order", it.sortOrder)
			item.Set("product_name", it.productName)
			item.Set("slot_label", it.slotLabel)
			item.Set("image", it.image)
			item.Set("unit_price", it.unitPrice)
			item.Set("quantity", it.quantity)
			item.Set("start_date", it.startDate)
			item.Set("end_date", it.endDate)
			if err := app.Save(item); err != nil {
				return fmt.Errorf("seed line item %q: %w", it.productName, err)
			}
		}
	}

	return nil
}
