// Package collections programmatically creates the PocketBase schema for
// the rental quotation tracker.
package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Setup ensures the quotations, slots, line_items and products collections
// exist.
func Setup(app *pocketbase.PocketBase) {
	products := ensureCollection(app, "products", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.TextField{Name: "image", Required: false})
		c.Fields.Add(&core.NumberField{Name: "price", Required: false})
	})

	quotations := ensureCollection(app, "quotations", func(c *core.Collection) {
		c.Fields.Add(&core.SelectField{
			Name:      "kind",
			Required:  true,
			Values:    []string{"quotation", "order"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.TextField{Name: "client_name", Required: true})
		c.Fields.Add(&core.TextField{Name: "client_no", Required: false})
		c.Fields.Add(&core.TextField{Name: "executive_name", Required: false})
		c.Fields.Add(&core.TextField{Name: "place_address", Required: false})
		c.Fields.Add(&core.TextField{Name: "venue_address", Required: false})
		c.Fields.Add(&core.TextField{Name: "quote_time", Required: false})
		c.Fields.Add(&core.TextField{Name: "incharge_name", Required: false})
		c.Fields.Add(&core.TextField{Name: "incharge_phone", Required: false})
		c.Fields.Add(&core.NumberField{Name: "transport_charge", Required: false})
		c.Fields.Add(&core.NumberField{Name: "labour_charge", Required: false})
		c.Fields.Add(&core.NumberField{Name: "refurbishment", Required: false})
		c.Fields.Add(&core.NumberField{Name: "discount_percent", Required: false})
		c.Fields.Add(&core.NumberField{Name: "gst_percent", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	slots := ensureCollection(app, "slots", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "quotation",
			Required:      true,
			CollectionId:  quotations.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.NumberField{Name: "sort_order", Required: true})
		c.Fields.Add(&core.TextField{Name: "slot_name", Required: false})
		// Date ranges are stored as DD-MM-YYYY text, the form the
		// duration resolver parses.
		c.Fields.Add(&core.TextField{Name: "quote_date", Required: false})
		c.Fields.Add(&core.TextField{Name: "end_date", Required: false})
	})

	ensureCollection(app, "line_items", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "slot",
			Required:      true,
			CollectionId:  slots.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.RelationField{
			Name:          "product",
			Required:      false,
			CollectionId:  products.Id,
			CascadeDelete: false,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.NumberField{Name: "sort_order", Required: true})
		c.Fields.Add(&core.TextField{Name: "product_name", Required: true})
		c.Fields.Add(&core.TextField{Name: "slot_label", Required: false})
		c.Fields.Add(&core.TextField{Name: "image", Required: false})
		c.Fields.Add(&core.NumberField{Name: "unit_price", Required: false})
		c.Fields.Add(&core.NumberField{Name: "quantity", Required: false})
		c.Fields.Add(&core.TextField{Name: "start_date", Required: false})
		c.Fields.Add(&core.TextField{Name: "end_date", Required: false})
	})
}

// ensureCollection checks if a collection already exists by name. If it
// does, the existing collection is returned. Otherwise a new base
// collection is created, the addFields callback populates its fields, and
// the collection is saved.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		log.Printf("Collection %q already exists, skipping creation.\n", name)
		return existing
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		log.Fatalf("Failed to create collection %q: %v", name, err)
	}

	fmt.Printf("Created collection %q (id=%s)\n", name, collection.Id)
	return collection
}
