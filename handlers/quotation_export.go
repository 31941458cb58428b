// Package handlers wires PocketBase records into the pricing and export
// engine and serves the generated documents.
package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"rentaldesk/services"
)

// loadQuotation fetches a quotation with its slots and line items and maps
// them into the engine's input structs. All optional fields are defaulted
// here, once; nothing deeper in the pipeline re-defaults them.
func loadQuotation(app *pocketbase.PocketBase, id string) (services.QuotationInfo, []services.DocumentItem, error) {
	q, err := app.FindRecordById("quotations", id)
	if err != nil {
		return services.QuotationInfo{}, nil, fmt.Errorf("quotation not found: %w", err)
	}

	info := services.QuotationInfo{
		Kind:          q.GetString("kind"),
		ClientName:    q.GetString("client_name"),
		ClientNo:      q.GetString("client_no"),
		ExecutiveName: q.GetString("executive_name"),
		PlaceAddress:  q.GetString("place_address"),
		VenueAddress:  q.GetString("venue_address"),
		QuoteTime:     q.GetString("quote_time"),
		InchargeName:  q.GetString("incharge_name"),
		InchargePhone: q.GetString("incharge_phone"),
		Charges: services.Charges{
			Transport:       services.SafeNumber(q.Get("transport_charge"), 0),
			Labour:          services.SafeNumber(q.Get("labour_charge"), 0),
			Refurbishment:   services.SafeNumber(q.Get("refurbishment"), 0),
			DiscountPercent: services.SafeNumber(q.Get("discount_percent"), 0),
			GSTPercent:      services.SafeNumber(q.Get("gst_percent"), 0),
		},
	}

	slots, err := app.FindRecordsByFilter(
		"slots",
		"quotation = {:quotationId}",
		"sort_order",
		0,
		0,
		map[string]any{"quotationId": id},
	)
	if err != nil {
		log.Printf("quotation_export: could not fetch slots for %s: %v", id, err)
		slots = nil
	}

	var items []services.DocumentItem
	for si, slot := range slots {
		if si == 0 {
			info.SlotName = slot.GetString("slot_name")
			info.SlotStart = slot.GetString("quote_date")
			info.SlotEnd = slot.GetString("end_date")
		}

		slotItems, err := app.FindRecordsByFilter(
			"line_items",
			"slot = {:slotId}",
			"sort_order",
			0,
			0,
			map[string]any{"slotId": slot.Id},
		)
		if err != nil {
			log.Printf("quotation_export: could not fetch items for slot %s: %v", slot.Id, err)
			continue
		}

		for _, it := range slotItems {
			items = append(items, services.DocumentItem{
				ProductName: it.GetString("product_name"),
				SlotLabel:   it.GetString("slot_label"),
				ImageRef:    it.GetString("image"),
				UnitPrice:   services.SafeNumber(it.Get("unit_price"), 0),
				Quantity:    services.SafeNumber(it.Get("quantity"), 0),
				StartDate:   it.GetString("start_date"),
				EndDate:     it.GetString("end_date"),
				SlotStart:   slot.GetString("quote_date"),
				SlotEnd:     slot.GetString("end_date"),
			})
		}
	}

	return info, items, nil
}

// HandleQuotationExportPDF returns a handler that generates and downloads
// the invoice PDF for a quotation.
func HandleQuotationExportPDF(app *pocketbase.PocketBase, imgs services.ImageSource) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if id == "" {
			return e.String(http.StatusBadRequest, "Missing quotation ID")
		}

		info, items, err := loadQuotation(app, id)
		if err != nil {
			log.Printf("quotation_export: %v", err)
			return e.String(http.StatusNotFound, "Nothing to export")
		}
		if len(items) == 0 {
			return e.String(http.StatusNotFound, "Nothing to export")
		}

		totals := services.ComputeTotals(info.Charges, services.PriceItems(items))
		doc := services.BuildInvoiceDocument(info, items, totals)
		services.AttachImages(e.Request.Context(), imgs, &doc)

		pdfBytes, err := services.GenerateInvoicePDF(doc)
		if err != nil {
			log.Printf("quotation_export: failed to generate PDF: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate PDF")
		}

		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, doc.SuggestedFilename))
		e.Response.Write(pdfBytes)
		return nil
	}
}
