package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"rentaldesk/services"
)

// quotationSummary is one row of the listing endpoint. The grand total is
// recomputed from the stored inputs on every request; totals are never
// persisted.
type quotationSummary struct {
	ID            string  `json:"id"`
	Kind          string  `json:"kind"`
	ClientName    string  `json:"clientName"`
	ExecutiveName string  `json:"executiveName"`
	SlotName      string  `json:"slotName"`
	QuoteDate     string  `json:"quoteDate"`
	EndDate       string  `json:"endDate"`
	GrandTotal    float64 `json:"grandTotal"`
}

// HandleQuotationList returns a handler that lists quotations with their
// recomputed grand totals.
func HandleQuotationList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records, err := app.FindRecordsByFilter("quotations", "id != ''", "-created", 0, 0)
		if err != nil {
			log.Printf("quotation_list: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to list quotations")
		}

		summaries := make([]quotationSummary, 0, len(records))
		for _, rec := range records {
			info, items, err := loadQuotation(app, rec.Id)
			if err != nil {
				continue
			}
			totals := services.ComputeTotals(info.Charges, services.PriceItems(items))
			summaries = append(summaries, quotationSummary{
				ID:            rec.Id,
				Kind:          info.Kind,
				ClientName:    info.ClientName,
				ExecutiveName: info.ExecutiveName,
				SlotName:      info.SlotName,
				QuoteDate:     info.SlotStart,
				EndDate:       info.SlotEnd,
				GrandTotal:    totals.GrandTotal,
			})
		}

		return e.JSON(http.StatusOK, summaries)
	}
}
