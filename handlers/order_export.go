package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"rentaldesk/services"
)

// HandleOrderSheetExportPDF returns a handler that generates and downloads
// the order sheet PDF for a confirmed order. Order sheets carry no pricing;
// they are the document the delivery crew works from.
func HandleOrderSheetExportPDF(app *pocketbase.PocketBase, imgs services.ImageSource) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if id == "" {
			return e.String(http.StatusBadRequest, "Missing order ID")
		}

		info, items, err := loadQuotation(app, id)
		if err != nil {
			log.Printf("order_export: %v", err)
			return e.String(http.StatusNotFound, "Nothing to export")
		}
		if info.Kind != "order" {
			return e.String(http.StatusNotFound, "Order not found")
		}
		if len(items) == 0 {
			return e.String(http.StatusNotFound, "Nothing to export")
		}

		doc := services.BuildOrderSheetDocument(info, items)
		services.AttachImages(e.Request.Context(), imgs, &doc)

		pdfBytes, err := services.GenerateOrderSheetPDF(doc)
		if err != nil {
			log.Printf("order_export: failed to generate PDF: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate PDF")
		}

		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, doc.SuggestedFilename))
		e.Response.Write(pdfBytes)
		return nil
	}
}
