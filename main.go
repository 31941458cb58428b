package main

import (
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"rentaldesk/collections"
	"rentaldesk/handlers"
	"rentaldesk/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using defaults")
	}

	app := pocketbase.New()

	// Create collections and seed data on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			log.Printf("Warning: seed data failed: %v", err)
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// Product images are served from ./static and fetched back over
		// HTTP by the export pipeline, like any other image host.
		se.Router.GET("/static/{path...}", apis.Static(os.DirFS("./static"), false))

		imgs := &services.HTTPImageSource{BaseURL: imageBaseURL()}

		// ── Quotation listing & export ───────────────────────────
		se.Router.GET("/quotations", handlers.HandleQuotationList(app))
		se.Router.GET("/quotations/{id}/export/pdf", handlers.HandleQuotationExportPDF(app, imgs))

		// ── Order sheet export ───────────────────────────────────
		se.Router.GET("/orders/{id}/export/sheet", handlers.HandleOrderSheetExportPDF(app, imgs))

		se.Router.GET("/", func(e *core.RequestEvent) error {
			return e.Redirect(http.StatusFound, "/quotations")
		})

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}

// imageBaseURL resolves the product image endpoint. IMAGE_API_URL points at
// an external image host; the default is this app's own static mount.
func imageBaseURL() string {
	if url := os.Getenv("IMAGE_API_URL"); url != "" {
		return url
	}
	return "http://127.0.0.1:8090/static"
}
