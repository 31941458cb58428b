package services

import (
	"regexp"
	"strings"
)

// QuotationInfo carries the quotation/order fields the export documents
// need. Optional record fields are resolved to concrete values (empty
// string, zero) exactly once, in the handler that builds this struct.
type QuotationInfo struct {
	Kind          string // "quotation" or "order"
	ClientName    string
	ClientNo      string
	ExecutiveName string
	PlaceAddress  string
	VenueAddress  string
	QuoteTime     string // quotation-level time window label
	InchargeName  string
	InchargePhone string

	// First slot, used for the header block and the export filename.
	SlotName  string
	SlotStart string // DD-MM-YYYY
	SlotEnd   string

	Charges Charges
}

// DocumentItem is one raw line item before duration and amount resolution.
// SlotStart/SlotEnd are the parent slot's dates, used as the fallback range
// when the item carries no dates of its own.
type DocumentItem struct {
	ProductName string
	SlotLabel   string
	ImageRef    string
	UnitPrice   float64
	Quantity    float64
	StartDate   string
	EndDate     string
	SlotStart   string
	SlotEnd     string
}

// HeaderField is one label/value pair in a document header grid.
type HeaderField struct {
	Label string
	Value string
}

// ItemRow is a fully resolved table row: duration and line amount computed,
// slot label defaulted, image payload attached after the embed pass.
type ItemRow struct {
	SNo         int
	ProductName string
	SlotLabel   string
	ImageRef    string
	Image       []byte // JPEG payload, nil when missing or fetch failed
	UnitPrice   float64
	Quantity    float64
	Days        int
	Amount      float64
}

// InvoiceDocument is the render-agnostic model consumed by the PDF
// renderers. It is built once per export request and discarded afterwards.
type InvoiceDocument struct {
	Title             string
	Header            []HeaderField
	Rows              []ItemRow
	Charges           Charges
	Totals            Totals
	AmountInWords     string
	Notes             []string
	SuggestedFilename string
}

// rentalNotes is the fixed notes block printed on every exported sheet.
var rentalNotes = []string{
	"Additional elements would be charged on actuals, transportation would be additional.",
	"100% Payment for confirmation of event.",
	"Costing is merely for estimation purposes. Requirements are blocked post payment in full.",
	"If inventory is not reserved with payments, we are not committed to keep it.",
	"The nature of the rental industry is that our furniture is frequently moved and transported, which can lead to scratches on glass, minor chipping of paintwork, and minor stains. We ask you to visit the warehouse to inspect blocked furniture if you wish.",
}

// PriceItems resolves each item's rental duration and returns the priced
// lines that feed ComputeTotals.
func PriceItems(items []DocumentItem) []PricedItem {
	priced := make([]PricedItem, len(items))
	for i, it := range items {
		priced[i] = PricedItem{
			UnitPrice: it.UnitPrice,
			Quantity:  it.Quantity,
			Days:      ResolveDuration(it.StartDate, it.EndDate, it.SlotStart, it.SlotEnd),
		}
	}
	return priced
}

// BuildInvoiceDocument assembles the full quotation invoice model: header
// fields, resolved item rows, the canonical totals, amount in words, notes,
// and the suggested export filename.
func BuildInvoiceDocument(q QuotationInfo, items []DocumentItem, totals Totals) InvoiceDocument {
	return InvoiceDocument{
		Title: "Quotation",
		Header: []HeaderField{
			{Label: "Client Name", Value: q.ClientName},
			{Label: "Contact Number", Value: q.ClientNo},
			{Label: "Executive Name", Value: q.ExecutiveName},
			{Label: "Client Address", Value: q.PlaceAddress},
			{Label: "Venue Address", Value: q.VenueAddress},
		},
		Rows:              buildRows(q, items),
		Charges:           q.Charges,
		Totals:            totals,
		AmountInWords:     AmountToWords(totals.GrandTotal),
		Notes:             rentalNotes,
		SuggestedFilename: documentFilename(q),
	}
}

// BuildOrderSheetDocument assembles the order sheet model. Order sheets are
// operational documents: the header carries the delivery logistics grid and
// the item table omits all pricing, so no totals are attached.
func BuildOrderSheetDocument(q QuotationInfo, items []DocumentItem) InvoiceDocument {
	return InvoiceDocument{
		Title: "Order Sheet",
		Header: []HeaderField{
			{Label: "Company Name", Value: q.ClientName},
			{Label: "Client Name", Value: q.ExecutiveName},
			{Label: "Slot", Value: q.SlotName},
			{Label: "Venue", Value: q.VenueAddress},
			{Label: "Delivery Date", Value: q.SlotStart},
			{Label: "Dismantle Date", Value: q.SlotEnd},
			{Label: "Incharge Name", Value: fallback(q.InchargeName, "N/A")},
			{Label: "Incharge Phone", Value: fallback(q.InchargePhone, "N/A")},
		},
		Rows:              buildRows(q, items),
		Notes:             rentalNotes,
		SuggestedFilename: documentFilename(q),
	}
}

func buildRows(q QuotationInfo, items []DocumentItem) []ItemRow {
	rows := make([]ItemRow, len(items))
	for i, it := range items {
		days := ResolveDuration(it.StartDate, it.EndDate, it.SlotStart, it.SlotEnd)
		rows[i] = ItemRow{
			SNo:         i + 1,
			ProductName: it.ProductName,
			SlotLabel:   fallback(it.SlotLabel, q.QuoteTime),
			ImageRef:    it.ImageRef,
			UnitPrice:   it.UnitPrice,
			Quantity:    it.Quantity,
			Days:        days,
			Amount:      LineAmount(it.UnitPrice, it.Quantity, days),
		}
	}
	return rows
}

func fallback(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

// documentFilename builds the suggested export filename from the slot's
// day-month labels, the executive, the venue and the client.
func documentFilename(q QuotationInfo) string {
	return BuildFilename([]string{
		DayMonthLabel(q.SlotStart),
		DayMonthLabel(q.SlotEnd),
		q.ExecutiveName,
		q.VenueAddress,
		q.ClientName,
	}, "pdf")
}

var (
	unsafeFilenameChars = regexp.MustCompile(`[\/\\?%*:|"<>]`)
	whitespaceRuns      = regexp.MustCompile(`\s+`)
	underscoreRuns      = regexp.MustCompile(`_+`)
)

// SafeToken sanitizes a free-text value for use inside a filename: path and
// shell-unsafe characters are stripped, whitespace runs become underscores,
// and the result is capped at 120 characters. Empty input yields fallback.
func SafeToken(v, fallbackToken string) string {
	s := strings.TrimSpace(v)
	s = unsafeFilenameChars.ReplaceAllString(s, "")
	s = whitespaceRuns.ReplaceAllString(s, "_")
	if len(s) > 120 {
		s = s[:120]
	}
	if s == "" {
		return fallbackToken
	}
	return s
}

// BuildFilename joins sanitized parts with "-" and appends the extension.
// Runs of underscores left over from sanitizing collapse to one.
func BuildFilename(parts []string, ext string) string {
	tokens := make([]string, len(parts))
	for i, p := range parts {
		tokens[i] = SafeToken(p, "NA")
	}
	name := underscoreRuns.ReplaceAllString(strings.Join(tokens, "-"), "_")
	return name + "." + ext
}
