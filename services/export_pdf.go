package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/page"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// Fixed row heights used by both renderers, in mm.
const (
	titleRowHeight  = 12.0
	fieldRowHeight  = 7.0
	tableHeadHeight = 8.0
	spacerHeight    = 4.0
)

// GenerateInvoicePDF renders the quotation invoice: header fields, the
// paginated item table, the totals summary, amount in words, and the notes
// block. Page breaks come from the layout plan, never from the renderer, so
// an item row is never split across pages.
func GenerateInvoicePDF(doc InvoiceDocument) ([]byte, error) {
	m := newDocumentMaroto()

	headerHeight := invoiceHeaderHeight(doc)
	plan := PlanDocumentLayout(
		headerHeight,
		rowHeightEstimates(doc.Rows),
		invoiceSummaryHeight(doc),
		EstimateNotesHeight(len(doc.Notes)),
		DefaultPageLimit,
	)

	for pi, rowIndexes := range plan.Pages {
		pg := page.New()
		if pi == 0 {
			pg.Add(invoiceHeaderRows(doc)...)
			pg.Add(itemTableHeader(true))
		}
		for _, ri := range rowIndexes {
			pg.Add(invoiceItemRow(doc.Rows[ri]))
		}
		if pi == len(plan.Pages)-1 {
			pg.Add(invoiceSummaryRows(doc)...)
			if !plan.NotesOwnPage {
				pg.Add(notesRows(doc.Notes)...)
			}
		}
		m.AddPages(pg)
	}

	if plan.NotesOwnPage {
		notesPage := page.New()
		notesPage.Add(notesRows(doc.Notes)...)
		m.AddPages(notesPage)
	}

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate invoice PDF: %w", err)
	}
	return out.GetBytes(), nil
}

// GenerateOrderSheetPDF renders the order sheet: the two-column logistics
// header grid and the price-free item table, followed by the notes block.
func GenerateOrderSheetPDF(doc InvoiceDocument) ([]byte, error) {
	m := newDocumentMaroto()

	plan := PlanDocumentLayout(
		orderSheetHeaderHeight(doc),
		rowHeightEstimates(doc.Rows),
		0,
		EstimateNotesHeight(len(doc.Notes)),
		DefaultPageLimit,
	)

	for pi, rowIndexes := range plan.Pages {
		pg := page.New()
		if pi == 0 {
			pg.Add(orderSheetHeaderRows(doc)...)
			pg.Add(itemTableHeader(false))
		}
		for _, ri := range rowIndexes {
			pg.Add(orderSheetItemRow(doc.Rows[ri]))
		}
		if pi == len(plan.Pages)-1 && !plan.NotesOwnPage {
			pg.Add(notesRows(doc.Notes)...)
		}
		m.AddPages(pg)
	}

	if plan.NotesOwnPage {
		notesPage := page.New()
		notesPage.Add(notesRows(doc.Notes)...)
		m.AddPages(notesPage)
	}

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate order sheet PDF: %w", err)
	}
	return out.GetBytes(), nil
}

func newDocumentMaroto() core.Maroto {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	return maroto.New(cfg)
}

func rowHeightEstimates(rows []ItemRow) []float64 {
	heights := make([]float64, len(rows))
	for i, r := range rows {
		heights[i] = EstimateRowHeight(r.Image != nil)
	}
	return heights
}

// ── Invoice blocks ──────────────────────────────────────────────────────

func invoiceHeaderHeight(doc InvoiceDocument) float64 {
	return titleRowHeight + float64(len(doc.Header))*fieldRowHeight + spacerHeight + tableHeadHeight
}

func invoiceHeaderRows(doc InvoiceDocument) []core.Row {
	rows := []core.Row{
		row.New(titleRowHeight).Add(
			col.New(12).Add(
				text.New(doc.Title, props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	}

	labelStyle := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Left}
	valueStyle := props.Text{Size: 9, Align: align.Left}

	for _, f := range doc.Header {
		rows = append(rows, row.New(fieldRowHeight).Add(
			col.New(HeaderLabelCols+1).Add(text.New(f.Label, labelStyle)),
			col.New(12-HeaderLabelCols-1).Add(text.New(f.Value, valueStyle)),
		))
	}

	rows = append(rows, row.New(spacerHeight))
	return rows
}

// itemTableHeader renders the column header row. Invoices carry the price
// columns; order sheets do not.
func itemTableHeader(withPrices bool) core.Row {
	headerBg := &props.Color{Red: 47, Green: 117, Blue: 181}
	headerCell := props.Cell{BackgroundColor: headerBg}
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left

	if withPrices {
		return row.New(tableHeadHeight).Add(
			col.New(1).Add(text.New("S.No", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Product", headerTextLeft)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Slot", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Image", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Price (Rs)", headerText)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Qty", headerText)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Days", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Total (Rs)", headerText)).WithStyle(&headerCell),
		)
	}

	return row.New(tableHeadHeight).Add(
		col.New(1).Add(text.New("S.No", headerText)).WithStyle(&headerCell),
		col.New(4).Add(text.New("Product Name", headerTextLeft)).WithStyle(&headerCell),
		col.New(3).Add(text.New("Slot", headerText)).WithStyle(&headerCell),
		col.New(2).Add(text.New("Image", headerText)).WithStyle(&headerCell),
		col.New(1).Add(text.New("Units", headerText)).WithStyle(&headerCell),
		col.New(1).Add(text.New("Days", headerText)).WithStyle(&headerCell),
	)
}

func imageCell(size int, r ItemRow) core.Col {
	if r.Image == nil {
		return col.New(size).Add(text.New("-", props.Text{Size: 7, Align: align.Center}))
	}
	return image.NewFromBytesCol(size, r.Image, extension.Jpg, props.Rect{
		Center:  true,
		Percent: 85,
	})
}

func invoiceItemRow(r ItemRow) core.Row {
	bodyText := props.Text{Size: 7, Align: align.Center}
	bodyTextLeft := props.Text{Size: 7, Align: align.Left}
	bodyTextRight := props.Text{Size: 7, Align: align.Right}

	return row.New(EstimateRowHeight(r.Image != nil)).Add(
		col.New(1).Add(text.New(fmt.Sprintf("%d", r.SNo), bodyText)),
		col.New(2).Add(text.New(r.ProductName, bodyTextLeft)),
		col.New(1).Add(text.New(r.SlotLabel, bodyText)),
		imageCell(2, r),
		col.New(2).Add(text.New(FormatINR(r.UnitPrice), bodyTextRight)),
		col.New(1).Add(text.New(FormatCount(r.Quantity), bodyTextRight)),
		col.New(1).Add(text.New(fmt.Sprintf("%d", r.Days), bodyText)),
		col.New(2).Add(text.New(FormatINR(r.Amount), bodyTextRight)),
	)
}

func orderSheetItemRow(r ItemRow) core.Row {
	bodyText := props.Text{Size: 7, Align: align.Center}
	bodyTextLeft := props.Text{Size: 7, Align: align.Left}

	return row.New(EstimateRowHeight(r.Image != nil)).Add(
		col.New(1).Add(text.New(fmt.Sprintf("%d", r.SNo), bodyText)),
		col.New(4).Add(text.New(r.ProductName, bodyTextLeft)),
		col.New(3).Add(text.New(r.SlotLabel, bodyText)),
		imageCell(2, r),
		col.New(1).Add(text.New(FormatCount(r.Quantity), bodyText)),
		col.New(1).Add(text.New(fmt.Sprintf("%d", r.Days), bodyText)),
	)
}

// invoiceSummaryHeight mirrors invoiceSummaryRows for the layout plan.
func invoiceSummaryHeight(doc InvoiceDocument) float64 {
	h := spacerHeight + 3*fieldRowHeight // subtotal, transport, labour
	if doc.Totals.DiscountAmount != 0 {
		h += 2 * fieldRowHeight
	}
	if doc.Charges.Refurbishment != 0 {
		h += fieldRowHeight
	}
	if doc.Totals.GSTAmount != 0 {
		h += fieldRowHeight
	}
	h += tableHeadHeight     // grand total
	h += fieldRowHeight + 1  // amount in words
	return h
}

func invoiceSummaryRows(doc InvoiceDocument) []core.Row {
	summaryBg := &props.Color{Red: 245, Green: 245, Blue: 245}
	summaryCell := &props.Cell{BackgroundColor: summaryBg}
	labelStyle := props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Right}
	valueStyle := props.Text{Size: 8, Align: align.Right}

	summaryRow := func(label, value string) core.Row {
		return row.New(fieldRowHeight).Add(
			col.New(SummaryLabelCols).Add(text.New(label, labelStyle)).WithStyle(summaryCell),
			col.New(SummaryValueCols).Add(text.New(value, valueStyle)).WithStyle(summaryCell),
		)
	}

	t := doc.Totals
	c := doc.Charges
	rows := []core.Row{
		row.New(spacerHeight),
		summaryRow("Products Total", FormatINR(t.ItemsSubtotal)),
	}

	if t.DiscountAmount != 0 {
		rows = append(rows,
			summaryRow(fmt.Sprintf("Discount (%.2f%%)", c.DiscountPercent), "-"+FormatINR(t.DiscountAmount)),
			summaryRow("Total After Discount", FormatINR(t.AfterDiscount)),
		)
	}

	rows = append(rows,
		summaryRow("Transportation", FormatINR(c.Transport)),
		summaryRow("Manpower Charge", FormatINR(c.Labour)),
	)

	if c.Refurbishment != 0 {
		rows = append(rows, summaryRow("Reupholstery", FormatINR(c.Refurbishment)))
	}

	if t.GSTAmount != 0 {
		rows = append(rows, summaryRow(fmt.Sprintf("GST (%.2f%%)", c.GSTPercent), FormatINR(t.GSTAmount)))
	}

	grandBg := &props.Color{Red: 47, Green: 117, Blue: 181}
	grandCell := &props.Cell{BackgroundColor: grandBg}
	grandText := props.Text{
		Size:  9,
		Style: fontstyle.Bold,
		Align: align.Right,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	rows = append(rows, row.New(tableHeadHeight).Add(
		col.New(SummaryLabelCols).Add(text.New("Grand Total", grandText)).WithStyle(grandCell),
		col.New(SummaryValueCols).Add(text.New(FormatINR(t.GrandTotal), grandText)).WithStyle(grandCell),
	))

	if doc.AmountInWords != "" {
		rows = append(rows, row.New(fieldRowHeight+1).Add(
			col.New(12).Add(text.New("Amount in Words: "+doc.AmountInWords, props.Text{
				Size:  8,
				Style: fontstyle.BoldItalic,
				Align: align.Left,
			})),
		))
	}

	return rows
}

// ── Order sheet blocks ──────────────────────────────────────────────────

func orderSheetHeaderHeight(doc InvoiceDocument) float64 {
	gridRows := (len(doc.Header) + 1) / 2
	return titleRowHeight + float64(gridRows)*fieldRowHeight + spacerHeight + tableHeadHeight
}

// orderSheetHeaderRows lays the header fields out as a two-column
// label/value/label/value grid.
func orderSheetHeaderRows(doc InvoiceDocument) []core.Row {
	rows := []core.Row{
		row.New(titleRowHeight).Add(
			col.New(12).Add(
				text.New(doc.Title, props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	}

	labelBg := &props.Color{Red: 245, Green: 245, Blue: 245}
	labelCell := &props.Cell{BackgroundColor: labelBg}
	labelStyle := props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Left}
	valueStyle := props.Text{Size: 8, Align: align.Left}

	for i := 0; i < len(doc.Header); i += 2 {
		left := doc.Header[i]
		cols := []core.Col{
			col.New(HeaderLabelCols).Add(text.New(left.Label, labelStyle)).WithStyle(labelCell),
			col.New(HeaderValueCols).Add(text.New(left.Value, valueStyle)),
		}
		if i+1 < len(doc.Header) {
			right := doc.Header[i+1]
			cols = append(cols,
				col.New(HeaderLabelCols).Add(text.New(right.Label, labelStyle)).WithStyle(labelCell),
				col.New(HeaderValueCols).Add(text.New(right.Value, valueStyle)),
			)
		} else {
			cols = append(cols, col.New(HeaderLabelCols+HeaderValueCols))
		}
		rows = append(rows, row.New(fieldRowHeight).Add(cols...))
	}

	rows = append(rows, row.New(spacerHeight))
	return rows
}

// ── Shared blocks ───────────────────────────────────────────────────────

func notesRows(notes []string) []core.Row {
	if len(notes) == 0 {
		return nil
	}

	rows := []core.Row{
		row.New(NoteLineHeight).Add(
			col.New(12).Add(text.New("Note:", props.Text{
				Size:  8,
				Style: fontstyle.Bold,
				Align: align.Left,
			})),
		),
	}

	for i, n := range notes {
		rows = append(rows, row.New(NoteLineHeight).Add(
			col.New(12).Add(text.New(fmt.Sprintf("%d. %s", i+1, n), props.Text{
				Size:  7,
				Align: align.Left,
			})),
		))
	}
	return rows
}
