package services

// Layout units are millimetres of printable A4 page height, matching the
// renderer's coordinate system.
const (
	// DefaultPageLimit is the vertical content budget of one portrait A4
	// page after margins and the page-number footer.
	DefaultPageLimit = 250.0

	// DefaultRowHeight is the estimate used for a text-only item row.
	DefaultRowHeight = 8.0

	// ImageRowHeight is the estimate for a row carrying an embedded
	// product image cell.
	ImageRowHeight = 18.0

	// NoteLineHeight is the estimate for one line of the notes block.
	NoteLineHeight = 8.0
)

// Column spans on the renderer's 12-column grid. The header block is a
// label/value/label/value grid; the summary block is a wide label column
// with a right-aligned value column.
const (
	HeaderLabelCols  = 2
	HeaderValueCols  = 4
	SummaryLabelCols = 9
	SummaryValueCols = 3
)

// PagePlan is the output of the layout pass: which row indices land on
// which page, and whether the notes block needs a page of its own.
type PagePlan struct {
	Pages        [][]int
	NotesOwnPage bool
}

// PlanPages partitions item rows into pages so that no row is ever split
// across a page break. The cursor walks the rows in order; before each row
// (except the first row of a page, which is always placed) it checks
// whether the row still fits the remaining budget and breaks to a fresh
// page when it does not. Heights of zero or below fall back to
// DefaultRowHeight. The concatenation of all pages reproduces the input
// order exactly.
func PlanPages(rowHeights []float64, pageLimit float64) [][]int {
	pages, _ := planPagesFrom(0, rowHeights, pageLimit)
	return pages
}

// planPagesFrom runs the pagination cursor with some budget already
// consumed on the first page (the header block). It returns the page
// partitions and the height used on the final page.
func planPagesFrom(firstPageUsed float64, rowHeights []float64, pageLimit float64) ([][]int, float64) {
	var pages [][]int
	var current []int
	used := firstPageUsed

	for i, h := range rowHeights {
		if h <= 0 {
			h = DefaultRowHeight
		}
		if len(current) > 0 && used+h > pageLimit {
			pages = append(pages, current)
			current = nil
			used = 0
		}
		current = append(current, i)
		used += h
	}
	if len(current) > 0 {
		pages = append(pages, current)
	}
	return pages, used
}

// FitsRemaining reports whether a block of the given height still fits on a
// page that has already consumed used height.
func FitsRemaining(used, blockHeight, pageLimit float64) bool {
	return used+blockHeight <= pageLimit
}

// PlanDocumentLayout partitions the item rows and decides where the
// trailing blocks go. The header block consumes budget on the first page;
// the summary block follows the table on its final page; the notes block
// moves to its own page when it would overflow what remains after the
// summary. At least one page is always planned so header-only documents
// still render.
func PlanDocumentLayout(headerHeight float64, rowHeights []float64, summaryHeight, notesHeight, pageLimit float64) PagePlan {
	pages, used := planPagesFrom(headerHeight, rowHeights, pageLimit)
	if len(pages) == 0 {
		pages = append(pages, nil)
		used = headerHeight
	}

	return PagePlan{
		Pages:        pages,
		NotesOwnPage: !FitsRemaining(used+summaryHeight, notesHeight, pageLimit),
	}
}

// EstimateRowHeight returns the height estimate for an item row.
func EstimateRowHeight(hasImage bool) float64 {
	if hasImage {
		return ImageRowHeight
	}
	return DefaultRowHeight
}

// EstimateNotesHeight returns the height estimate for the notes block,
// including its section label.
func EstimateNotesHeight(noteCount int) float64 {
	if noteCount == 0 {
		return 0
	}
	return NoteLineHeight * float64(noteCount+1)
}
