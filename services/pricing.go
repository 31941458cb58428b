package services

import (
	"math"
	"strconv"
	"strings"
)

// Charges holds the quotation-level monetary inputs that sit outside the
// line items. All values are pre-coerced to numbers; absent or malformed
// fields arrive here as 0.
type Charges struct {
	Transport       float64
	Labour          float64
	Refurbishment   float64
	DiscountPercent float64
	GSTPercent      float64
}

// PricedItem is one billable line: unit price x quantity x rental days.
type PricedItem struct {
	UnitPrice float64
	Quantity  float64
	Days      int
}

// Totals is the canonical set of derived monetary figures for a quotation.
// Every field is derived strictly from the fields above it; displayed and
// exported numbers must be read from here, never recomputed elsewhere.
type Totals struct {
	ItemsSubtotal   float64 // sum of unitPrice * qty * days
	DiscountAmount  float64 // DiscountPercent of ItemsSubtotal
	AfterDiscount   float64 // ItemsSubtotal - DiscountAmount
	ChargesSubtotal float64 // AfterDiscount + transport + labour
	PreGSTSubtotal  float64 // ChargesSubtotal + refurbishment
	GSTAmount       float64 // GSTPercent of PreGSTSubtotal
	GrandTotal      float64 // PreGSTSubtotal + GSTAmount
}

// LineAmount computes the charge for a single line item. Day counts below
// one are billed as one day.
func LineAmount(unitPrice, quantity float64, days int) float64 {
	if days < 1 {
		days = 1
	}
	return unitPrice * quantity * float64(days)
}

// ComputeTotals derives the canonical totals from the quotation charges and
// its priced line items. The operation order is fixed: discount applies to
// the items subtotal, transport and labour are added after the discount,
// refurbishment after that, and GST applies to everything that precedes it.
// Reordering these steps changes the result and breaks previously issued
// documents. Percent values of zero or below contribute nothing; values
// above 100 are passed through unchanged.
func ComputeTotals(c Charges, items []PricedItem) Totals {
	var t Totals

	for _, it := range items {
		t.ItemsSubtotal += LineAmount(it.UnitPrice, it.Quantity, it.Days)
	}

	if c.DiscountPercent > 0 {
		t.DiscountAmount = c.DiscountPercent / 100 * t.ItemsSubtotal
	}
	t.AfterDiscount = t.ItemsSubtotal - t.DiscountAmount
	t.ChargesSubtotal = t.AfterDiscount + c.Transport + c.Labour
	t.PreGSTSubtotal = t.ChargesSubtotal + c.Refurbishment

	if c.GSTPercent > 0 {
		t.GSTAmount = c.GSTPercent / 100 * t.PreGSTSubtotal
	}
	t.GrandTotal = t.PreGSTSubtotal + t.GSTAmount

	return t
}

// SafeNumber coerces an arbitrary record value to a float64, falling back
// to def for anything missing or non-numeric. NaN and infinities also fall
// back, so malformed fields can never poison the totals arithmetic.
func SafeNumber(v any, def float64) float64 {
	var n float64
	switch val := v.(type) {
	case nil:
		return def
	case float64:
		n = val
	case float32:
		n = float64(val)
	case int:
		n = float64(val)
	case int64:
		n = float64(val)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return def
		}
		n = parsed
	default:
		return def
	}

	if math.IsNaN(n) || math.IsInf(n, 0) {
		return def
	}
	return n
}
