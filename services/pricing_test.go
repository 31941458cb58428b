package services

import (
	"math"
	"testing"
)

const floatTolerance = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < floatTolerance
}

func TestComputeTotals(t *testing.T) {
	tests := []struct {
		name    string
		charges Charges
		items   []PricedItem
		want    Totals
	}{
		{
			name: "full pipeline with discount and gst",
			charges: Charges{
				Transport:       500,
				Labour:          300,
				DiscountPercent: 10,
				GSTPercent:      18,
			},
			items: []PricedItem{
				{UnitPrice: 1000, Quantity: 2, Days: 3},
			},
			want: Totals{
				ItemsSubtotal:   6000,
				DiscountAmount:  600,
				AfterDiscount:   5400,
				ChargesSubtotal: 6200,
				PreGSTSubtotal:  6200,
				GSTAmount:       1116,
				GrandTotal:      7316,
			},
		},
		{
			name:    "no items no charges",
			charges: Charges{},
			items:   nil,
			want:    Totals{},
		},
		{
			name:    "zero percent discount contributes nothing",
			charges: Charges{DiscountPercent: 0, GSTPercent: 0},
			items:   []PricedItem{{UnitPrice: 100, Quantity: 1, Days: 1}},
			want: Totals{
				ItemsSubtotal:   100,
				AfterDiscount:   100,
				ChargesSubtotal: 100,
				PreGSTSubtotal:  100,
				GrandTotal:      100,
			},
		},
		{
			name:    "negative percents are ignored",
			charges: Charges{DiscountPercent: -5, GSTPercent: -18},
			items:   []PricedItem{{UnitPrice: 200, Quantity: 2, Days: 1}},
			want: Totals{
				ItemsSubtotal:   400,
				AfterDiscount:   400,
				ChargesSubtotal: 400,
				PreGSTSubtotal:  400,
				GrandTotal:      400,
			},
		},
		{
			name:    "discount above 100 passes through",
			charges: Charges{DiscountPercent: 150},
			items:   []PricedItem{{UnitPrice: 100, Quantity: 1, Days: 1}},
			want: Totals{
				ItemsSubtotal:   100,
				DiscountAmount:  150,
				AfterDiscount:   -50,
				ChargesSubtotal: -50,
				PreGSTSubtotal:  -50,
				GrandTotal:      -50,
			},
		},
		{
			name:    "refurbishment added after transport and labour",
			charges: Charges{Transport: 100, Labour: 50, Refurbishment: 250, GSTPercent: 10},
			items:   []PricedItem{{UnitPrice: 1000, Quantity: 1, Days: 1}},
			want: Totals{
				ItemsSubtotal:   1000,
				AfterDiscount:   1000,
				ChargesSubtotal: 1150,
				PreGSTSubtotal:  1400,
				GSTAmount:       140,
				GrandTotal:      1540,
			},
		},
		{
			name:    "multiple items sum before discount",
			charges: Charges{DiscountPercent: 50},
			items: []PricedItem{
				{UnitPrice: 100, Quantity: 2, Days: 2},
				{UnitPrice: 300, Quantity: 1, Days: 2},
			},
			want: Totals{
				ItemsSubtotal:   1000,
				DiscountAmount:  500,
				AfterDiscount:   500,
				ChargesSubtotal: 500,
				PreGSTSubtotal:  500,
				GrandTotal:      500,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeTotals(tt.charges, tt.items)

			checks := []struct {
				field string
				got   float64
				want  float64
			}{
				{"ItemsSubtotal", got.ItemsSubtotal, tt.want.ItemsSubtotal},
				{"DiscountAmount", got.DiscountAmount, tt.want.DiscountAmount},
				{"AfterDiscount", got.AfterDiscount, tt.want.AfterDiscount},
				{"ChargesSubtotal", got.ChargesSubtotal, tt.want.ChargesSubtotal},
				{"PreGSTSubtotal", got.PreGSTSubtotal, tt.want.PreGSTSubtotal},
				{"GSTAmount", got.GSTAmount, tt.want.GSTAmount},
				{"GrandTotal", got.GrandTotal, tt.want.GrandTotal},
			}
			for _, c := range checks {
				if !almostEqual(c.got, c.want) {
					t.Errorf("%s = %v, want %v", c.field, c.got, c.want)
				}
			}

			// Structural invariants that must hold for any input.
			if !almostEqual(got.GrandTotal, got.PreGSTSubtotal+got.GSTAmount) {
				t.Errorf("GrandTotal %v != PreGSTSubtotal %v + GSTAmount %v",
					got.GrandTotal, got.PreGSTSubtotal, got.GSTAmount)
			}
			if !almostEqual(got.AfterDiscount, got.ItemsSubtotal-got.DiscountAmount) {
				t.Errorf("AfterDiscount %v != ItemsSubtotal %v - DiscountAmount %v",
					got.AfterDiscount, got.ItemsSubtotal, got.DiscountAmount)
			}
		})
	}
}

func TestComputeTotalsDeterministic(t *testing.T) {
	charges := Charges{Transport: 123.45, Labour: 67.89, Refurbishment: 10, DiscountPercent: 7.5, GSTPercent: 18}
	items := []PricedItem{
		{UnitPrice: 999.99, Quantity: 3, Days: 2},
		{UnitPrice: 50, Quantity: 10, Days: 4},
	}

	first := ComputeTotals(charges, items)
	second := ComputeTotals(charges, items)
	if first != second {
		t.Errorf("ComputeTotals not deterministic: %+v vs %+v", first, second)
	}
}

func TestLineAmount(t *testing.T) {
	tests := []struct {
		name      string
		unitPrice float64
		quantity  float64
		days      int
		want      float64
	}{
		{"basic", 1000, 2, 3, 6000},
		{"single day", 250, 4, 1, 1000},
		{"zero days billed as one", 100, 2, 0, 200},
		{"negative days billed as one", 100, 2, -3, 200},
		{"zero quantity", 100, 0, 5, 0},
		{"fractional price", 99.5, 2, 2, 398},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LineAmount(tt.unitPrice, tt.quantity, tt.days); !almostEqual(got, tt.want) {
				t.Errorf("LineAmount(%v, %v, %d) = %v, want %v",
					tt.unitPrice, tt.quantity, tt.days, got, tt.want)
			}
		})
	}
}

func TestSafeNumber(t *testing.T) {
	tests := []struct {
		name  string
		input any
		def   float64
		want  float64
	}{
		{"nil uses default", nil, 5, 5},
		{"float64 passes through", 42.5, 0, 42.5},
		{"float32 converts", float32(2.5), 0, 2.5},
		{"int converts", 7, 0, 7},
		{"int64 converts", int64(9), 0, 9},
		{"numeric string parses", "123.45", 0, 123.45},
		{"padded numeric string parses", "  10 ", 0, 10},
		{"garbage string uses default", "abc", 3, 3},
		{"empty string uses default", "", 1, 1},
		{"bool uses default", true, 2, 2},
		{"NaN uses default", math.NaN(), 4, 4},
		{"positive infinity uses default", math.Inf(1), 4, 4},
		{"negative infinity uses default", math.Inf(-1), 4, 4},
		{"zero is a valid value", 0.0, 9, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SafeNumber(tt.input, tt.def); !almostEqual(got, tt.want) {
				t.Errorf("SafeNumber(%v, %v) = %v, want %v", tt.input, tt.def, got, tt.want)
			}
		})
	}
}
