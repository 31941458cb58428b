package services

import (
	"fmt"
	"strings"
)

// FormatINR renders an amount in Indian rupee notation with two decimal
// places: the rightmost three integer digits form one group, then pairs
// (₹12,34,567.89). Formatting happens only at render time; stored totals
// are never rounded.
func FormatINR(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	raw := fmt.Sprintf("%.2f", amount)
	dot := strings.IndexByte(raw, '.')
	return sign + "₹" + groupIndian(raw[:dot]) + raw[dot:]
}

// groupIndian inserts commas into a digit string using the Indian
// numbering system.
func groupIndian(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}

	var b strings.Builder
	head := digits[:n-3]
	if len(head)%2 == 1 {
		b.WriteString(head[:1])
		b.WriteByte(',')
		head = head[1:]
	}
	for len(head) > 0 {
		b.WriteString(head[:2])
		b.WriteByte(',')
		head = head[2:]
	}
	b.WriteString(digits[n-3:])
	return b.String()
}

// FormatCount renders a quantity or day count: whole values without
// decimals, fractional values with two.
func FormatCount(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.2f", v)
}
