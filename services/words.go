package services

import (
	"math"
	"strings"
)

// AmountToWords converts a numeric amount to Indian English words, e.g.
// 913183 becomes "Nine Lakh Thirteen Thousand One Hundred and Eighty Three
// Rupees Only/-". Paise are rounded away, matching how the grand total is
// displayed on the printed document.
func AmountToWords(amount float64) string {
	if amount < 0 {
		return "Negative " + AmountToWords(-amount)
	}

	rupees := int64(math.Round(amount))
	if rupees == 0 {
		return "Zero Rupees Only/-"
	}
	return indianWords(rupees) + " Rupees Only/-"
}

var numberScales = []struct {
	value int64
	label string
}{
	{10000000, "Crore"},
	{100000, "Lakh"},
	{1000, "Thousand"},
	{100, "Hundred"},
}

func indianWords(n int64) string {
	var parts []string

	for _, scale := range numberScales {
		if n < scale.value {
			continue
		}
		parts = append(parts, wordsUnder100(n/scale.value)+" "+scale.label)
		n %= scale.value
	}

	if n > 0 {
		if len(parts) > 0 {
			parts = append(parts, "and "+wordsUnder100(n))
		} else {
			parts = append(parts, wordsUnder100(n))
		}
	}

	return strings.Join(parts, " ")
}

func wordsUnder100(n int64) string {
	if n < 20 {
		return oneWords[n]
	}
	w := tenWords[n/10]
	if n%10 != 0 {
		w += " " + oneWords[n%10]
	}
	return w
}

var oneWords = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var tenWords = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}
