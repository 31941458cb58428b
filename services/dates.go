// Package services provides the pricing and document export engine for
// rental quotations and orders.
package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseDMY parses a day-month-year date string such as "05-03-2025".
// Single-digit day or month values are accepted.
func ParseDMY(s string) (time.Time, error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("invalid date %q: want DD-MM-YYYY", s)
	}

	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day in %q", s)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month in %q", s)
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid year in %q", s)
	}

	if month < 1 || month > 12 || day < 1 || day > 31 || year < 1 {
		return time.Time{}, fmt.Errorf("date out of range: %q", s)
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// Reject normalized overflow like 31-02-2025.
	if t.Day() != day || t.Month() != time.Month(month) {
		return time.Time{}, fmt.Errorf("date does not exist: %q", s)
	}
	return t, nil
}

// DurationDays returns the inclusive day count between two dates,
// so a same-day rental counts as one day.
func DurationDays(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}

// ResolveDuration computes the billable day count for a line item.
// The item's own date pair wins when both values are present; otherwise the
// parent slot's dates are used. Any unparseable date, or a range that comes
// out below one day, resolves to exactly 1 so every item bills at least one
// day even with incomplete data.
func ResolveDuration(itemStart, itemEnd, slotStart, slotEnd string) int {
	startStr, endStr := itemStart, itemEnd
	if strings.TrimSpace(startStr) == "" || strings.TrimSpace(endStr) == "" {
		startStr, endStr = slotStart, slotEnd
	}

	start, err := ParseDMY(startStr)
	if err != nil {
		return 1
	}
	end, err := ParseDMY(endStr)
	if err != nil {
		return 1
	}

	days := DurationDays(start, end)
	if days < 1 {
		return 1
	}
	return days
}

// DayMonthLabel renders a date string as "05 Mar" for use in export
// filenames. Unparseable input yields an empty label.
func DayMonthLabel(dmy string) string {
	t, err := ParseDMY(dmy)
	if err != nil {
		return ""
	}
	return t.Format("02 Jan")
}
