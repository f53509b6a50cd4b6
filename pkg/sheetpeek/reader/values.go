package reader

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// dateLayouts are the renderings excelize and xls produce for common date formats.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z07:00",
	"1/2/06",
	"1/2/06 15:04",
	"1/2/2006",
	"01-02-06",
	"02/01/2006",
	"2-Jan-06",
	"02-Jan-2006",
}

// ParseValue attempts to interpret cell text.
// Returns int64, float64, bool, time.Time, or the original string.
func ParseValue(s string) interface{} {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// ParseFloat also accepts "NaN" and "Inf", which are text in a sheet.
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return f
	}
	switch strings.ToUpper(s) {
	case "TRUE":
		return true
	case "FALSE":
		return false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return s
}
