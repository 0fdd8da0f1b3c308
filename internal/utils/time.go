package utils

import (
	"strings"
	"time"
)

const slipDateLayout = "02/01/2006"

var bookingDateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseBookingDate accepts the ISO-ish date strings the booking API emits.
func ParseBookingDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range bookingDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatSlipDate renders a booking date for the slip. Absent and unparsable
// input both come out as "N/A"; upstream left the unparsable case undefined,
// here it shares the absence fallback.
func FormatSlipDate(s string) string {
	t, ok := ParseBookingDate(s)
	if !ok {
		return "N/A"
	}
	return t.Format(slipDateLayout)
}
