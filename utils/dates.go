// utils/dates.go
package utils

import (
	"strings"
	"time"
)

// Invoice timestamps are rendered in the salon's local timezone regardless
// of where the service runs.
const invoiceTimezone = "Europe/Helsinki"

const (
	TimestampLayout = "02.01.2006 15:04"
	DateLayout      = "02.01.2006"
)

// InvoiceNow returns the current time in the invoice timezone. If the zone
// database is unavailable the server's local time is used instead.
func InvoiceNow() time.Time {
	loc, err := time.LoadLocation(invoiceTimezone)
	if err != nil {
		return time.Now()
	}
	return time.Now().In(loc)
}

func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// DateToken converts a dd.mm.yyyy display date into the dd-mm-yyyy form
// used inside filenames.
func DateToken(date string) string {
	return strings.ReplaceAll(date, ".", "-")
}
