// Package format holds the display helpers the dashboards use for rupiah
// amounts and Indonesian dates.
package format

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var idPrinter = message.NewPrinter(language.Indonesian)

// Price renders a rupiah amount with Indonesian digit grouping,
// e.g. 25000 → "Rp25.000".
func Price(amount int64) string {
	return idPrinter.Sprintf("Rp%v", number.Decimal(amount))
}

var monthNames = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// Date renders a date in the Indonesian long form, e.g. "2 Januari 2026".
func Date(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), monthNames[t.Month()-1], t.Year())
}

// DateSafe is Date for nullable delivery dates.
func DateSafe(t *time.Time) string {
	if t == nil {
		return "Tidak diatur"
	}
	return Date(*t)
}
