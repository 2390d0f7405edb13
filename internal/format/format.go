// Package format renders amounts and dates the way Indonesian users
// read them.
package format

import (
	"math"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/hmse-unipi/portal/internal/model"
)

var printer = message.NewPrinter(language.Indonesian)

// Rupiah formats an amount with thousands separators: "Rp 150.000".
func Rupiah(r model.Rupiah) string {
	return printer.Sprintf("Rp %d", int64(math.Round(float64(r))))
}

// Price is Rupiah, except free events read "Gratis".
func Price(r model.Rupiah) string {
	if r.IsFree() {
		return "Gratis"
	}
	return Rupiah(r)
}

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// WIB is Western Indonesia Time, where the organisation's events happen.
// Indonesia observes no daylight saving.
var WIB = time.FixedZone("WIB", 7*60*60)

// Date formats an API date as d/m/yyyy on the WIB calendar.
func Date(s string) string {
	return DateIn(s, WIB)
}

// DateIn formats an API date as d/m/yyyy on the calendar of loc.
// Timestamps without a zone are read as loc. Unparseable input is
// returned unchanged.
func DateIn(s string, loc *time.Location) string {
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t.In(loc).Format("2/1/2006")
		}
	}
	return s
}
