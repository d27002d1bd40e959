package importer

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// parseDecimal converts a broker-formatted numeric string into an exact
// decimal. Currency symbols, group separators and interior whitespace are
// stripped; a parenthesized value denotes a negative magnitude. Empty input
// is zero. Malformed input is also zero, with ok=false so the caller can
// record why a default was substituted.
func parseDecimal(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, true
	}

	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.Join(strings.Fields(s), "")

	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		s = "-" + s[1:len(s)-1]
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// Broker exports write calendar dates as MM/DD/YYYY, but option expiries
// embedded in descriptions often carry a two-digit year.
var dateLayouts = []string{"1/2/2006", "1/2/06"}

// parseDate parses a broker calendar date, trying the four-digit year
// layout first and the two-digit layout second.
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	var firstErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}
