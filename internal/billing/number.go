package billing

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// PriorInvoice is the slice of a saved invoice that numbering needs.
type PriorInvoice struct {
	Date   string // YYYY-MM-DD
	Number string
}

var trailingDigits = regexp.MustCompile(`\d+$`)

// NextInvoiceNumber produces the number for a new invoice dated date, given
// the invoices already persisted. The sequence restarts every calendar year:
// the trailing digit run of each same-year number is parsed (no digits
// counts as 0) and the maximum plus one is substituted into format.
//
// Tokens: YYYY (4-digit year), YY (2-digit year), ### / ## (zero-padded
// sequence), # (unpadded). Each token replaces its first occurrence only,
// longest first, so YYYY is never half-consumed by the YY rule. Safe to call
// again before first save, including after the date changes.
func NextInvoiceNumber(format, date string, prior []PriorInvoice) string {
	year, ok := yearOf(date)
	if !ok {
		year = time.Now().Year()
	}

	next := 1
	maxSeen := -1
	for _, p := range prior {
		y, ok := yearOf(p.Date)
		if !ok || y != year {
			continue
		}
		n := 0
		if m := trailingDigits.FindString(p.Number); m != "" {
			n, _ = strconv.Atoi(m)
		}
		if n > maxSeen {
			maxSeen = n
		}
	}
	if maxSeen >= 0 {
		next = maxSeen + 1
	}

	out := strings.Replace(format, "YYYY", strconv.Itoa(year), 1)
	out = strings.Replace(out, "YY", fmt.Sprintf("%02d", year%100), 1)
	out = strings.Replace(out, "###", fmt.Sprintf("%03d", next), 1)
	out = strings.Replace(out, "##", fmt.Sprintf("%02d", next), 1)
	out = strings.Replace(out, "#", strconv.Itoa(next), 1)
	return out
}

func yearOf(date string) (int, bool) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return 0, false
	}
	return t.Year(), true
}
