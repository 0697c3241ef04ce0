package billing

import "math"

// Totals is the aggregate view of a session: everything the summary box,
// the saved record and the printed invoice need.
type Totals struct {
	Subtotal          float64 `json:"subtotal"`
	CGST              float64 `json:"cgst"`
	SGST              float64 `json:"sgst"`
	IGST              float64 `json:"igst"`
	TotalTax          float64 `json:"totalTax"`
	RoundOff          float64 `json:"roundOff"`
	GrandTotal        float64 `json:"grandTotal"`
	GrandTotalInWords string  `json:"grandTotalInWords"`
	GSTType           string  `json:"gstType"`
}

// Totals computes the aggregates from the current line items. With automatic
// round-off the grand total lands on a whole rupee; a manually pinned
// round-off is used verbatim.
func (s *Session) Totals() Totals {
	t := Totals{GSTType: s.GSTType()}
	for i := range s.items {
		it := &s.items[i]
		t.Subtotal += it.Amount
		if !s.gstEnabled {
			continue
		}
		tax := it.Amount * TaxRate
		if s.intraState() {
			t.CGST += tax / 2
			t.SGST += tax / 2
		} else {
			t.IGST += tax
		}
	}
	t.TotalTax = t.CGST + t.SGST + t.IGST
	preRound := t.Subtotal + t.TotalTax
	if s.roundOffMode == RoundOffManual {
		t.RoundOff = s.manualRoundOff
	} else {
		t.RoundOff = math.Round(preRound) - preRound
	}
	t.GrandTotal = preRound + t.RoundOff
	t.GrandTotalInWords = NumberToWords(int64(math.Round(t.GrandTotal)))
	return t
}
