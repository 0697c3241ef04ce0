// Package billing implements the invoice computation engine: line item
// state, GST splitting, round-off, grand totals, amount-in-words and
// invoice number generation. It is pure in-memory computation; persistence
// and rendering live elsewhere.
package billing

// TaxRate is the flat GST rate applied to every taxable line.
const TaxRate = 0.05

// RoundOffMode selects how the round-off figure is produced.
type RoundOffMode int

const (
	// RoundOffAuto derives the round-off from the pre-round total.
	RoundOffAuto RoundOffMode = iota
	// RoundOffManual pins a caller-supplied value until switched back.
	RoundOffManual
)

// Item is one invoice line. Amount, Tax and Total are derived; callers set
// only quantity, rate and the descriptive fields.
type Item struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	HSN       string  `json:"hsn"`
	Size      string  `json:"size"`
	Quantity  float64 `json:"quantity"`
	Rate      float64 `json:"rate"`
	Amount    float64 `json:"amount"`
	Tax       float64 `json:"tax"`
	Total     float64 `json:"total"`
}

// ItemPatch carries partial updates for UpdateItem; nil fields are left
// untouched.
type ItemPatch struct {
	ProductID *string
	Name      *string
	HSN       *string
	Size      *string
	Quantity  *float64
	Rate      *float64
}

// Session owns the mutable state of one invoice-editing session as an
// explicit object, so any caller (HTTP handler, test, importer) can drive it.
type Session struct {
	items          []Item
	gstEnabled     bool
	customerState  string
	homeState      string
	roundOffMode   RoundOffMode
	manualRoundOff float64
}

// NewSession returns an empty session. homeState decides the intra-state vs
// inter-state branch for every item.
func NewSession(homeState string) *Session {
	return &Session{homeState: homeState}
}

// Items returns the current line items in display order.
func (s *Session) Items() []Item { return s.items }

// GSTEnabled reports whether tax is applied.
func (s *Session) GSTEnabled() bool { return s.gstEnabled }

// CustomerState returns the state used for the tax-split decision.
func (s *Session) CustomerState() string { return s.customerState }

// AddItem appends an empty line and returns its index. The index stays valid
// until a removal re-indexes later entries.
func (s *Session) AddItem() int {
	s.items = append(s.items, Item{})
	return len(s.items) - 1
}

// RemoveItem deletes the line at index and shifts later lines down. Out of
// range indexes are ignored.
func (s *Session) RemoveItem(index int) {
	if index < 0 || index >= len(s.items) {
		return
	}
	s.items = append(s.items[:index], s.items[index+1:]...)
}

// UpdateItem merges patch into the line at index and recomputes its derived
// fields. Out of range indexes are ignored.
func (s *Session) UpdateItem(index int, patch ItemPatch) {
	if index < 0 || index >= len(s.items) {
		return
	}
	it := &s.items[index]
	if patch.ProductID != nil {
		it.ProductID = *patch.ProductID
	}
	if patch.Name != nil {
		it.Name = *patch.Name
	}
	if patch.HSN != nil {
		it.HSN = *patch.HSN
	}
	if patch.Size != nil {
		it.Size = *patch.Size
	}
	if patch.Quantity != nil {
		it.Quantity = *patch.Quantity
	}
	if patch.Rate != nil {
		it.Rate = *patch.Rate
	}
	s.recalcItem(index)
}

// LoadItems replaces the whole line sequence (editing a saved invoice) and
// recomputes every line.
func (s *Session) LoadItems(items []Item) {
	s.items = append([]Item(nil), items...)
	s.recalcAll()
}

// SetGSTEnabled toggles tax and recomputes every line, zeroing tax fields
// when disabled.
func (s *Session) SetGSTEnabled(on bool) {
	s.gstEnabled = on
	s.recalcAll()
}

// SetCustomerState updates the state used for the intra/inter-state decision
// and recomputes every line. Amounts are unaffected; only the split changes.
func (s *Session) SetCustomerState(state string) {
	s.customerState = state
	s.recalcAll()
}

// SetRoundOff pins the round-off to a manual value. It stays pinned until
// AutoRoundOff is called.
func (s *Session) SetRoundOff(v float64) {
	s.roundOffMode = RoundOffManual
	s.manualRoundOff = v
}

// AutoRoundOff switches back to the computed round-off, discarding any
// pinned value.
func (s *Session) AutoRoundOff() {
	s.roundOffMode = RoundOffAuto
	s.manualRoundOff = 0
}

func (s *Session) intraState() bool {
	return s.customerState == s.homeState
}

// GSTType labels the tax treatment of the whole invoice.
func (s *Session) GSTType() string {
	if !s.gstEnabled {
		return "Non-GST"
	}
	if s.intraState() {
		return "CGST + SGST"
	}
	return "IGST"
}

func (s *Session) recalcItem(index int) {
	it := &s.items[index]
	it.Amount = it.Quantity * it.Rate
	if s.gstEnabled {
		it.Tax = it.Amount * TaxRate
	} else {
		it.Tax = 0
	}
	it.Total = it.Amount + it.Tax
}

func (s *Session) recalcAll() {
	for i := range s.items {
		s.recalcItem(i)
	}
}
