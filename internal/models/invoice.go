package models

import "time"

// Invoice payment status values.
const (
	StatusUnpaid  = "Unpaid"
	StatusPartial = "Partial"
	StatusPaid    = "Paid"
)

// GST treatment labels. Intra-state invoices split the 5% rate into
// CGST 2.5% + SGST 2.5%; inter-state invoices carry the full 5% as IGST.
const (
	GSTTypeNone  = "Non-GST"
	GSTTypeIntra = "CGST + SGST"
	GSTTypeInter = "IGST"
)

// Invoicing models
type Invoice struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`
	// InvoiceNumber is assigned at first save and immutable afterwards.
	InvoiceNumber string        `gorm:"not null;uniqueIndex" json:"invoiceNumber"`
	Date          string        `gorm:"size:10;not null;index" json:"date"` // YYYY-MM-DD
	CustomerID    string        `gorm:"size:36;not null;index" json:"customerId"`
	Customer      Customer      `gorm:"foreignKey:CustomerID" json:"-"`
	TransportName string        `json:"transportName"`
	Bundles       string        `json:"bundles"`
	EwayBill      string        `json:"ewayBill"`
	GSTEnabled    bool          `json:"gstEnabled"`
	GSTType       string        `json:"gstType"`
	Items         []InvoiceItem `gorm:"foreignKey:InvoiceID" json:"items"`
	Subtotal      float64       `json:"subtotal"`
	CGST          float64       `json:"cgst"`
	SGST          float64       `json:"sgst"`
	IGST          float64       `json:"igst"`
	RoundOff      float64       `json:"roundOff"`
	GrandTotal    float64       `json:"grandTotal"`
	Status        string        `gorm:"not null;default:'Unpaid'" json:"status"`
	PaidAmount    float64       `json:"paidAmount"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// Outstanding returns the unpaid remainder of the invoice.
func (inv *Invoice) Outstanding() float64 {
	return inv.GrandTotal - inv.PaidAmount
}

type InvoiceItem struct {
	ID        uint   `gorm:"primaryKey" json:"-"`
	InvoiceID string `gorm:"size:36;not null;index" json:"-"`
	// Position preserves display order; serial numbers on the printed
	// invoice follow it.
	Position  int     `gorm:"not null" json:"position"`
	ProductID string  `gorm:"size:36" json:"productId"`
	Name      string  `json:"name"`
	HSN       string  `json:"hsn"`
	Size      string  `json:"size"`
	Quantity  float64 `json:"quantity"`
	Rate      float64 `json:"rate"`
	Amount    float64 `json:"amount"`
	Tax       float64 `json:"tax"`
	Total     float64 `json:"total"`
}
