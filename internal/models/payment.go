package models

import "time"

// Payment records one received amount for a customer. Allocation against
// outstanding invoices happens at recording time; the row is history only.
type Payment struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	CustomerID string    `gorm:"size:36;not null;index" json:"customerId"`
	Date       string    `gorm:"size:10;not null" json:"date"` // YYYY-MM-DD
	Amount     float64   `gorm:"not null" json:"amount"`
	CreatedAt  time.Time `json:"createdAt"`
}
