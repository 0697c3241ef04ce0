package models

import "time"

// Product catalog entry, used to prefill invoice line items.
type Product struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `gorm:"not null;index" json:"name"`
	HSN       string    `json:"hsn"`
	Rate      float64   `gorm:"not null" json:"rate"`
	Size      string    `json:"size"`
	Unit      string    `json:"unit"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
