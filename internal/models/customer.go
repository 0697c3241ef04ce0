package models

import "time"

// Customer entity
type Customer struct {
	ID             string `gorm:"primaryKey;size:36" json:"id"`
	Name           string `gorm:"not null;index" json:"name"`
	Address        string `json:"address"`
	Phone          string `json:"phone"`
	WhatsappNumber string `json:"whatsappNumber"`
	GSTNumber      string `gorm:"index" json:"gstNumber"`
	// State drives the intra-state vs inter-state tax split on invoices.
	State         string    `json:"state"`
	TransportName string    `json:"transportName"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
