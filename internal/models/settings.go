package models

import "time"

// Settings holds the single application-wide configuration row, seeded with
// defaults on first run.
type Settings struct {
	ID              uint   `gorm:"primaryKey" json:"-"`
	CompanyName     string `json:"companyName"`
	CompanyAddress  string `json:"companyAddress"`
	GSTIN           string `json:"gstin"`
	Phone           string `json:"phone"`
	// Template for generated invoice numbers, e.g. "INV-YYYY-###".
	InvoiceNumberFormat string `json:"invoiceNumberFormat"`
	// HomeState is the seller's state; customers in the same state get the
	// CGST+SGST split, everyone else IGST.
	HomeState       string    `json:"homeState"`
	Theme           string    `json:"theme"`
	DefaultTemplate string    `json:"defaultTemplate"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
