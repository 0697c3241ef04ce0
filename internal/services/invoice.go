package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rajkumararumugam9944-byte/Inbhatex/internal/billing"
	"github.com/rajkumararumugam9944-byte/Inbhatex/internal/models"
	"github.com/rajkumararumugam9944-byte/Inbhatex/internal/validation"
)

var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrInvoiceNotFound  = errors.New("invoice not found")
)

// ValidationError carries the per-field violations of a rejected save.
type ValidationError struct {
	Fields validation.Violations
}

func (e *ValidationError) Error() string { return "validation failed" }

// InvoiceService orchestrates the billing engine against the store: it
// validates, numbers and persists invoices. All computation happens in
// internal/billing; this layer only moves data in and out.
type InvoiceService struct {
	db *gorm.DB
}

func NewInvoiceService(db *gorm.DB) *InvoiceService {
	return &InvoiceService{db: db}
}

// ItemInput is one line as supplied by the caller. Derived fields are
// always recomputed, never trusted.
type ItemInput struct {
	ProductID string
	Name      string
	HSN       string
	Size      string
	Quantity  float64
	Rate      float64
}

// SaveInput is an invoice save request. ID empty means a new invoice.
type SaveInput struct {
	ID            string
	CustomerID    string
	InvoiceNumber string
	Date          string // YYYY-MM-DD, defaults to today
	TransportName string
	Bundles       string
	EwayBill      string
	GSTEnabled    bool
	// ManualRoundOff, when set, pins the round-off instead of computing it.
	ManualRoundOff *float64
	Items          []ItemInput
}

func (s *InvoiceService) settings() (models.Settings, error) {
	var set models.Settings
	err := s.db.First(&set).Error
	return set, err
}

// NextNumber returns the invoice number a new invoice dated date would get.
// Only persisted invoices count, so regenerating before first save is
// idempotent.
func (s *InvoiceService) NextNumber(date string) (string, error) {
	set, err := s.settings()
	if err != nil {
		return "", err
	}
	format := set.InvoiceNumberFormat
	if format == "" {
		format = "INV-YYYY-###"
	}
	var rows []models.Invoice
	if err := s.db.Select("date", "invoice_number").Find(&rows).Error; err != nil {
		return "", err
	}
	prior := make([]billing.PriorInvoice, 0, len(rows))
	for _, r := range rows {
		prior = append(prior, billing.PriorInvoice{Date: r.Date, Number: r.InvoiceNumber})
	}
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	return billing.NextInvoiceNumber(format, date, prior), nil
}

// Get loads one invoice with its items in display order.
func (s *InvoiceService) Get(id string) (*models.Invoice, error) {
	var inv models.Invoice
	err := s.db.Preload("Items", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("position asc")
	}).First(&inv, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvoiceNotFound
	}
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// Save validates and persists an invoice. New invoices get a uuid and a
// generated number; existing invoices keep number, status, paid amount and
// creation time, and have their items replaced wholesale.
func (s *InvoiceService) Save(in SaveInput) (*models.Invoice, error) {
	v := validation.Violations{}
	validation.Required("customerId", in.CustomerID, v)
	hasQty := false
	for _, it := range in.Items {
		if it.Quantity > 0 {
			hasQty = true
			break
		}
	}
	if !hasQty {
		v["items"] = "at_least_one_item"
	}
	if !v.Empty() {
		return nil, &ValidationError{Fields: v}
	}
	if in.Date == "" {
		in.Date = time.Now().Format("2006-01-02")
	}

	var customer models.Customer
	if err := s.db.First(&customer, "id = ?", in.CustomerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}

	var existing *models.Invoice
	if in.ID != "" {
		var prev models.Invoice
		if err := s.db.First(&prev, "id = ?", in.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrInvoiceNotFound
			}
			return nil, err
		}
		existing = &prev
	}

	set, err := s.settings()
	if err != nil {
		return nil, err
	}

	gstEnabled := in.GSTEnabled
	if existing == nil && customer.GSTNumber != "" {
		// A registered customer auto-enables GST on new invoices.
		gstEnabled = true
	}

	session := billing.NewSession(set.HomeState)
	session.SetCustomerState(customer.State)
	session.SetGSTEnabled(gstEnabled)
	lines := make([]billing.Item, 0, len(in.Items))
	for _, it := range in.Items {
		lines = append(lines, billing.Item{
			ProductID: it.ProductID,
			Name:      it.Name,
			HSN:       it.HSN,
			Size:      it.Size,
			Quantity:  it.Quantity,
			Rate:      it.Rate,
		})
	}
	session.LoadItems(lines)
	if in.ManualRoundOff != nil {
		session.SetRoundOff(*in.ManualRoundOff)
	}
	totals := session.Totals()

	inv := models.Invoice{
		CustomerID:    in.CustomerID,
		Date:          in.Date,
		TransportName: in.TransportName,
		Bundles:       in.Bundles,
		EwayBill:      in.EwayBill,
		GSTEnabled:    gstEnabled,
		GSTType:       totals.GSTType,
		Subtotal:      totals.Subtotal,
		CGST:          totals.CGST,
		SGST:          totals.SGST,
		IGST:          totals.IGST,
		RoundOff:      totals.RoundOff,
		GrandTotal:    totals.GrandTotal,
	}
	if existing != nil {
		inv.ID = existing.ID
		inv.InvoiceNumber = existing.InvoiceNumber // immutable once assigned
		inv.PaidAmount = existing.PaidAmount
		inv.Status = statusFor(existing.PaidAmount, inv.GrandTotal)
		inv.CreatedAt = existing.CreatedAt
	} else {
		inv.ID = uuid.NewString()
		inv.Status = models.StatusUnpaid
		number := in.InvoiceNumber
		if number == "" {
			if number, err = s.NextNumber(in.Date); err != nil {
				return nil, err
			}
		}
		inv.InvoiceNumber = number
	}

	items := make([]models.InvoiceItem, 0, len(session.Items()))
	for i, it := range session.Items() {
		items = append(items, models.InvoiceItem{
			InvoiceID: inv.ID,
			Position:  i + 1,
			ProductID: it.ProductID,
			Name:      it.Name,
			HSN:       it.HSN,
			Size:      it.Size,
			Quantity:  it.Quantity,
			Rate:      it.Rate,
			Amount:    it.Amount,
			Tax:       it.Tax,
			Total:     it.Total,
		})
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if existing != nil {
			if err := tx.Where("invoice_id = ?", inv.ID).Delete(&models.InvoiceItem{}).Error; err != nil {
				return err
			}
			if err := tx.Save(&inv).Error; err != nil {
				return err
			}
		} else {
			if err := tx.Create(&inv).Error; err != nil {
				return err
			}
		}
		return tx.Create(&items).Error
	})
	if err != nil {
		return nil, err
	}
	inv.Items = items
	return &inv, nil
}

// Delete removes an invoice and its items.
func (s *InvoiceService) Delete(id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.Invoice{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrInvoiceNotFound
		}
		return tx.Where("invoice_id = ?", id).Delete(&models.InvoiceItem{}).Error
	})
}

func statusFor(paid, grand float64) string {
	switch {
	case paid > 0 && paid >= grand:
		return models.StatusPaid
	case paid > 0:
		return models.StatusPartial
	default:
		return models.StatusUnpaid
	}
}
