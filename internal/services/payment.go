package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rajkumararumugam9944-byte/Inbhatex/internal/models"
	"github.com/rajkumararumugam9944-byte/Inbhatex/internal/validation"
)

// PaymentService allocates received amounts against a customer's outstanding
// invoices, oldest first.
type PaymentService struct {
	db *gorm.DB
}

func NewPaymentService(db *gorm.DB) *PaymentService {
	return &PaymentService{db: db}
}

// PaymentResult reports how a recorded payment was spread.
type PaymentResult struct {
	PaymentID       string  `json:"paymentId"`
	Allocated       float64 `json:"allocated"`
	Unallocated     float64 `json:"unallocated"`
	InvoicesTouched int     `json:"invoicesTouched"`
}

// Record applies amount to the customer's non-paid invoices in date order,
// raising paidAmount and status per invoice until the amount runs out.
// Anything beyond the total outstanding stays unallocated; there is no
// credit balance.
func (s *PaymentService) Record(customerID string, amount float64, date string) (*PaymentResult, error) {
	v := validation.Violations{}
	validation.Required("customerId", customerID, v)
	validation.PositiveFloat("amount", amount, v)
	if !v.Empty() {
		return nil, &ValidationError{Fields: v}
	}
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	var customer models.Customer
	if err := s.db.First(&customer, "id = ?", customerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}

	result := PaymentResult{PaymentID: uuid.NewString()}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var open []models.Invoice
		if err := tx.Where("customer_id = ? AND status <> ?", customerID, models.StatusPaid).
			Order("date asc, created_at asc").Find(&open).Error; err != nil {
			return err
		}
		remaining := amount
		for i := range open {
			if remaining <= 0 {
				break
			}
			inv := &open[i]
			outstanding := inv.Outstanding()
			if outstanding <= 0 {
				continue
			}
			pay := remaining
			if outstanding < pay {
				pay = outstanding
			}
			inv.PaidAmount += pay
			inv.Status = statusFor(inv.PaidAmount, inv.GrandTotal)
			if err := tx.Model(&models.Invoice{}).Where("id = ?", inv.ID).
				Updates(map[string]any{"paid_amount": inv.PaidAmount, "status": inv.Status}).Error; err != nil {
				return err
			}
			remaining -= pay
			result.InvoicesTouched++
		}
		result.Allocated = amount - remaining
		result.Unallocated = remaining
		payment := models.Payment{
			ID:         result.PaymentID,
			CustomerID: customerID,
			Date:       date,
			Amount:     amount,
		}
		return tx.Create(&payment).Error
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
