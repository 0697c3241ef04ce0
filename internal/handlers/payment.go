package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"gorm.io/gorm"

	"github.com/rajkumararumugam9944-byte/Inbhatex/internal/httpx"
	"github.com/rajkumararumugam9944-byte/Inbhatex/internal/models"
	"github.com/rajkumararumugam9944-byte/Inbhatex/internal/services"
)

type PaymentHandler struct {
	DB  *gorm.DB
	Svc *services.PaymentService
}

func NewPaymentHandler(db *gorm.DB, svc *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{DB: db, Svc: svc}
}

type paymentReq struct {
	CustomerID string     `json:"customerId"`
	Amount     looseFloat `json:"amount"`
	Date       string     `json:"date"`
}

// Create: POST /payments – records an amount and spreads it oldest-first
// across the customer's outstanding invoices.
func (h *PaymentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req paymentReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	res, err := h.Svc.Record(req.CustomerID, float64(req.Amount), req.Date)
	if err != nil {
		var verr *services.ValidationError
		switch {
		case errors.As(err, &verr):
			httpx.JSONError(w, http.StatusBadRequest, "validation_failed", verr.Fields)
		case errors.Is(err, services.ErrCustomerNotFound):
			httpx.JSONError(w, http.StatusNotFound, "customer_not_found", nil)
		default:
			httpx.JSONError(w, http.StatusInternalServerError, "failed_to_record_payment", nil)
		}
		return
	}
	httpx.JSON(w, http.StatusCreated, res)
}

// List: GET /payments?customer=...
func (h *PaymentHandler) List(w http.ResponseWriter, r *http.Request) {
	dbq := h.DB.Order("date desc, created_at desc")
	if c := r.URL.Query().Get("customer"); c != "" {
		dbq = dbq.Where("customer_id = ?", c)
	}
	var payments []models.Payment
	if err := dbq.Find(&payments).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_list_payments", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"items": payments, "total": len(payments)})
}
