package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rajkumararumugam9944-byte/Inbhatex/internal/models"
	"github.com/rajkumararumugam9944-byte/Inbhatex/internal/services"
)

func TestPaymentCreateUpdatesInvoices(t *testing.T) {
	db := setupTestDB(t)
	h := NewPaymentHandler(db, services.NewPaymentService(db))
	seedCustomer(t, db, "c1", "Sri Textiles", "Tamil Nadu", "")

	invoices := []models.Invoice{
		{ID: "i1", InvoiceNumber: "INV-2024-001", Date: "2024-01-10", CustomerID: "c1", GrandTotal: 300, Status: models.StatusUnpaid},
		{ID: "i2", InvoiceNumber: "INV-2024-002", Date: "2024-02-10", CustomerID: "c1", GrandTotal: 200, Status: models.StatusUnpaid},
	}
	for i := range invoices {
		if err := db.Create(&invoices[i]).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	// Amount arrives as a string; it is coerced like every numeric input.
	body := `{"customerId":"c1","amount":"400","date":"2024-03-01"}`
	req := httptest.NewRequest(http.MethodPost, "/payments", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.Create(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d body=%s", w.Code, w.Body.String())
	}
	var res services.PaymentResult
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.Allocated != 400 || res.Unallocated != 0 || res.InvoicesTouched != 2 {
		t.Fatalf("unexpected allocation: %+v", res)
	}

	var first, second models.Invoice
	db.First(&first, "id = ?", "i1")
	db.First(&second, "id = ?", "i2")
	if first.Status != models.StatusPaid || first.PaidAmount != 300 {
		t.Fatalf("oldest invoice not settled first: %+v", first)
	}
	if second.Status != models.StatusPartial || second.PaidAmount != 100 {
		t.Fatalf("remainder not applied to next invoice: %+v", second)
	}

	req2 := httptest.NewRequest(http.MethodGet, "/payments?customer=c1", nil)
	w2 := httptest.NewRecorder()
	h.List(w2, req2)
	if w2.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w2.Code)
	}
	var payload struct {
		Items []models.Payment `json:"items"`
		Total int              `json:"total"`
	}
	if err := json.Unmarshal(w2.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.Total != 1 {
		t.Fatalf("expected 1 payment got %d", payload.Total)
	}
}

func TestPaymentUnknownCustomer(t *testing.T) {
	db := setupTestDB(t)
	h := NewPaymentHandler(db, services.NewPaymentService(db))

	body := `{"customerId":"ghost","amount":100}`
	req := httptest.NewRequest(http.MethodPost, "/payments", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.Create(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", w.Code)
	}
}
