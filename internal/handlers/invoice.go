package handlers

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"github.com/rajkumararumugam9944-byte/Inbhatex/internal/billing"
	"github.com/rajkumararumugam9944-byte/Inbhatex/internal/httpx"
	"github.com/rajkumararumugam9944-byte/Inbhatex/internal/models"
	pdfgen "github.com/rajkumararumugam9944-byte/Inbhatex/internal/pdf"
	"github.com/rajkumararumugam9944-byte/Inbhatex/internal/services"
)

type InvoiceHandler struct {
	DB  *gorm.DB
	Svc *services.InvoiceService
}

func NewInvoiceHandler(db *gorm.DB, svc *services.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{DB: db, Svc: svc}
}

// looseFloat decodes a JSON number, a numeric string, or anything else as
// zero. Malformed quantity/rate input is a zero line, never an error.
type looseFloat float64

func (f *looseFloat) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		n = 0
	}
	*f = looseFloat(n)
	return nil
}

type invoiceItemReq struct {
	ProductID string     `json:"productId"`
	Name      string     `json:"name"`
	HSN       string     `json:"hsn"`
	Size      string     `json:"size"`
	Quantity  looseFloat `json:"quantity"`
	Rate      looseFloat `json:"rate"`
}

type invoiceReq struct {
	ID            string           `json:"id"`
	CustomerID    string           `json:"customerId"`
	InvoiceNumber string           `json:"invoiceNumber"`
	Date          string           `json:"date"`
	TransportName string           `json:"transportName"`
	Bundles       string           `json:"bundles"`
	EwayBill      string           `json:"ewayBill"`
	GSTEnabled    bool             `json:"gstEnabled"`
	RoundOff      *float64         `json:"roundOff"`
	Items         []invoiceItemReq `json:"items"`
}

func (req *invoiceReq) toSaveInput() services.SaveInput {
	in := services.SaveInput{
		ID:             req.ID,
		CustomerID:     req.CustomerID,
		InvoiceNumber:  req.InvoiceNumber,
		Date:           req.Date,
		TransportName:  req.TransportName,
		Bundles:        req.Bundles,
		EwayBill:       req.EwayBill,
		GSTEnabled:     req.GSTEnabled,
		ManualRoundOff: req.RoundOff,
	}
	for _, it := range req.Items {
		in.Items = append(in.Items, services.ItemInput{
			ProductID: it.ProductID,
			Name:      it.Name,
			HSN:       it.HSN,
			Size:      it.Size,
			Quantity:  float64(it.Quantity),
			Rate:      float64(it.Rate),
		})
	}
	return in
}

func writeSaveError(w http.ResponseWriter, err error) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", verr.Fields)
	case errors.Is(err, services.ErrCustomerNotFound):
		httpx.JSONError(w, http.StatusBadRequest, "customer_not_found", nil)
	case errors.Is(err, services.ErrInvoiceNotFound):
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
	default:
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_save_invoice", nil)
	}
}

// List: GET /invoices – optional ?q= (invoice number), ?customer=, ?status=;
// paginated with ?limit= and ?page=.
func (h *InvoiceHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 200 {
			limit = n
		}
	}
	offset := 0
	if v := r.URL.Query().Get("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 1 {
			offset = (n - 1) * limit
		}
	}
	dbq := h.DB.Model(&models.Invoice{})
	if q := strings.TrimSpace(r.URL.Query().Get("q")); q != "" {
		dbq = dbq.Where("lower(invoice_number) LIKE ?", "%"+strings.ToLower(q)+"%")
	}
	if c := r.URL.Query().Get("customer"); c != "" {
		dbq = dbq.Where("customer_id = ?", c)
	}
	if st := r.URL.Query().Get("status"); st != "" {
		dbq = dbq.Where("status = ?", st)
	}
	var total int64
	dbq.Count(&total)
	var invs []models.Invoice
	if err := dbq.Order("date desc, created_at desc").Limit(limit).Offset(offset).Find(&invs).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_list_invoices", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"items": invs, "total": total, "limit": limit, "offset": offset})
}

// Get: GET /invoices/get?id=... – invoice with items in display order.
func (h *InvoiceHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		httpx.JSONError(w, http.StatusBadRequest, "missing_id", nil)
		return
	}
	inv, err := h.Svc.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrInvoiceNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_load_invoice", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, inv)
}

// Create: POST /invoices
func (h *InvoiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req invoiceReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	req.ID = "" // creation never overwrites
	inv, err := h.Svc.Save(req.toSaveInput())
	if err != nil {
		writeSaveError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, inv)
}

// Update: POST /invoices/update – body carries the id.
func (h *InvoiceHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req invoiceReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	if req.ID == "" {
		httpx.JSONError(w, http.StatusBadRequest, "missing_id", nil)
		return
	}
	inv, err := h.Svc.Save(req.toSaveInput())
	if err != nil {
		writeSaveError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, inv)
}

// Delete: POST /invoices/delete?id=...
func (h *InvoiceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		httpx.JSONError(w, http.StatusBadRequest, "missing_id", nil)
		return
	}
	if err := h.Svc.Delete(id); err != nil {
		if errors.Is(err, services.ErrInvoiceNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_delete_invoice", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// NextNumber: GET /invoices/next-number?date=YYYY-MM-DD – what a new invoice
// would be numbered. Regenerating is idempotent until something is saved.
func (h *InvoiceHandler) NextNumber(w http.ResponseWriter, r *http.Request) {
	number, err := h.Svc.NextNumber(r.URL.Query().Get("date"))
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_generate_number", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"invoiceNumber": number})
}

// Preview: POST /invoices/preview – runs the computation engine over the
// payload without persisting anything, so the editor can re-render totals
// after every keystroke.
func (h *InvoiceHandler) Preview(w http.ResponseWriter, r *http.Request) {
	var req invoiceReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}

	var set models.Settings
	if err := h.DB.First(&set).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_load_settings", nil)
		return
	}
	customerState := ""
	gstEnabled := req.GSTEnabled
	if req.CustomerID != "" {
		var customer models.Customer
		if err := h.DB.First(&customer, "id = ?", req.CustomerID).Error; err == nil {
			customerState = customer.State
			if customer.GSTNumber != "" && req.ID == "" {
				gstEnabled = true
			}
		}
	}

	session := billing.NewSession(set.HomeState)
	session.SetCustomerState(customerState)
	session.SetGSTEnabled(gstEnabled)
	for i, it := range req.Items {
		session.AddItem()
		productID, name, hsn, size := it.ProductID, it.Name, it.HSN, it.Size
		qty, rate := float64(it.Quantity), float64(it.Rate)
		session.UpdateItem(i, billing.ItemPatch{
			ProductID: &productID, Name: &name, HSN: &hsn, Size: &size,
			Quantity: &qty, Rate: &rate,
		})
	}
	if req.RoundOff != nil {
		session.SetRoundOff(*req.RoundOff)
	}
	httpx.JSON(w, http.StatusOK, map[string]any{
		"items":  session.Items(),
		"totals": session.Totals(),
	})
}

// PDF: GET /invoices/pdf?id=...
func (h *InvoiceHandler) PDF(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		httpx.JSONError(w, http.StatusBadRequest, "missing_id", nil)
		return
	}
	inv, err := h.Svc.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrInvoiceNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_load_invoice", nil)
		return
	}
	var customer models.Customer
	if err := h.DB.First(&customer, "id = ?", inv.CustomerID).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_load_customer", nil)
		return
	}
	var set models.Settings
	if err := h.DB.First(&set).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_load_settings", nil)
		return
	}

	items := make([]pdfgen.InvoiceItem, 0, len(inv.Items))
	for _, it := range inv.Items {
		items = append(items, pdfgen.InvoiceItem{
			Position: it.Position,
			Name:     it.Name,
			HSN:      it.HSN,
			Size:     it.Size,
			Quantity: it.Quantity,
			Rate:     it.Rate,
			Amount:   it.Amount,
			Tax:      it.Tax,
			Total:    it.Total,
		})
	}
	data, genErr := pdfgen.InvoicePDF(pdfgen.InvoiceData{
		InvoiceNumber: inv.InvoiceNumber,
		Date:          inv.Date,
		GSTType:       inv.GSTType,
		TransportName: inv.TransportName,
		Bundles:       inv.Bundles,
		EwayBill:      inv.EwayBill,
		Items:         items,
		Subtotal:      inv.Subtotal,
		CGST:          inv.CGST,
		SGST:          inv.SGST,
		IGST:          inv.IGST,
		RoundOff:      inv.RoundOff,
		GrandTotal:    inv.GrandTotal,
		TotalInWords:  billing.NumberToWords(int64(math.Round(inv.GrandTotal))) + " Rupees Only",
		Customer: pdfgen.CustomerData{
			Name:      customer.Name,
			Address:   customer.Address,
			Phone:     customer.Phone,
			GSTNumber: customer.GSTNumber,
			State:     customer.State,
		},
		Company: pdfgen.CompanyData{
			Name:    set.CompanyName,
			Address: set.CompanyAddress,
			GSTIN:   set.GSTIN,
			Phone:   set.Phone,
		},
	})
	if genErr != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "pdf_generation_failed", nil)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\""+inv.InvoiceNumber+".pdf\"")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
