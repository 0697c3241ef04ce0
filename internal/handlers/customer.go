package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rajkumararumugam9944-byte/Inbhatex/internal/httpx"
	"github.com/rajkumararumugam9944-byte/Inbhatex/internal/models"
	"github.com/rajkumararumugam9944-byte/Inbhatex/internal/validation"
)

type CustomerHandler struct {
	DB *gorm.DB
}

func NewCustomerHandler(db *gorm.DB) *CustomerHandler {
	return &CustomerHandler{DB: db}
}

type customerReq struct {
	Name           string `json:"name"`
	Address        string `json:"address"`
	Phone          string `json:"phone"`
	WhatsappNumber string `json:"whatsappNumber"`
	GSTNumber      string `json:"gstNumber"`
	State          string `json:"state"`
	TransportName  string `json:"transportName"`
}

func (req *customerReq) validate() validation.Violations {
	v := validation.Violations{}
	validation.Required("name", req.Name, v)
	validation.Phone("phone", req.Phone, v)
	validation.Phone("whatsappNumber", req.WhatsappNumber, v)
	validation.GSTIN("gstNumber", req.GSTNumber, v)
	return v
}

func (req *customerReq) apply(c *models.Customer) {
	c.Name = strings.TrimSpace(req.Name)
	c.Address = req.Address
	c.Phone = req.Phone
	c.WhatsappNumber = req.WhatsappNumber
	if c.WhatsappNumber == "" {
		c.WhatsappNumber = req.Phone
	}
	c.GSTNumber = req.GSTNumber
	c.State = req.State
	if c.State == "" && c.GSTNumber != "" {
		// the leading two GSTIN digits encode the state
		c.State = validation.StateFromGSTIN(c.GSTNumber)
	}
	c.TransportName = req.TransportName
}

// List: GET /customers – optional ?q= filters by name, phone or GSTIN.
func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	dbq := h.DB.Order("name asc")
	if q != "" {
		like := "%" + strings.ToLower(q) + "%"
		dbq = dbq.Where("lower(name) LIKE ? OR phone LIKE ? OR lower(gst_number) LIKE ?", like, like, like)
	}
	var customers []models.Customer
	if err := dbq.Find(&customers).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_list_customers", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"items": customers, "total": len(customers)})
}

// Create: POST /customers
func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req customerReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	if v := req.validate(); !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	customer := models.Customer{ID: uuid.NewString()}
	req.apply(&customer)
	if err := h.DB.Create(&customer).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_create_customer", nil)
		return
	}
	httpx.JSON(w, http.StatusCreated, customer)
}

// Update: POST /customers/update?id=...
func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		httpx.JSONError(w, http.StatusBadRequest, "missing_id", nil)
		return
	}
	var customer models.Customer
	if err := h.DB.First(&customer, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_load_customer", nil)
		return
	}
	var req customerReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	if v := req.validate(); !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	req.apply(&customer)
	if err := h.DB.Save(&customer).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_update_customer", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, customer)
}

// Delete: POST /customers/delete?id=...
func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		httpx.JSONError(w, http.StatusBadRequest, "missing_id", nil)
		return
	}
	res := h.DB.Delete(&models.Customer{}, "id = ?", id)
	if res.Error != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_delete_customer", nil)
		return
	}
	if res.RowsAffected == 0 {
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
