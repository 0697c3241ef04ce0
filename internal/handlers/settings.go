package handlers

import (
	"encoding/json"
	"net/http"

	"gorm.io/gorm"

	"github.com/rajkumararumugam9944-byte/Inbhatex/internal/httpx"
	"github.com/rajkumararumugam9944-byte/Inbhatex/internal/models"
	"github.com/rajkumararumugam9944-byte/Inbhatex/internal/validation"
)

type SettingsHandler struct {
	DB *gorm.DB
}

func NewSettingsHandler(db *gorm.DB) *SettingsHandler {
	return &SettingsHandler{DB: db}
}

// Get: GET /settings
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	var set models.Settings
	if err := h.DB.First(&set).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_load_settings", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, set)
}

type settingsReq struct {
	CompanyName         string `json:"companyName"`
	CompanyAddress      string `json:"companyAddress"`
	GSTIN               string `json:"gstin"`
	Phone               string `json:"phone"`
	InvoiceNumberFormat string `json:"invoiceNumberFormat"`
	HomeState           string `json:"homeState"`
	Theme               string `json:"theme"`
	DefaultTemplate     string `json:"defaultTemplate"`
}

// Update: POST /settings
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req settingsReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	v := validation.Violations{}
	validation.GSTIN("gstin", req.GSTIN, v)
	validation.Phone("phone", req.Phone, v)
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	var set models.Settings
	if err := h.DB.First(&set).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_load_settings", nil)
		return
	}
	set.CompanyName = req.CompanyName
	set.CompanyAddress = req.CompanyAddress
	set.GSTIN = req.GSTIN
	set.Phone = req.Phone
	if req.InvoiceNumberFormat != "" {
		set.InvoiceNumberFormat = req.InvoiceNumberFormat
	}
	if req.HomeState != "" {
		set.HomeState = req.HomeState
	}
	if req.Theme != "" {
		set.Theme = req.Theme
	}
	if req.DefaultTemplate != "" {
		set.DefaultTemplate = req.DefaultTemplate
	}
	if err := h.DB.Save(&set).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_update_settings", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, set)
}
