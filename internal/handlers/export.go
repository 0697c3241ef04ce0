package handlers

import (
	"encoding/csv"
	"net/http"
	"strconv"
	"time"

	"gorm.io/gorm"

	"github.com/rajkumararumugam9944-byte/Inbhatex/internal/httpx"
	"github.com/rajkumararumugam9944-byte/Inbhatex/internal/models"
)

// ExportHandler serves the read-only CSV dumps of each collection.
type ExportHandler struct {
	DB *gorm.DB
}

func NewExportHandler(db *gorm.DB) *ExportHandler {
	return &ExportHandler{DB: db}
}

func writeCSV(w http.ResponseWriter, name string, rows [][]string) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition",
		"attachment; filename=\""+name+"-"+time.Now().Format("2006-01-02")+".csv\"")
	cw := csv.NewWriter(w)
	_ = cw.WriteAll(rows)
	cw.Flush()
}

func money(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }

// Customers: GET /export/customers
func (h *ExportHandler) Customers(w http.ResponseWriter, r *http.Request) {
	var customers []models.Customer
	if err := h.DB.Order("name asc").Find(&customers).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_export", nil)
		return
	}
	rows := [][]string{{"Name", "Address", "Phone", "WhatsApp", "GST Number", "State", "Transport Name"}}
	for _, c := range customers {
		rows = append(rows, []string{c.Name, c.Address, c.Phone, c.WhatsappNumber, c.GSTNumber, c.State, c.TransportName})
	}
	writeCSV(w, "customers-export", rows)
}

// Products: GET /export/products
func (h *ExportHandler) Products(w http.ResponseWriter, r *http.Request) {
	var products []models.Product
	if err := h.DB.Order("name asc").Find(&products).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_export", nil)
		return
	}
	rows := [][]string{{"Product Name", "HSN Code", "Unit Rate", "Size", "Unit"}}
	for _, p := range products {
		rows = append(rows, []string{p.Name, p.HSN, money(p.Rate), p.Size, p.Unit})
	}
	writeCSV(w, "products-export", rows)
}

// Invoices: GET /export/invoices
func (h *ExportHandler) Invoices(w http.ResponseWriter, r *http.Request) {
	var invoices []models.Invoice
	if err := h.DB.Order("date asc, created_at asc").Find(&invoices).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_export", nil)
		return
	}
	rows := [][]string{{"Invoice Number", "Date", "Customer ID", "Subtotal", "Grand Total", "Status", "GST Type"}}
	for _, inv := range invoices {
		rows = append(rows, []string{inv.InvoiceNumber, inv.Date, inv.CustomerID,
			money(inv.Subtotal), money(inv.GrandTotal), inv.Status, inv.GSTType})
	}
	writeCSV(w, "invoices-export", rows)
}
