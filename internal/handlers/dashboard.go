package handlers

import (
	"net/http"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/rajkumararumugam9944-byte/Inbhatex/internal/httpx"
	"github.com/rajkumararumugam9944-byte/Inbhatex/internal/models"
)

type DashboardHandler struct {
	DB *gorm.DB
}

func NewDashboardHandler(db *gorm.DB) *DashboardHandler {
	return &DashboardHandler{DB: db}
}

// Get: GET /dashboard – the landing-page KPIs plus per-customer outstanding
// balances, largest first.
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	var customerCount int64
	if err := h.DB.Model(&models.Customer{}).Count(&customerCount).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_load_dashboard", nil)
		return
	}
	var invoices []models.Invoice
	if err := h.DB.Find(&invoices).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_load_dashboard", nil)
		return
	}

	today := time.Now().Format("2006-01-02")
	var outstanding, todaySales float64
	pendingCount := 0
	byCustomer := map[string]float64{}
	for i := range invoices {
		inv := &invoices[i]
		if inv.Status != models.StatusPaid {
			due := inv.Outstanding()
			outstanding += due
			if due > 0 {
				pendingCount++
				byCustomer[inv.CustomerID] += due
			}
		}
		if inv.Date == today && inv.Status == models.StatusPaid {
			todaySales += inv.GrandTotal
		}
	}

	type customerDue struct {
		CustomerID  string  `json:"customerId"`
		Name        string  `json:"name"`
		Outstanding float64 `json:"outstanding"`
	}
	dues := make([]customerDue, 0, len(byCustomer))
	if len(byCustomer) > 0 {
		var customers []models.Customer
		if err := h.DB.Find(&customers).Error; err != nil {
			httpx.JSONError(w, http.StatusInternalServerError, "failed_to_load_dashboard", nil)
			return
		}
		for _, c := range customers {
			if due, ok := byCustomer[c.ID]; ok {
				dues = append(dues, customerDue{CustomerID: c.ID, Name: c.Name, Outstanding: due})
			}
		}
		sort.Slice(dues, func(i, j int) bool { return dues[i].Outstanding > dues[j].Outstanding })
	}

	httpx.JSON(w, http.StatusOK, map[string]any{
		"customers":             customerCount,
		"outstanding":           outstanding,
		"todaySales":            todaySales,
		"pendingCount":          pendingCount,
		"outstandingByCustomer": dues,
	})
}
