package server

import (
	"net/http"

	"gorm.io/gorm"

	"github.com/rajkumararumugam9944-byte/Inbhatex/internal/handlers"
	"github.com/rajkumararumugam9944-byte/Inbhatex/internal/httpx"
	"github.com/rajkumararumugam9944-byte/Inbhatex/internal/services"
)

// New constructs the root http.Handler with all routes applied.
func New(db *gorm.DB) http.Handler {
	mux := http.NewServeMux()

	// --- Health endpoints ---
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		// Lightweight DB check (SELECT 1) – no error detail in the body
		if err := db.Exec("SELECT 1").Error; err != nil {
			httpx.JSONError(w, http.StatusServiceUnavailable, "degraded", nil)
			return
		}
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	listCreate := func(list, create http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet:
				list(w, r)
			case http.MethodPost:
				create(w, r)
			default:
				w.Header().Set("Allow", "GET,POST")
				httpx.JSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
			}
		}
	}
	postOnly := func(h http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				w.Header().Set("Allow", "POST")
				httpx.JSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
				return
			}
			h(w, r)
		}
	}

	// Customer endpoints. List/Create via /customers, Update/Delete via
	// /customers/update & /customers/delete for simplicity.
	ch := handlers.NewCustomerHandler(db)
	mux.HandleFunc("/customers", listCreate(ch.List, ch.Create))
	mux.HandleFunc("/customers/update", postOnly(ch.Update))
	mux.HandleFunc("/customers/delete", postOnly(ch.Delete))

	// Product endpoints
	ph := handlers.NewProductHandler(db)
	mux.HandleFunc("/products", listCreate(ph.List, ph.Create))
	mux.HandleFunc("/products/update", postOnly(ph.Update))
	mux.HandleFunc("/products/delete", postOnly(ph.Delete))

	// Invoice endpoints
	invSvc := services.NewInvoiceService(db)
	ih := handlers.NewInvoiceHandler(db, invSvc)
	mux.HandleFunc("/invoices", listCreate(ih.List, ih.Create))
	mux.HandleFunc("/invoices/get", ih.Get)
	mux.HandleFunc("/invoices/update", postOnly(ih.Update))
	mux.HandleFunc("/invoices/delete", postOnly(ih.Delete))
	mux.HandleFunc("/invoices/next-number", ih.NextNumber)
	mux.HandleFunc("/invoices/preview", postOnly(ih.Preview))
	mux.HandleFunc("/invoices/pdf", ih.PDF)

	// Payment endpoints
	paySvc := services.NewPaymentService(db)
	payh := handlers.NewPaymentHandler(db, paySvc)
	mux.HandleFunc("/payments", listCreate(payh.List, payh.Create))

	// Settings
	sh := handlers.NewSettingsHandler(db)
	mux.HandleFunc("/settings", listCreate(sh.Get, sh.Update))

	// Dashboard
	dh := handlers.NewDashboardHandler(db)
	mux.HandleFunc("/dashboard", dh.Get)

	// CSV exports
	eh := handlers.NewExportHandler(db)
	mux.HandleFunc("/export/customers", eh.Customers)
	mux.HandleFunc("/export/products", eh.Products)
	mux.HandleFunc("/export/invoices", eh.Invoices)

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("Inbhatex Billing API"))
	})

	return withRecover(mux)
}

func withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				httpx.JSONError(w, http.StatusInternalServerError, "internal_error", nil)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
