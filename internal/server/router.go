package server

import (
	"net/http"

	"github.com/diewo77/pier2-orders/httpx"
	"github.com/diewo77/pier2-orders/internal/handlers"
	"github.com/diewo77/pier2-orders/internal/middleware"
	"github.com/diewo77/pier2-orders/internal/services"
	"github.com/diewo77/pier2-orders/internal/store"
)

// Options tunes New.
type Options struct {
	// CORSAllowedOrigins defaults to any origin.
	CORSAllowedOrigins []string
	// DisableSampleData drops the /sample_data demo endpoint.
	DisableSampleData bool
}

// New constructs the root http.Handler with all routes and middlewares applied.
func New(s store.Store, opts Options) http.Handler {
	mux := http.NewServeMux()

	//revive:disable:unused-parameter simple handlers intentionally ignore *http.Request
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "Backend is running"})
	})
	//revive:enable:unused-parameter
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := s.Ping(r.Context()); err != nil {
			httpx.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
			return
		}
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	lookup := services.NewLookupService(s)
	ch := handlers.NewCustomerHandler(lookup)
	mux.HandleFunc("GET /customer/{identifier}/orders", ch.Orders)
	if !opts.DisableSampleData {
		mux.HandleFunc("GET /sample_data", ch.Sample)
	}

	ah := handlers.NewAnalyticsHandler(services.NewReportService(s))
	mux.HandleFunc("GET /analytics/orders_by_billing_zip", ah.OrdersByBillingZip)
	mux.HandleFunc("GET /analytics/orders_by_shipping_zip", ah.OrdersByShippingZip)
	mux.HandleFunc("GET /analytics/in_store_peak_hour", ah.InStorePeakHour)
	mux.HandleFunc("GET /analytics/top_instore_customers", ah.TopInStoreCustomers)

	origins := opts.CORSAllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return middleware.RequestID(middleware.Logging(middleware.Recover(middleware.CORS(origins)(mux))))
}
