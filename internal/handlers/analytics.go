package handlers

import (
	"errors"
	"net/http"

	"github.com/diewo77/pier2-orders/httpx"
	"github.com/diewo77/pier2-orders/internal/analytics"
	"github.com/diewo77/pier2-orders/internal/services"
	"github.com/diewo77/pier2-orders/validation"
)

type AnalyticsHandler struct {
	reports *services.ReportService
}

func NewAnalyticsHandler(reports *services.ReportService) *AnalyticsHandler {
	return &AnalyticsHandler{reports: reports}
}

// OrdersByBillingZip serves GET /analytics/orders_by_billing_zip?order=asc|desc.
func (h *AnalyticsHandler) OrdersByBillingZip(w http.ResponseWriter, r *http.Request) {
	h.ordersByZip(w, r, services.DimensionBilling)
}

// OrdersByShippingZip serves GET /analytics/orders_by_shipping_zip?order=asc|desc.
// Counts are order items, not orders.
func (h *AnalyticsHandler) OrdersByShippingZip(w http.ResponseWriter, r *http.Request) {
	h.ordersByZip(w, r, services.DimensionShipping)
}

func (h *AnalyticsHandler) ordersByZip(w http.ResponseWriter, r *http.Request, dim services.Dimension) {
	dir, err := analytics.ParseSortDirection(r.URL.Query().Get("order"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, httpx.CodeInvalidParameter, validation.Violations{"order": "invalid_value"})
		return
	}
	counts, err := h.reports.OrdersByZip(r.Context(), dim, dir)
	if err != nil {
		httpx.InternalError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, counts)
}

// InStorePeakHour serves GET /analytics/in_store_peak_hour as {"3pm": 12},
// or {} when there are no in-store orders.
func (h *AnalyticsHandler) InStorePeakHour(w http.ResponseWriter, r *http.Request) {
	peak, ok, err := h.reports.PeakInStoreHour(r.Context())
	if err != nil {
		httpx.InternalError(w, r, err)
		return
	}
	if !ok {
		httpx.JSON(w, http.StatusOK, map[string]int64{})
		return
	}
	httpx.JSON(w, http.StatusOK, peak.Map())
}

// TopInStoreCustomers serves GET /analytics/top_instore_customers with
// optional start_date and end_date in MM-DD-YYYY.
func (h *AnalyticsHandler) TopInStoreCustomers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	top, err := h.reports.TopInStoreCustomers(r.Context(), q.Get("start_date"), q.Get("end_date"))
	var de *services.DateError
	if errors.As(err, &de) {
		httpx.JSONError(w, http.StatusBadRequest, httpx.CodeInvalidDate, validation.Violations{de.Field: "invalid_date_format"})
		return
	}
	if err != nil {
		httpx.InternalError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, top)
}
