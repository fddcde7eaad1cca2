package handlers

import (
	"errors"
	"net/http"

	"github.com/diewo77/pier2-orders/httpx"
	"github.com/diewo77/pier2-orders/internal/services"
)

// CustomerNotFoundMessage is the error body of an unknown customer lookup.
const CustomerNotFoundMessage = "Customer not found"

// sampleSize is how many customers /sample_data lists.
const sampleSize = 5

type CustomerHandler struct {
	lookup *services.LookupService
}

func NewCustomerHandler(lookup *services.LookupService) *CustomerHandler {
	return &CustomerHandler{lookup: lookup}
}

// Orders serves GET /customer/{identifier}/orders. An unknown customer is a
// 404 with {"error": "Customer not found"}.
func (h *CustomerHandler) Orders(w http.ResponseWriter, r *http.Request) {
	history, err := h.lookup.OrderHistory(r.Context(), r.PathValue("identifier"))
	if errors.Is(err, services.ErrCustomerNotFound) {
		httpx.JSONError(w, http.StatusNotFound, CustomerNotFoundMessage, nil)
		return
	}
	if err != nil {
		httpx.InternalError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, history)
}

// Sample serves GET /sample_data.
func (h *CustomerHandler) Sample(w http.ResponseWriter, r *http.Request) {
	customers, err := h.lookup.SampleCustomers(r.Context(), sampleSize)
	if err != nil {
		httpx.InternalError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, customers)
}
