package httpx

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestJSON(t *testing.T) {
	w := httptest.NewRecorder()
	JSON(w, http.StatusOK, map[string]string{"status": "Backend is running"})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("unexpected content type %q", ct)
	}
	if got := w.Body.String(); got != `{"status":"Backend is running"}` {
		t.Fatalf("unexpected body %s", got)
	}
}

func TestJSONNil(t *testing.T) {
	w := httptest.NewRecorder()
	JSON(w, http.StatusOK, nil)
	if w.Body.String() != "null" {
		t.Fatalf("expected null body, got %q", w.Body.String())
	}
}

func TestJSONEncodeError(t *testing.T) {
	w := httptest.NewRecorder()
	JSON(w, http.StatusOK, math.Inf(1))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}

func TestJSONErrorOmitsEmptyDetails(t *testing.T) {
	w := httptest.NewRecorder()
	JSONError(w, http.StatusNotFound, "Customer not found", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if got := w.Body.String(); got != `{"error":"Customer not found"}` {
		t.Fatalf("unexpected body %s", got)
	}
}

func TestInternalErrorHidesCause(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/analytics/in_store_peak_hour", nil)
	InternalError(w, r, errors.New("pq: password authentication failed"))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	var body ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Error != CodeInternal || body.Details != nil {
		t.Fatalf("unexpected body %+v", body)
	}
}
