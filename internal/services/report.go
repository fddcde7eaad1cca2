package services

import (
	"context"
	"fmt"
	"time"

	"github.com/diewo77/pier2-orders/internal/analytics"
	"github.com/diewo77/pier2-orders/internal/store"
)

// DateLayout is the MM-DD-YYYY format of report date parameters.
const DateLayout = "01-02-2006"

// Dimension selects which address an order is grouped by.
type Dimension int

const (
	// DimensionBilling counts orders by billing zip.
	DimensionBilling Dimension = iota
	// DimensionShipping counts order items by shipping zip.
	DimensionShipping
)

func (d Dimension) String() string {
	if d == DimensionShipping {
		return "shipping"
	}
	return "billing"
}

// DateError reports a malformed date parameter.
type DateError struct {
	Field string
	Value string
	Err   error
}

func (e *DateError) Error() string {
	return fmt.Sprintf("invalid %s %q: want MM-DD-YYYY", e.Field, e.Value)
}

func (e *DateError) Unwrap() error { return e.Err }

// ParseDate reads an optional MM-DD-YYYY date as midnight UTC. Empty yields nil.
func ParseDate(field, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return nil, &DateError{Field: field, Value: value, Err: err}
	}
	return &t, nil
}

// ParseWindow builds the report window. Both bounds are midnight of the
// given day, so the end date itself is only matched at 00:00.
func ParseWindow(start, end string) (analytics.Window, error) {
	from, err := ParseDate("start_date", start)
	if err != nil {
		return analytics.Window{}, err
	}
	to, err := ParseDate("end_date", end)
	if err != nil {
		return analytics.Window{}, err
	}
	return analytics.Window{From: from, To: to}, nil
}

// ReportService computes the analytics reports from store reads.
type ReportService struct {
	store store.Store
	// TopLimit caps TopInStoreCustomers. Defaults to analytics.DefaultTopLimit.
	TopLimit int
}

func NewReportService(s store.Store) *ReportService {
	return &ReportService{store: s, TopLimit: analytics.DefaultTopLimit}
}

// OrdersByZip counts orders per billing zip, or order items per shipping zip.
func (s *ReportService) OrdersByZip(ctx context.Context, dim Dimension, dir analytics.SortDirection) ([]analytics.ZipCount, error) {
	var (
		zips []string
		err  error
	)
	switch dim {
	case DimensionShipping:
		zips, err = s.store.ShippingZips(ctx)
	default:
		zips, err = s.store.BillingZips(ctx)
	}
	if err != nil {
		return nil, err
	}
	return analytics.GroupByZip(zips, dir), nil
}

// PeakInStoreHour finds the hour with the most in-store orders. ok is false
// when there are none.
func (s *ReportService) PeakInStoreHour(ctx context.Context) (analytics.Peak, bool, error) {
	orders, err := s.store.InStoreOrders(ctx, analytics.Window{})
	if err != nil {
		return analytics.Peak{}, false, err
	}
	ts := make([]time.Time, len(orders))
	for i, o := range orders {
		ts[i] = o.Timestamp
	}
	peak, ok := analytics.PeakHour(ts)
	return peak, ok, nil
}

// TopInStoreCustomers ranks customers by in-store order count within the
// optional MM-DD-YYYY bounds. A malformed date returns a *DateError before
// the store is queried.
func (s *ReportService) TopInStoreCustomers(ctx context.Context, start, end string) ([]analytics.CustomerSummary, error) {
	w, err := ParseWindow(start, end)
	if err != nil {
		return nil, err
	}
	orders, err := s.store.InStoreOrders(ctx, w)
	if err != nil {
		return nil, err
	}
	limit := s.TopLimit
	if limit <= 0 {
		limit = analytics.DefaultTopLimit
	}
	return analytics.TopCustomers(orders, limit), nil
}
