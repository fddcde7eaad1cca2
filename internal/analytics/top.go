package analytics

import (
	"sort"
	"time"
)

// InStoreOrder is the slice of an in-store order the ranking needs: who ordered and when.
type InStoreOrder struct {
	CustomerID uint
	Email      string
	FirstName  string
	LastName   string
	Phone      string
	Timestamp  time.Time
}

// CustomerSummary is one row of the top in-store customers report.
type CustomerSummary struct {
	CustomerID        uint   `json:"-"`
	Email             string `json:"email"`
	FirstName         string `json:"first_name"`
	LastName          string `json:"last_name"`
	Phone             string `json:"phone"`
	InStoreOrderCount int64  `json:"in_store_order_count"`
}

// DefaultTopLimit is how many customers the report keeps.
const DefaultTopLimit = 5

// TopCustomers groups orders by customer and returns at most limit summaries,
// by order count descending then customer ID ascending. A limit <= 0 keeps all.
func TopCustomers(orders []InStoreOrder, limit int) []CustomerSummary {
	byID := make(map[uint]*CustomerSummary)
	for _, o := range orders {
		s, ok := byID[o.CustomerID]
		if !ok {
			s = &CustomerSummary{
				CustomerID: o.CustomerID,
				Email:      o.Email,
				FirstName:  o.FirstName,
				LastName:   o.LastName,
				Phone:      o.Phone,
			}
			byID[o.CustomerID] = s
		}
		s.InStoreOrderCount++
	}
	out := make([]CustomerSummary, 0, len(byID))
	for _, s := range byID {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].InStoreOrderCount != out[j].InStoreOrderCount {
			return out[i].InStoreOrderCount > out[j].InStoreOrderCount
		}
		return out[i].CustomerID < out[j].CustomerID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Window is an optional inclusive time range. A nil bound is open.
// Stores apply it when selecting orders.
type Window struct {
	From *time.Time
	To   *time.Time
}
