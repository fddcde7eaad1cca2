package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/diewo77/pier2-orders/internal/models"
	"github.com/diewo77/pier2-orders/internal/store"
)

// ErrCustomerNotFound is returned when no customer matches an identifier.
var ErrCustomerNotFound = errors.New("customer not found")

// IdentifierKind says how an identifier is matched.
type IdentifierKind int

const (
	ByPhone IdentifierKind = iota
	ByEmail
)

// ClassifyIdentifier treats anything containing "@" as an email, the rest as a phone.
func ClassifyIdentifier(identifier string) IdentifierKind {
	if strings.Contains(identifier, "@") {
		return ByEmail
	}
	return ByPhone
}

// AddressView is the address shape of the order history payload.
type AddressView struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
	Country string `json:"country"`
}

func addressView(a models.Address) AddressView {
	return AddressView{Street: a.Street, City: a.City, State: a.State, ZipCode: a.ZipCode, Country: a.Country}
}

// ItemView is one order item with its shipping address.
type ItemView struct {
	ItemName        string      `json:"item_name"`
	ShippingAddress AddressView `json:"shipping_address"`
}

// OrderView is one entry of a customer's order history.
type OrderView struct {
	OrderID        uint        `json:"order_id"`
	Timestamp      string      `json:"timestamp"`
	InStore        bool        `json:"in_store"`
	BillingAddress AddressView `json:"billing_address"`
	Items          []ItemView  `json:"items"`
}

// LookupService resolves customers to their order history.
type LookupService struct {
	store store.Store
}

func NewLookupService(s store.Store) *LookupService { return &LookupService{store: s} }

// Customer finds the customer an identifier refers to, by exact email or phone.
func (s *LookupService) Customer(ctx context.Context, identifier string) (*models.Customer, error) {
	var (
		c   *models.Customer
		err error
	)
	if ClassifyIdentifier(identifier) == ByEmail {
		c, err = s.store.CustomerByEmail(ctx, identifier)
	} else {
		c, err = s.store.CustomerByPhone(ctx, identifier)
	}
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrCustomerNotFound
	}
	return c, err
}

// OrderHistory returns every order of the matching customer in primary key
// order, each with its billing address and items.
func (s *LookupService) OrderHistory(ctx context.Context, identifier string) ([]OrderView, error) {
	c, err := s.Customer(ctx, identifier)
	if err != nil {
		return nil, err
	}
	orders, err := s.store.CustomerOrders(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	history := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		items := make([]ItemView, 0, len(o.Items))
		for _, it := range o.Items {
			items = append(items, ItemView{ItemName: it.ItemName, ShippingAddress: addressView(it.ShippingAddress)})
		}
		history = append(history, OrderView{
			OrderID:        o.ID,
			Timestamp:      o.Timestamp.Format(time.RFC3339),
			InStore:        o.InStore,
			BillingAddress: addressView(o.BillingAddress),
			Items:          items,
		})
	}
	return history, nil
}

// CustomerView is the public contact card of a customer.
type CustomerView struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// SampleCustomers lists the first limit customers, for demos.
func (s *LookupService) SampleCustomers(ctx context.Context, limit int) ([]CustomerView, error) {
	cs, err := s.store.Customers(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]CustomerView, 0, len(cs))
	for _, c := range cs {
		out = append(out, CustomerView{FirstName: c.FirstName, LastName: c.LastName, Email: c.Email, Phone: c.Phone})
	}
	return out, nil
}
