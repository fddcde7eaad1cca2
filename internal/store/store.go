// Package store is the read side of the order database. Every method issues
// explicit joins and returns fully loaded structs; nothing is lazily fetched.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/diewo77/pier2-orders/internal/analytics"
	"github.com/diewo77/pier2-orders/internal/models"
	"gorm.io/gorm"
)

// ErrNotFound is returned when a single-record lookup matches nothing.
var ErrNotFound = errors.New("record not found")

// Store is what the services need from the database.
type Store interface {
	CustomerByEmail(ctx context.Context, email string) (*models.Customer, error)
	CustomerByPhone(ctx context.Context, phone string) (*models.Customer, error)
	CustomerOrders(ctx context.Context, customerID uint) ([]models.Order, error)
	BillingZips(ctx context.Context) ([]string, error)
	ShippingZips(ctx context.Context) ([]string, error)
	InStoreOrders(ctx context.Context, w analytics.Window) ([]analytics.InStoreOrder, error)
	Customers(ctx context.Context, limit int) ([]models.Customer, error)
	Ping(ctx context.Context) error
}

// GormStore implements Store on top of gorm. Each call opens its own
// session bound to ctx, so the pooled connection is released when the
// query returns.
type GormStore struct {
	db *gorm.DB
}

// New wraps an open gorm handle.
func New(db *gorm.DB) *GormStore { return &GormStore{db: db} }

func (s *GormStore) session(ctx context.Context) *gorm.DB { return s.db.WithContext(ctx) }

func (s *GormStore) customerBy(ctx context.Context, column, value string) (*models.Customer, error) {
	var c models.Customer
	err := s.session(ctx).Where(column+" = ?", value).Order("id").First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find customer by %s: %w", column, err)
	}
	return &c, nil
}

// CustomerByEmail matches the email exactly.
func (s *GormStore) CustomerByEmail(ctx context.Context, email string) (*models.Customer, error) {
	return s.customerBy(ctx, "email", email)
}

// CustomerByPhone matches the phone exactly.
func (s *GormStore) CustomerByPhone(ctx context.Context, phone string) (*models.Customer, error) {
	return s.customerBy(ctx, "phone", phone)
}

// CustomerOrders loads a customer's orders in primary key order, with billing
// address, items (primary key order) and each item's shipping address.
func (s *GormStore) CustomerOrders(ctx context.Context, customerID uint) ([]models.Order, error) {
	var orders []models.Order
	err := s.session(ctx).
		Where("customer_id = ?", customerID).
		Preload("BillingAddress").
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("order_items.id") }).
		Preload("Items.ShippingAddress").
		Order("orders.id").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("load orders for customer %d: %w", customerID, err)
	}
	return orders, nil
}

// BillingZips returns one zip code per order, taken from its billing address.
func (s *GormStore) BillingZips(ctx context.Context) ([]string, error) {
	var zips []string
	err := s.session(ctx).
		Model(&models.Order{}).
		Joins("JOIN addresses ON addresses.id = orders.billing_address_id").
		Where("addresses.zip_code IS NOT NULL").
		Order("orders.id").
		Pluck("addresses.zip_code", &zips).Error
	if err != nil {
		return nil, fmt.Errorf("billing zips: %w", err)
	}
	return zips, nil
}

// ShippingZips returns one zip code per order item, taken from its shipping address.
func (s *GormStore) ShippingZips(ctx context.Context) ([]string, error) {
	var zips []string
	err := s.session(ctx).
		Model(&models.OrderItem{}).
		Joins("JOIN addresses ON addresses.id = order_items.shipping_address_id").
		Where("addresses.zip_code IS NOT NULL").
		Order("order_items.id").
		Pluck("addresses.zip_code", &zips).Error
	if err != nil {
		return nil, fmt.Errorf("shipping zips: %w", err)
	}
	return zips, nil
}

// InStoreOrders returns every in-store order inside w joined with its customer.
func (s *GormStore) InStoreOrders(ctx context.Context, w analytics.Window) ([]analytics.InStoreOrder, error) {
	q := s.session(ctx).
		Model(&models.Order{}).
		Select("orders.customer_id, customers.email, customers.first_name, customers.last_name, customers.phone, orders.timestamp").
		Joins("JOIN customers ON customers.id = orders.customer_id").
		Where("orders.in_store = ?", true)
	if w.From != nil {
		q = q.Where("orders.timestamp >= ?", *w.From)
	}
	if w.To != nil {
		q = q.Where("orders.timestamp <= ?", *w.To)
	}
	var rows []analytics.InStoreOrder
	if err := q.Order("orders.id").Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("in-store orders: %w", err)
	}
	return rows, nil
}

// Customers returns up to limit customers in primary key order.
func (s *GormStore) Customers(ctx context.Context, limit int) ([]models.Customer, error) {
	var cs []models.Customer
	q := s.session(ctx).Order("id")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&cs).Error; err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return cs, nil
}

// Ping runs SELECT 1.
func (s *GormStore) Ping(ctx context.Context) error {
	return s.session(ctx).Exec("SELECT 1").Error
}
