package db

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/diewo77/pier2-orders/internal/models"
	"github.com/diewo77/pier2-orders/validation"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// Fixture is a hand-written dataset, decoded from YAML:
//
//	customers:
//	  - email: alice@example.com
//	    phone: 415-555-0100
//	    orders:
//	      - timestamp: 2024-03-01T15:04:00Z
//	        in_store: true
//	        billing_address: {street: 1 Main St, city: SF, state: CA, zip_code: "94110"}
//	        items:
//	          - item_name: Lamp
//	            shipping_address: {street: 1 Main St, city: SF, state: CA, zip_code: "94110"}
type Fixture struct {
	Customers []FixtureCustomer `yaml:"customers"`
}

type FixtureCustomer struct {
	FirstName string           `yaml:"first_name"`
	LastName  string           `yaml:"last_name"`
	Email     string           `yaml:"email"`
	Phone     string           `yaml:"phone"`
	Addresses []FixtureAddress `yaml:"addresses"`
	Orders    []FixtureOrder   `yaml:"orders"`
}

type FixtureOrder struct {
	Timestamp      time.Time      `yaml:"timestamp"`
	InStore        bool           `yaml:"in_store"`
	BillingAddress FixtureAddress `yaml:"billing_address"`
	Items          []FixtureItem  `yaml:"items"`
}

type FixtureItem struct {
	ItemName        string         `yaml:"item_name"`
	ShippingAddress FixtureAddress `yaml:"shipping_address"`
}

type FixtureAddress struct {
	Type    string `yaml:"type"`
	Street  string `yaml:"street"`
	City    string `yaml:"city"`
	State   string `yaml:"state"`
	ZipCode string `yaml:"zip_code"`
	Country string `yaml:"country"`
}

func (a FixtureAddress) model(defaultType models.AddressType, owner *uint) models.Address {
	t := models.AddressType(strings.ToLower(a.Type))
	if t == "" {
		t = defaultType
	}
	country := a.Country
	if country == "" {
		country = models.DefaultCountry
	}
	return models.Address{Type: t, Street: a.Street, City: a.City, State: a.State, ZipCode: a.ZipCode, Country: country, CustomerID: owner}
}

// DecodeFixture parses and validates a YAML fixture.
func DecodeFixture(r io.Reader) (*Fixture, error) {
	var f Fixture
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode fixture: %w", err)
	}
	if v := f.Validate(); !v.Empty() {
		return nil, &FixtureError{Violations: v}
	}
	return &f, nil
}

// FixtureError lists every invalid field of a fixture, keyed by path.
type FixtureError struct {
	Violations validation.Violations
}

func (e *FixtureError) Error() string {
	keys := make([]string, 0, len(e.Violations))
	for k := range e.Violations {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ": " + e.Violations[k]
	}
	return "invalid fixture: " + strings.Join(parts, ", ")
}

// Validate checks required fields, unique email/phone, address types and
// that every order has at least one item.
func (f *Fixture) Validate() validation.Violations {
	v := make(validation.Violations)
	emails := map[string]bool{}
	phones := map[string]bool{}
	for ci, c := range f.Customers {
		p := fmt.Sprintf("customers[%d]", ci)
		validation.Required(p+".email", c.Email, v)
		validation.Required(p+".phone", c.Phone, v)
		if c.Email != "" && emails[c.Email] {
			v[p+".email"] = "duplicate"
		}
		if c.Phone != "" && phones[c.Phone] {
			v[p+".phone"] = "duplicate"
		}
		emails[c.Email], phones[c.Phone] = true, true
		for ai, a := range c.Addresses {
			validateFixtureAddress(fmt.Sprintf("%s.addresses[%d]", p, ai), a, v)
		}
		for oi, o := range c.Orders {
			op := fmt.Sprintf("%s.orders[%d]", p, oi)
			validateFixtureAddress(op+".billing_address", o.BillingAddress, v)
			if len(o.Items) == 0 {
				v[op+".items"] = "required"
			}
			for ii, it := range o.Items {
				ip := fmt.Sprintf("%s.items[%d]", op, ii)
				validation.Required(ip+".item_name", it.ItemName, v)
				validateFixtureAddress(ip+".shipping_address", it.ShippingAddress, v)
			}
		}
	}
	return v
}

func validateFixtureAddress(path string, a FixtureAddress, v validation.Violations) {
	validation.Required(path+".zip_code", a.ZipCode, v)
	if a.Type != "" && !models.ValidAddressType(models.AddressType(strings.ToLower(a.Type))) {
		v[path+".type"] = "invalid"
	}
}

// LoadFixture decodes r and inserts it in a single transaction.
func LoadFixture(ctx context.Context, gdb *gorm.DB, r io.Reader) (SeedResult, error) {
	f, err := DecodeFixture(r)
	if err != nil {
		return SeedResult{}, err
	}
	return InsertFixture(ctx, gdb, f)
}

// InsertFixture writes f. Orders without a timestamp get the current time.
func InsertFixture(ctx context.Context, gdb *gorm.DB, f *Fixture) (SeedResult, error) {
	var res SeedResult
	err := gdb.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, fc := range f.Customers {
			c := models.Customer{FirstName: fc.FirstName, LastName: fc.LastName, Email: fc.Email, Phone: fc.Phone}
			if err := tx.Create(&c).Error; err != nil {
				return fmt.Errorf("create customer %s: %w", fc.Email, err)
			}
			res.Customers++
			owner := c.ID
			for _, fa := range fc.Addresses {
				a := fa.model(models.AddressTypeHome, &owner)
				if err := tx.Create(&a).Error; err != nil {
					return fmt.Errorf("create address: %w", err)
				}
			}
			for _, fo := range fc.Orders {
				billing := fo.BillingAddress.model(models.AddressTypeBilling, nil)
				if err := tx.Create(&billing).Error; err != nil {
					return fmt.Errorf("create billing address: %w", err)
				}
				o := models.Order{CustomerID: c.ID, BillingAddressID: billing.ID, Timestamp: fo.Timestamp.UTC(), InStore: fo.InStore}
				if err := tx.Create(&o).Error; err != nil {
					return fmt.Errorf("create order: %w", err)
				}
				res.Orders++
				for _, fi := range fo.Items {
					shipping := fi.ShippingAddress.model(models.AddressTypeShipping, nil)
					if err := tx.Create(&shipping).Error; err != nil {
						return fmt.Errorf("create shipping address: %w", err)
					}
					it := models.OrderItem{OrderID: o.ID, ItemName: fi.ItemName, ShippingAddressID: shipping.ID}
					if err := tx.Create(&it).Error; err != nil {
						return fmt.Errorf("create order item: %w", err)
					}
					res.Items++
				}
			}
		}
		return nil
	})
	if err != nil {
		return SeedResult{}, err
	}
	return res, nil
}
