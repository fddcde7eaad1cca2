// Package dbtest opens throwaway sqlite databases loaded with a small, known
// dataset for tests.
package dbtest

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/diewo77/pier2-orders/internal/config"
	"github.com/diewo77/pier2-orders/internal/db"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Open returns a migrated, empty in-memory database private to t.
func Open(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	cfg := config.DatabaseConfig{Driver: config.DriverSQLite, DSN: "file:" + name + "?mode=memory&cache=shared"}
	gdb, err := db.Open(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close(gdb) })
	require.NoError(t, db.Migrate(gdb, cfg))
	return gdb
}

// OpenSample is Open plus Sample() inserted.
func OpenSample(t *testing.T) *gorm.DB {
	t.Helper()
	gdb := Open(t)
	_, err := db.InsertFixture(context.Background(), gdb, Sample())
	require.NoError(t, err)
	return gdb
}

func addr(street, city, state, zip string) db.FixtureAddress {
	return db.FixtureAddress{Street: street, City: city, State: state, ZipCode: zip}
}

func at(month time.Month, day, hour, minute int) time.Time {
	return time.Date(2024, month, day, hour, minute, 0, 0, time.UTC)
}

// Sample is the reference dataset:
//
//	alice  #1 2024-03-01 15:00 in-store  billing 10001  items 94110 94110 60614
//	       #2 2024-03-02 15:30 in-store  billing 10001  items 94110
//	       #3 2024-03-10 09:00 online    billing 94110  items 75201
//	bob    #4 2024-04-01 15:10 in-store  billing 94110  items 60614
//	       #5 2024-04-05 09:45 in-store  billing 60614  items 60614 60614
//	carol  no orders
func Sample() *db.Fixture {
	return &db.Fixture{Customers: []db.FixtureCustomer{
		{
			FirstName: "Alice", LastName: "Smith", Email: "alice@example.com", Phone: "415-555-0100",
			Addresses: []db.FixtureAddress{{Type: "home", Street: "1 Home St", City: "San Francisco", State: "CA", ZipCode: "94110"}},
			Orders: []db.FixtureOrder{
				{Timestamp: at(time.March, 1, 15, 0), InStore: true, BillingAddress: addr("123 Main St", "New York", "NY", "10001"), Items: []db.FixtureItem{
					{ItemName: "Lamp", ShippingAddress: addr("456 Elm Ave", "San Francisco", "CA", "94110")},
					{ItemName: "Desk", ShippingAddress: addr("456 Elm Ave", "San Francisco", "CA", "94110")},
					{ItemName: "Rug", ShippingAddress: addr("789 Oak Dr", "Chicago", "IL", "60614")},
				}},
				{Timestamp: at(time.March, 2, 15, 30), InStore: true, BillingAddress: addr("123 Main St", "New York", "NY", "10001"), Items: []db.FixtureItem{
					{ItemName: "Sofa", ShippingAddress: addr("456 Elm Ave", "San Francisco", "CA", "94110")},
				}},
				{Timestamp: at(time.March, 10, 9, 0), InStore: false, BillingAddress: addr("321 Maple Rd", "San Francisco", "CA", "94110"), Items: []db.FixtureItem{
					{ItemName: "Bed", ShippingAddress: addr("654 Pine Blvd", "Dallas", "TX", "75201")},
				}},
			},
		},
		{
			FirstName: "Bob", LastName: "Johnson", Email: "bob@example.com", Phone: "212-555-0101",
			Orders: []db.FixtureOrder{
				{Timestamp: at(time.April, 1, 15, 10), InStore: true, BillingAddress: addr("101 Sunrise Blvd", "San Francisco", "CA", "94110"), Items: []db.FixtureItem{
					{ItemName: "Chair", ShippingAddress: addr("789 Oak Dr", "Chicago", "IL", "60614")},
				}},
				{Timestamp: at(time.April, 5, 9, 45), InStore: true, BillingAddress: addr("789 Oak Dr", "Chicago", "IL", "60614"), Items: []db.FixtureItem{
					{ItemName: "Table", ShippingAddress: addr("789 Oak Dr", "Chicago", "IL", "60614")},
					{ItemName: "Pillow", ShippingAddress: addr("789 Oak Dr", "Chicago", "IL", "60614")},
				}},
			},
		},
		{FirstName: "Carol", LastName: "Williams", Email: "carol@example.com", Phone: "312-555-0102"},
	}}
}
