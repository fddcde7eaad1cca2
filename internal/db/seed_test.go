package db

import (
	"context"
	"math/rand"
	"testing"

	"github.com/diewo77/pier2-orders/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRand(seed int64) *rand.Rand { return rand.New(rand.NewSource(seed)) }

func TestSeedPopulatesEmptyDatabase(t *testing.T) {
	gdb := setupTestDB(t)
	ctx := context.Background()

	res, err := Seed(ctx, gdb, SeedOptions{Customers: 20, Rand: newRand(42)})
	require.NoError(t, err)
	assert.False(t, res.Skipped)
	assert.Equal(t, 20, res.Customers)
	assert.GreaterOrEqual(t, res.Orders, 20)
	assert.LessOrEqual(t, res.Orders, 60)
	assert.GreaterOrEqual(t, res.Items, res.Orders)

	var customers, orders, items int64
	gdb.Model(&models.Customer{}).Count(&customers)
	gdb.Model(&models.Order{}).Count(&orders)
	gdb.Model(&models.OrderItem{}).Count(&items)
	assert.Equal(t, int64(res.Customers), customers)
	assert.Equal(t, int64(res.Orders), orders)
	assert.Equal(t, int64(res.Items), items)

	var c models.Customer
	require.NoError(t, gdb.Order("id").First(&c).Error)
	assert.Equal(t, "bob1@gmail.com", c.Email)
}

func TestSeedIdempotent(t *testing.T) {
	gdb := setupTestDB(t)
	ctx := context.Background()

	_, err := Seed(ctx, gdb, SeedOptions{Customers: 5, Rand: newRand(1)})
	require.NoError(t, err)
	res, err := Seed(ctx, gdb, SeedOptions{Customers: 5, Rand: newRand(2)})
	require.NoError(t, err)
	assert.True(t, res.Skipped)

	var n int64
	gdb.Model(&models.Customer{}).Count(&n)
	assert.Equal(t, int64(5), n)
}

func TestSeedForceReplacesData(t *testing.T) {
	gdb := setupTestDB(t)
	ctx := context.Background()

	_, err := Seed(ctx, gdb, SeedOptions{Customers: 5, Rand: newRand(1)})
	require.NoError(t, err)
	res, err := Seed(ctx, gdb, SeedOptions{Customers: 3, Force: true, Rand: newRand(2)})
	require.NoError(t, err)
	assert.False(t, res.Skipped)

	var customers, orders int64
	gdb.Model(&models.Customer{}).Count(&customers)
	gdb.Model(&models.Order{}).Count(&orders)
	assert.Equal(t, int64(3), customers)
	assert.Equal(t, int64(res.Orders), orders)
}

func TestSeedAddressesAreTyped(t *testing.T) {
	gdb := setupTestDB(t)
	_, err := Seed(context.Background(), gdb, SeedOptions{Customers: 4, Rand: newRand(7)})
	require.NoError(t, err)

	var orders []models.Order
	require.NoError(t, gdb.Preload("BillingAddress").Preload("Items.ShippingAddress").Find(&orders).Error)
	for _, o := range orders {
		assert.Equal(t, models.AddressTypeBilling, o.BillingAddress.Type)
		assert.Equal(t, models.DefaultCountry, o.BillingAddress.Country)
		assert.Equal(t, "UTC", o.Timestamp.Location().String())
		require.NotEmpty(t, o.Items)
		for _, it := range o.Items {
			assert.Equal(t, models.AddressTypeShipping, it.ShippingAddress.Type)
		}
	}
}
