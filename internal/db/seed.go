package db

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/diewo77/pier2-orders/internal/models"
	"gorm.io/gorm"
)

// Sample data pools.
var (
	sampleFirstNames = []string{"Alice", "Bob", "Charlie", "Diana", "Eve", "Frank", "Grace", "Henry", "Isabella", "Jack"}
	sampleLastNames  = []string{"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis", "Rodriguez", "Martinez"}
	sampleZipCodes   = []string{"94110", "10001", "60614", "30301", "75201", "95601", "94101", "94551", "94765", "07029", "94279"}
	sampleItemNames  = []string{"Chair", "Table", "Lamp", "Sofa", "Desk", "Couch", "Bed", "Pillow", "Blanket", "Rug"}
	sampleStreets    = []string{
		"123 Main St", "456 Elm Ave", "789 Oak Dr", "321 Maple Rd", "654 Pine Blvd", "101 Sunrise Blvd",
		"202 Birchwood Ln", "303 Riverwalk Dr", "404 Aspen Ct", "505 Highland Ave", "606 Willow Creek Rd",
		"707 Magnolia Blvd", "808 Cypress Ct",
	}
	sampleCities    = []string{"San Francisco", "New York", "Chicago", "Austin", "Seattle", "Los Angeles", "San Diego", "Dallas", "San Jose", "Houston"}
	sampleStates    = []string{"CA", "NY", "IL", "TX", "WA"}
	sampleAreaCodes = []string{"212", "415", "312", "617", "305", "602", "412", "213", "206", "404"}
	sampleYears     = []int{2015, 2016, 2017, 2018, 2019, 2020, 2021, 2022, 2023, 2024, 2025}
)

// SeedOptions controls Seed.
type SeedOptions struct {
	Customers int
	// Force wipes existing data first; without it Seed is a no-op on a non-empty database.
	Force bool
	// Rand makes the generated data reproducible. Nil uses a time seeded source.
	Rand *rand.Rand
}

// SeedResult reports what Seed inserted.
type SeedResult struct {
	Skipped   bool
	Customers int
	Orders    int
	Items     int
}

// IsEmpty reports whether no customer exists yet.
func IsEmpty(ctx context.Context, gdb *gorm.DB) (bool, error) {
	var n int64
	if err := gdb.WithContext(ctx).Model(&models.Customer{}).Limit(1).Count(&n).Error; err != nil {
		return false, fmt.Errorf("count customers: %w", err)
	}
	return n == 0, nil
}

// Reset deletes every row, children first.
func Reset(ctx context.Context, gdb *gorm.DB) error {
	return gdb.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, m := range []any{&models.OrderItem{}, &models.Order{}, &models.Address{}, &models.Customer{}} {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(m).Error; err != nil {
				return fmt.Errorf("delete %T: %w", m, err)
			}
		}
		return nil
	})
}

// Seed generates sample customers, each with one to three orders of one to
// three items. Every order gets its own billing address; order timestamps are
// spread across 2015-2025 and roughly half are in-store.
func Seed(ctx context.Context, gdb *gorm.DB, opts SeedOptions) (SeedResult, error) {
	empty, err := IsEmpty(ctx, gdb)
	if err != nil {
		return SeedResult{}, err
	}
	if !empty {
		if !opts.Force {
			return SeedResult{Skipped: true}, nil
		}
		if err := Reset(ctx, gdb); err != nil {
			return SeedResult{}, err
		}
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	n := opts.Customers
	if n <= 0 {
		n = 100
	}

	var res SeedResult
	err = gdb.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		usedPhones := make(map[string]struct{}, n)
		for i := 1; i <= n; i++ {
			first := sampleFirstNames[i%len(sampleFirstNames)]
			customer := models.Customer{
				FirstName: first,
				LastName:  sampleLastNames[i%len(sampleLastNames)],
				Email:     fmt.Sprintf("%s%d@gmail.com", strings.ToLower(first), i),
				Phone:     uniquePhone(rng, usedPhones),
			}
			if err := tx.Create(&customer).Error; err != nil {
				return fmt.Errorf("create customer: %w", err)
			}
			res.Customers++

			year := sampleYears[i%len(sampleYears)]
			orders := 1 + rng.Intn(3)
			for o := 0; o < orders; o++ {
				billing := randomAddress(rng, models.AddressTypeBilling)
				if err := tx.Create(&billing).Error; err != nil {
					return fmt.Errorf("create billing address: %w", err)
				}
				order := models.Order{
					CustomerID:       customer.ID,
					BillingAddressID: billing.ID,
					Timestamp:        time.Date(year, time.Month(1+rng.Intn(12)), 1+rng.Intn(28), rng.Intn(24), 0, 0, 0, time.UTC),
					InStore:          rng.Intn(2) == 1,
				}
				if err := tx.Create(&order).Error; err != nil {
					return fmt.Errorf("create order: %w", err)
				}
				res.Orders++

				items := 1 + rng.Intn(3)
				for it := 0; it < items; it++ {
					shipping := randomAddress(rng, models.AddressTypeShipping)
					if err := tx.Create(&shipping).Error; err != nil {
						return fmt.Errorf("create shipping address: %w", err)
					}
					item := models.OrderItem{
						OrderID:           order.ID,
						ItemName:          sampleItemNames[rng.Intn(len(sampleItemNames))],
						ShippingAddressID: shipping.ID,
					}
					if err := tx.Create(&item).Error; err != nil {
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

func randomAddress(rng *rand.Rand, t models.AddressType) models.Address {
	return models.Address{
		Type:    t,
		Street:  sampleStreets[rng.Intn(len(sampleStreets))],
		City:    sampleCities[rng.Intn(len(sampleCities))],
		State:   sampleStates[rng.Intn(len(sampleStates))],
		ZipCode: sampleZipCodes[rng.Intn(len(sampleZipCodes))],
		Country: models.DefaultCountry,
	}
}

// phone numbers are random, so retry on the rare collision to keep them unique.
func uniquePhone(rng *rand.Rand, used map[string]struct{}) string {
	for {
		p := fmt.Sprintf("%s-%d-%d", sampleAreaCodes[rng.Intn(len(sampleAreaCodes))], 200+rng.Intn(800), 1000+rng.Intn(9000))
		if _, dup := used[p]; !dup {
			used[p] = struct{}{}
			return p
		}
	}
}
