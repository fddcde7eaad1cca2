package main

import (
	"fmt"
	"os"

	"github.com/diewo77/pier2-orders/internal/db"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

type seedFlags struct {
	force     bool
	fixture   string
	customers int
}

func newSeedCmd() *cobra.Command {
	var f seedFlags
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load sample data",
		Long: `Load generated sample customers, or the customers of a YAML fixture.

The database is left untouched when it already holds customers, unless
--force is given, in which case every row is deleted first.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSeed(cmd, f)
		},
	}
	cmd.Flags().BoolVar(&f.force, "force", false, "delete existing data before seeding")
	cmd.Flags().StringVar(&f.fixture, "fixture", "", "YAML fixture to load instead of generated data")
	cmd.Flags().IntVar(&f.customers, "customers", 0, "number of generated customers (default SEED_CUSTOMERS)")
	return cmd
}

func runSeed(cmd *cobra.Command, f seedFlags) error {
	ctx := cmd.Context()
	cfg, gdb, err := connect(ctx)
	if err != nil {
		return err
	}
	defer db.Close(gdb)

	var res db.SeedResult
	if f.fixture != "" {
		res, err = seedFixture(cmd, gdb, f)
	} else {
		n := f.customers
		if n <= 0 {
			n = cfg.App.SeedCustomers
		}
		res, err = db.Seed(ctx, gdb, db.SeedOptions{Customers: n, Force: f.force})
	}
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	if res.Skipped {
		fmt.Fprintln(cmd.OutOrStdout(), "Database already has data, skipping (use --force to replace it)")
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d customers, %d orders, %d items\n", res.Customers, res.Orders, res.Items)
	return nil
}

func seedFixture(cmd *cobra.Command, gdb *gorm.DB, f seedFlags) (db.SeedResult, error) {
	ctx := cmd.Context()
	file, err := os.Open(f.fixture)
	if err != nil {
		return db.SeedResult{}, err
	}
	defer file.Close()

	empty, err := db.IsEmpty(ctx, gdb)
	if err != nil {
		return db.SeedResult{}, err
	}
	if !empty {
		if !f.force {
			return db.SeedResult{Skipped: true}, nil
		}
		if err := db.Reset(ctx, gdb); err != nil {
			return db.SeedResult{}, err
		}
	}
	return db.LoadFixture(ctx, gdb, file)
}
