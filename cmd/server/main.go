package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/diewo77/pier2-orders/internal/config"
	"github.com/diewo77/pier2-orders/internal/db"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "pier2",
		Short: "Pier 2 customer orders backend",
		Long: `pier2 serves the customer order history and analytics API.

Without a subcommand it behaves like "pier2 serve".`,
		SilenceUsage: true,
		RunE:         runServe,
	}
	root.AddCommand(newServeCmd(), newMigrateCmd(), newSeedCmd())
	return root
}

// connect loads config, opens the database and migrates it.
func connect(ctx context.Context) (*config.Config, *gorm.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	gdb, err := db.Open(ctx, cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := db.Migrate(gdb, cfg.Database); err != nil {
		_ = db.Close(gdb)
		return nil, nil, fmt.Errorf("migrate: %w", err)
	}
	log.Println("Migrations completed")
	return cfg, gdb, nil
}
