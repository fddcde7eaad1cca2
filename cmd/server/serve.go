package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/diewo77/pier2-orders/internal/db"
	"github.com/diewo77/pier2-orders/internal/server"
	"github.com/diewo77/pier2-orders/internal/store"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	cfg, gdb, err := connect(ctx)
	if err != nil {
		return err
	}
	defer db.Close(gdb)

	if cfg.App.AutoSeed {
		res, err := db.Seed(ctx, gdb, db.SeedOptions{Customers: cfg.App.SeedCustomers})
		if err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		if !res.Skipped {
			log.Printf("Seeded %d customers, %d orders, %d items", res.Customers, res.Orders, res.Items)
		}
	}

	handler := server.New(store.New(gdb), server.Options{
		CORSAllowedOrigins: cfg.Server.CORSAllowedOrigins,
		DisableSampleData:  !cfg.App.Dev(),
	})
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server starting on port %s (env=%s, driver=%s)", cfg.Server.Port, cfg.App.Env, cfg.Database.Driver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)
	select {
	case err := <-errCh:
		return fmt.Errorf("server: %w", err)
	case <-quit:
		log.Println("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
	log.Println("Server stopped gracefully")
	return nil
}
