package main

import (
	"github.com/diewo77/pier2-orders/internal/db"
	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, gdb, err := connect(cmd.Context())
			if err != nil {
				return err
			}
			return db.Close(gdb)
		},
	}
}
