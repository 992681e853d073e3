package main

import (
	"context"
	"fmt"
	"os"

	"codeberg.org/medlit/server/internal/logger"
	"codeberg.org/medlit/server/internal/storage"
	"github.com/spf13/cobra"
)

var databaseURL string

// migrateCmd applies the profile store schema ahead of a deploy
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations for the postgres profile store",
	RunE:  runMigrate,
}

func init() {
	migrateCmd.Flags().StringVar(&databaseURL, "database-url", os.Getenv("DATABASE_URL"), "postgres connection string")
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	if databaseURL == "" {
		return fmt.Errorf("--database-url or DATABASE_URL is required")
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	pool, err := storage.OpenPostgres(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := storage.Migrate(ctx, pool); err != nil {
		return err
	}

	logger.Info("migrations applied")
	return nil
}
