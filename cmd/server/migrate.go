package main

import (
	"context"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/alexdavis098/gamestore/internal/config"
	"github.com/alexdavis098/gamestore/internal/server/storage/sqlite"
)

// NewMigrateCmd creates the migrate subcommand.
func NewMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		Long:  `Apply all pending schema migrations to the configured SQLite database.`,
		RunE:  runMigrate,
	}
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return oops.Code("CONFIG_LOAD_FAILED").Wrap(err)
	}

	cmd.Println("Opening database...")
	// sqlite.New runs pending migrations as part of opening the store.
	store, err := sqlite.New(context.Background(), cfg.Database.Path)
	if err != nil {
		return oops.Code("MIGRATION_FAILED").With("path", cfg.Database.Path).Wrap(err)
	}
	defer store.Close()

	cmd.Println("Migrations completed successfully")
	return nil
}
