package cli

import (
	"fmt"
	"log/slog"

	"github.com/SscSPs/erp_backoffice/internal/platform/config"
	"github.com/SscSPs/erp_backoffice/pkg/database"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateDownCmd)
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply or revert the SQL schema",
	Long: `Apply or revert the embedded schema migrations for the postgres and sqlite
stores. Firestore needs no schema.`,
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply every pending migration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMigrate(database.MigrateUp, "up")
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Revert every applied migration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMigrate(database.MigrateDown, "down")
	},
}

func runMigrate(step func(driver, dsn string) (bool, error), direction string) error {
	driver, dsn, err := migrationTarget(cfg)
	if err != nil {
		return err
	}

	changed, err := step(driver, dsn)
	if err != nil {
		return err
	}
	logger.Info("Migrations finished",
		slog.String("direction", direction),
		slog.String("driver", driver),
		slog.Bool("changed", changed))
	return nil
}

func migrationTarget(cfg *config.Config) (driver, dsn string, err error) {
	switch cfg.StoreDriver {
	case config.StoreDriverPostgres:
		return database.DriverPostgres, cfg.DatabaseURL, nil
	case config.StoreDriverSQLite:
		return database.DriverSQLite, cfg.SQLitePath, nil
	default:
		return "", "", fmt.Errorf("store %q has no schema migrations", cfg.StoreDriver)
	}
}
