package cli

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/SscSPs/erp_backoffice/internal/adapters/database/firestore"
	"github.com/SscSPs/erp_backoffice/internal/adapters/database/pgsql"
	"github.com/SscSPs/erp_backoffice/internal/adapters/database/sqlite"
	"github.com/SscSPs/erp_backoffice/internal/adapters/messaging"
	portsrepo "github.com/SscSPs/erp_backoffice/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_backoffice/internal/core/ports/services"
	"github.com/SscSPs/erp_backoffice/internal/core/services"
	"github.com/SscSPs/erp_backoffice/internal/platform/config"
	"github.com/SscSPs/erp_backoffice/pkg/database"
)

// openStore connects the configured store and, for the SQL stores, applies pending migrations
// when RUN_MIGRATIONS is set. The returned func releases the connection.
func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, func(), error) {
	switch cfg.StoreDriver {
	case config.StoreDriverPostgres:
		if cfg.RunMigrations {
			if err := applyMigrations(database.DriverPostgres, cfg.DatabaseURL, logger); err != nil {
				return portsrepo.RepositoryProvider{}, nil, err
			}
		}
		pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, logger)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, fmt.Errorf("failed to initialize database pool: %w", err)
		}
		return pgsql.NewRepositoryProvider(pool), func() { database.ClosePgxPool(pool, logger) }, nil

	case config.StoreDriverSQLite:
		db, err := database.NewSQLiteDB(ctx, cfg.SQLitePath)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}
		if cfg.RunMigrations {
			if err := applyMigrations(database.DriverSQLite, cfg.SQLitePath, logger); err != nil {
				db.Close()
				return portsrepo.RepositoryProvider{}, nil, err
			}
		}
		logger.Info("SQLite database opened.", slog.String("path", cfg.SQLitePath))
		return sqlite.NewRepositoryProvider(db), func() { db.Close() }, nil

	case config.StoreDriverFirestore:
		client, err := database.NewFirestoreClient(ctx, cfg.FirebaseProjectID, cfg.FirebaseCredentials)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, fmt.Errorf("failed to initialize firestore: %w", err)
		}
		logger.Info("Firestore client initialized.", slog.String("project_id", cfg.FirebaseProjectID))
		return firestore.NewRepositoryProvider(client), func() { client.Close() }, nil

	default:
		return portsrepo.RepositoryProvider{}, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}

func applyMigrations(driver, dsn string, logger *slog.Logger) error {
	logger.Info("Running database migrations...", slog.String("driver", driver))
	changed, err := database.MigrateUp(driver, dsn)
	if err != nil {
		return err
	}
	if changed {
		logger.Info("Database migrations applied successfully.")
	} else {
		logger.Info("No new migrations to apply.")
	}
	return nil
}

// newGatewayConfig copies the provider settings out of cfg.
func newGatewayConfig(cfg *config.Config) messaging.GatewayConfig {
	return messaging.GatewayConfig{
		Endpoint:      cfg.GatewayEndpoint,
		User:          cfg.GatewayUser,
		Pass:          cfg.GatewayPass,
		SenderID:      cfg.GatewaySenderID,
		Template:      cfg.GatewayTemplate,
		Priority:      cfg.GatewayPriority,
		MessageType:   cfg.GatewayMessageType,
		SuccessMarker: cfg.GatewaySuccessMarker,
	}
}

// buildServices opens the store and assembles the service container around it.
func buildServices(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*portssvc.ServiceContainer, func(), error) {
	repos, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	sender := messaging.NewSender(cfg.RelayURL, newGatewayConfig(cfg), &http.Client{})
	return services.NewServiceContainer(cfg, repos, sender), closeStore, nil
}
