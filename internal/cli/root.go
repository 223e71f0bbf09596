// Package cli wires configuration, stores and services into the erp_backend commands.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/SscSPs/erp_backoffice/internal/platform/config"
	"github.com/SscSPs/erp_backoffice/pkg/logging"
	"github.com/spf13/cobra"
)

var (
	cfg    *config.Config
	logger *slog.Logger

	storeOverride    string
	logLevelOverride string
)

var rootCmd = &cobra.Command{
	Use:   "erp_backend",
	Short: "Back-office ledger, payroll and renewals service",
	Long: `erp_backend records payments and receipts against employees, mediators and
suppliers, computes monthly salaries, tracks vehicle and document renewals and
sends the matching SMS/WhatsApp alerts through the messaging gateway.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if storeOverride != "" {
			loaded.StoreDriver = storeOverride
		}
		if logLevelOverride != "" {
			loaded.LogLevel = logLevelOverride
		}
		cfg = loaded
		logger = logging.New(os.Stdout, cfg.LogFormat, cfg.LogLevel)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&storeOverride, "store", "", "Store driver: postgres, sqlite or firestore (overrides STORE_DRIVER)")
	rootCmd.PersistentFlags().StringVar(&logLevelOverride, "log-level", "", "Log level: debug, info, warn or error (overrides LOG_LEVEL)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
