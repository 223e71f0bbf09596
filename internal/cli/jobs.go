package cli

import (
	"fmt"

	"github.com/SscSPs/erp_backoffice/internal/jobs"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(jobsCmd)
	jobsCmd.AddCommand(renewalRemindersCmd)
}

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Run scheduled jobs once, outside the scheduler",
}

var renewalRemindersCmd = &cobra.Command{
	Use:   "renewal-reminders",
	Short: "Send reminders for PENDING renewals due within RENEWAL_REMINDER_DAYS",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		container, closeStore, err := buildServices(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		defer closeStore()

		stats, err := jobs.NewJobRunner(container, cfg, logger).RunRenewalReminders()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "due: %d, sent: %d, skipped: %d, failed: %d\n", stats.Due, stats.Sent, stats.Skipped, stats.Failed)
		return nil
	},
}
