package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	portssvc "github.com/SscSPs/erp_backoffice/internal/core/ports/services"
	"github.com/SscSPs/erp_backoffice/internal/dto"
	"github.com/spf13/cobra"
)

var importPeriod string

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.AddCommand(importSalariesCmd)
	importCmd.AddCommand(importCounterpartiesCmd)

	importSalariesCmd.Flags().StringVarP(&importPeriod, "period", "p", "", "Salary period (YYYY-MM)")
	_ = importSalariesCmd.MarkFlagRequired("period")
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Load header-less CSV files into the store",
}

var importSalariesCmd = &cobra.Command{
	Use:   "salaries FILE",
	Short: "Import one period's salaries",
	Long: `Import salary rows of the form id,name,phone,baseSalary,workingDays[,previousAdvance,currentAdvance].
Rows for employees that already have a salary in the period are skipped. Use - to read stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runImport(cmd, args[0], func(svc portssvc.ImportSvc, r io.Reader) (*dto.ImportResult, error) {
			return svc.ImportSalaries(cmd.Context(), importPeriod, r)
		})
	},
}

var importCounterpartiesCmd = &cobra.Command{
	Use:   "counterparties FILE",
	Short: "Import employees into the directory",
	Long: `Import employee rows of the form id,name,phone,baseSalary. Employee IDs already
in the directory are skipped. Use - to read stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runImport(cmd, args[0], func(svc portssvc.ImportSvc, r io.Reader) (*dto.ImportResult, error) {
			return svc.ImportEmployees(cmd.Context(), r)
		})
	},
}

func runImport(cmd *cobra.Command, path string, load func(portssvc.ImportSvc, io.Reader) (*dto.ImportResult, error)) error {
	in, err := openInput(cmd, path)
	if err != nil {
		return err
	}
	defer in.Close()

	container, closeStore, err := buildServices(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	result, err := load(container.Import, in)
	if result != nil {
		printImportResult(cmd.OutOrStdout(), result)
	}
	if err != nil {
		return fmt.Errorf("import stopped: %w", err)
	}
	logger.Info("Import finished", slog.String("file", path), slog.Int("inserted", result.Inserted), slog.Int("skipped", len(result.Skipped)))
	return nil
}

func openInput(cmd *cobra.Command, path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}
	return f, nil
}

func printImportResult(w io.Writer, result *dto.ImportResult) {
	fmt.Fprintln(w, result.Status)
	fmt.Fprintf(w, "Inserted: %d\n", result.Inserted)
	for _, skipped := range result.Skipped {
		fmt.Fprintf(w, "  row %d skipped: %s\n", skipped.Row, skipped.Reason)
	}
}
