// Package csvimport turns header-less, position-based CSV rows into salary and directory records.
// Rows are validated one at a time so a bad row never aborts the batch.
package csvimport

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/SscSPs/erp_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Column positions shared by both import variants.
const (
	colID = iota
	colName
	colPhone
	colBaseSalary
	colWorkingDays
	colPreviousAdvance
	colCurrentAdvance
)

const (
	salaryMandatoryColumns   = 5
	employeeMandatoryColumns = 4
)

// ErrRowInvalid marks a row that failed its mandatory-field check.
var ErrRowInvalid = errors.New("row is missing mandatory fields")

// ParseRows reads every record from r. Blank lines are dropped by the CSV reader and rows
// may have any number of columns.
func ParseRows(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	return rows, nil
}

// ParseDecimal converts a numeric cell. Anything unparseable becomes zero.
func ParseDecimal(cell string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(cell))
	if err != nil {
		return decimal.Zero
	}
	return d
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func checkMandatory(row []string, n int) error {
	if len(row) < n {
		return fmt.Errorf("%w: expected at least %d columns, got %d", ErrRowInvalid, n, len(row))
	}
	names := []string{"id", "name", "phone", "baseSalary", "workingDays"}
	var missing []string
	for i := 0; i < n; i++ {
		if cell(row, i) == "" {
			missing = append(missing, names[i])
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrRowInvalid, strings.Join(missing, ", "))
	}
	return nil
}

// SalaryFromRow builds a salary row for period from
// id,name,phone,baseSalary,workingDays[,previousAdvance[,currentAdvance]].
// PaidSalary is left for the caller to compute.
func SalaryFromRow(row []string, period string) (domain.SalaryRecord, error) {
	if err := checkMandatory(row, salaryMandatoryColumns); err != nil {
		return domain.SalaryRecord{}, err
	}
	return domain.SalaryRecord{
		EmployeeID:      cell(row, colID),
		Name:            cell(row, colName),
		Phone:           cell(row, colPhone),
		BaseSalary:      ParseDecimal(cell(row, colBaseSalary)),
		WorkingDays:     ParseDecimal(cell(row, colWorkingDays)),
		PreviousAdvance: ParseDecimal(cell(row, colPreviousAdvance)),
		CurrentAdvance:  ParseDecimal(cell(row, colCurrentAdvance)),
		PaidSalary:      decimal.Zero,
		PeriodKey:       period,
		Status:          domain.StatusPending,
	}, nil
}

// EmployeeFromRow builds an employee directory entry from id,name,phone,baseSalary[,workingDays].
// The working-days column is accepted but not stored.
func EmployeeFromRow(row []string) (domain.Counterparty, error) {
	if err := checkMandatory(row, employeeMandatoryColumns); err != nil {
		return domain.Counterparty{}, err
	}
	return domain.Counterparty{
		EntityID:   cell(row, colID),
		EntityType: domain.EntityEmployee,
		Name:       cell(row, colName),
		Phone:      cell(row, colPhone),
		BaseSalary: ParseDecimal(cell(row, colBaseSalary)),
	}, nil
}
