package accounting_test

import (
	"testing"
	"time"

	"github.com/SscSPs/erp_backoffice/internal/core/domain"
	"github.com/SscSPs/erp_backoffice/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestAggregate_TotalsPerEntity(t *testing.T) {
	t0 := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	entries := []domain.BalanceEntry{
		{EntityID: "E1", DisplayName: "Ravi", Amount: dec("100"), Advance: dec("100"), WorkingDays: dec("10"), CreatedAt: t0},
		{EntityID: "E2", DisplayName: "Sita", Amount: dec("50.25"), Advance: dec("0"), WorkingDays: dec("3"), CreatedAt: t0},
		{EntityID: "E1", DisplayName: "Ravi K", Amount: dec("200.50"), Advance: dec("200.50"), WorkingDays: dec("12.5"), CreatedAt: t0.Add(time.Hour)},
		{EntityID: "", DisplayName: "Walk-in", Amount: dec("999"), CreatedAt: t0},
		{EntityID: "   ", DisplayName: "Blank", Amount: dec("1"), CreatedAt: t0},
	}

	got := accounting.Aggregate(entries)

	require.Len(t, got, 2, "blank entity IDs must be excluded")
	e1 := got["E1"]
	assert.True(t, dec("300.50").Equal(e1.Balance))
	assert.True(t, dec("300.50").Equal(e1.TotalAdvance))
	assert.True(t, dec("22.5").Equal(e1.TotalWorkingDays))
	assert.Equal(t, "Ravi K", e1.DisplayName)
	assert.Equal(t, 2, e1.EntryCount)

	e2 := got["E2"]
	assert.True(t, dec("50.25").Equal(e2.Balance))
	assert.True(t, decimal.Zero.Equal(e2.TotalAdvance))
	assert.Equal(t, 1, e2.EntryCount)
}

func TestAggregate_Deterministic(t *testing.T) {
	t0 := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	entries := []domain.BalanceEntry{
		{EntityID: "A", DisplayName: "First", Phone: "111", Amount: dec("1"), CreatedAt: t0},
		{EntityID: "A", DisplayName: "Second", Phone: "222", Amount: dec("2"), CreatedAt: t0},
		{EntityID: "B", DisplayName: "Bee", Amount: dec("3"), CreatedAt: t0},
	}

	first := accounting.Aggregate(entries)
	second := accounting.Aggregate(entries)

	assert.Equal(t, first, second)
	// equal timestamps: the later input position wins
	assert.Equal(t, "Second", first["A"].DisplayName)
	assert.Equal(t, "222", first["A"].Phone)
}

func TestAggregate_LatestDescriptiveFieldsWin(t *testing.T) {
	t0 := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	oldBase := dec("9000")
	newBase := dec("12000")
	entries := []domain.BalanceEntry{
		{EntityID: "E1", DisplayName: "New Name", Phone: "999", BaseSalary: &newBase, CreatedAt: t0.Add(48 * time.Hour)},
		{EntityID: "E1", DisplayName: "Old Name", Phone: "111", Address: "Old Street", BaseSalary: &oldBase, CreatedAt: t0},
		{EntityID: "E1", DisplayName: "", Phone: "", Address: "New Street", CreatedAt: t0.Add(72 * time.Hour)},
	}

	got := accounting.Aggregate(entries)["E1"]

	assert.Equal(t, "New Name", got.DisplayName, "empty values never overwrite")
	assert.Equal(t, "999", got.Phone)
	assert.Equal(t, "New Street", got.Address)
	assert.True(t, newBase.Equal(got.BaseSalary))
}

func TestAggregate_DescriptiveFieldsIgnoreInputOrder(t *testing.T) {
	t0 := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	older := domain.BalanceEntry{EntityID: "E1", EntityType: domain.EntityEmployee, DisplayName: "Ravi", Phone: "111", Address: "Old Street", Amount: dec("10"), CreatedAt: t0}
	newer := domain.BalanceEntry{EntityID: "E1", DisplayName: "Ravi Kumar", Address: "New Street", Amount: dec("5"), CreatedAt: t0.Add(time.Hour)}

	tests := []struct {
		name    string
		entries []domain.BalanceEntry
	}{
		{name: "older first", entries: []domain.BalanceEntry{older, newer}},
		{name: "newer first", entries: []domain.BalanceEntry{newer, older}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := accounting.Aggregate(tt.entries)["E1"]

			assert.Equal(t, "Ravi Kumar", got.DisplayName)
			assert.Equal(t, "111", got.Phone, "a newer blank phone keeps the older one")
			assert.Equal(t, "New Street", got.Address)
			assert.Equal(t, domain.EntityEmployee, got.EntityType)
			assert.True(t, dec("15").Equal(got.Balance))
		})
	}
}

func TestAggregate_Empty(t *testing.T) {
	assert.Empty(t, accounting.Aggregate(nil))
}

func TestTransactionEntry_Advances(t *testing.T) {
	tests := []struct {
		name         string
		record       domain.TransactionRecord
		withAdvances bool
		wantAdvance  string
	}{
		{
			name:         "payment to employee in salary flow",
			record:       domain.TransactionRecord{EntityID: "E1", EntityType: domain.EntityEmployee, PaymentType: domain.PaymentTypePayment, Amount: dec("500")},
			withAdvances: true,
			wantAdvance:  "500",
		},
		{
			name:         "payment to mediator in salary flow",
			record:       domain.TransactionRecord{EntityID: "M1", EntityType: domain.EntityMediator, PaymentType: domain.PaymentTypePayment, Amount: dec("75")},
			withAdvances: true,
			wantAdvance:  "75",
		},
		{
			name:         "receipt from employee is not an advance",
			record:       domain.TransactionRecord{EntityID: "E1", EntityType: domain.EntityEmployee, PaymentType: domain.PaymentTypeReceipt, Amount: dec("500")},
			withAdvances: true,
			wantAdvance:  "0",
		},
		{
			name:         "payment to supplier is not an advance",
			record:       domain.TransactionRecord{EntityID: "S1", EntityType: domain.EntitySupplier, PaymentType: domain.PaymentTypePayment, Amount: dec("500")},
			withAdvances: true,
			wantAdvance:  "0",
		},
		{
			name:         "general ledger flow ignores advances",
			record:       domain.TransactionRecord{EntityID: "E1", EntityType: domain.EntityEmployee, PaymentType: domain.PaymentTypePayment, Amount: dec("500")},
			withAdvances: false,
			wantAdvance:  "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := accounting.TransactionEntry(tt.record, tt.withAdvances)
			assert.True(t, dec(tt.wantAdvance).Equal(e.Advance), "got %s", e.Advance)
			assert.True(t, tt.record.Amount.Equal(e.Amount))
		})
	}
}

func TestSalaryFlowTotals(t *testing.T) {
	t0 := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	salary := domain.SalaryRecord{
		EmployeeID:     "E7",
		Name:           "Arun",
		BaseSalary:     dec("15000"),
		WorkingDays:    dec("20"),
		CurrentAdvance: dec("1000"),
		PaidSalary:     dec("9000"),
		AuditFields:    domain.AuditFields{CreatedAt: t0},
	}
	advance := domain.TransactionRecord{
		EntityID:    "E7",
		EntityType:  domain.EntityEmployee,
		EntityName:  "Arun",
		PaymentType: domain.PaymentTypePayment,
		Amount:      dec("250"),
		AuditFields: domain.AuditFields{CreatedAt: t0.Add(time.Hour)},
	}

	got := accounting.Aggregate([]domain.BalanceEntry{
		accounting.SalaryEntry(salary),
		accounting.TransactionEntry(advance, true),
	})["E7"]

	assert.True(t, dec("1250").Equal(got.TotalAdvance), "currentAdvance + advance payments")
	assert.True(t, dec("20").Equal(got.TotalWorkingDays))
	assert.True(t, dec("15000").Equal(got.BaseSalary), "transaction rows carry no base salary")
	assert.Equal(t, domain.EntityEmployee, got.EntityType)
}

func TestSortedBalances(t *testing.T) {
	in := map[string]domain.EntityBalance{
		"3": {EntityID: "3", DisplayName: "charlie"},
		"1": {EntityID: "1", DisplayName: "Alpha"},
		"2": {EntityID: "2", DisplayName: "alpha"},
	}

	got := accounting.SortedBalances(in)

	require.Len(t, got, 3)
	assert.Equal(t, []string{"1", "2", "3"}, []string{got[0].EntityID, got[1].EntityID, got[2].EntityID})
}
