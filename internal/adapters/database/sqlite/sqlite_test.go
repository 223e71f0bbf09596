package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/SscSPs/erp_backoffice/internal/adapters/database/sqlite"
	"github.com/SscSPs/erp_backoffice/internal/apperrors"
	"github.com/SscSPs/erp_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_backoffice/internal/core/ports/repositories"
	"github.com/SscSPs/erp_backoffice/pkg/database"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type SQLiteStoreTestSuite struct {
	suite.Suite
	repos portsrepo.RepositoryProvider
	now   time.Time
}

func (s *SQLiteStoreTestSuite) SetupTest() {
	path := filepath.Join(s.T().TempDir(), "erp.db")
	_, err := database.MigrateUp(database.DriverSQLite, path)
	s.Require().NoError(err)

	db, err := database.NewSQLiteDB(context.Background(), path)
	s.Require().NoError(err)
	s.T().Cleanup(func() { db.Close() })

	s.repos = sqlite.NewRepositoryProvider(db)
	s.now = time.Date(2024, 3, 15, 9, 30, 0, 123456789, time.UTC)
}

func (s *SQLiteStoreTestSuite) audit(version int64) domain.AuditFields {
	return domain.AuditFields{CreatedAt: s.now, LastUpdatedAt: s.now, Version: version}
}

func (s *SQLiteStoreTestSuite) transaction(id, day string) domain.TransactionRecord {
	return domain.TransactionRecord{
		ID:          id,
		EntityID:    "E1",
		EntityType:  domain.EntityEmployee,
		EntityName:  "Ravi",
		Sender:      "Office",
		PaymentType: domain.PaymentTypePayment,
		Amount:      decimal.RequireFromString("1500.50"),
		Reason:      "advance",
		Phone:       "9000000001",
		OccurredOn:  day,
		Status:      domain.StatusPending,
		AuditFields: s.audit(1),
	}
}

func (s *SQLiteStoreTestSuite) TestTransactionRoundTrip() {
	ctx := context.Background()
	repo := s.repos.TransactionRepo
	s.Require().NoError(repo.SaveTransaction(ctx, s.transaction("t1", "2024-03-15")))

	got, err := repo.FindTransactionByID(ctx, "t1")

	s.Require().NoError(err)
	s.True(decimal.RequireFromString("1500.5").Equal(got.Amount))
	s.True(s.now.Equal(got.CreatedAt))
	s.Equal(domain.StatusPending, got.Status)

	_, err = repo.FindTransactionByID(ctx, "missing")
	s.ErrorIs(err, apperrors.ErrNotFound)

	s.ErrorIs(repo.SaveTransaction(ctx, s.transaction("t1", "2024-03-15")), apperrors.ErrDuplicate)
}

func (s *SQLiteStoreTestSuite) TestListTransactionsFilters() {
	ctx := context.Background()
	repo := s.repos.TransactionRepo
	for id, day := range map[string]string{"t1": "2024-02-28", "t2": "2024-03-01", "t3": "2024-03-15"} {
		s.Require().NoError(repo.SaveTransaction(ctx, s.transaction(id, day)))
	}

	tests := []struct {
		name    string
		filter  portsrepo.TransactionFilter
		wantIDs []string
	}{
		{name: "exact day", filter: portsrepo.TransactionFilter{Date: "2024-03-15"}, wantIDs: []string{"t3"}},
		{name: "month range", filter: portsrepo.TransactionFilter{From: "2024-03-01", To: "2024-03-31"}, wantIDs: []string{"t2", "t3"}},
		{name: "entity type", filter: portsrepo.TransactionFilter{EntityType: domain.EntitySupplier}, wantIDs: []string{}},
		{name: "no filter ordered by date", filter: portsrepo.TransactionFilter{}, wantIDs: []string{"t1", "t2", "t3"}},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			list, err := repo.ListTransactions(ctx, tt.filter)
			s.Require().NoError(err)
			ids := make([]string, 0, len(list))
			for _, r := range list {
				ids = append(ids, r.ID)
			}
			s.Equal(tt.wantIDs, ids)
		})
	}
}

func (s *SQLiteStoreTestSuite) TestUpdateTransactionVersionGuard() {
	ctx := context.Background()
	repo := s.repos.TransactionRepo
	rec := s.transaction("t1", "2024-03-15")
	s.Require().NoError(repo.SaveTransaction(ctx, rec))

	rec.Amount = decimal.NewFromInt(99)
	rec.Version = 2
	s.Require().NoError(repo.UpdateTransaction(ctx, rec, 1))

	rec.Version = 3
	s.ErrorIs(repo.UpdateTransaction(ctx, rec, 1), apperrors.ErrConflict)

	rec.ID = "missing"
	s.ErrorIs(repo.UpdateTransaction(ctx, rec, 2), apperrors.ErrNotFound)

	got, err := repo.FindTransactionByID(ctx, "t1")
	s.Require().NoError(err)
	s.Equal(int64(2), got.Version)
	s.True(decimal.NewFromInt(99).Equal(got.Amount))
}

func (s *SQLiteStoreTestSuite) TestTransitionStatus() {
	ctx := context.Background()
	repo := s.repos.TransactionRepo
	s.Require().NoError(repo.SaveTransaction(ctx, s.transaction("t1", "2024-03-15")))

	s.Require().NoError(repo.TransitionStatus(ctx, "t1", domain.StatusPending, domain.StatusSent))
	s.ErrorIs(repo.TransitionStatus(ctx, "t1", domain.StatusPending, domain.StatusSent), apperrors.ErrConflict)
	s.ErrorIs(repo.TransitionStatus(ctx, "nope", domain.StatusPending, domain.StatusSent), apperrors.ErrNotFound)

	got, err := repo.FindTransactionByID(ctx, "t1")
	s.Require().NoError(err)
	s.Equal(domain.StatusSent, got.Status)
	s.Equal(int64(2), got.Version)

	s.Require().NoError(repo.TransitionStatus(ctx, "t1", domain.StatusSent, domain.StatusPending))
}

func (s *SQLiteStoreTestSuite) TestSalaryUniquePerEmployeePeriod() {
	ctx := context.Background()
	repo := s.repos.SalaryRepo
	salary := domain.SalaryRecord{
		ID: "s1", EmployeeID: "E1", Name: "Ravi", Phone: "1",
		BaseSalary: decimal.NewFromInt(3000), WorkingDays: decimal.RequireFromString("25.5"),
		PaidSalary: decimal.NewFromInt(2550), PeriodKey: "2024-03", Status: domain.StatusPending,
		AuditFields: s.audit(1),
	}
	s.Require().NoError(repo.SaveSalary(ctx, salary))

	salary.ID = "s2"
	s.ErrorIs(repo.SaveSalary(ctx, salary), apperrors.ErrDuplicate)

	got, err := repo.FindSalaryByEmployeePeriod(ctx, "E1", "2024-03")
	s.Require().NoError(err)
	s.Equal("s1", got.ID)
	s.True(decimal.RequireFromString("25.5").Equal(got.WorkingDays))

	_, err = repo.FindSalaryByEmployeePeriod(ctx, "E1", "2024-04")
	s.ErrorIs(err, apperrors.ErrNotFound)

	s.Require().NoError(repo.DeleteSalary(ctx, "s1"))
	s.ErrorIs(repo.DeleteSalary(ctx, "s1"), apperrors.ErrNotFound)
}

func (s *SQLiteStoreTestSuite) TestCounterpartyDeleteByEntityID() {
	ctx := context.Background()
	repo := s.repos.CounterpartyRepo
	for _, id := range []string{"c1", "c2"} {
		s.Require().NoError(repo.SaveCounterparty(ctx, domain.Counterparty{
			ID: id, EntityID: "E1", EntityType: domain.EntityEmployee, Name: "Ravi", Phone: "1", AuditFields: s.audit(1),
		}))
	}
	s.Require().NoError(repo.SaveCounterparty(ctx, domain.Counterparty{
		ID: "c3", EntityID: "E1", EntityType: domain.EntitySupplier, Name: "Fresh Farms", Phone: "2", AuditFields: s.audit(1),
	}))

	byName, err := repo.ListCounterparties(ctx, portsrepo.CounterpartyFilter{EntityType: domain.EntityEmployee, Name: "Ravi"})
	s.Require().NoError(err)
	s.Len(byName, 2)

	n, err := repo.DeleteCounterpartiesByEntityID(ctx, domain.EntityEmployee, "E1")
	s.Require().NoError(err)
	s.Equal(2, n)

	left, err := repo.ListCounterparties(ctx, portsrepo.CounterpartyFilter{})
	s.Require().NoError(err)
	s.Require().Len(left, 1)
	s.Equal("c3", left[0].ID)
}

func (s *SQLiteStoreTestSuite) TestRenewalsByDueDate() {
	ctx := context.Background()
	repo := s.repos.RenewalRepo
	for id, due := range map[string]string{"r1": "2024-03-02", "r2": "2024-03-20", "r3": "2024-04-01"} {
		s.Require().NoError(repo.SaveRenewal(ctx, domain.Renewal{
			ID: id, Name: "Asha", Phone: "1", RenewalType: "insurance", Amount: decimal.NewFromInt(100),
			DueDate: due, Status: domain.StatusPending, AuditFields: s.audit(1),
		}))
	}
	s.Require().NoError(repo.TransitionStatus(ctx, "r2", domain.StatusPending, domain.StatusSent))

	march, err := repo.ListRenewals(ctx, portsrepo.RenewalFilter{From: "2024-03-01", To: "2024-03-31"})
	s.Require().NoError(err)
	s.Len(march, 2)

	pending, err := repo.ListRenewals(ctx, portsrepo.RenewalFilter{From: "2024-03-01", To: "2024-04-30", Status: domain.StatusPending})
	s.Require().NoError(err)
	s.Require().Len(pending, 2)
	s.Equal("r1", pending[0].ID)
	s.Equal("r3", pending[1].ID)
}

func TestSQLiteStoreTestSuite(t *testing.T) {
	suite.Run(t, new(SQLiteStoreTestSuite))
}
