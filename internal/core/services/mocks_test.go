package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/erp_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_backoffice/internal/core/ports/repositories"
	"github.com/SscSPs/erp_backoffice/internal/core/services"
	"github.com/stretchr/testify/mock"
)

var fixedNow = time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)

func testOptions() []services.ServiceOption {
	return []services.ServiceOption{
		services.WithClock(func() time.Time { return fixedNow }),
		services.WithIDGenerator(func() string { return "new-id" }),
	}
}

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, id string) (*domain.TransactionRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionRecord), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, filter portsrepo.TransactionFilter) ([]domain.TransactionRecord, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TransactionRecord), args.Error(1)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, record domain.TransactionRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, record domain.TransactionRecord, expectedVersion int64) error {
	args := m.Called(ctx, record, expectedVersion)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTransactionRepository) TransitionStatus(ctx context.Context, id string, from, to domain.Status) error {
	args := m.Called(ctx, id, from, to)
	return args.Error(0)
}

// --- Mock SalaryRepository ---
type MockSalaryRepository struct {
	mock.Mock
}

func (m *MockSalaryRepository) FindSalaryByID(ctx context.Context, id string) (*domain.SalaryRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SalaryRecord), args.Error(1)
}

func (m *MockSalaryRepository) FindSalaryByEmployeePeriod(ctx context.Context, employeeID, period string) (*domain.SalaryRecord, error) {
	args := m.Called(ctx, employeeID, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SalaryRecord), args.Error(1)
}

func (m *MockSalaryRepository) ListSalaries(ctx context.Context, filter portsrepo.SalaryFilter) ([]domain.SalaryRecord, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SalaryRecord), args.Error(1)
}

func (m *MockSalaryRepository) SaveSalary(ctx context.Context, salary domain.SalaryRecord) error {
	args := m.Called(ctx, salary)
	return args.Error(0)
}

func (m *MockSalaryRepository) UpdateSalary(ctx context.Context, salary domain.SalaryRecord, expectedVersion int64) error {
	args := m.Called(ctx, salary, expectedVersion)
	return args.Error(0)
}

func (m *MockSalaryRepository) DeleteSalary(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSalaryRepository) TransitionStatus(ctx context.Context, id string, from, to domain.Status) error {
	args := m.Called(ctx, id, from, to)
	return args.Error(0)
}

// --- Mock CounterpartyRepository ---
type MockCounterpartyRepository struct {
	mock.Mock
}

func (m *MockCounterpartyRepository) FindCounterpartyByID(ctx context.Context, id string) (*domain.Counterparty, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Counterparty), args.Error(1)
}

func (m *MockCounterpartyRepository) ListCounterparties(ctx context.Context, filter portsrepo.CounterpartyFilter) ([]domain.Counterparty, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Counterparty), args.Error(1)
}

func (m *MockCounterpartyRepository) SaveCounterparty(ctx context.Context, counterparty domain.Counterparty) error {
	args := m.Called(ctx, counterparty)
	return args.Error(0)
}

func (m *MockCounterpartyRepository) UpdateCounterparty(ctx context.Context, counterparty domain.Counterparty, expectedVersion int64) error {
	args := m.Called(ctx, counterparty, expectedVersion)
	return args.Error(0)
}

func (m *MockCounterpartyRepository) DeleteCounterpartiesByEntityID(ctx context.Context, entityType domain.EntityType, entityID string) (int, error) {
	args := m.Called(ctx, entityType, entityID)
	return args.Int(0), args.Error(1)
}

// --- Mock RenewalRepository ---
type MockRenewalRepository struct {
	mock.Mock
}

func (m *MockRenewalRepository) FindRenewalByID(ctx context.Context, id string) (*domain.Renewal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Renewal), args.Error(1)
}

func (m *MockRenewalRepository) ListRenewals(ctx context.Context, filter portsrepo.RenewalFilter) ([]domain.Renewal, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Renewal), args.Error(1)
}

func (m *MockRenewalRepository) SaveRenewal(ctx context.Context, renewal domain.Renewal) error {
	args := m.Called(ctx, renewal)
	return args.Error(0)
}

func (m *MockRenewalRepository) UpdateRenewal(ctx context.Context, renewal domain.Renewal, expectedVersion int64) error {
	args := m.Called(ctx, renewal, expectedVersion)
	return args.Error(0)
}

func (m *MockRenewalRepository) DeleteRenewal(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRenewalRepository) TransitionStatus(ctx context.Context, id string, from, to domain.Status) error {
	args := m.Called(ctx, id, from, to)
	return args.Error(0)
}

// --- Mock MessageSender ---
type MockMessageSender struct {
	mock.Mock
}

func (m *MockMessageSender) Send(ctx context.Context, msg domain.Message) (string, error) {
	args := m.Called(ctx, msg)
	return args.String(0), args.Error(1)
}

func newRepositoryProvider() (portsrepo.RepositoryProvider, *MockTransactionRepository, *MockSalaryRepository, *MockCounterpartyRepository, *MockRenewalRepository) {
	tx := new(MockTransactionRepository)
	sal := new(MockSalaryRepository)
	cp := new(MockCounterpartyRepository)
	rn := new(MockRenewalRepository)
	return portsrepo.RepositoryProvider{
		TransactionRepo:  tx,
		SalaryRepo:       sal,
		CounterpartyRepo: cp,
		RenewalRepo:      rn,
	}, tx, sal, cp, rn
}
