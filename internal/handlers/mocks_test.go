package handlers_test

import (
	"context"
	"io"

	"github.com/SscSPs/erp_backoffice/internal/core/domain"
	portssvc "github.com/SscSPs/erp_backoffice/internal/core/ports/services"
	"github.com/SscSPs/erp_backoffice/internal/dto"
	"github.com/SscSPs/erp_backoffice/internal/handlers"
	"github.com/stretchr/testify/mock"
)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) GetTransaction(ctx context.Context, id string) (*domain.TransactionRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionRecord), args.Error(1)
}
func (m *MockLedgerService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) ([]domain.TransactionRecord, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TransactionRecord), args.Error(1)
}
func (m *MockLedgerService) ListBalances(ctx context.Context, params dto.ListBalancesParams) ([]domain.EntityBalance, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EntityBalance), args.Error(1)
}
func (m *MockLedgerService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.TransactionRecord, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionRecord), args.Error(1)
}
func (m *MockLedgerService) UpdateTransaction(ctx context.Context, id string, req dto.UpdateTransactionRequest) (*domain.TransactionRecord, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionRecord), args.Error(1)
}
func (m *MockLedgerService) DeleteTransaction(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// Ensure mock implements the interface
var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

// --- Mock CounterpartyService ---
type MockCounterpartyService struct {
	mock.Mock
}

func (m *MockCounterpartyService) GetCounterparty(ctx context.Context, id string) (*domain.Counterparty, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Counterparty), args.Error(1)
}
func (m *MockCounterpartyService) ListCounterparties(ctx context.Context, params dto.ListCounterpartiesParams) ([]domain.Counterparty, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Counterparty), args.Error(1)
}
func (m *MockCounterpartyService) ResolveCounterparty(ctx context.Context, entityType domain.EntityType, entityID, name string) (*domain.Counterparty, error) {
	args := m.Called(ctx, entityType, entityID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Counterparty), args.Error(1)
}
func (m *MockCounterpartyService) CreateCounterparty(ctx context.Context, req dto.CreateCounterpartyRequest) (*domain.Counterparty, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Counterparty), args.Error(1)
}
func (m *MockCounterpartyService) UpdateCounterparty(ctx context.Context, id string, req dto.UpdateCounterpartyRequest) (*domain.Counterparty, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Counterparty), args.Error(1)
}
func (m *MockCounterpartyService) DeleteCounterparty(ctx context.Context, id string) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

var _ portssvc.CounterpartySvcFacade = (*MockCounterpartyService)(nil)

// --- Mock SalaryService ---
type MockSalaryService struct {
	mock.Mock
}

func (m *MockSalaryService) GetSalary(ctx context.Context, id string) (*domain.SalaryRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SalaryRecord), args.Error(1)
}
func (m *MockSalaryService) ListSalaries(ctx context.Context, params dto.ListSalariesParams) ([]domain.SalaryRecord, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SalaryRecord), args.Error(1)
}
func (m *MockSalaryService) PeriodSummary(ctx context.Context, period string) ([]domain.EntityBalance, error) {
	args := m.Called(ctx, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EntityBalance), args.Error(1)
}
func (m *MockSalaryService) CreateSalary(ctx context.Context, req dto.CreateSalaryRequest) (*domain.SalaryRecord, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SalaryRecord), args.Error(1)
}
func (m *MockSalaryService) UpdateSalary(ctx context.Context, id string, req dto.UpdateSalaryRequest) (*domain.SalaryRecord, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SalaryRecord), args.Error(1)
}
func (m *MockSalaryService) DeleteSalary(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockSalaryService) RecalculatePeriod(ctx context.Context, period string) (int, error) {
	args := m.Called(ctx, period)
	return args.Int(0), args.Error(1)
}

var _ portssvc.SalarySvcFacade = (*MockSalaryService)(nil)

// --- Mock RenewalService ---
type MockRenewalService struct {
	mock.Mock
}

func (m *MockRenewalService) CreateRenewal(ctx context.Context, req dto.CreateRenewalRequest) (*domain.Renewal, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Renewal), args.Error(1)
}
func (m *MockRenewalService) GetRenewal(ctx context.Context, id string) (*domain.Renewal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Renewal), args.Error(1)
}
func (m *MockRenewalService) UpdateRenewal(ctx context.Context, id string, req dto.UpdateRenewalRequest) (*domain.Renewal, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Renewal), args.Error(1)
}
func (m *MockRenewalService) DeleteRenewal(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockRenewalService) ListRenewalsByMonth(ctx context.Context, year, month int) ([]domain.Renewal, error) {
	args := m.Called(ctx, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Renewal), args.Error(1)
}
func (m *MockRenewalService) ListPendingDue(ctx context.Context, from, to string) ([]domain.Renewal, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Renewal), args.Error(1)
}

var _ portssvc.RenewalSvcFacade = (*MockRenewalService)(nil)

// --- Mock ImportService ---
type MockImportService struct {
	mock.Mock
}

func (m *MockImportService) ImportSalaries(ctx context.Context, period string, r io.Reader) (*dto.ImportResult, error) {
	raw, _ := io.ReadAll(r)
	args := m.Called(ctx, period, string(raw))
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ImportResult), args.Error(1)
}
func (m *MockImportService) ImportEmployees(ctx context.Context, r io.Reader) (*dto.ImportResult, error) {
	raw, _ := io.ReadAll(r)
	args := m.Called(ctx, string(raw))
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ImportResult), args.Error(1)
}

var _ portssvc.ImportSvc = (*MockImportService)(nil)

// --- Mock DispatchService ---
type MockDispatchService struct {
	mock.Mock
}

func (m *MockDispatchService) Dispatch(ctx context.Context, kind domain.NotificationKind, id string) (*dto.DispatchResult, error) {
	args := m.Called(ctx, kind, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.DispatchResult), args.Error(1)
}

var _ portssvc.DispatchSvc = (*MockDispatchService)(nil)

// --- Mock SMS gateway ---
type MockDeliverer struct {
	mock.Mock
}

func (m *MockDeliverer) Deliver(ctx context.Context, msg domain.Message) (string, error) {
	args := m.Called(ctx, msg)
	return args.String(0), args.Error(1)
}

var _ handlers.SMSDeliverer = (*MockDeliverer)(nil)
