package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/erp_backoffice/internal/apperrors"
	"github.com/SscSPs/erp_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_backoffice/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_backoffice/internal/core/ports/services"
	"github.com/SscSPs/erp_backoffice/internal/core/services"
	"github.com/SscSPs/erp_backoffice/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type LedgerServiceTestSuite struct {
	suite.Suite
	txRepo  *MockTransactionRepository
	cpRepo  *MockCounterpartyRepository
	service portssvc.LedgerSvcFacade
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.txRepo = new(MockTransactionRepository)
	suite.cpRepo = new(MockCounterpartyRepository)
	directory := services.NewCounterpartyService(suite.cpRepo, testOptions()...)
	suite.service = services.NewLedgerService(suite.txRepo, directory, testOptions()...)
}

func advanceRequest() dto.CreateTransactionRequest {
	return dto.CreateTransactionRequest{
		EntityID:    "EMP-7",
		EntityType:  domain.EntityEmployee,
		Sender:      "Office",
		PaymentType: domain.PaymentTypePayment,
		Amount:      decimal.NewFromInt(750),
		Reason:      "advance",
		OccurredOn:  "2024-03-15",
	}
}

func (suite *LedgerServiceTestSuite) TestCreateTransaction_ResolvesReceiver() {
	ctx := context.Background()
	suite.cpRepo.On("ListCounterparties", ctx, portsrepo.CounterpartyFilter{EntityType: domain.EntityEmployee, EntityID: "EMP-7"}).
		Return([]domain.Counterparty{{ID: "c7", EntityID: "EMP-7", EntityType: domain.EntityEmployee, Name: "Ravi", Phone: "9000000007"}}, nil).Once()
	suite.txRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(r domain.TransactionRecord) bool {
		return r.EntityName == "Ravi" && r.Phone == "9000000007" && r.Status == domain.StatusPending && r.Version == 1
	})).Return(nil).Once()

	rec, err := suite.service.CreateTransaction(ctx, advanceRequest())

	suite.Require().NoError(err)
	suite.Equal("new-id", rec.ID)
	suite.Equal(fixedNow, rec.CreatedAt)
	suite.txRepo.AssertExpectations(suite.T())
	suite.cpRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestCreateTransaction_AdvanceNeedsKnownReceiver() {
	ctx := context.Background()
	suite.cpRepo.On("ListCounterparties", ctx, mock.Anything).Return([]domain.Counterparty{}, nil).Once()

	rec, err := suite.service.CreateTransaction(ctx, advanceRequest())

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(rec)
	suite.txRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestCreateTransaction_ReceiptToUnknownSupplier() {
	ctx := context.Background()
	req := advanceRequest()
	req.EntityID = ""
	req.EntityName = "Fresh Farms"
	req.EntityType = domain.EntitySupplier
	req.PaymentType = domain.PaymentTypeReceipt

	suite.cpRepo.On("ListCounterparties", ctx, portsrepo.CounterpartyFilter{EntityType: domain.EntitySupplier, Name: "Fresh Farms"}).
		Return([]domain.Counterparty{}, nil).Once()
	suite.txRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.TransactionRecord")).Return(nil).Once()

	rec, err := suite.service.CreateTransaction(ctx, req)

	suite.Require().NoError(err)
	suite.Equal("Fresh Farms", rec.EntityName)
}

func (suite *LedgerServiceTestSuite) TestCreateTransaction_Validation() {
	ctx := context.Background()
	tests := []struct {
		name   string
		mutate func(r *dto.CreateTransactionRequest)
	}{
		{name: "negative amount", mutate: func(r *dto.CreateTransactionRequest) { r.Amount = decimal.NewFromInt(-1) }},
		{name: "bad date", mutate: func(r *dto.CreateTransactionRequest) { r.OccurredOn = "15/03/2024" }},
		{name: "missing sender", mutate: func(r *dto.CreateTransactionRequest) { r.Sender = " " }},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			req := advanceRequest()
			req.EntityType = domain.EntityOther
			req.EntityID = ""
			tt.mutate(&req)

			_, err := suite.service.CreateTransaction(ctx, req)
			suite.ErrorIs(err, apperrors.ErrValidation)
		})
	}
	suite.txRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestListTransactions_DefaultsToToday() {
	ctx := context.Background()
	suite.txRepo.On("ListTransactions", ctx, portsrepo.TransactionFilter{Date: "2024-03-15"}).Return([]domain.TransactionRecord{}, nil).Once()

	_, err := suite.service.ListTransactions(ctx, dto.ListTransactionsParams{})

	suite.Require().NoError(err)
	suite.txRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestListTransactions_RangeOrder() {
	_, err := suite.service.ListTransactions(context.Background(), dto.ListTransactionsParams{From: "2024-03-10", To: "2024-03-01"})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerServiceTestSuite) TestListBalances() {
	ctx := context.Background()
	records := []domain.TransactionRecord{
		{EntityID: "S1", EntityType: domain.EntitySupplier, EntityName: "Fresh Farms", PaymentType: domain.PaymentTypePayment, Amount: decimal.NewFromInt(100), AuditFields: domain.AuditFields{CreatedAt: fixedNow}},
		{EntityID: "S1", EntityType: domain.EntitySupplier, EntityName: "Fresh Farms", PaymentType: domain.PaymentTypeReceipt, Amount: decimal.NewFromInt(40), AuditFields: domain.AuditFields{CreatedAt: fixedNow}},
		{EntityID: "", EntityType: domain.EntityOther, EntityName: "walk-in", Amount: decimal.NewFromInt(5), AuditFields: domain.AuditFields{CreatedAt: fixedNow}},
	}
	suite.txRepo.On("ListTransactions", ctx, portsrepo.TransactionFilter{From: "2024-03-01", To: "2024-03-31"}).Return(records, nil).Once()

	balances, err := suite.service.ListBalances(ctx, dto.ListBalancesParams{From: "2024-03-01", To: "2024-03-31"})

	suite.Require().NoError(err)
	suite.Require().Len(balances, 1)
	suite.True(decimal.NewFromInt(140).Equal(balances[0].Balance))
	suite.True(balances[0].TotalAdvance.IsZero())
	suite.Equal(2, balances[0].EntryCount)
}

func (suite *LedgerServiceTestSuite) TestUpdateTransaction_StaleVersion() {
	ctx := context.Background()
	current := pendingTransaction()
	current.Version = 3
	stale := int64(2)
	suite.txRepo.On("FindTransactionByID", ctx, "tx-1").Return(current, nil).Once()

	_, err := suite.service.UpdateTransaction(ctx, "tx-1", dto.UpdateTransactionRequest{Version: &stale})

	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.txRepo.AssertNotCalled(suite.T(), "UpdateTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestUpdateTransaction_BumpsVersion() {
	ctx := context.Background()
	current := pendingTransaction()
	amount := decimal.NewFromInt(900)
	suite.txRepo.On("FindTransactionByID", ctx, "tx-1").Return(current, nil).Once()
	suite.txRepo.On("UpdateTransaction", ctx, mock.MatchedBy(func(r domain.TransactionRecord) bool {
		return r.Version == 2 && r.Amount.Equal(amount) && r.CreatedAt.Equal(current.CreatedAt)
	}), int64(1)).Return(nil).Once()

	updated, err := suite.service.UpdateTransaction(ctx, "tx-1", dto.UpdateTransactionRequest{Amount: &amount})

	suite.Require().NoError(err)
	suite.Equal(int64(2), updated.Version)
	suite.Equal(domain.StatusPending, updated.Status)
	suite.txRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestDeleteTransaction_NotFound() {
	ctx := context.Background()
	suite.txRepo.On("DeleteTransaction", ctx, "nope").Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteTransaction(ctx, "nope")
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotFound)
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
