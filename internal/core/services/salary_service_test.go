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
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type SalaryServiceTestSuite struct {
	suite.Suite
	salaryRepo *MockSalaryRepository
	txRepo     *MockTransactionRepository
	service    portssvc.SalarySvcFacade
}

func (suite *SalaryServiceTestSuite) SetupTest() {
	suite.salaryRepo = new(MockSalaryRepository)
	suite.txRepo = new(MockTransactionRepository)
	suite.service = services.NewSalaryService(suite.salaryRepo, suite.txRepo, testOptions()...)
}

func salaryRequest() dto.CreateSalaryRequest {
	return dto.CreateSalaryRequest{
		EmployeeID:      "E1",
		Name:            "Ravi",
		Phone:           "9000000001",
		BaseSalary:      decimal.NewFromInt(3000),
		WorkingDays:     decimal.NewFromInt(30),
		PreviousAdvance: decimal.NewFromInt(2000),
		CurrentAdvance:  decimal.NewFromInt(2000),
		PeriodKey:       "2024-03",
	}
}

func (suite *SalaryServiceTestSuite) TestCreateSalary_FloorsAtZero() {
	ctx := context.Background()
	suite.salaryRepo.On("FindSalaryByEmployeePeriod", ctx, "E1", "2024-03").Return(nil, apperrors.ErrNotFound).Once()
	suite.salaryRepo.On("SaveSalary", ctx, mock.AnythingOfType("domain.SalaryRecord")).Return(nil).Once()

	salary, err := suite.service.CreateSalary(ctx, salaryRequest())

	suite.Require().NoError(err)
	suite.True(salary.PaidSalary.IsZero(), salary.PaidSalary.String())
	suite.Equal(int64(1), salary.Version)
	suite.salaryRepo.AssertExpectations(suite.T())
}

func (suite *SalaryServiceTestSuite) TestCreateSalary_Duplicate() {
	ctx := context.Background()
	suite.salaryRepo.On("FindSalaryByEmployeePeriod", ctx, "E1", "2024-03").Return(&domain.SalaryRecord{ID: "s0"}, nil).Once()

	_, err := suite.service.CreateSalary(ctx, salaryRequest())

	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.salaryRepo.AssertNotCalled(suite.T(), "SaveSalary", mock.Anything, mock.Anything)
}

func (suite *SalaryServiceTestSuite) TestCreateSalary_PeriodRequired() {
	req := salaryRequest()
	req.PeriodKey = ""

	_, err := suite.service.CreateSalary(context.Background(), req)

	suite.ErrorIs(err, apperrors.ErrPeriodRequired)
}

func (suite *SalaryServiceTestSuite) TestListSalaries_Search() {
	ctx := context.Background()
	suite.salaryRepo.On("ListSalaries", ctx, portsrepo.SalaryFilter{Period: "2024-03"}).Return([]domain.SalaryRecord{
		{EmployeeID: "E1", Name: "Ravi Kumar", Phone: "9000000001"},
		{EmployeeID: "E2", Name: "Asha", Phone: "9111111111"},
	}, nil).Twice()

	byName, err := suite.service.ListSalaries(ctx, dto.ListSalariesParams{Period: "2024-03", Search: "ravi"})
	suite.Require().NoError(err)
	suite.Len(byName, 1)

	byPhone, err := suite.service.ListSalaries(ctx, dto.ListSalariesParams{Period: "2024-03", Search: "9111"})
	suite.Require().NoError(err)
	suite.Require().Len(byPhone, 1)
	suite.Equal("E2", byPhone[0].EmployeeID)
}

func (suite *SalaryServiceTestSuite) TestRecalculatePeriod_UpdatesChangedRows() {
	ctx := context.Background()
	rows := []domain.SalaryRecord{
		{ID: "s1", EmployeeID: "E1", Name: "Ravi", Phone: "1", BaseSalary: decimal.NewFromInt(3000), WorkingDays: decimal.NewFromInt(30), PaidSalary: decimal.NewFromInt(3000), PeriodKey: "2024-03", AuditFields: domain.AuditFields{Version: 1}},
		{ID: "s2", EmployeeID: "E2", Name: "Asha", Phone: "2", BaseSalary: decimal.NewFromInt(3000), WorkingDays: decimal.NewFromInt(15), PaidSalary: decimal.NewFromInt(3000), PeriodKey: "2024-03", AuditFields: domain.AuditFields{Version: 4}},
	}
	suite.salaryRepo.On("ListSalaries", ctx, portsrepo.SalaryFilter{Period: "2024-03"}).Return(rows, nil).Once()
	suite.salaryRepo.On("UpdateSalary", ctx, mock.MatchedBy(func(s domain.SalaryRecord) bool {
		return s.ID == "s2" && s.PaidSalary.Equal(decimal.NewFromInt(1500)) && s.Version == 5
	}), int64(4)).Return(nil).Once()

	updated, err := suite.service.RecalculatePeriod(ctx, "2024-03")

	suite.Require().NoError(err)
	suite.Equal(1, updated)
	suite.salaryRepo.AssertExpectations(suite.T())
}

func (suite *SalaryServiceTestSuite) TestPeriodSummary_MergesAdvances() {
	ctx := context.Background()
	suite.salaryRepo.On("ListSalaries", ctx, portsrepo.SalaryFilter{Period: "2024-03"}).Return([]domain.SalaryRecord{
		{EmployeeID: "E1", Name: "Ravi", PaidSalary: decimal.NewFromInt(2000), CurrentAdvance: decimal.NewFromInt(500), WorkingDays: decimal.NewFromInt(25), BaseSalary: decimal.NewFromInt(3000), AuditFields: domain.AuditFields{CreatedAt: fixedNow}},
	}, nil).Once()
	suite.txRepo.On("ListTransactions", ctx, portsrepo.TransactionFilter{From: "2024-03-01", To: "2024-03-31", EntityType: domain.EntityEmployee}).
		Return([]domain.TransactionRecord{
			{EntityID: "E1", EntityType: domain.EntityEmployee, EntityName: "Ravi", PaymentType: domain.PaymentTypePayment, Amount: decimal.NewFromInt(300), AuditFields: domain.AuditFields{CreatedAt: fixedNow}},
			{EntityID: "E1", EntityType: domain.EntityEmployee, EntityName: "Ravi", PaymentType: domain.PaymentTypeReceipt, Amount: decimal.NewFromInt(100), AuditFields: domain.AuditFields{CreatedAt: fixedNow}},
		}, nil).Once()

	summary, err := suite.service.PeriodSummary(ctx, "2024-03")

	suite.Require().NoError(err)
	suite.Require().Len(summary, 1)
	suite.True(decimal.NewFromInt(800).Equal(summary[0].TotalAdvance), summary[0].TotalAdvance.String())
	suite.True(decimal.NewFromInt(25).Equal(summary[0].TotalWorkingDays))
	suite.True(decimal.NewFromInt(3000).Equal(summary[0].BaseSalary))
	suite.Equal(2, summary[0].EntryCount)
}

func (suite *SalaryServiceTestSuite) TestUpdateSalary_Recomputes() {
	ctx := context.Background()
	current := &domain.SalaryRecord{
		ID: "s1", EmployeeID: "E1", Name: "Ravi", Phone: "1",
		BaseSalary: decimal.NewFromInt(3000), WorkingDays: decimal.NewFromInt(30), PaidSalary: decimal.NewFromInt(3000),
		PeriodKey: "2024-03", Status: domain.StatusPending, AuditFields: domain.AuditFields{Version: 2},
	}
	days := decimal.NewFromInt(10)
	suite.salaryRepo.On("FindSalaryByID", ctx, "s1").Return(current, nil).Once()
	suite.salaryRepo.On("UpdateSalary", ctx, mock.MatchedBy(func(s domain.SalaryRecord) bool {
		return s.PaidSalary.Equal(decimal.NewFromInt(1000)) && s.Version == 3
	}), int64(2)).Return(nil).Once()

	updated, err := suite.service.UpdateSalary(ctx, "s1", dto.UpdateSalaryRequest{WorkingDays: &days})

	suite.Require().NoError(err)
	suite.True(decimal.NewFromInt(1000).Equal(updated.PaidSalary))
}

func TestSalaryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SalaryServiceTestSuite))
}
