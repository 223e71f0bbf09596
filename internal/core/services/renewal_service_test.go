package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/erp_backoffice/internal/apperrors"
	"github.com/SscSPs/erp_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_backoffice/internal/core/ports/repositories"
	"github.com/SscSPs/erp_backoffice/internal/core/services"
	"github.com/SscSPs/erp_backoffice/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRenewalService_Create(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRenewalRepository)
	svc := services.NewRenewalService(repo, testOptions()...)

	repo.On("SaveRenewal", ctx, mock.MatchedBy(func(r domain.Renewal) bool {
		return r.VehicleNumber == "KA01AB1234" && r.Status == domain.StatusPending && r.Version == 1
	})).Return(nil).Once()

	r, err := svc.CreateRenewal(ctx, dto.CreateRenewalRequest{
		Name:          "Asha",
		Phone:         "9000000000",
		VehicleNumber: " ka01ab1234 ",
		RenewalType:   "insurance",
		Amount:        decimal.NewFromInt(4200),
		DueDate:       "2024-04-02",
	})

	require.NoError(t, err)
	assert.Equal(t, "new-id", r.ID)
	repo.AssertExpectations(t)
}

func TestRenewalService_CreateRejectsBadDate(t *testing.T) {
	repo := new(MockRenewalRepository)
	svc := services.NewRenewalService(repo, testOptions()...)

	_, err := svc.CreateRenewal(context.Background(), dto.CreateRenewalRequest{
		Name: "Asha", Phone: "9000000000", RenewalType: "permit", DueDate: "02-04-2024",
	})

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	repo.AssertNotCalled(t, "SaveRenewal", mock.Anything, mock.Anything)
}

func TestRenewalService_ListRenewalsByMonth(t *testing.T) {
	tests := []struct {
		name     string
		year     int
		month    int
		wantFrom string
		wantTo   string
		wantErr  bool
	}{
		{name: "february", year: 2024, month: 2, wantFrom: "2024-02-01", wantTo: "2024-02-31"},
		{name: "december", year: 2023, month: 12, wantFrom: "2023-12-01", wantTo: "2023-12-31"},
		{name: "month out of range", year: 2024, month: 13, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			repo := new(MockRenewalRepository)
			svc := services.NewRenewalService(repo, testOptions()...)
			if !tt.wantErr {
				repo.On("ListRenewals", ctx, portsrepo.RenewalFilter{From: tt.wantFrom, To: tt.wantTo}).Return([]domain.Renewal{}, nil).Once()
			}

			_, err := svc.ListRenewalsByMonth(ctx, tt.year, tt.month)

			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				return
			}
			require.NoError(t, err)
			repo.AssertExpectations(t)
		})
	}
}

func TestRenewalService_ListPendingDue(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRenewalRepository)
	svc := services.NewRenewalService(repo, testOptions()...)
	repo.On("ListRenewals", ctx, portsrepo.RenewalFilter{From: "2024-03-15", To: "2024-03-22", Status: domain.StatusPending}).
		Return([]domain.Renewal{{ID: "r1"}}, nil).Once()

	list, err := svc.ListPendingDue(ctx, "2024-03-15", "2024-03-22")

	require.NoError(t, err)
	assert.Len(t, list, 1)
}
