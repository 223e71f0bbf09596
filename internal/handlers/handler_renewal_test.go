package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/erp_backoffice/internal/core/domain"
	"github.com/SscSPs/erp_backoffice/internal/dto"
	"github.com/SscSPs/erp_backoffice/internal/handlers"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRenewalHandler_ListByMonth(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		wantCode int
		wantCall bool
	}{
		{name: "valid month", query: "?month=4&year=2024", wantCode: http.StatusOK, wantCall: true},
		{name: "month out of range", query: "?month=13&year=2024", wantCode: http.StatusBadRequest},
		{name: "missing year", query: "?month=4", wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			r := gin.New()
			svc := new(MockRenewalService)
			handlers.RegisterRenewalRoutes(r.Group("/api/v1"), svc, new(MockDispatchService))
			if tt.wantCall {
				svc.On("ListRenewalsByMonth", mock.Anything, 2024, 4).
					Return([]domain.Renewal{{ID: "r1", Name: "Asha", DueDate: "2024-04-02", Status: domain.StatusPending}}, nil).Once()
			}

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/renewals"+tt.query, nil))

			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantCall {
				var list []dto.RenewalResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
				assert.Equal(t, "2024-04-02", list[0].DueDate)
			} else {
				svc.AssertNotCalled(t, "ListRenewalsByMonth", mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}
}

func TestRenewalHandler_Dispatch(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	dispatch := new(MockDispatchService)
	handlers.RegisterRenewalRoutes(r.Group("/api/v1"), new(MockRenewalService), dispatch)
	dispatch.On("Dispatch", mock.Anything, domain.KindRenewal, "r1").
		Return(&dto.DispatchResult{Kind: "RENEWAL", RecordID: "r1", Status: "SENT", Sent: true, Balances: []domain.EntityBalance{}}, nil).Once()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/renewals/r1/dispatch", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	dispatch.AssertExpectations(t)
}
