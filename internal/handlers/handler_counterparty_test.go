package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SscSPs/erp_backoffice/internal/apperrors"
	"github.com/SscSPs/erp_backoffice/internal/core/domain"
	"github.com/SscSPs/erp_backoffice/internal/dto"
	"github.com/SscSPs/erp_backoffice/internal/handlers"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCounterpartyRouter() (*gin.Engine, *MockCounterpartyService, *MockImportService) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	cps := new(MockCounterpartyService)
	imp := new(MockImportService)
	handlers.RegisterCounterpartyRoutes(r.Group("/api/v1"), cps, imp)
	return r, cps, imp
}

func TestCounterpartyHandler_Create(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		svcErr   error
		wantCode int
	}{
		{name: "created", body: `{"entityId":"M1","entityType":"MEDIATOR","name":"Salim","phone":"9000000010"}`, wantCode: http.StatusCreated},
		{name: "entity ID taken", body: `{"entityId":"M1","entityType":"MEDIATOR","name":"Salim","phone":"9000000010"}`, svcErr: apperrors.ErrDuplicate, wantCode: http.StatusConflict},
		{name: "OTHER is not a directory type", body: `{"entityId":"X","entityType":"OTHER","name":"n","phone":"p"}`, wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, cps, _ := newCounterpartyRouter()
			if tt.svcErr != nil {
				cps.On("CreateCounterparty", mock.Anything, mock.Anything).Return(nil, tt.svcErr).Once()
			} else {
				cps.On("CreateCounterparty", mock.Anything, mock.Anything).
					Return(&domain.Counterparty{ID: "c1", EntityID: "M1", EntityType: domain.EntityMediator, Name: "Salim"}, nil).Maybe()
			}

			req := httptest.NewRequest(http.MethodPost, "/api/v1/counterparties", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code, w.Body.String())
		})
	}
}

func TestCounterpartyHandler_List(t *testing.T) {
	r, cps, _ := newCounterpartyRouter()
	cps.On("ListCounterparties", mock.Anything, dto.ListCounterpartiesParams{EntityType: "SUPPLIER", Search: "farm"}).
		Return([]domain.Counterparty{{ID: "c1", EntityID: "SUP-01", EntityType: domain.EntitySupplier, Name: "Fresh Farms"}}, nil).Once()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/counterparties?entityType=SUPPLIER&search=farm", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var list []dto.CounterpartyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "SUPPLIER", list[0].EntityType)
}

func TestCounterpartyHandler_DeleteReportsCount(t *testing.T) {
	r, cps, _ := newCounterpartyRouter()
	cps.On("DeleteCounterparty", mock.Anything, "c1").Return(2, nil).Once()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/v1/counterparties/c1", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"deleted":2}`, w.Body.String())
}

func TestCounterpartyHandler_ImportEmployeesFromBody(t *testing.T) {
	r, _, imp := newCounterpartyRouter()
	csv := "E1,Ravi,9000000001,3000\n"
	imp.On("ImportEmployees", mock.Anything, csv).
		Return(&dto.ImportResult{Inserted: 1, Skipped: []dto.ImportRowError{}, Status: "Successfully uploaded 1 employee(s)"}, nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/counterparties/import", strings.NewReader(csv))
	req.Header.Set("Content-Type", "text/csv")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Successfully uploaded 1 employee(s)")
	imp.AssertExpectations(t)
}
