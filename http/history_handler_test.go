package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"investment-calculator/domain"
)

func TestListHistoryHandler(t *testing.T) {
	svc := newTestInvestmentService()
	ctx := context.Background()

	for _, duration := range []int{5, 10, 0} {
		_, err := svc.Calculate(ctx, domain.InvestmentInput{
			InitialInvestment: 1000,
			ExpectedReturn:    5,
			Duration:          duration,
		})
		require.NoError(t, err)
	}

	handler := NewHistoryHandler(svc, zap.NewNop())
	req := httptest.NewRequest(http.MethodGet, "/investment/history?limit=10", nil)
	w := httptest.NewRecorder()

	handler.ListHistory(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var records []domain.CalculationRecord
	require.NoError(t, json.NewDecoder(w.Body).Decode(&records))
	require.Len(t, records, 2, "empty projections are not recorded")
	assert.Equal(t, 10, records[0].Years)
	assert.Equal(t, 5, records[1].Years)
}

func TestListHistoryHandler_BadLimit(t *testing.T) {
	handler := NewHistoryHandler(newTestInvestmentService(), zap.NewNop())

	for _, limit := range []string{"abc", "-4"} {
		req := httptest.NewRequest(http.MethodGet, "/investment/history?limit="+limit, nil)
		w := httptest.NewRecorder()

		handler.ListHistory(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, "limit %q", limit)
	}
}

func TestListHistoryHandler_MethodNotAllowed(t *testing.T) {
	handler := NewHistoryHandler(newTestInvestmentService(), zap.NewNop())

	req := httptest.NewRequest(http.MethodDelete, "/investment/history", nil)
	w := httptest.NewRecorder()

	handler.ListHistory(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
