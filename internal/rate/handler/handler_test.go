package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vpsworth/internal/domain"
	"vpsworth/internal/rate"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockValidator struct{ mock.Mock }

func (m *MockValidator) ValidateCurrencyPair(from, to string) error {
	args := m.Called(from, to)
	return args.Error(0)
}

func (m *MockValidator) SupportedCodes() []string {
	args := m.Called()
	codes, _ := args.Get(0).([]string)
	return codes
}

type MockResolver struct{ mock.Mock }

func (m *MockResolver) Resolve(ctx context.Context, from, to string) (domain.RateResult, error) {
	args := m.Called(ctx, from, to)
	res, _ := args.Get(0).(domain.RateResult)
	return res, args.Error(1)
}

type successEnvelope struct {
	Success bool             `json:"success"`
	Data    ExchangeRateData `json:"data"`
}

type errorEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// --- GetExchangeRate ---

func TestHandler_GetExchangeRate_ValidationErrors(t *testing.T) {
	cases := []struct {
		name         string
		validatorErr error
	}{
		{name: "from required", validatorErr: rate.ErrFromRequired},
		{name: "to required", validatorErr: rate.ErrToRequired},
		{name: "from unsupported", validatorErr: rate.ErrFromUnsupported},
		{name: "to unsupported", validatorErr: rate.ErrToUnsupported},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mockValidator := new(MockValidator)
			mockResolver := new(MockResolver)
			h := NewRateHandler(mockValidator, mockResolver)

			req := httptest.NewRequest(http.MethodGet, "/api/exchange-rate?from=+usd+&to=rub", nil)
			rr := httptest.NewRecorder()

			mockValidator.On("ValidateCurrencyPair", "USD", "RUB").Return(tc.validatorErr).Once()

			h.GetExchangeRate(rr, req)

			require.Equal(t, http.StatusBadRequest, rr.Code)
			require.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			var ee errorEnvelope
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &ee))
			require.False(t, ee.Success)
			require.Equal(t, tc.validatorErr.Error(), ee.Error)

			mockResolver.AssertNotCalled(t, "Resolve", mock.Anything, mock.Anything, mock.Anything)
			mockValidator.AssertExpectations(t)
		})
	}
}

func TestHandler_GetExchangeRate_Success(t *testing.T) {
	mockValidator := new(MockValidator)
	mockResolver := new(MockResolver)
	h := NewRateHandler(mockValidator, mockResolver)

	fetchedAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	mockValidator.On("ValidateCurrencyPair", "USD", "CNY").Return(nil).Once()
	mockResolver.On("Resolve", mock.Anything, "USD", "CNY").Return(domain.RateResult{
		Rate:      7.1999,
		Source:    "open.er-api.com",
		FetchedAt: fetchedAt,
		Degraded:  false,
	}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/exchange-rate?from=USD&to=CNY", nil)
	rr := httptest.NewRecorder()

	h.GetExchangeRate(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var se successEnvelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &se))
	require.True(t, se.Success)
	require.Equal(t, "USD", se.Data.Base)
	require.Equal(t, "CNY", se.Data.Target)
	require.InDelta(t, 7.1999, se.Data.Rate, 1e-9)
	require.Equal(t, "2025-03-01T12:00:00Z", se.Data.Timestamp)
	require.Equal(t, "open.er-api.com", se.Data.Source)
	require.False(t, se.Data.FromCache)

	mockValidator.AssertExpectations(t)
	mockResolver.AssertExpectations(t)
}

func TestHandler_GetExchangeRate_DegradedSetsFromCache(t *testing.T) {
	mockValidator := new(MockValidator)
	mockResolver := new(MockResolver)
	h := NewRateHandler(mockValidator, mockResolver)

	mockValidator.On("ValidateCurrencyPair", "USD", "KRW").Return(nil).Once()
	mockResolver.On("Resolve", mock.Anything, "USD", "KRW").Return(domain.RateResult{
		Rate:      1338.2501,
		Source:    "exchangerate.host",
		FetchedAt: time.Now().Add(-5 * time.Hour),
		Degraded:  true,
	}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/exchange-rate?from=USD&to=KRW", nil)
	rr := httptest.NewRecorder()

	h.GetExchangeRate(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var se successEnvelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &se))
	require.True(t, se.Data.FromCache)
}

func TestHandler_GetExchangeRate_NoRateAvailable(t *testing.T) {
	mockValidator := new(MockValidator)
	mockResolver := new(MockResolver)
	h := NewRateHandler(mockValidator, mockResolver)

	mockValidator.On("ValidateCurrencyPair", "USD", "CNY").Return(nil).Once()
	mockResolver.On("Resolve", mock.Anything, "USD", "CNY").Return(domain.RateResult{}, domain.ErrNoRateAvailable).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/exchange-rate?from=USD&to=CNY", nil)
	rr := httptest.NewRecorder()

	h.GetExchangeRate(rr, req)

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	var ee errorEnvelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &ee))
	require.False(t, ee.Success)
	require.Equal(t, domain.ErrNoRateAvailable.Error(), ee.Error)
}

// --- GetSupportedCodes ---

func TestHandler_GetSupportedCodes(t *testing.T) {
	mockValidator := new(MockValidator)
	h := NewRateHandler(mockValidator, new(MockResolver))

	mockValidator.On("SupportedCodes").Return([]string{"CNY", "EUR", "GBP", "JPY", "KRW", "USD"}).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/currencies", nil)
	rr := httptest.NewRecorder()

	h.GetSupportedCodes(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var resp struct {
		Success bool               `json:"success"`
		Data    SupportedCodesData `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.Equal(t, []string{"CNY", "EUR", "GBP", "JPY", "KRW", "USD"}, resp.Data.Codes)
	mockValidator.AssertExpectations(t)
}
