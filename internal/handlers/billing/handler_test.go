package billing_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"reception/config"
	"reception/infras/hotelapi"
	"reception/infras/otel/mocks"
	billingMocks "reception/internal/domains/billing/mocks"
	"reception/internal/domains/billing/model"
	"reception/internal/domains/billing/model/dto"
	"reception/internal/handlers/billing"
	"reception/shared/constant"
	gDto "reception/shared/dto"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setup(t *testing.T) (*billingMocks.MockBillingService, http.Handler) {
	t.Helper()

	cfg := &config.Config{}
	cfg.HotelAPI.HistoryLimit = 5

	svc := billingMocks.NewMockBillingService(gomock.NewController(t))
	handler := billing.New(svc, cfg, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return svc, router
}

func TestGetPayments(t *testing.T) {
	tests := []struct {
		name  string
		query string
		limit int
	}{
		{name: "default limit from config", query: "", limit: 5},
		{name: "explicit limit", query: "?limit=20", limit: 20},
		{name: "limit is capped", query: "?limit=100000", limit: constant.MaxValueHistoryLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := setup(t)
			svc.EXPECT().PaymentHistory(gomock.Any(), gDto.QueryParams{Limit: tt.limit}).
				Return(dto.GetPaymentsResponse{}, nil)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/billing/payments"+tt.query, nil))

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestGetStats(t *testing.T) {
	t.Run("transport failure is a bad gateway", func(t *testing.T) {
		svc, router := setup(t)
		svc.EXPECT().Stats(gomock.Any()).
			Return(dto.StatsResponse{}, hotelapi.ToFailure(hotelapi.ErrTransport))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/billing/stats", nil))

		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})

	t.Run("rejection is unprocessable with the upstream message", func(t *testing.T) {
		svc, router := setup(t)
		svc.EXPECT().Stats(gomock.Any()).
			Return(dto.StatsResponse{}, hotelapi.ToFailure(&hotelapi.APIError{Action: "billing_stats", Message: "Session expired"}))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/billing/stats", nil))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), "Session expired")
	})
}

func TestExportPayments(t *testing.T) {
	t.Run("streams the workbook", func(t *testing.T) {
		svc, router := setup(t)
		svc.EXPECT().ExportPayments(gomock.Any(), gDto.QueryParams{Limit: constant.MaxValueHistoryLimit}).
			Return(model.Export{FileName: "payments.xlsx", Content: []byte("xlsx")}, nil)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/billing/payments/export", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, constant.ContentTypeXLSX, rec.Header().Get(constant.RequestHeaderContentType))
		assert.Contains(t, rec.Header().Get(constant.RequestHeaderContentDisposition), "payments.xlsx")
		assert.Equal(t, "xlsx", rec.Body.String())
	})

	t.Run("returns the uploaded url", func(t *testing.T) {
		svc, router := setup(t)
		svc.EXPECT().ExportPayments(gomock.Any(), gomock.Any()).
			Return(model.Export{FileName: "payments.xlsx", URL: "https://cdn.example.com/exports/payments.xlsx"}, nil)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/billing/payments/export?limit=10", nil))

		assert.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Data dto.ExportResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "https://cdn.example.com/exports/payments.xlsx", body.Data.URL)
	})
}

func TestRecordPayment(t *testing.T) {
	t.Run("malformed body", func(t *testing.T) {
		_, router := setup(t)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/billing/payments", strings.NewReader("amount=1")))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("service error is rendered", func(t *testing.T) {
		svc, router := setup(t)
		svc.EXPECT().RecordPayment(gomock.Any(), gomock.Any()).Return(dto.PaymentResponse{}, errors.New("boom"))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/billing/payments",
			strings.NewReader(`{"booking_id":1,"amount":100,"payment_method":"cash"}`)))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestGetBooking(t *testing.T) {
	svc, router := setup(t)
	svc.EXPECT().Booking(gomock.Any(), 42).Return(dto.BookingResponse{ID: 42, RemainingAmount: 4000}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/billing/bookings/42", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"remaining_amount":4000`)
}
