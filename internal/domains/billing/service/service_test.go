package service_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"reception/config"
	"reception/infras/events"
	"reception/infras/hotelapi"
	"reception/infras/otel/mocks"
	s3Mocks "reception/infras/s3/mocks"
	billingMocks "reception/internal/domains/billing/mocks"
	"reception/internal/domains/billing/model"
	"reception/internal/domains/billing/model/dto"
	"reception/internal/domains/billing/service"
	"reception/shared/cache"
	cacheMocks "reception/shared/cache/mocks"
	"reception/shared/constant"
	"reception/shared/currency"
	gDto "reception/shared/dto"
	"reception/shared/failure"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	repo  *billingMocks.MockBilling
	cache *cacheMocks.MockRedisCache
	s3    *s3Mocks.MockS3
	bus   events.Bus
	svc   service.Billing
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Cache.TTL = 60
	cfg.Billing.ExportPrefix = "exports"

	f := &fixture{
		repo:  billingMocks.NewMockBilling(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
		s3:    s3Mocks.NewMockS3(ctrl),
		bus:   events.New(),
	}

	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	f.svc = service.New(f.repo, cfg, f.cache, mocks.NewOtel(), f.bus, f.s3)

	return f
}

func booking(total, paid float64) model.Booking {
	return model.Booking{
		ID:          42,
		GuestName:   "Asha Rao",
		RoomNumber:  "204",
		TotalAmount: currency.Amount(total),
		PaidAmount:  currency.Amount(paid),
		Status:      "checked_in",
	}
}

func TestBillingService_Stats(t *testing.T) {
	t.Run("cache hit skips the hotel api", func(t *testing.T) {
		f := newFixture(t)
		f.cache.EXPECT().Get(gomock.Any(), "reception:billing:billing_stats", gomock.Any()).Return(nil)

		_, err := f.svc.Stats(context.Background())
		assert.NoError(t, err)
	})

	t.Run("miss fetches and formats", func(t *testing.T) {
		f := newFixture(t)
		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		f.repo.EXPECT().Stats(gomock.Any()).Return(model.Stats{
			TotalRevenue:  123456.5,
			PendingAmount: 4000,
			TodayPayments: 3,
		}, hotelapi.Result{}, nil)

		res, err := f.svc.Stats(context.Background())
		require.NoError(t, err)

		assert.Equal(t, 123456.5, res.TotalRevenue)
		assert.Equal(t, "₹1,23,456.50", res.Display.TotalRevenue)
		assert.Equal(t, "₹4,000.00", res.Display.PendingAmount)
		assert.Equal(t, 3, res.TodayPayments)
		assert.False(t, res.NotConfigured)
	})

	t.Run("tables missing is a warning not an error", func(t *testing.T) {
		f := newFixture(t)
		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		f.repo.EXPECT().Stats(gomock.Any()).Return(model.Stats{}, hotelapi.Result{
			SystemStatus: hotelapi.SystemStatusTablesMissing,
			Message:      "Billing tables are not installed",
		}, nil)

		res, err := f.svc.Stats(context.Background())
		require.NoError(t, err)

		assert.True(t, res.NotConfigured)
		assert.Equal(t, "Billing tables are not installed", res.Message)
	})

	t.Run("transport failure maps to bad gateway", func(t *testing.T) {
		f := newFixture(t)
		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		f.repo.EXPECT().Stats(gomock.Any()).Return(model.Stats{}, hotelapi.Result{}, hotelapi.ErrTransport)

		_, err := f.svc.Stats(context.Background())
		assert.Equal(t, http.StatusBadGateway, failure.GetCode(err))
	})
}

func TestBillingService_PaymentHistory(t *testing.T) {
	t.Run("invalid limit", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.PaymentHistory(context.Background(), gDto.QueryParams{})
		assert.Equal(t, failure.InvalidLimitParam, err)
	})

	t.Run("totals payments", func(t *testing.T) {
		f := newFixture(t)
		f.cache.EXPECT().Get(gomock.Any(), "reception:billing:payment_history:5", gomock.Any()).Return(cache.Nil)
		f.repo.EXPECT().PaymentHistory(gomock.Any(), 5).Return([]model.Payment{
			{ID: 1, Amount: 1500.25, PaymentMethod: "cash"},
			{ID: 2, Amount: 499.75, PaymentMethod: "upi"},
		}, nil)

		res, err := f.svc.PaymentHistory(context.Background(), gDto.QueryParams{Limit: 5})
		require.NoError(t, err)

		assert.Len(t, res.Payments, 2)
		assert.Equal(t, 2000.0, res.Total)
		assert.Equal(t, "₹1,500.25", res.Payments[0].AmountDisplay)
	})
}

func TestBillingService_RecordPayment(t *testing.T) {
	req := dto.WalkInPaymentRequest{BookingID: 42, Amount: 4000, PaymentMethod: "upi"}

	t.Run("amount above remaining never reaches the api", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Booking(gomock.Any(), 42).Return(booking(10000, 7000), nil)

		_, err := f.svc.RecordPayment(context.Background(), req)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.Equal(t, "amount", failure.GetField(err))
	})

	t.Run("records and publishes", func(t *testing.T) {
		f := newFixture(t)

		var published []events.Event
		f.bus.SubscribeAll(func(_ context.Context, event events.Event) error {
			published = append(published, event)

			return nil
		})

		f.repo.EXPECT().Booking(gomock.Any(), 42).Return(booking(10000, 6000), nil)
		f.repo.EXPECT().RecordPayment(gomock.Any(), model.PaymentRequest{
			BookingID:     42,
			Amount:        4000,
			PaymentMethod: "upi",
			ReceivedBy:    "staff-1",
		}).Return(model.Payment{ID: 9, Amount: 4000, ReceiptNumber: "RCP-0009", PaymentMethod: "upi"}, nil)

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "staff-1")
		res, err := f.svc.RecordPayment(ctx, req)
		require.NoError(t, err)

		assert.Equal(t, 42, res.BookingID)
		assert.Equal(t, "RCP-0009", res.ReceiptNumber)
		require.Len(t, published, 1)
		assert.Equal(t, events.PaymentRecorded, published[0].Type)
		assert.Equal(t, "staff-1", published[0].Actor)
		assert.Equal(t, "42", published[0].Subject)
	})

	t.Run("rejection maps to unprocessable", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Booking(gomock.Any(), 42).Return(booking(10000, 6000), nil)
		f.repo.EXPECT().RecordPayment(gomock.Any(), gomock.Any()).
			Return(model.Payment{}, &hotelapi.APIError{Action: "walk_in_payment", Message: "Booking is closed"})

		_, err := f.svc.RecordPayment(context.Background(), req)
		assert.Equal(t, http.StatusUnprocessableEntity, failure.GetCode(err))
		assert.EqualError(t, err, "Booking is closed")
	})
}

func TestBillingService_ProcessRefund(t *testing.T) {
	t.Run("above paid amount", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Booking(gomock.Any(), 42).Return(booking(10000, 2000), nil)

		_, err := f.svc.ProcessRefund(context.Background(), dto.ProcessRefundRequest{
			PaymentID: 7, BookingID: 42, Amount: 2500, Reason: "overcharged",
		})
		assert.Equal(t, "amount", failure.GetField(err))
	})

	t.Run("without booking goes straight to the api", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().ProcessRefund(gomock.Any(), model.RefundRequest{PaymentID: 7, Amount: 500, Reason: "early checkout"}).
			Return(model.Refund{ID: 3, PaymentID: 7, Amount: 500, Status: "processed"}, nil)

		res, err := f.svc.ProcessRefund(context.Background(), dto.ProcessRefundRequest{
			PaymentID: 7, Amount: 500, Reason: "early checkout",
		})
		require.NoError(t, err)
		assert.Equal(t, "processed", res.Status)
		assert.Equal(t, "₹500.00", res.AmountDisplay)
	})
}

func TestBillingService_Booking(t *testing.T) {
	f := newFixture(t)
	b := booking(10000, 6000)
	f.repo.EXPECT().Booking(gomock.Any(), 42).Return(b, nil)

	res, err := f.svc.Booking(context.Background(), 42)
	require.NoError(t, err)

	assert.Equal(t, 4000.0, res.RemainingAmount)
	assert.False(t, res.CanCheckout)
	assert.Equal(t, "204", res.RoomNumber)
}

func TestBillingService_ExportPayments(t *testing.T) {
	payments := []model.Payment{
		{ID: 1, BookingID: 42, Amount: 1500, PaymentMethod: "cash", ReceiptNumber: "RCP-1", GuestName: "Asha Rao"},
	}

	t.Run("workbook only when s3 is off", func(t *testing.T) {
		f := newFixture(t)
		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))
		f.repo.EXPECT().PaymentHistory(gomock.Any(), 5).Return(payments, nil)
		f.s3.EXPECT().Enabled().Return(false)

		res, err := f.svc.ExportPayments(context.Background(), gDto.QueryParams{Limit: 5})
		require.NoError(t, err)
		assert.Empty(t, res.URL)
		assert.Contains(t, res.FileName, "payments-")

		file, err := excelize.OpenReader(bytes.NewReader(res.Content))
		require.NoError(t, err)
		defer file.Close()

		header, err := file.GetCellValue("Payments", "A1")
		require.NoError(t, err)
		assert.Equal(t, "Receipt", header)

		receipt, err := file.GetCellValue("Payments", "A2")
		require.NoError(t, err)
		assert.Equal(t, "RCP-1", receipt)
	})

	t.Run("uploads when s3 is on", func(t *testing.T) {
		f := newFixture(t)
		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		f.repo.EXPECT().PaymentHistory(gomock.Any(), 5).Return(payments, nil)
		f.s3.EXPECT().Enabled().Return(true)
		f.s3.EXPECT().UploadFileBytes(gomock.Any(), "exports", gomock.Any(), constant.ContentTypeXLSX, gomock.Any()).
			Return("https://files.example.com/exports/payments.xlsx", nil)

		res, err := f.svc.ExportPayments(context.Background(), gDto.QueryParams{Limit: 5})
		require.NoError(t, err)
		assert.Equal(t, "https://files.example.com/exports/payments.xlsx", res.URL)
	})
}
