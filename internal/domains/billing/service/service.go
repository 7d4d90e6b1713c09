package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Billing=MockBillingService

import (
	"context"
	"reception/config"
	"reception/infras/events"
	"reception/infras/hotelapi"
	"reception/infras/otel"
	"reception/infras/s3"
	"reception/internal/domains/billing/model"
	"reception/internal/domains/billing/model/dto"
	"reception/internal/domains/billing/repository"
	"reception/shared"
	"reception/shared/cache"
	"reception/shared/constant"
	gDto "reception/shared/dto"
	"reception/shared/failure"
	"strconv"

	"github.com/rs/zerolog/log"
)

type Billing interface {
	Stats(ctx context.Context) (dto.StatsResponse, error)
	PaymentHistory(ctx context.Context, params gDto.QueryParams) (dto.GetPaymentsResponse, error)
	Invoices(ctx context.Context) (dto.GetInvoicesResponse, error)
	GenerateInvoice(ctx context.Context, req dto.GenerateInvoiceRequest) (dto.InvoiceResponse, error)
	Refunds(ctx context.Context) (dto.GetRefundsResponse, error)
	ProcessRefund(ctx context.Context, req dto.ProcessRefundRequest) (dto.RefundResponse, error)
	Booking(ctx context.Context, bookingID int) (dto.BookingResponse, error)
	RecordPayment(ctx context.Context, req dto.WalkInPaymentRequest) (dto.PaymentResponse, error)
	ExportPayments(ctx context.Context, params gDto.QueryParams) (model.Export, error)
}

type serviceImpl struct {
	repo  repository.Billing
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	bus   events.Bus
	s3    s3.S3
}

func New(repo repository.Billing, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, bus events.Bus, s3 s3.S3) Billing {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		bus:   bus,
		s3:    s3,
	}
}

func (s *serviceImpl) Stats(ctx context.Context) (res dto.StatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Stats")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(model.EntityName, model.CacheKeyStats)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for billing stats")

		return res, nil
	}

	stats, result, err := s.repo.Stats(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get billing stats")

		return res, hotelapi.ToFailure(err)
	}

	res.FromModel(stats, result)

	if !result.NotConfigured() {
		s.saveCache(ctx, cacheKey, res)
	}

	return res, nil
}

func (s *serviceImpl) PaymentHistory(ctx context.Context, params gDto.QueryParams) (res dto.GetPaymentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".PaymentHistory")
	defer scope.End()
	defer scope.TraceIfError(err)

	if params.Limit <= 0 {
		return res, failure.InvalidLimitParam
	}

	cacheKey := shared.BuildCacheKey(model.EntityName, model.CacheKeyPayments, strconv.Itoa(params.Limit))

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for payment history")

		return res, nil
	}

	payments, err := s.repo.PaymentHistory(ctx, params.Limit)
	if err != nil {
		log.Error().Err(err).Int("limit", params.Limit).Msg("failed to get payment history")

		return res, hotelapi.ToFailure(err)
	}

	res.FromModels(payments, params.Limit)
	s.saveCache(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) Invoices(ctx context.Context) (res dto.GetInvoicesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Invoices")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(model.EntityName, model.CacheKeyInvoices)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	invoices, err := s.repo.Invoices(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get invoices")

		return res, hotelapi.ToFailure(err)
	}

	res.FromModels(invoices)
	s.saveCache(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) GenerateInvoice(ctx context.Context, req dto.GenerateInvoiceRequest) (res dto.InvoiceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GenerateInvoice")
	defer scope.End()
	defer scope.TraceIfError(err)

	invoice, err := s.repo.GenerateInvoice(ctx, req.ToModel())
	if err != nil {
		log.Error().Err(err).Int("booking_id", req.BookingID).Msg("failed to generate invoice")

		return res, hotelapi.ToFailure(err)
	}

	res.FromModel(invoice)

	s.publish(ctx, events.InvoiceGenerated, strconv.Itoa(req.BookingID), res)
	s.invalidate(ctx)

	return res, nil
}

func (s *serviceImpl) Refunds(ctx context.Context) (res dto.GetRefundsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Refunds")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(model.EntityName, model.CacheKeyRefunds)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	refunds, err := s.repo.Refunds(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get refunds")

		return res, hotelapi.ToFailure(err)
	}

	res.FromModels(refunds)
	s.saveCache(ctx, cacheKey, res)

	return res, nil
}

// ProcessRefund refuses amounts above what the booking has paid when the booking is known.
func (s *serviceImpl) ProcessRefund(ctx context.Context, req dto.ProcessRefundRequest) (res dto.RefundResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ProcessRefund")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.BookingID > 0 {
		booking, err := s.repo.Booking(ctx, req.BookingID)
		if err != nil {
			return res, hotelapi.ToFailure(err)
		}

		if req.Amount > booking.PaidAmount.Float() {
			return res, failure.FieldError("amount", "refund amount exceeds the amount paid")
		}
	}

	refund, err := s.repo.ProcessRefund(ctx, req.ToModel())
	if err != nil {
		log.Error().Err(err).Int("payment_id", req.PaymentID).Msg("failed to process refund")

		return res, hotelapi.ToFailure(err)
	}

	res.FromModel(refund)

	s.publish(ctx, events.RefundProcessed, strconv.Itoa(req.PaymentID), res)
	s.invalidate(ctx)

	return res, nil
}

func (s *serviceImpl) Booking(ctx context.Context, bookingID int) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Booking")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.repo.Booking(ctx, bookingID)
	if err != nil {
		log.Error().Err(err).Int("booking_id", bookingID).Msg("failed to get booking")

		return res, hotelapi.ToFailure(err)
	}

	res.FromModel(booking)

	return res, nil
}

// RecordPayment posts a walk-in payment after checking it against the live balance.
func (s *serviceImpl) RecordPayment(ctx context.Context, req dto.WalkInPaymentRequest) (res dto.PaymentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RecordPayment")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.repo.Booking(ctx, req.BookingID)
	if err != nil {
		return res, hotelapi.ToFailure(err)
	}

	if req.Amount > booking.Remaining() {
		return res, failure.FieldError("amount", "amount exceeds the remaining balance")
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	payment, err := s.repo.RecordPayment(ctx, req.ToModel(user))
	if err != nil {
		log.Error().Err(err).Int("booking_id", req.BookingID).Msg("failed to record payment")

		return res, hotelapi.ToFailure(err)
	}

	res.FromModel(payment)
	if res.BookingID == 0 {
		res.BookingID = req.BookingID
	}

	s.publish(ctx, events.PaymentRecorded, strconv.Itoa(req.BookingID), res)
	s.invalidate(ctx)

	return res, nil
}

func (s *serviceImpl) saveCache(ctx context.Context, key string, value any) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, key, value, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Str("cacheKey", key).Msg("failed to save billing cache")
		}
	}()
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, model.EntityName)
	}()
}

func (s *serviceImpl) publish(ctx context.Context, eventType, subject string, payload any) {
	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)

	s.bus.Publish(ctx, events.Event{
		Type:    eventType,
		Actor:   actor,
		Subject: subject,
		Payload: payload,
	})
}
