package service

import (
	"context"
	"errors"
	"fmt"
	"reception/config"
	"reception/infras/events"
	"reception/infras/hotelapi"
	"reception/infras/otel"
	billingRepo "reception/internal/domains/billing/repository"
	"reception/internal/domains/paymentlink/model"
	"reception/internal/domains/paymentlink/model/dto"
	"reception/internal/domains/paymentlink/repository"
	"reception/shared"
	"reception/shared/cache"
	"reception/shared/constant"
	"reception/shared/currency"
	"reception/shared/failure"
	"reception/shared/validator"
	"strconv"

	"github.com/rs/zerolog/log"
)

const (
	fieldAmount       = "amount"
	msgNoBalance      = "This booking has no outstanding balance"
	msgLinkNotFound   = "No payment link has been created for this booking"
	msgAmountExceeded = "Amount cannot exceed the remaining balance of %s"
	msgAmountTooSmall = "Amount must be at least 0.01"
)

type PaymentLink interface {
	Create(ctx context.Context, req dto.CreatePaymentLinkRequest) (dto.PaymentLinkResponse, error)
	Get(ctx context.Context, bookingID int) (dto.PaymentLinkResponse, error)
	Share(ctx context.Context, bookingID int, req dto.ShareRequest, userAgent string) (model.Share, error)
}

type serviceImpl struct {
	repo    repository.PaymentLink
	billing billingRepo.Billing
	cfg     *config.Config
	cache   cache.RedisCache
	otel    otel.Otel
	bus     events.Bus
}

func New(repo repository.PaymentLink, billing billingRepo.Billing, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, bus events.Bus) PaymentLink {
	return &serviceImpl{
		repo:    repo,
		billing: billing,
		cfg:     cfg,
		cache:   cache,
		otel:    otel,
		bus:     bus,
	}
}

func cacheKey(bookingID int) string {
	return shared.BuildCacheKey(model.EntityName, strconv.Itoa(bookingID))
}

// Create validates the phone before any network call, then caps the amount at the live balance.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreatePaymentLinkRequest) (res dto.PaymentLinkResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreatePaymentLink")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	booking, err := s.billing.Booking(ctx, req.BookingID)
	if err != nil {
		log.Error().Err(err).Int("booking_id", req.BookingID).Msg("failed to load booking for payment link")

		return res, hotelapi.ToFailure(err)
	}

	remaining := booking.Remaining()
	if remaining <= 0 {
		return res, failure.FieldError(fieldAmount, msgNoBalance)
	}

	amount := remaining
	if req.Amount != 0 {
		amount = currency.Round2(req.Amount)
	}

	if amount <= 0 {
		return res, failure.FieldError(fieldAmount, msgAmountTooSmall)
	}

	if amount > remaining {
		return res, failure.FieldError(fieldAmount, fmt.Sprintf(msgAmountExceeded, currency.Format(remaining)))
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	createReq := req.ToModel(amount, user)

	link, err := s.repo.Create(ctx, createReq)
	if err != nil {
		log.Error().Err(err).Int("booking_id", req.BookingID).Msg("failed to create payment link")

		return res, hotelapi.ToFailure(err)
	}

	res.FromModel(link, createReq, s.cfg.App.Name)

	if err = s.cache.Save(ctx, cacheKey(req.BookingID), res, s.cfg.Cache.TTL); err != nil {
		log.Warn().Err(err).Int("booking_id", req.BookingID).Msg("failed to keep payment link")
	}

	s.bus.Publish(ctx, events.Event{
		Type:    events.PaymentLinkCreated,
		Actor:   user,
		Subject: strconv.Itoa(req.BookingID),
		Payload: res,
	})

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, bookingID int) (res dto.PaymentLinkResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetPaymentLink")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.cache.Get(ctx, cacheKey(bookingID), &res); err != nil {
		if errors.Is(err, cache.Nil) {
			return res, failure.NotFound(msgLinkNotFound)
		}

		log.Error().Err(err).Int("booking_id", bookingID).Msg("failed to read payment link")

		return res, failure.InternalError(err)
	}

	return res, nil
}

// Share composes a deep link for the stored payment link. Nothing is sent from the server.
func (s *serviceImpl) Share(ctx context.Context, bookingID int, req dto.ShareRequest, userAgent string) (res model.Share, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SharePaymentLink")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	link, err := s.Get(ctx, bookingID)
	if err != nil {
		return res, err
	}

	return model.ShareVia(req.Channel, link.CustomerPhone, link.Message, userAgent), nil
}
