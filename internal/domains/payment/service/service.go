package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"reception/config"
	"reception/infras/events"
	"reception/infras/hotelapi"
	"reception/infras/metrics"
	"reception/infras/otel"
	billingModel "reception/internal/domains/billing/model"
	billingRepo "reception/internal/domains/billing/repository"
	"reception/internal/domains/payment/model"
	"reception/internal/domains/payment/model/dto"
	"reception/internal/domains/payment/repository"
	"reception/shared"
	"reception/shared/cache"
	"reception/shared/constant"
	"reception/shared/failure"
	"reception/shared/timezone"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	msgFlowNotFound  = "payment flow not found"
	msgFlowClosed    = "payment flow is closed"
	msgUnreachable   = "Unable to reach the hotel system. Please try again."
	msgPaymentSaved  = "Payment recorded successfully"
	defaultCloseWait = 2 * time.Second
)

type Payment interface {
	Open(ctx context.Context, req dto.OpenFlowRequest) (dto.FlowResponse, error)
	Get(ctx context.Context, id string) (dto.FlowResponse, error)
	Enter(ctx context.Context, id string, req dto.EnterRequest) (dto.FlowResponse, error)
	Submit(ctx context.Context, id string) (dto.FlowResponse, error)
	Cancel(ctx context.Context, id string) error
	Checkout(ctx context.Context, bookingID int) (dto.CheckoutResponse, error)
	Cleanup(ctx context.Context) error
}

type serviceImpl struct {
	sessions   repository.Session
	billing    billingRepo.Billing
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
	bus        events.Bus
	closeDelay time.Duration
}

func New(sessions repository.Session, billing billingRepo.Billing, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, bus events.Bus) Payment {
	closeDelay := defaultCloseWait
	if cfg.Payment.CloseDelayMillis > 0 {
		closeDelay = time.Duration(cfg.Payment.CloseDelayMillis) * time.Millisecond
	}

	return &serviceImpl{
		sessions:   sessions,
		billing:    billing,
		cfg:        cfg,
		cache:      cache,
		otel:       otel,
		bus:        bus,
		closeDelay: closeDelay,
	}
}

func (s *serviceImpl) Open(ctx context.Context, req dto.OpenFlowRequest) (res dto.FlowResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".OpenPaymentFlow")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.billing.Booking(ctx, req.BookingID)
	if err != nil {
		log.Error().Err(err).Int("booking_id", req.BookingID).Msg("failed to load booking for payment flow")

		return res, hotelapi.ToFailure(err)
	}

	flow, err := s.open(ctx, model.ModePayment, booking)
	if err != nil {
		return res, err
	}

	flow.Lock()
	defer flow.Unlock()

	res.FromModel(flow)

	return res, nil
}

func (s *serviceImpl) open(ctx context.Context, mode model.Mode, booking billingModel.Booking) (*model.Flow, error) {
	staffID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	flow := model.NewFlow(uuid.NewString(), staffID, mode, booking, timezone.Now())
	if err := flow.Open(timezone.Now()); err != nil {
		return nil, failure.InternalError(err)
	}

	metrics.IncPaymentTransition(string(model.StateEntering))
	s.sessions.Save(flow)

	log.Info().Str("flow_id", flow.ID).Str("mode", string(mode)).Int("booking_id", booking.ID.Int()).Msg("payment flow opened")

	return flow, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.FlowResponse, err error) {
	flow, err := s.lookup(ctx, id)
	if err != nil {
		return res, err
	}

	flow.Lock()
	defer flow.Unlock()

	res.FromModel(flow)

	return res, nil
}

func (s *serviceImpl) Enter(ctx context.Context, id string, req dto.EnterRequest) (res dto.FlowResponse, err error) {
	flow, err := s.lookup(ctx, id)
	if err != nil {
		return res, err
	}

	flow.Lock()
	defer flow.Unlock()

	if flow.Cancelled {
		return res, failure.Conflict(msgFlowClosed)
	}

	switch flow.State {
	case model.StateEntering:
	case model.StateSubmitting:
		return res, failure.SubmitInProgress
	default:
		return res, failure.Conflict(msgFlowClosed)
	}

	flow.Enter(req.AmountInput(), req.PaymentMethod, req.Notes, timezone.Now())
	res.FromModel(flow)

	return res, nil
}

// Submit validates locally, then posts the payment. Invalid input never reaches the hotel API.
func (s *serviceImpl) Submit(ctx context.Context, id string) (res dto.FlowResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SubmitPayment")
	defer scope.End()
	defer scope.TraceIfError(err)

	flow, err := s.lookup(ctx, id)
	if err != nil {
		return res, err
	}

	req, err := s.beginSubmit(flow)
	if err != nil {
		return res, err
	}

	payment, err := s.billing.RecordPayment(ctx, req)

	flow.Lock()
	defer flow.Unlock()

	now := timezone.Now()

	if err != nil {
		log.Error().Err(err).Str("flow_id", flow.ID).Int("booking_id", req.BookingID).Msg("payment submission failed")

		_ = flow.Transition(model.StateError, now)
		metrics.IncPaymentTransition(string(model.StateError))

		flow.Fail("", submitErrorMessage(err))

		_ = flow.Transition(model.StateEntering, now)
		metrics.IncPaymentTransition(string(model.StateEntering))

		return res, hotelapi.ToFailure(err)
	}

	if err = flow.Succeed(payment.ReceiptNumber, msgPaymentSaved, now); err != nil {
		return res, failure.InternalError(err)
	}

	metrics.IncPaymentTransition(string(model.StateSuccess))
	log.Info().Str("flow_id", flow.ID).Int("booking_id", req.BookingID).Float64("amount", req.Amount).Msg("payment recorded")

	s.publish(ctx, events.PaymentRecorded, strconv.Itoa(req.BookingID), map[string]any{
		"booking_id":     req.BookingID,
		"amount":         req.Amount,
		"payment_method": req.PaymentMethod,
		"receipt_number": payment.ReceiptNumber,
		"guest_name":     flow.Booking.GuestName,
		"room_number":    flow.Booking.RoomNumber.String(),
	})

	completion := context.WithoutCancel(ctx)
	flow.SetCloseTimer(time.AfterFunc(s.closeDelay, func() {
		s.complete(completion, flow)
	}))

	res.FromModel(flow)

	return res, nil
}

func (s *serviceImpl) beginSubmit(flow *model.Flow) (billingModel.PaymentRequest, error) {
	flow.Lock()
	defer flow.Unlock()

	if flow.Cancelled {
		return billingModel.PaymentRequest{}, failure.Conflict(msgFlowClosed)
	}

	switch flow.State {
	case model.StateEntering:
	case model.StateSubmitting:
		return billingModel.PaymentRequest{}, failure.SubmitInProgress
	default:
		return billingModel.PaymentRequest{}, failure.Conflict(msgFlowClosed)
	}

	if err := flow.Validate(); err != nil {
		var fail *failure.Failure
		if errors.As(err, &fail) {
			flow.Fail(fail.Field, fail.Message)
		}

		return billingModel.PaymentRequest{}, err
	}

	if err := flow.Transition(model.StateSubmitting, timezone.Now()); err != nil {
		return billingModel.PaymentRequest{}, failure.InternalError(err)
	}

	metrics.IncPaymentTransition(string(model.StateSubmitting))

	return billingModel.PaymentRequest{
		BookingID:     flow.Booking.ID.Int(),
		Amount:        flow.Amount(),
		PaymentMethod: flow.PaymentMethod,
		Notes:         flow.Notes,
		ReceivedBy:    flow.StaffID,
	}, nil
}

// complete closes a successful flow after the confirmation delay and notifies listeners.
func (s *serviceImpl) complete(ctx context.Context, flow *model.Flow) {
	flow.Lock()

	if flow.State != model.StateSuccess || flow.Cancelled {
		flow.Unlock()

		return
	}

	if err := flow.Close(timezone.Now()); err != nil {
		flow.Unlock()
		log.Error().Err(err).Str("flow_id", flow.ID).Msg("failed to close payment flow")

		return
	}

	metrics.IncPaymentTransition(string(model.StateIdle))

	bookingID := flow.Booking.ID.Int()
	settled := flow.Remaining() == 0
	checkout := flow.Mode == model.ModeCheckout
	flow.Unlock()

	if checkout && settled {
		err := s.checkout(ctx, bookingID)

		flow.Lock()
		flow.CheckedOut = err == nil
		if err != nil {
			flow.CheckoutError = submitErrorMessage(err)
		}
		flow.Unlock()
	}

	shared.InvalidateCaches(ctx, s.cache, billingModel.EntityName)
	s.publish(ctx, events.PaymentFlowClosed, strconv.Itoa(bookingID), map[string]any{
		"flow_id":    flow.ID,
		"booking_id": bookingID,
	})
}

// Cancel discards a flow. A flow with a payment in flight cannot be cancelled.
func (s *serviceImpl) Cancel(ctx context.Context, id string) error {
	flow, err := s.lookup(ctx, id)
	if err != nil {
		return err
	}

	flow.Lock()

	if flow.State == model.StateSubmitting {
		flow.Unlock()

		return failure.SubmitInProgress
	}

	flow.Cancelled = true
	flow.StopCloseTimer()
	flow.Unlock()

	if _, ok := s.sessions.Delete(id); !ok {
		return failure.NotFound(msgFlowNotFound)
	}

	return nil
}

// Cleanup drops abandoned flows. It runs as a scheduled job.
func (s *serviceImpl) Cleanup(_ context.Context) error {
	if removed := s.sessions.Cleanup(timezone.Now()); removed > 0 {
		log.Info().Int("removed", removed).Msg("expired payment flows removed")
	}

	return nil
}

func (s *serviceImpl) lookup(ctx context.Context, id string) (*model.Flow, error) {
	flow, ok := s.sessions.Get(id)
	if !ok {
		return nil, failure.NotFound(msgFlowNotFound)
	}

	staffID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if staffID != "" && flow.StaffID != "" && staffID != flow.StaffID {
		return nil, failure.NotFound(msgFlowNotFound)
	}

	return flow, nil
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

func submitErrorMessage(err error) string {
	if apiErr, ok := hotelapi.AsAPIError(err); ok {
		return apiErr.Error()
	}

	return msgUnreachable
}
