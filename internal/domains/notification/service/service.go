package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Notification=MockNotificationService

import (
	"context"
	"errors"
	"fmt"
	"reception/infras/events"
	"reception/infras/metrics"
	"reception/infras/otel"
	"reception/infras/websocket"
	"reception/internal/domains/notification/model"
	"reception/internal/domains/notification/model/dto"
	"reception/internal/domains/notification/repository"
	"reception/shared/constant"
	gDto "reception/shared/dto"
	"reception/shared/failure"
	"reception/shared/timezone"
	"reception/shared/validator"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const msgNotificationNotFound = "notification not found"

type Notification interface {
	List(ctx context.Context, params gDto.QueryParams) (dto.GetNotificationsResponse, error)
	Push(ctx context.Context, req dto.CreateNotificationRequest) (dto.NotificationResponse, error)
	MarkRead(ctx context.Context, id string) (dto.MarkReadResponse, error)
	MarkAllRead(ctx context.Context) (dto.MarkReadResponse, error)
	Delete(ctx context.Context, id string) error
	HandleEvent(ctx context.Context, event events.Event) error
}

type serviceImpl struct {
	repo repository.Notification
	hub  websocket.Hub
	otel otel.Otel
}

func New(repo repository.Notification, hub websocket.Hub, otel otel.Otel) Notification {
	return &serviceImpl{
		repo: repo,
		hub:  hub,
		otel: otel,
	}
}

func currentUser(ctx context.Context) (string, error) {
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == "" {
		return "", failure.Unauthorized("missing staff identity")
	}

	return user, nil
}

func (s *serviceImpl) List(ctx context.Context, params gDto.QueryParams) (res dto.GetNotificationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListNotifications")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, err := currentUser(ctx)
	if err != nil {
		return res, err
	}

	items, err := s.repo.List(ctx, user, params.Limit)
	if err != nil {
		log.Error().Err(err).Str("user", user).Msg("failed to list notifications")

		return res, failure.InternalError(err)
	}

	res.FromModels(items, timezone.Now())

	if res.UnreadCount, err = s.unread(ctx, user); err != nil {
		log.Error().Err(err).Str("user", user).Msg("failed to count unread notifications")

		return res, err
	}

	return res, nil
}

func (s *serviceImpl) Push(ctx context.Context, req dto.CreateNotificationRequest) (res dto.NotificationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".PushNotification")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	target := req.UserID
	if target == "" {
		if target, err = currentUser(ctx); err != nil {
			return res, err
		}
	}

	now := timezone.Now()
	item := req.ToModel(uuid.NewString(), now)

	if err = s.deliver(ctx, target, item); err != nil {
		return res, failure.InternalError(err)
	}

	res.FromModel(item, now)

	return res, nil
}

func (s *serviceImpl) deliver(ctx context.Context, userID string, item model.Notification) error {
	if err := s.repo.Add(ctx, userID, item); err != nil {
		log.Error().Err(err).Str("user", userID).Msg("failed to store notification")

		return err //nolint:wrapcheck
	}

	metrics.IncNotificationPushed(item.Type)

	var payload dto.NotificationResponse
	payload.FromModel(item, item.CreatedAt)

	if err := s.hub.SendToUser(userID, websocket.TopicNotification, payload); err != nil {
		log.Warn().Err(err).Str("user", userID).Msg("failed to push notification")
	}

	return nil
}

func (s *serviceImpl) MarkRead(ctx context.Context, id string) (res dto.MarkReadResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MarkNotificationRead")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, err := currentUser(ctx)
	if err != nil {
		return res, err
	}

	changed, err := s.repo.MarkRead(ctx, user, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return res, failure.NotFound(msgNotificationNotFound)
		}

		log.Error().Err(err).Str("user", user).Str("id", id).Msg("failed to mark notification read")

		return res, failure.InternalError(err)
	}

	res.ID = id
	if changed {
		res.Changed = 1
	}

	res.UnreadCount, err = s.unread(ctx, user)

	return res, err
}

func (s *serviceImpl) MarkAllRead(ctx context.Context) (res dto.MarkReadResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MarkAllNotificationsRead")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, err := currentUser(ctx)
	if err != nil {
		return res, err
	}

	if res.Changed, err = s.repo.MarkAllRead(ctx, user); err != nil {
		log.Error().Err(err).Str("user", user).Msg("failed to mark notifications read")

		return res, failure.InternalError(err)
	}

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteNotification")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, err := currentUser(ctx)
	if err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, user, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return failure.NotFound(msgNotificationNotFound)
		}

		return failure.InternalError(err)
	}

	return nil
}

func (s *serviceImpl) unread(ctx context.Context, user string) (int, error) {
	count, err := s.repo.Unread(ctx, user)
	if err != nil {
		return 0, failure.InternalError(err)
	}

	return count, nil
}

// HandleEvent turns a domain event into a notification for the staff member who caused it.
func (s *serviceImpl) HandleEvent(ctx context.Context, event events.Event) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".notification."+event.Type)
	defer scope.End()
	defer scope.TraceIfError(err)

	if event.Actor == "" {
		return nil
	}

	item, ok := fromEvent(event)
	if !ok {
		return nil
	}

	return s.deliver(ctx, event.Actor, item)
}

func fromEvent(event events.Event) (model.Notification, bool) {
	item := model.Notification{
		ID:        event.ID,
		CreatedAt: event.CreatedAt,
	}

	if item.ID == "" {
		item.ID = uuid.NewString()
	}

	if item.CreatedAt.IsZero() {
		item.CreatedAt = timezone.Now()
	}

	switch event.Type {
	case events.PaymentRecorded:
		item.Type, item.Priority = model.TypeSuccess, model.PriorityMedium
		item.Title = "Payment recorded"
		item.Message = fmt.Sprintf("Payment recorded for booking #%s", event.Subject)
	case events.CheckoutCompleted:
		item.Type, item.Priority = model.TypeCheckOut, model.PriorityMedium
		item.Title = "Guest checked out"
		item.Message = fmt.Sprintf("Booking #%s has been checked out", event.Subject)
	case events.RefundProcessed:
		item.Type, item.Priority = model.TypeInfo, model.PriorityHigh
		item.Title = "Refund processed"
		item.Message = fmt.Sprintf("Refund processed for payment #%s", event.Subject)
	case events.InvoiceGenerated:
		item.Type, item.Priority = model.TypeInfo, model.PriorityLow
		item.Title = "Invoice generated"
		item.Message = fmt.Sprintf("Invoice generated for booking #%s", event.Subject)
	case events.PaymentLinkCreated:
		item.Type, item.Priority = model.TypeReminder, model.PriorityMedium
		item.Title = "Payment link created"
		item.Message = fmt.Sprintf("Payment link ready for booking #%s", event.Subject)
	case events.RoomStatusChanged:
		item.Type, item.Priority = model.TypeHousekeeping, model.PriorityLow
		item.Title = "Room status updated"
		item.Message = fmt.Sprintf("Room %s status changed", event.Subject)
	default:
		return item, false
	}

	return item, true
}
