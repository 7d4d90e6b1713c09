package notification

import (
	"net/http"
	"reception/infras/otel"
	"reception/internal/domains/notification/model/dto"
	"reception/internal/domains/notification/service"
	"reception/shared/constant"
	gDto "reception/shared/dto"
	"reception/shared/failure"
	"reception/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
)

const defaultPanelSize = 20

type Handler struct {
	service service.Notification
	otel    otel.Otel
}

func New(service service.Notification, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/notifications", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetNotifications)
		routerGroup.Post("/", handler.PushNotification)
		routerGroup.Post("/read-all", handler.MarkAllRead)
		routerGroup.Post("/{id}/read", handler.MarkRead)
		routerGroup.Delete("/{id}", handler.DeleteNotification)
	})
}

// GetNotifications returns the caller's feed, newest first. Reading the feed marks nothing.
// @Summary List notifications
// @Tags Notification
// @Produce json
// @Param limit query int false "Number of items" default(20)
// @Success 200 {object} response.Data[dto.GetNotificationsResponse]
// @Failure 401 {object} response.Error
// @Router /v1/notifications [get]
// @Security BearerAuth
func (handler *Handler) GetNotifications(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetNotifications")
	defer scope.End()

	var params gDto.QueryParams
	params.FromRequest(request, true, defaultPanelSize)

	res, err := handler.service.List(ctx, params)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get notifications")
		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// PushNotification adds an item to a staff feed and pushes it over the websocket.
// @Summary Push a notification
// @Description Targets user_id, or the caller when user_id is empty.
// @Tags Notification
// @Accept json
// @Produce json
// @Param request body dto.CreateNotificationRequest true "Notification"
// @Success 201 {object} response.Data[dto.NotificationResponse]
// @Failure 400 {object} response.Error
// @Router /v1/notifications [post]
// @Security BearerAuth
func (handler *Handler) PushNotification(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PushNotification")
	defer scope.End()

	var req dto.CreateNotificationRequest
	if err := json.NewDecoder(request.Body).Decode(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode request body")
		response.WithError(writer, failure.BadRequestFromString("invalid request body"))

		return
	}

	res, err := handler.service.Push(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to push notification")
		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Notification pushed " + res.ID)

	response.WithJSON(writer, http.StatusCreated, res)
}

// MarkRead marks one notification read. Repeating the call changes nothing.
// @Summary Mark a notification read
// @Tags Notification
// @Produce json
// @Param id path string true "Notification ID"
// @Success 200 {object} response.Data[dto.MarkReadResponse]
// @Failure 404 {object} response.Error
// @Router /v1/notifications/{id}/read [post]
// @Security BearerAuth
func (handler *Handler) MarkRead(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MarkRead")
	defer scope.End()

	res, err := handler.service.MarkRead(ctx, chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to mark notification read")
		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// MarkAllRead marks every unread notification read.
// @Summary Mark all notifications read
// @Tags Notification
// @Produce json
// @Success 200 {object} response.Data[dto.MarkReadResponse]
// @Router /v1/notifications/read-all [post]
// @Security BearerAuth
func (handler *Handler) MarkAllRead(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MarkAllRead")
	defer scope.End()

	res, err := handler.service.MarkAllRead(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to mark notifications read")
		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// DeleteNotification removes one item from the caller's feed.
// @Summary Delete a notification
// @Tags Notification
// @Produce json
// @Param id path string true "Notification ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/notifications/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteNotification(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteNotification")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(request, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete notification")
		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Notification deleted")
}
