package room

import (
	"net/http"
	"reception/infras/otel"
	"reception/internal/domains/room/model/dto"
	"reception/internal/domains/room/service"
	"reception/shared/constant"
	"reception/shared/failure"
	"reception/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Room
	otel    otel.Otel
}

func New(service service.Room, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetRooms)
		routerGroup.Post("/sync", handler.SyncRooms)
		routerGroup.Patch("/{id}/status", handler.UpdateRoomStatus)
	})
}

// GetRooms retrieves room statuses with summary counts.
// @Summary Get room statuses
// @Description Retrieve rooms filtered by floor and status. Summary and floors always cover every room.
// @Tags Room
// @Produce json
// @Param floor query int false "Floor"
// @Param status query string false "Status" Enums(available, booked, occupied, cleaning, maintenance)
// @Success 200 {object} response.Data[dto.GetRoomsResponse]
// @Failure 400 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/rooms [get]
// @Security BearerAuth
func (handler *Handler) GetRooms(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	var req dto.ListRoomsRequest
	if err := req.FromRequest(request); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse room filter")
		response.WithError(writer, err)

		return
	}

	res, err := handler.service.List(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rooms")
		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// SyncRooms asks the hotel backend to recompute room statuses from bookings.
// @Summary Sync room statuses
// @Tags Room
// @Produce json
// @Success 200 {object} response.Data[dto.SyncResponse]
// @Failure 422 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/rooms/sync [post]
// @Security BearerAuth
func (handler *Handler) SyncRooms(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SyncRooms")
	defer scope.End()

	res, err := handler.service.Sync(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to sync rooms")
		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Room statuses synced by user " + user)

	response.WithJSON(writer, http.StatusOK, res)
}

// UpdateRoomStatus sets the status of one room.
// @Summary Update room status
// @Tags Room
// @Accept json
// @Produce json
// @Param id path string true "Room number"
// @Param request body dto.UpdateRoomStatusRequest true "Status"
// @Success 200 {object} response.Data[dto.UpdateRoomStatusResponse]
// @Failure 400 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/rooms/{id}/status [patch]
// @Security BearerAuth
func (handler *Handler) UpdateRoomStatus(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoomStatus")
	defer scope.End()

	var req dto.UpdateRoomStatusRequest
	if err := json.NewDecoder(request.Body).Decode(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode request body")
		response.WithError(writer, failure.BadRequestFromString("invalid request body"))

		return
	}

	req.RoomNumber = chi.URLParam(request, constant.RequestParamID)

	res, err := handler.service.Update(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("room_number", req.RoomNumber).Msg("failed to update room status")
		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
