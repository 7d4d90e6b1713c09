package sync

import (
	"net/http"
	"reception/infras/otel"
	"reception/infras/websocket"
	"reception/internal/domains/sync/model/dto"
	"reception/internal/domains/sync/service"
	"reception/shared/constant"
	"reception/shared/failure"
	"reception/shared/validator"
	"reception/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Syncer
	hub     websocket.Hub
	otel    otel.Otel
}

func New(service service.Syncer, hub websocket.Hub, otel otel.Otel) Handler {
	return Handler{
		service: service,
		hub:     hub,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/sync", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetSnapshot)
		routerGroup.Post("/refresh", handler.Refresh)
		routerGroup.Put("/auto", handler.SetAutoSync)
	})

	router.Get("/ws", handler.Subscribe)
}

// GetSnapshot returns the last billing snapshot without fetching.
// @Summary Billing sync status
// @Description Latest stats with their freshness, error and auto-sync state.
// @Tags Sync
// @Produce json
// @Success 200 {object} response.Data[dto.Snapshot]
// @Router /v1/sync [get]
// @Security BearerAuth
func (handler *Handler) GetSnapshot(writer http.ResponseWriter, request *http.Request) {
	_, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSnapshot")
	defer scope.End()

	response.WithJSON(writer, http.StatusOK, handler.service.Snapshot())
}

// Refresh fetches billing stats now.
// @Summary Refresh billing data
// @Description Manual refresh. A failed fetch keeps the previous stats and reports the error.
// @Tags Sync
// @Produce json
// @Success 200 {object} response.Data[dto.Snapshot]
// @Failure 422 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/sync/refresh [post]
// @Security BearerAuth
func (handler *Handler) Refresh(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Refresh")
	defer scope.End()

	res, err := handler.service.Refresh(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to refresh billing data")
		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// SetAutoSync turns periodic refresh on or off.
// @Summary Toggle auto-sync
// @Tags Sync
// @Accept json
// @Produce json
// @Param request body dto.AutoSyncRequest true "Auto-sync state"
// @Success 200 {object} response.Data[dto.Snapshot]
// @Failure 400 {object} response.Error
// @Router /v1/sync/auto [put]
// @Security BearerAuth
func (handler *Handler) SetAutoSync(writer http.ResponseWriter, request *http.Request) {
	_, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetAutoSync")
	defer scope.End()

	var req dto.AutoSyncRequest
	if err := json.NewDecoder(request.Body).Decode(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode request body")
		response.WithError(writer, failure.BadRequestFromString("invalid request body"))

		return
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	res := handler.service.SetAutoSync(*req.Enabled)

	scope.SetAttribute("sync.auto", *req.Enabled)

	response.WithJSON(writer, http.StatusOK, res)
}

// Subscribe upgrades to a websocket that receives sync snapshots, notifications, room changes and clock ticks.
// @Summary Dashboard websocket
// @Tags Sync
// @Success 101
// @Failure 401 {object} response.Error
// @Router /v1/ws [get]
// @Security BearerAuth
func (handler *Handler) Subscribe(writer http.ResponseWriter, request *http.Request) {
	userID, _ := request.Context().Value(constant.ContextKeyUserID).(string)
	if userID == constant.Empty {
		response.WithError(writer, failure.Unauthorized("Missing staff identity"))

		return
	}

	if err := handler.hub.HandleRequest(writer, request, userID); err != nil {
		log.Warn().Err(err).Str("user_id", userID).Msg("failed to open dashboard socket")
	}
}
