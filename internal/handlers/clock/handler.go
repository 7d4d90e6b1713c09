package clock

import (
	"net/http"
	"reception/infras/otel"
	"reception/internal/domains/clock/model/dto"
	"reception/internal/domains/clock/service"
	"reception/shared/constant"
	"reception/shared/validator"
	"reception/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Clock
	otel    otel.Otel
}

func New(service service.Clock, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/clock", handler.GetClock)
}

// GetClock formats the local time and, when given a server timestamp, the drift against it.
// @Summary Dashboard clock
// @Tags Clock
// @Produce json
// @Param server_time query string false "Server time, 2006-01-02 15:04:05 or RFC3339"
// @Param format query string false "12h or 24h" Enums(12h, 24h)
// @Param seconds query bool false "Show seconds"
// @Success 200 {object} response.Data[dto.ClockResponse]
// @Failure 400 {object} response.Error
// @Router /v1/clock [get]
// @Security BearerAuth
func (handler *Handler) GetClock(writer http.ResponseWriter, request *http.Request) {
	_, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetClock")
	defer scope.End()

	var req dto.ClockRequest
	req.FromRequest(request)

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Now(req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to read clock")
		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
