package guest

import (
	"net/http"
	"reception/infras/otel"
	"reception/internal/domains/guest/model/dto"
	"reception/internal/domains/guest/service"
	"reception/shared/constant"
	"reception/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Guest
	otel    otel.Otel
}

func New(service service.Guest, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/guests", handler.SearchGuests)
}

// SearchGuests ranks guest history by phone, room and fuzzy name match.
// @Summary Search guests
// @Description Suggests the closest known name when nothing matches.
// @Tags Guest
// @Produce json
// @Param q query string false "Name, phone or room number"
// @Param limit query int false "Number of guests" default(20)
// @Success 200 {object} response.Data[dto.SearchGuestsResponse]
// @Failure 422 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/guests [get]
// @Security BearerAuth
func (handler *Handler) SearchGuests(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SearchGuests")
	defer scope.End()

	var req dto.SearchGuestsRequest
	req.FromRequest(request)

	res, err := handler.service.Search(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to search guests")
		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
