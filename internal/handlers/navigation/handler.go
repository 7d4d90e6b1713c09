package navigation

import (
	"net/http"
	"reception/infras/otel"
	"reception/internal/domains/navigation/model/dto"
	"reception/internal/domains/navigation/service"
	"reception/shared/constant"
	"reception/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Navigation
	otel    otel.Otel
}

func New(service service.Navigation, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/navigation", handler.Resolve)
}

// Resolve returns the billing shell for the caller's role and the active section for a path.
// @Summary Resolve navigation
// @Tags Navigation
// @Produce json
// @Param path query string false "Current path"
// @Success 200 {object} response.Data[dto.ShellResponse]
// @Router /v1/navigation [get]
// @Security BearerAuth
func (handler *Handler) Resolve(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Resolve")
	defer scope.End()

	var req dto.ResolveRequest
	req.FromRequest(request)

	res, err := handler.service.Resolve(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("path", req.Path).Msg("failed to resolve navigation")
		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
