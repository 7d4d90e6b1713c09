package payment

import (
	"net/http"
	"reception/infras/otel"
	"reception/internal/domains/payment/model/dto"
	"reception/internal/domains/payment/service"
	"reception/shared"
	"reception/shared/constant"
	"reception/shared/failure"
	"reception/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Payment
	otel    otel.Otel
}

func New(service service.Payment, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/payments/flows", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.OpenFlow)
		routerGroup.Get("/{id}", handler.GetFlow)
		routerGroup.Patch("/{id}", handler.EnterFlow)
		routerGroup.Post("/{id}/submit", handler.SubmitFlow)
		routerGroup.Delete("/{id}", handler.CancelFlow)
	})

	router.Post("/bookings/{id}/checkout", handler.Checkout)
}

// OpenFlow starts a payment flow for a booking.
// @Summary Open a payment flow
// @Description Load the booking and open a payment flow prefilled with the remaining balance.
// @Tags Payment
// @Accept json
// @Produce json
// @Param request body dto.OpenFlowRequest true "Booking to collect for"
// @Success 201 {object} response.Data[dto.FlowResponse]
// @Failure 400 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/payments/flows [post]
// @Security BearerAuth
func (handler *Handler) OpenFlow(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".OpenFlow")
	defer scope.End()

	var req dto.OpenFlowRequest
	if err := json.NewDecoder(request.Body).Decode(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode request body")
		response.WithError(writer, failure.BadRequestFromString("invalid request body"))

		return
	}

	res, err := handler.service.Open(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int("booking_id", req.BookingID).Msg("failed to open payment flow")
		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Payment flow opened " + res.ID)

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetFlow returns the current state of a payment flow.
// @Summary Get a payment flow
// @Description Read the form values, preview and state of a payment flow.
// @Tags Payment
// @Produce json
// @Param id path string true "Flow ID"
// @Success 200 {object} response.Data[dto.FlowResponse]
// @Failure 404 {object} response.Error
// @Router /v1/payments/flows/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetFlow(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFlow")
	defer scope.End()

	res, err := handler.service.Get(ctx, chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get payment flow")
		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// EnterFlow updates the form fields of a payment flow.
// @Summary Edit a payment flow
// @Description Set amount, method or notes. Editing clears a previous error.
// @Tags Payment
// @Accept json
// @Produce json
// @Param id path string true "Flow ID"
// @Param request body dto.EnterRequest true "Form values"
// @Success 200 {object} response.Data[dto.FlowResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/payments/flows/{id} [patch]
// @Security BearerAuth
func (handler *Handler) EnterFlow(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".EnterFlow")
	defer scope.End()

	var req dto.EnterRequest
	if err := json.NewDecoder(request.Body).Decode(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode request body")
		response.WithError(writer, failure.BadRequestFromString("invalid request body"))

		return
	}

	res, err := handler.service.Enter(ctx, chi.URLParam(request, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update payment flow")
		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// SubmitFlow records the payment.
// @Summary Submit a payment flow
// @Description Validate the amount against the remaining balance and record the payment.
// @Description Validation failures stay on the flow and are returned with state "editing".
// @Tags Payment
// @Produce json
// @Param id path string true "Flow ID"
// @Success 200 {object} response.Data[dto.FlowResponse]
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/payments/flows/{id}/submit [post]
// @Security BearerAuth
func (handler *Handler) SubmitFlow(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitFlow")
	defer scope.End()

	res, err := handler.service.Submit(ctx, chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to submit payment flow")
		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Payment flow submitted, state " + res.State)

	response.WithJSON(writer, http.StatusOK, res)
}

// CancelFlow closes a payment flow without recording anything.
// @Summary Cancel a payment flow
// @Tags Payment
// @Produce json
// @Param id path string true "Flow ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/payments/flows/{id} [delete]
// @Security BearerAuth
func (handler *Handler) CancelFlow(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelFlow")
	defer scope.End()

	if err := handler.service.Cancel(ctx, chi.URLParam(request, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel payment flow")
		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Payment flow cancelled")
}

// Checkout checks a guest out, or opens a payment flow when a balance is still due.
// @Summary Check out a booking
// @Description Direct checkout when nothing is owed, otherwise a blocking checkout-mode payment flow.
// @Tags Payment
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} response.Data[dto.CheckoutResponse]
// @Failure 400 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/bookings/{id}/checkout [post]
// @Security BearerAuth
func (handler *Handler) Checkout(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Checkout")
	defer scope.End()

	bookingID, err := shared.ConvertParamToID(chi.URLParam(request, constant.RequestParamID), constant.RequestParamID)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Checkout(ctx, bookingID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int("booking_id", bookingID).Msg("failed to check out booking")
		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
