package paymentlink

import (
	"net/http"
	"reception/infras/otel"
	"reception/internal/domains/paymentlink/model/dto"
	"reception/internal/domains/paymentlink/service"
	"reception/shared"
	"reception/shared/constant"
	"reception/shared/failure"
	"reception/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.PaymentLink
	otel    otel.Otel
}

func New(service service.PaymentLink, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/payment-links", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreatePaymentLink)
		routerGroup.Get("/{booking_id}", handler.GetPaymentLink)
		routerGroup.Post("/{booking_id}/share", handler.SharePaymentLink)
	})
}

// CreatePaymentLink creates a hosted payment link for the outstanding balance.
// @Summary Create a payment link
// @Description Amount defaults to the remaining balance and may not exceed it.
// @Tags PaymentLink
// @Accept json
// @Produce json
// @Param request body dto.CreatePaymentLinkRequest true "Payment link"
// @Success 201 {object} response.Data[dto.PaymentLinkResponse]
// @Failure 400 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/payment-links [post]
// @Security BearerAuth
func (handler *Handler) CreatePaymentLink(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreatePaymentLink")
	defer scope.End()

	var req dto.CreatePaymentLinkRequest
	if err := json.NewDecoder(request.Body).Decode(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode request body")
		response.WithError(writer, failure.BadRequestFromString("invalid request body"))

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int("booking_id", req.BookingID).Msg("failed to create payment link")
		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Payment link created " + res.LinkID)

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetPaymentLink returns the last link created for a booking.
// @Summary Get a payment link
// @Tags PaymentLink
// @Produce json
// @Param booking_id path int true "Booking ID"
// @Success 200 {object} response.Data[dto.PaymentLinkResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/payment-links/{booking_id} [get]
// @Security BearerAuth
func (handler *Handler) GetPaymentLink(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPaymentLink")
	defer scope.End()

	bookingID, err := shared.ConvertParamToID(chi.URLParam(request, constant.RequestParamBookingID), constant.RequestParamBookingID)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Get(ctx, bookingID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int("booking_id", bookingID).Msg("failed to get payment link")
		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// SharePaymentLink builds the WhatsApp or SMS deep link for the last created link.
// @Summary Share a payment link
// @Description SMS is only offered to mobile browsers. Other browsers get the message to copy.
// @Tags PaymentLink
// @Accept json
// @Produce json
// @Param booking_id path int true "Booking ID"
// @Param request body dto.ShareRequest true "Channel"
// @Success 200 {object} response.Data[model.Share]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/payment-links/{booking_id}/share [post]
// @Security BearerAuth
func (handler *Handler) SharePaymentLink(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SharePaymentLink")
	defer scope.End()

	bookingID, err := shared.ConvertParamToID(chi.URLParam(request, constant.RequestParamBookingID), constant.RequestParamBookingID)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	var req dto.ShareRequest
	if err = json.NewDecoder(request.Body).Decode(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode request body")
		response.WithError(writer, failure.BadRequestFromString("invalid request body"))

		return
	}

	res, err := handler.service.Share(ctx, bookingID, req, request.Header.Get(constant.RequestHeaderUserAgent))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int("booking_id", bookingID).Msg("failed to share payment link")
		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
