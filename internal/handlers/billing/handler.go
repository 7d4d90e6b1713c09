package billing

import (
	"net/http"
	"reception/config"
	"reception/infras/otel"
	"reception/internal/domains/billing/model/dto"
	"reception/internal/domains/billing/service"
	"reception/shared"
	"reception/shared/constant"
	gDto "reception/shared/dto"
	"reception/shared/failure"
	"reception/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Billing
	cfg     *config.Config
	otel    otel.Otel
}

func New(service service.Billing, cfg *config.Config, otel otel.Otel) Handler {
	return Handler{
		service: service,
		cfg:     cfg,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/billing", func(routerGroup chi.Router) {
		routerGroup.Get("/stats", handler.GetStats)
		routerGroup.Get("/payments", handler.GetPayments)
		routerGroup.Post("/payments", handler.RecordPayment)
		routerGroup.Get("/payments/export", handler.ExportPayments)
		routerGroup.Get("/invoices", handler.GetInvoices)
		routerGroup.Post("/invoices", handler.GenerateInvoice)
		routerGroup.Get("/refunds", handler.GetRefunds)
		routerGroup.Post("/refunds", handler.ProcessRefund)
		routerGroup.Get("/bookings/{id}", handler.GetBooking)
	})
}

// GetStats returns the revenue and outstanding figures shown on the billing dashboard.
// @Summary Billing stats
// @Tags Billing
// @Produce json
// @Success 200 {object} response.Data[dto.StatsResponse]
// @Failure 422 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/billing/stats [get]
// @Security BearerAuth
func (handler *Handler) GetStats(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStats")
	defer scope.End()

	res, err := handler.service.Stats(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get billing stats")
		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetPayments returns the most recent payments.
// @Summary Payment history
// @Tags Billing
// @Produce json
// @Param limit query int false "Number of payments" default(5)
// @Success 200 {object} response.Data[dto.GetPaymentsResponse]
// @Failure 422 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/billing/payments [get]
// @Security BearerAuth
func (handler *Handler) GetPayments(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPayments")
	defer scope.End()

	var params gDto.QueryParams
	params.FromRequest(request, true, handler.cfg.HotelAPI.HistoryLimit)

	res, err := handler.service.PaymentHistory(ctx, params)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get payment history")
		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// ExportPayments renders the payment history as an xlsx workbook.
// @Summary Export payment history
// @Description Returns the workbook itself, or a download URL when object storage is configured.
// @Tags Billing
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce json
// @Param limit query int false "Number of payments" default(500)
// @Success 200 {object} response.Data[dto.ExportResponse]
// @Failure 422 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/billing/payments/export [get]
// @Security BearerAuth
func (handler *Handler) ExportPayments(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExportPayments")
	defer scope.End()

	var params gDto.QueryParams
	params.FromRequest(request, true, constant.MaxValueHistoryLimit)

	export, err := handler.service.ExportPayments(ctx, params)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to export payment history")
		response.WithError(writer, err)

		return
	}

	if export.URL != constant.Empty {
		response.WithJSON(writer, http.StatusOK, dto.ExportResponse{FileName: export.FileName, URL: export.URL})

		return
	}

	response.WithFile(writer, constant.ContentTypeXLSX, export.FileName, export.Content)
}

// RecordPayment records a walk-in payment without going through a payment flow.
// @Summary Record a walk-in payment
// @Tags Billing
// @Accept json
// @Produce json
// @Param request body dto.WalkInPaymentRequest true "Payment"
// @Success 201 {object} response.Data[dto.PaymentResponse]
// @Failure 400 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/billing/payments [post]
// @Security BearerAuth
func (handler *Handler) RecordPayment(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RecordPayment")
	defer scope.End()

	var req dto.WalkInPaymentRequest
	if err := json.NewDecoder(request.Body).Decode(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode request body")
		response.WithError(writer, failure.BadRequestFromString("invalid request body"))

		return
	}

	res, err := handler.service.RecordPayment(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int("booking_id", req.BookingID).Msg("failed to record walk-in payment")
		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Walk-in payment recorded " + res.ReceiptNumber)

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetInvoices lists generated invoices.
// @Summary List invoices
// @Tags Billing
// @Produce json
// @Success 200 {object} response.Data[dto.GetInvoicesResponse]
// @Failure 422 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/billing/invoices [get]
// @Security BearerAuth
func (handler *Handler) GetInvoices(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetInvoices")
	defer scope.End()

	res, err := handler.service.Invoices(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get invoices")
		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GenerateInvoice issues an invoice for a booking.
// @Summary Generate an invoice
// @Tags Billing
// @Accept json
// @Produce json
// @Param request body dto.GenerateInvoiceRequest true "Invoice"
// @Success 201 {object} response.Data[dto.InvoiceResponse]
// @Failure 400 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/billing/invoices [post]
// @Security BearerAuth
func (handler *Handler) GenerateInvoice(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GenerateInvoice")
	defer scope.End()

	var req dto.GenerateInvoiceRequest
	if err := json.NewDecoder(request.Body).Decode(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode request body")
		response.WithError(writer, failure.BadRequestFromString("invalid request body"))

		return
	}

	res, err := handler.service.GenerateInvoice(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int("booking_id", req.BookingID).Msg("failed to generate invoice")
		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetRefunds lists processed refunds.
// @Summary List refunds
// @Tags Billing
// @Produce json
// @Success 200 {object} response.Data[dto.GetRefundsResponse]
// @Failure 422 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/billing/refunds [get]
// @Security BearerAuth
func (handler *Handler) GetRefunds(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRefunds")
	defer scope.End()

	res, err := handler.service.Refunds(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get refunds")
		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// ProcessRefund refunds part or all of a payment.
// @Summary Process a refund
// @Tags Billing
// @Accept json
// @Produce json
// @Param request body dto.ProcessRefundRequest true "Refund"
// @Success 201 {object} response.Data[dto.RefundResponse]
// @Failure 400 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/billing/refunds [post]
// @Security BearerAuth
func (handler *Handler) ProcessRefund(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ProcessRefund")
	defer scope.End()

	var req dto.ProcessRefundRequest
	if err := json.NewDecoder(request.Body).Decode(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode request body")
		response.WithError(writer, failure.BadRequestFromString("invalid request body"))

		return
	}

	res, err := handler.service.ProcessRefund(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int("payment_id", req.PaymentID).Msg("failed to process refund")
		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetBooking returns booking totals with the derived remaining balance.
// @Summary Booking billing details
// @Tags Billing
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 400 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/billing/bookings/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBooking")
	defer scope.End()

	bookingID, err := shared.ConvertParamToID(chi.URLParam(request, constant.RequestParamID), constant.RequestParamID)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Booking(ctx, bookingID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int("booking_id", bookingID).Msg("failed to get booking")
		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
