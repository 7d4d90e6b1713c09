package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"reception/infras/hotelapi"
	"reception/internal/domains/billing/model"
	"strconv"
)

type Billing interface {
	Stats(ctx context.Context) (model.Stats, hotelapi.Result, error)
	PaymentHistory(ctx context.Context, limit int) ([]model.Payment, error)
	Invoices(ctx context.Context) ([]model.Invoice, error)
	GenerateInvoice(ctx context.Context, req model.InvoiceRequest) (model.Invoice, error)
	Refunds(ctx context.Context) ([]model.Refund, error)
	ProcessRefund(ctx context.Context, req model.RefundRequest) (model.Refund, error)
	Booking(ctx context.Context, bookingID int) (model.Booking, error)
	RecordPayment(ctx context.Context, req model.PaymentRequest) (model.Payment, error)
	Checkout(ctx context.Context, bookingID int) error
}

type repositoryImpl struct {
	client hotelapi.Client
}

func New(client hotelapi.Client) Billing {
	return &repositoryImpl{client: client}
}

func (r *repositoryImpl) Stats(ctx context.Context) (model.Stats, hotelapi.Result, error) {
	var stats model.Stats

	res, err := r.client.Do(ctx, hotelapi.Request{
		Script:  hotelapi.ScriptBilling,
		Action:  model.ActionBillingStats,
		Payload: hotelapi.PayloadStats,
	}, &stats)
	if err != nil {
		return stats, res, fmt.Errorf("failed to fetch billing stats: %w", err)
	}

	return stats, res, nil
}

func (r *repositoryImpl) PaymentHistory(ctx context.Context, limit int) ([]model.Payment, error) {
	payments := []model.Payment{}

	_, err := r.client.Do(ctx, hotelapi.Request{
		Script:  hotelapi.ScriptBilling,
		Action:  model.ActionPaymentHistory,
		Query:   url.Values{"limit": {strconv.Itoa(limit)}},
		Payload: hotelapi.PayloadPayments,
	}, &payments)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch payment history: %w", err)
	}

	return payments, nil
}

func (r *repositoryImpl) Invoices(ctx context.Context) ([]model.Invoice, error) {
	invoices := []model.Invoice{}

	_, err := r.client.Do(ctx, hotelapi.Request{
		Script:  hotelapi.ScriptBilling,
		Action:  model.ActionInvoices,
		Payload: hotelapi.PayloadData,
	}, &invoices)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch invoices: %w", err)
	}

	return invoices, nil
}

func (r *repositoryImpl) GenerateInvoice(ctx context.Context, req model.InvoiceRequest) (model.Invoice, error) {
	var invoice model.Invoice

	_, err := r.client.Do(ctx, hotelapi.Request{
		Method:  http.MethodPost,
		Script:  hotelapi.ScriptBilling,
		Action:  model.ActionGenerateInvoice,
		Body:    req,
		Payload: hotelapi.PayloadData,
	}, &invoice)
	if err != nil {
		return invoice, fmt.Errorf("failed to generate invoice for booking %d: %w", req.BookingID, err)
	}

	return invoice, nil
}

func (r *repositoryImpl) Refunds(ctx context.Context) ([]model.Refund, error) {
	refunds := []model.Refund{}

	_, err := r.client.Do(ctx, hotelapi.Request{
		Script:  hotelapi.ScriptBilling,
		Action:  model.ActionRefunds,
		Payload: hotelapi.PayloadData,
	}, &refunds)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch refunds: %w", err)
	}

	return refunds, nil
}

func (r *repositoryImpl) ProcessRefund(ctx context.Context, req model.RefundRequest) (model.Refund, error) {
	var refund model.Refund

	_, err := r.client.Do(ctx, hotelapi.Request{
		Method:  http.MethodPost,
		Script:  hotelapi.ScriptBilling,
		Action:  model.ActionProcessRefund,
		Body:    req,
		Payload: hotelapi.PayloadData,
	}, &refund)
	if err != nil {
		return refund, fmt.Errorf("failed to process refund for payment %d: %w", req.PaymentID, err)
	}

	return refund, nil
}

func (r *repositoryImpl) Booking(ctx context.Context, bookingID int) (model.Booking, error) {
	var booking model.Booking

	_, err := r.client.Do(ctx, hotelapi.Request{
		Script:  hotelapi.ScriptCheckout,
		Action:  model.ActionBookingDetails,
		Query:   url.Values{"booking_id": {strconv.Itoa(bookingID)}},
		Payload: hotelapi.PayloadData,
	}, &booking)
	if err != nil {
		return booking, fmt.Errorf("failed to fetch booking %d: %w", bookingID, err)
	}

	return booking, nil
}

func (r *repositoryImpl) RecordPayment(ctx context.Context, req model.PaymentRequest) (model.Payment, error) {
	var payment model.Payment

	_, err := r.client.Do(ctx, hotelapi.Request{
		Method:  http.MethodPost,
		Script:  hotelapi.ScriptWalkIn,
		Body:    req,
		Payload: hotelapi.PayloadData,
	}, &payment)
	if err != nil {
		return payment, fmt.Errorf("failed to record payment for booking %d: %w", req.BookingID, err)
	}

	return payment, nil
}

func (r *repositoryImpl) Checkout(ctx context.Context, bookingID int) error {
	_, err := r.client.Do(ctx, hotelapi.Request{
		Method:  http.MethodPost,
		Script:  hotelapi.ScriptCheckout,
		Action:  model.ActionCheckout,
		Body:    model.CheckoutRequest{BookingID: bookingID},
		Payload: hotelapi.PayloadNone,
	}, nil)
	if err != nil {
		return fmt.Errorf("failed to checkout booking %d: %w", bookingID, err)
	}

	return nil
}
