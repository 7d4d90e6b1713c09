package dto

import (
	"reception/infras/hotelapi"
	"reception/internal/domains/billing/model"
	"reception/shared/currency"
)

type StatsResponse struct {
	TotalRevenue   float64 `json:"total_revenue"`
	TodayRevenue   float64 `json:"today_revenue"`
	MonthRevenue   float64 `json:"month_revenue"`
	PendingAmount  float64 `json:"pending_amount"`
	TotalRefunds   float64 `json:"total_refunds"`
	TotalPayments  int     `json:"total_payments"`
	TodayPayments  int     `json:"today_payments"`
	ActiveBookings int     `json:"active_bookings"`
	ServerTime     string  `json:"server_time,omitempty"`
	SystemStatus   string  `json:"system_status,omitempty"`
	NotConfigured  bool    `json:"not_configured"`
	Message        string  `json:"message,omitempty"`
	Display        struct {
		TotalRevenue  string `json:"total_revenue"`
		TodayRevenue  string `json:"today_revenue"`
		MonthRevenue  string `json:"month_revenue"`
		PendingAmount string `json:"pending_amount"`
		TotalRefunds  string `json:"total_refunds"`
	} `json:"display"`
}

func (s *StatsResponse) FromModel(stats model.Stats, res hotelapi.Result) {
	s.TotalRevenue = stats.TotalRevenue.Float()
	s.TodayRevenue = stats.TodayRevenue.Float()
	s.MonthRevenue = stats.MonthRevenue.Float()
	s.PendingAmount = stats.PendingAmount.Float()
	s.TotalRefunds = stats.TotalRefunds.Float()
	s.TotalPayments = stats.TotalPayments.Int()
	s.TodayPayments = stats.TodayPayments.Int()
	s.ActiveBookings = stats.ActiveBookings.Int()
	s.ServerTime = stats.ServerTime
	s.SystemStatus = res.SystemStatus
	s.NotConfigured = res.NotConfigured()
	s.Message = res.Message

	s.Display.TotalRevenue = currency.Format(s.TotalRevenue)
	s.Display.TodayRevenue = currency.Format(s.TodayRevenue)
	s.Display.MonthRevenue = currency.Format(s.MonthRevenue)
	s.Display.PendingAmount = currency.Format(s.PendingAmount)
	s.Display.TotalRefunds = currency.Format(s.TotalRefunds)
}

type PaymentResponse struct {
	ID            int     `json:"id"`
	BookingID     int     `json:"booking_id"`
	Amount        float64 `json:"amount"`
	AmountDisplay string  `json:"amount_display"`
	PaymentMethod string  `json:"payment_method"`
	ReceiptNumber string  `json:"receipt_number"`
	PaymentDate   string  `json:"payment_date"`
	GuestName     string  `json:"guest_name"`
	RoomNumber    string  `json:"room_number"`
	Notes         string  `json:"notes,omitempty"`
}

func (p *PaymentResponse) FromModel(payment model.Payment) {
	p.ID = payment.ID.Int()
	p.BookingID = payment.BookingID.Int()
	p.Amount = payment.Amount.Float()
	p.AmountDisplay = currency.Format(p.Amount)
	p.PaymentMethod = payment.PaymentMethod
	p.ReceiptNumber = payment.ReceiptNumber
	p.PaymentDate = payment.PaymentDate
	p.GuestName = payment.GuestName
	p.RoomNumber = payment.RoomNumber.String()
	p.Notes = payment.Notes
}

type GetPaymentsResponse struct {
	Payments []PaymentResponse `json:"payments"`
	Total    float64           `json:"total"`
	Limit    int               `json:"limit"`
}

func (r *GetPaymentsResponse) FromModels(payments []model.Payment, limit int) {
	r.Limit = limit
	r.Payments = make([]PaymentResponse, len(payments))

	for i, payment := range payments {
		r.Payments[i].FromModel(payment)
		r.Total += r.Payments[i].Amount
	}

	r.Total = currency.Round2(r.Total)
}

type InvoiceResponse struct {
	ID            int     `json:"id"`
	InvoiceNumber string  `json:"invoice_number"`
	BookingID     int     `json:"booking_id"`
	GuestName     string  `json:"guest_name"`
	RoomNumber    string  `json:"room_number"`
	Subtotal      float64 `json:"subtotal"`
	TaxAmount     float64 `json:"tax_amount"`
	TotalAmount   float64 `json:"total_amount"`
	TotalDisplay  string  `json:"total_display"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"created_at"`
}

func (i *InvoiceResponse) FromModel(invoice model.Invoice) {
	i.ID = invoice.ID.Int()
	i.InvoiceNumber = invoice.InvoiceNumber
	i.BookingID = invoice.BookingID.Int()
	i.GuestName = invoice.GuestName
	i.RoomNumber = invoice.RoomNumber.String()
	i.Subtotal = invoice.Subtotal.Float()
	i.TaxAmount = invoice.TaxAmount.Float()
	i.TotalAmount = invoice.TotalAmount.Float()
	i.TotalDisplay = currency.Format(i.TotalAmount)
	i.Status = invoice.Status
	i.CreatedAt = invoice.CreatedAt
}

type GetInvoicesResponse struct {
	Invoices []InvoiceResponse `json:"invoices"`
}

func (r *GetInvoicesResponse) FromModels(invoices []model.Invoice) {
	r.Invoices = make([]InvoiceResponse, len(invoices))
	for i, invoice := range invoices {
		r.Invoices[i].FromModel(invoice)
	}
}

type RefundResponse struct {
	ID            int     `json:"id"`
	PaymentID     int     `json:"payment_id"`
	BookingID     int     `json:"booking_id"`
	GuestName     string  `json:"guest_name"`
	Amount        float64 `json:"amount"`
	AmountDisplay string  `json:"amount_display"`
	Reason        string  `json:"reason"`
	RefundMethod  string  `json:"refund_method,omitempty"`
	Status        string  `json:"status"`
	ProcessedAt   string  `json:"processed_at"`
}

func (r *RefundResponse) FromModel(refund model.Refund) {
	r.ID = refund.ID.Int()
	r.PaymentID = refund.PaymentID.Int()
	r.BookingID = refund.BookingID.Int()
	r.GuestName = refund.GuestName
	r.Amount = refund.Amount.Float()
	r.AmountDisplay = currency.Format(r.Amount)
	r.Reason = refund.Reason
	r.RefundMethod = refund.RefundMethod
	r.Status = refund.Status
	r.ProcessedAt = refund.ProcessedAt
}

type GetRefundsResponse struct {
	Refunds []RefundResponse `json:"refunds"`
}

func (r *GetRefundsResponse) FromModels(refunds []model.Refund) {
	r.Refunds = make([]RefundResponse, len(refunds))
	for i, refund := range refunds {
		r.Refunds[i].FromModel(refund)
	}
}

type BookingResponse struct {
	ID               int     `json:"id"`
	GuestName        string  `json:"guest_name"`
	GuestPhone       string  `json:"guest_phone,omitempty"`
	RoomNumber       string  `json:"room_number"`
	CheckIn          string  `json:"check_in"`
	CheckOut         string  `json:"check_out"`
	TotalAmount      float64 `json:"total_amount"`
	PaidAmount       float64 `json:"paid_amount"`
	RemainingAmount  float64 `json:"remaining_amount"`
	RemainingDisplay string  `json:"remaining_display"`
	Status           string  `json:"status"`
	CanCheckout      bool    `json:"can_checkout"`
}

func (b *BookingResponse) FromModel(booking model.Booking) {
	b.ID = booking.ID.Int()
	b.GuestName = booking.GuestName
	b.GuestPhone = booking.GuestPhone
	b.RoomNumber = booking.RoomNumber.String()
	b.CheckIn = booking.CheckIn
	b.CheckOut = booking.CheckOut
	b.TotalAmount = booking.TotalAmount.Float()
	b.PaidAmount = booking.PaidAmount.Float()
	b.RemainingAmount = booking.Remaining()
	b.RemainingDisplay = currency.Format(b.RemainingAmount)
	b.Status = booking.Status
	b.CanCheckout = b.RemainingAmount == 0
}

type WalkInPaymentRequest struct {
	BookingID     int     `json:"booking_id"     validate:"required,min=1"`
	Amount        float64 `json:"amount"         validate:"required,gt=0"`
	PaymentMethod string  `json:"payment_method" validate:"required,paymentmethod"`
	Notes         string  `json:"notes"          validate:"omitempty,max=500"`
}

func (w *WalkInPaymentRequest) ToModel(receivedBy string) model.PaymentRequest {
	return model.PaymentRequest{
		BookingID:     w.BookingID,
		Amount:        currency.Round2(w.Amount),
		PaymentMethod: w.PaymentMethod,
		Notes:         w.Notes,
		ReceivedBy:    receivedBy,
	}
}

type GenerateInvoiceRequest struct {
	BookingID int     `json:"booking_id" validate:"required,min=1"`
	TaxRate   float64 `json:"tax_rate"   validate:"omitempty,min=0,max=100"`
	Notes     string  `json:"notes"      validate:"omitempty,max=500"`
}

func (g *GenerateInvoiceRequest) ToModel() model.InvoiceRequest {
	return model.InvoiceRequest{
		BookingID: g.BookingID,
		TaxRate:   g.TaxRate,
		Notes:     g.Notes,
	}
}

type ProcessRefundRequest struct {
	PaymentID    int     `json:"payment_id"    validate:"required,min=1"`
	BookingID    int     `json:"booking_id"    validate:"omitempty,min=1"`
	Amount       float64 `json:"amount"        validate:"required,gt=0"`
	Reason       string  `json:"reason"        validate:"required,max=500"`
	RefundMethod string  `json:"refund_method" validate:"omitempty,paymentmethod"`
}

func (p *ProcessRefundRequest) ToModel() model.RefundRequest {
	return model.RefundRequest{
		PaymentID:    p.PaymentID,
		BookingID:    p.BookingID,
		Amount:       currency.Round2(p.Amount),
		Reason:       p.Reason,
		RefundMethod: p.RefundMethod,
	}
}

type ExportResponse struct {
	FileName string `json:"file_name"`
	URL      string `json:"url"`
}
