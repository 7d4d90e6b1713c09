package model

import (
	"reception/shared/currency"
	gDto "reception/shared/dto"
)

const (
	EntityName = "billing"

	CacheKeyStats    = "billing_stats"
	CacheKeyPayments = "payment_history"
	CacheKeyInvoices = "invoices"
	CacheKeyRefunds  = "refunds"
)

// Hotel API actions.
const (
	ActionBillingStats    = "billing_stats"
	ActionPaymentHistory  = "payment_history"
	ActionInvoices        = "invoices"
	ActionGenerateInvoice = "generate_invoice"
	ActionRefunds         = "refunds"
	ActionProcessRefund   = "process_refund"
	ActionBookingDetails  = "booking_details"
	ActionCheckout        = "checkout"
)

type Booking struct {
	ID          gDto.FlexInt    `json:"id"`
	GuestName   string          `json:"guest_name"`
	GuestPhone  string          `json:"guest_phone"`
	RoomNumber  gDto.FlexString `json:"room_number"`
	CheckIn     string          `json:"check_in"`
	CheckOut    string          `json:"check_out"`
	TotalAmount currency.Amount `json:"total_amount"`
	PaidAmount  currency.Amount `json:"paid_amount"`
	Status      string          `json:"status"`
}

// Remaining is always derived. A remaining_amount sent by the API is ignored.
func (b Booking) Remaining() float64 {
	return currency.Remaining(b.TotalAmount.Float(), b.PaidAmount.Float())
}

type Payment struct {
	ID            gDto.FlexInt    `json:"id"`
	BookingID     gDto.FlexInt    `json:"booking_id"`
	Amount        currency.Amount `json:"amount"`
	PaymentMethod string          `json:"payment_method"`
	ReceiptNumber string          `json:"receipt_number"`
	PaymentDate   string          `json:"payment_date"`
	GuestName     string          `json:"guest_name"`
	RoomNumber    gDto.FlexString `json:"room_number"`
	Notes         string          `json:"notes"`
}

type Stats struct {
	TotalRevenue   currency.Amount `json:"total_revenue"`
	TodayRevenue   currency.Amount `json:"today_revenue"`
	MonthRevenue   currency.Amount `json:"month_revenue"`
	PendingAmount  currency.Amount `json:"pending_amount"`
	TotalRefunds   currency.Amount `json:"total_refunds"`
	TotalPayments  gDto.FlexInt    `json:"total_payments"`
	TodayPayments  gDto.FlexInt    `json:"today_payments"`
	ActiveBookings gDto.FlexInt    `json:"active_bookings"`
	ServerTime     string          `json:"server_time"`
}

type Invoice struct {
	ID            gDto.FlexInt    `json:"id"`
	InvoiceNumber string          `json:"invoice_number"`
	BookingID     gDto.FlexInt    `json:"booking_id"`
	GuestName     string          `json:"guest_name"`
	RoomNumber    gDto.FlexString `json:"room_number"`
	Subtotal      currency.Amount `json:"subtotal"`
	TaxAmount     currency.Amount `json:"tax_amount"`
	TotalAmount   currency.Amount `json:"total_amount"`
	Status        string          `json:"status"`
	CreatedAt     string          `json:"created_at"`
}

type Refund struct {
	ID           gDto.FlexInt    `json:"id"`
	PaymentID    gDto.FlexInt    `json:"payment_id"`
	BookingID    gDto.FlexInt    `json:"booking_id"`
	GuestName    string          `json:"guest_name"`
	Amount       currency.Amount `json:"amount"`
	Reason       string          `json:"reason"`
	RefundMethod string          `json:"refund_method"`
	Status       string          `json:"status"`
	ProcessedAt  string          `json:"processed_at"`
}

// PaymentRequest is the body posted to walk_in_payment.php.
type PaymentRequest struct {
	BookingID     int     `json:"booking_id"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"payment_method"`
	Notes         string  `json:"notes,omitempty"`
	ReceivedBy    string  `json:"received_by,omitempty"`
}

type InvoiceRequest struct {
	BookingID int     `json:"booking_id"`
	TaxRate   float64 `json:"tax_rate,omitempty"`
	Notes     string  `json:"notes,omitempty"`
}

type RefundRequest struct {
	PaymentID    int     `json:"payment_id"`
	BookingID    int     `json:"booking_id,omitempty"`
	Amount       float64 `json:"amount"`
	Reason       string  `json:"reason"`
	RefundMethod string  `json:"refund_method,omitempty"`
}

type CheckoutRequest struct {
	BookingID int `json:"booking_id"`
}

// Export is a rendered payment history workbook.
type Export struct {
	FileName string
	Content  []byte
	URL      string
}
