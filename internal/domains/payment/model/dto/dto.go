package dto

import (
	"reception/internal/domains/payment/model"
	"reception/shared/currency"
	gDto "reception/shared/dto"
)

type OpenFlowRequest struct {
	BookingID int `json:"booking_id" validate:"required,min=1"`
}

// EnterRequest carries raw form input. Amount may be a number or the text typed so far.
type EnterRequest struct {
	Amount        *gDto.FlexString `json:"amount"`
	PaymentMethod *string          `json:"payment_method" validate:"omitempty,max=32"`
	Notes         *string          `json:"notes"          validate:"omitempty,max=500"`
}

func (e *EnterRequest) AmountInput() *string {
	if e.Amount == nil {
		return nil
	}

	value := e.Amount.String()

	return &value
}

type BookingSnapshot struct {
	ID               int     `json:"id"`
	GuestName        string  `json:"guest_name"`
	RoomNumber       string  `json:"room_number"`
	TotalAmount      float64 `json:"total_amount"`
	PaidAmount       float64 `json:"paid_amount"`
	RemainingAmount  float64 `json:"remaining_amount"`
	RemainingDisplay string  `json:"remaining_display"`
}

type FlowResponse struct {
	ID                  string          `json:"id"`
	Mode                string          `json:"mode"`
	State               string          `json:"state"`
	Booking             BookingSnapshot `json:"booking"`
	Amount              string          `json:"amount"`
	PaymentMethod       string          `json:"payment_method"`
	Notes               string          `json:"notes,omitempty"`
	NewRemaining        float64         `json:"new_remaining"`
	NewRemainingDisplay string          `json:"new_remaining_display"`
	Error               string          `json:"error,omitempty"`
	ErrorField          string          `json:"error_field,omitempty"`
	Message             string          `json:"message,omitempty"`
	ReceiptNumber       string          `json:"receipt_number,omitempty"`
	PaidAmount          float64         `json:"paid_amount,omitempty"`
	Closed              bool            `json:"closed"`
	CheckedOut          bool            `json:"checked_out"`
	CheckoutError       string          `json:"checkout_error,omitempty"`
}

// FromModel reads the flow. The caller holds the flow lock.
func (r *FlowResponse) FromModel(flow *model.Flow) {
	r.ID = flow.ID
	r.Mode = string(flow.Mode)
	r.State = string(flow.State)
	r.Booking = BookingSnapshot{
		ID:               flow.Booking.ID.Int(),
		GuestName:        flow.Booking.GuestName,
		RoomNumber:       flow.Booking.RoomNumber.String(),
		TotalAmount:      flow.Booking.TotalAmount.Float(),
		PaidAmount:       flow.Booking.PaidAmount.Float(),
		RemainingAmount:  flow.Remaining(),
		RemainingDisplay: currency.Format(flow.Remaining()),
	}
	r.Amount = flow.AmountInput
	r.PaymentMethod = flow.PaymentMethod
	r.Notes = flow.Notes
	r.NewRemaining = flow.NewRemaining()
	r.NewRemainingDisplay = currency.Format(r.NewRemaining)
	r.Error = flow.ErrorMessage
	r.ErrorField = flow.ErrorField
	r.Message = flow.Message
	r.ReceiptNumber = flow.ReceiptNumber
	r.PaidAmount = flow.PaidAmount
	r.Closed = flow.Closed
	r.CheckedOut = flow.CheckedOut
	r.CheckoutError = flow.CheckoutError
}

// CheckoutResponse is either a direct checkout or a blocking payment flow.
type CheckoutResponse struct {
	BookingID  int           `json:"booking_id"`
	CheckedOut bool          `json:"checked_out"`
	Blocked    bool          `json:"blocked"`
	Remaining  float64       `json:"remaining_amount"`
	Message    string        `json:"message,omitempty"`
	Flow       *FlowResponse `json:"flow,omitempty"`
}
