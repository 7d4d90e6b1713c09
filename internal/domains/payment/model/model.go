// Package model holds the payment flow state machine.
package model

import (
	"fmt"
	billingModel "reception/internal/domains/billing/model"
	"reception/shared/constant"
	"reception/shared/currency"
	"reception/shared/failure"
	"slices"
	"sync"
	"time"
)

const EntityName = "payment_flow"

const (
	FieldAmount        = "amount"
	FieldPaymentMethod = "payment_method"
)

type State string

const (
	StateIdle       State = "idle"
	StateEntering   State = "entering"
	StateSubmitting State = "submitting"
	StateSuccess    State = "success"
	StateError      State = "error"
)

// Mode tells what happens once a flow completes.
type Mode string

const (
	ModePayment  Mode = "payment"
	ModeCheckout Mode = "checkout"
)

var transitions = map[State][]State{
	StateIdle:       {StateEntering},
	StateEntering:   {StateSubmitting, StateIdle},
	StateSubmitting: {StateSuccess, StateError},
	StateSuccess:    {StateIdle},
	StateError:      {StateEntering, StateIdle},
}

// CanTransition checks if transition is allowed.
func CanTransition(from, to State) bool {
	return slices.Contains(transitions[from], to)
}

// Flow is one staff member's payment form for one booking.
// Callers hold the embedded mutex while reading or mutating it.
type Flow struct {
	sync.Mutex

	ID            string
	StaffID       string
	Mode          Mode
	State         State
	Booking       billingModel.Booking
	AmountInput   string
	PaymentMethod string
	Notes         string

	ErrorField    string
	ErrorMessage  string
	Message       string
	ReceiptNumber string
	PaidAmount    float64
	Closed        bool
	Cancelled     bool
	CheckedOut    bool
	CheckoutError string

	CreatedAt time.Time
	UpdatedAt time.Time

	closeTimer *time.Timer
}

// NewFlow opens a flow in Idle. Open moves it to Entering.
func NewFlow(id, staffID string, mode Mode, booking billingModel.Booking, now time.Time) *Flow {
	return &Flow{
		ID:        id,
		StaffID:   staffID,
		Mode:      mode,
		State:     StateIdle,
		Booking:   booking,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (f *Flow) Transition(to State, now time.Time) error {
	if !CanTransition(f.State, to) {
		return fmt.Errorf("invalid payment flow transition %s -> %s", f.State, to)
	}

	f.State = to
	f.UpdatedAt = now

	return nil
}

// Open resets the form fields and starts accepting input.
func (f *Flow) Open(now time.Time) error {
	if err := f.Transition(StateEntering, now); err != nil {
		return err
	}

	f.AmountInput = ""
	f.PaymentMethod = ""
	f.Notes = ""
	f.clearOutcome()

	return nil
}

func (f *Flow) clearOutcome() {
	f.ErrorField = ""
	f.ErrorMessage = ""
	f.Message = ""
}

// Remaining is the balance of the booking snapshot the flow was opened with.
func (f *Flow) Remaining() float64 {
	return f.Booking.Remaining()
}

// Amount is the entered amount, zero when the input is not numeric.
func (f *Flow) Amount() float64 {
	return currency.Round2(currency.ParseAmount(f.AmountInput))
}

// NewRemaining previews the balance after the entered amount is paid.
func (f *Flow) NewRemaining() float64 {
	if f.State == StateSuccess || f.Closed {
		return f.Remaining()
	}

	return currency.Remaining(f.Remaining(), f.Amount())
}

// Enter records input. The preview is derived, so nothing else changes.
func (f *Flow) Enter(amount, method, notes *string, now time.Time) {
	if amount != nil {
		f.AmountInput = *amount
	}

	if method != nil {
		f.PaymentMethod = *method
	}

	if notes != nil {
		f.Notes = *notes
	}

	f.clearOutcome()
	f.UpdatedAt = now
}

// Validate gates Entering -> Submitting.
func (f *Flow) Validate() error {
	if !currency.IsNumeric(f.AmountInput) {
		return failure.FieldError(FieldAmount, "Please enter a valid amount")
	}

	amount := f.Amount()
	if amount <= 0 {
		return failure.FieldError(FieldAmount, "Amount must be greater than zero")
	}

	if amount > f.Remaining() {
		return failure.FieldError(FieldAmount, fmt.Sprintf("Amount cannot exceed the remaining balance of %s", currency.Format(f.Remaining())))
	}

	if f.PaymentMethod == "" {
		return failure.FieldError(FieldPaymentMethod, "Please select a payment method")
	}

	if !slices.Contains(constant.PaymentMethods, f.PaymentMethod) {
		return failure.FieldError(FieldPaymentMethod, "Unsupported payment method")
	}

	return nil
}

// Fail records a validation or submission error on a field or on the whole form.
func (f *Flow) Fail(field, message string) {
	f.ErrorField = field
	f.ErrorMessage = message
}

// Succeed applies a confirmed payment to the local booking mirror.
func (f *Flow) Succeed(receipt, message string, now time.Time) error {
	if err := f.Transition(StateSuccess, now); err != nil {
		return err
	}

	f.PaidAmount = f.Amount()
	f.Booking.PaidAmount = currency.Amount(currency.Round2(f.Booking.PaidAmount.Float() + f.PaidAmount))
	f.ReceiptNumber = receipt
	f.Message = message

	return nil
}

// Close ends a successful flow.
func (f *Flow) Close(now time.Time) error {
	if err := f.Transition(StateIdle, now); err != nil {
		return err
	}

	f.Closed = true

	return nil
}

func (f *Flow) SetCloseTimer(timer *time.Timer) {
	f.StopCloseTimer()
	f.closeTimer = timer
}

func (f *Flow) StopCloseTimer() {
	if f.closeTimer != nil {
		f.closeTimer.Stop()
		f.closeTimer = nil
	}
}

// IsExpired reports flows untouched for longer than timeout.
func (f *Flow) IsExpired(now time.Time, timeout time.Duration) bool {
	return now.Sub(f.UpdatedAt) > timeout
}
