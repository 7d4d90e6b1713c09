package model_test

import (
	billingModel "reception/internal/domains/billing/model"
	"reception/internal/domains/payment/model"
	"reception/shared/currency"
	"reception/shared/failure"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openFlow(t *testing.T, total, paid float64) *model.Flow {
	t.Helper()

	booking := billingModel.Booking{ID: 1, TotalAmount: currency.Amount(total), PaidAmount: currency.Amount(paid)}
	flow := model.NewFlow("flow-1", "staff-1", model.ModePayment, booking, time.Now())
	require.NoError(t, flow.Open(time.Now()))

	return flow
}

func ptr(s string) *string {
	return &s
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to model.State
		allowed  bool
	}{
		{model.StateIdle, model.StateEntering, true},
		{model.StateEntering, model.StateSubmitting, true},
		{model.StateSubmitting, model.StateSuccess, true},
		{model.StateSubmitting, model.StateError, true},
		{model.StateError, model.StateEntering, true},
		{model.StateSuccess, model.StateIdle, true},
		{model.StateIdle, model.StateSubmitting, false},
		{model.StateSubmitting, model.StateSubmitting, false},
		{model.StateSuccess, model.StateEntering, false},
		{model.StateEntering, model.StateSuccess, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.allowed, model.CanTransition(tt.from, tt.to))
		})
	}
}

func TestFlow_OpenResetsFields(t *testing.T) {
	flow := openFlow(t, 10000, 6000)
	flow.Enter(ptr("100"), ptr("cash"), ptr("deposit"), time.Now())
	require.NoError(t, flow.Transition(model.StateIdle, time.Now()))

	require.NoError(t, flow.Open(time.Now()))

	assert.Equal(t, model.StateEntering, flow.State)
	assert.Empty(t, flow.AmountInput)
	assert.Empty(t, flow.PaymentMethod)
	assert.Empty(t, flow.Notes)
}

func TestFlow_NewRemaining(t *testing.T) {
	flow := openFlow(t, 10000, 6000)

	tests := []struct {
		input    string
		expected float64
	}{
		{input: "", expected: 4000},
		{input: "1500", expected: 2500},
		{input: "4000", expected: 0},
		{input: "5000", expected: 0},
		{input: "abc", expected: 4000},
		{input: "-200", expected: 4200},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			flow.Enter(ptr(tt.input), nil, nil, time.Now())
			assert.Equal(t, tt.expected, flow.NewRemaining())
		})
	}
}

func TestFlow_Validate(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		method string
		field  string
	}{
		{name: "non numeric", amount: "12a", method: "cash", field: model.FieldAmount},
		{name: "empty", amount: "", method: "cash", field: model.FieldAmount},
		{name: "zero", amount: "0", method: "cash", field: model.FieldAmount},
		{name: "negative", amount: "-1", method: "cash", field: model.FieldAmount},
		{name: "above remaining", amount: "4000.01", method: "cash", field: model.FieldAmount},
		{name: "missing method", amount: "100", method: "", field: model.FieldPaymentMethod},
		{name: "unknown method", amount: "100", method: "barter", field: model.FieldPaymentMethod},
		{name: "exact remaining", amount: "4000", method: "upi"},
		{name: "partial", amount: "0.50", method: "cheque"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flow := openFlow(t, 10000, 6000)
			flow.Enter(ptr(tt.amount), ptr(tt.method), nil, time.Now())

			err := flow.Validate()
			if tt.field == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.field, failure.GetField(err))
		})
	}
}

func TestFlow_SucceedAndClose(t *testing.T) {
	flow := openFlow(t, 10000, 6000)
	flow.Enter(ptr("4000"), ptr("upi"), nil, time.Now())

	require.NoError(t, flow.Transition(model.StateSubmitting, time.Now()))
	require.NoError(t, flow.Succeed("RCP-1", "ok", time.Now()))

	assert.Equal(t, 4000.0, flow.PaidAmount)
	assert.Equal(t, 0.0, flow.Remaining())
	assert.Equal(t, 0.0, flow.NewRemaining())

	require.NoError(t, flow.Close(time.Now()))
	assert.True(t, flow.Closed)
	assert.Equal(t, model.StateIdle, flow.State)
	assert.Error(t, flow.Close(time.Now()))
}

func TestFlow_IsExpired(t *testing.T) {
	flow := openFlow(t, 100, 0)

	assert.False(t, flow.IsExpired(flow.UpdatedAt.Add(time.Minute), 30*time.Minute))
	assert.True(t, flow.IsExpired(flow.UpdatedAt.Add(31*time.Minute), 30*time.Minute))
}
