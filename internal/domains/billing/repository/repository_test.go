package repository_test

import (
	"context"
	"net/http"
	"reception/infras/hotelapi"
	"reception/infras/hotelapi/mocks"
	"reception/internal/domains/billing/model"
	"reception/internal/domains/billing/repository"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// respond decodes raw into out the way the real client decodes a pinned payload.
func respond(raw string) func(context.Context, hotelapi.Request, any) (hotelapi.Result, error) {
	return func(_ context.Context, _ hotelapi.Request, out any) (hotelapi.Result, error) {
		if out != nil {
			if err := json.Unmarshal([]byte(raw), out); err != nil {
				return hotelapi.Result{}, err
			}
		}

		return hotelapi.Result{}, nil
	}
}

func TestRepository_PaymentHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	repo := repository.New(client)

	client.EXPECT().Do(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req hotelapi.Request, out any) (hotelapi.Result, error) {
			assert.Equal(t, hotelapi.ScriptBilling, req.Script)
			assert.Equal(t, model.ActionPaymentHistory, req.Action)
			assert.Equal(t, "5", req.Query.Get("limit"))
			assert.Equal(t, hotelapi.PayloadPayments, req.Payload)

			return respond(`[{"id":"3","booking_id":42,"amount":"1500.50","payment_method":"cash","room_number":204}]`)(ctx, req, out)
		})

	payments, err := repo.PaymentHistory(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, payments, 1)

	assert.Equal(t, 3, payments[0].ID.Int())
	assert.Equal(t, 1500.5, payments[0].Amount.Float())
	assert.Equal(t, "204", payments[0].RoomNumber.String())
}

func TestRepository_Booking_DerivesRemaining(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	repo := repository.New(client)

	client.EXPECT().Do(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req hotelapi.Request, out any) (hotelapi.Result, error) {
			assert.Equal(t, hotelapi.ScriptCheckout, req.Script)
			assert.Equal(t, model.ActionBookingDetails, req.Action)
			assert.Equal(t, "42", req.Query.Get("booking_id"))

			return respond(`{"id":42,"total_amount":"10000","paid_amount":"6000","remaining_amount":"9999"}`)(ctx, req, out)
		})

	booking, err := repo.Booking(context.Background(), 42)
	require.NoError(t, err)

	assert.Equal(t, 4000.0, booking.Remaining())
}

func TestRepository_Checkout(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	repo := repository.New(client)

	client.EXPECT().Do(gomock.Any(), hotelapi.Request{
		Method:  http.MethodPost,
		Script:  hotelapi.ScriptCheckout,
		Action:  model.ActionCheckout,
		Body:    model.CheckoutRequest{BookingID: 42},
		Payload: hotelapi.PayloadNone,
	}, nil).Return(hotelapi.Result{Message: "Checked out"}, nil)

	assert.NoError(t, repo.Checkout(context.Background(), 42))
}

func TestRepository_WrapsUpstreamErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	repo := repository.New(client)

	client.EXPECT().Do(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(hotelapi.Result{}, &hotelapi.APIError{Action: "process_refund", Message: "Payment already refunded"})

	_, err := repo.ProcessRefund(context.Background(), model.RefundRequest{PaymentID: 7, Amount: 100, Reason: "duplicate"})

	apiErr, ok := hotelapi.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, "Payment already refunded", apiErr.Message)
}
