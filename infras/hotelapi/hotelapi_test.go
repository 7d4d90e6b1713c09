package hotelapi_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"reception/config"
	"reception/infras/hotelapi"
	"reception/infras/otel/mocks"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stats struct {
	TotalRevenue float64 `json:"total_revenue"`
}

func newClient(t *testing.T, handler http.HandlerFunc) hotelapi.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.HotelAPI.BaseURL = server.URL + "/api/"
	cfg.HotelAPI.UserAgent = "reception-test"

	return hotelapi.NewWithHTTPClient(cfg, mocks.NewOtel(), server.Client())
}

func TestDo_DecodesPinnedPayload(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/comprehensive_billing_api.php", r.URL.Path)
		assert.Equal(t, "billing_stats", r.URL.Query().Get("action"))
		assert.Equal(t, "Bearer staff-token", r.Header.Get("Authorization"))
		assert.Equal(t, "reception-test", r.Header.Get("User-Agent"))

		_, _ = io.WriteString(w, `{"success":true,"stats":{"total_revenue":1250.5},"data":{"total_revenue":1}}`)
	})

	var out stats
	ctx := hotelapi.WithToken(context.Background(), "staff-token")
	_, err := client.Do(ctx, hotelapi.Request{
		Script:  hotelapi.ScriptBilling,
		Action:  "billing_stats",
		Payload: hotelapi.PayloadStats,
	}, &out)

	require.NoError(t, err)
	assert.Equal(t, 1250.5, out.TotalRevenue)
}

func TestDo_MissingPayloadIsSchemaError(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"success":true,"data":{"total_revenue":1}}`)
	})

	var out stats
	_, err := client.Do(context.Background(), hotelapi.Request{
		Script:  hotelapi.ScriptBilling,
		Action:  "billing_stats",
		Payload: hotelapi.PayloadStats,
	}, &out)

	assert.ErrorIs(t, err, hotelapi.ErrSchema)
	assert.True(t, hotelapi.IsTransport(err))
}

func TestDo_ApplicationFailure(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"success":false,"message":"Booking not found"}`)
	})

	_, err := client.Do(context.Background(), hotelapi.Request{
		Method: http.MethodPost,
		Script: hotelapi.ScriptCheckout,
		Action: "checkout",
		Body:   map[string]int{"booking_id": 9},
	}, nil)

	apiErr, ok := hotelapi.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, "Booking not found", apiErr.Message)
	assert.False(t, hotelapi.IsTransport(err))
	assert.EqualError(t, hotelapi.ToFailure(err), "Booking not found")
}

func TestDo_NotConfigured(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"success":true,"system_status":"tables_missing","message":"Billing tables missing"}`)
	})

	var out stats
	res, err := client.Do(context.Background(), hotelapi.Request{
		Script:  hotelapi.ScriptBilling,
		Action:  "billing_stats",
		Payload: hotelapi.PayloadStats,
	}, &out)

	require.NoError(t, err)
	assert.True(t, res.NotConfigured())
}

func TestDo_TransportFailures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "html error page",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = io.WriteString(w, "<b>Fatal error</b>")
			},
		},
		{
			name: "empty body",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newClient(t, tt.handler)

			_, err := client.Do(context.Background(), hotelapi.Request{Script: hotelapi.ScriptRoomStatus, Action: "room_statuses"}, nil)

			assert.True(t, hotelapi.IsTransport(err))
		})
	}
}

func TestDo_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()

	cfg := &config.Config{}
	cfg.HotelAPI.BaseURL = server.URL
	client := hotelapi.NewWithHTTPClient(cfg, mocks.NewOtel(), http.DefaultClient)

	_, err := client.Do(context.Background(), hotelapi.Request{Script: hotelapi.ScriptBilling, Action: "billing_stats"}, nil)

	assert.True(t, errors.Is(err, hotelapi.ErrTransport))
}
