package repository_test

import (
	"context"
	"net/http"
	"reception/infras/hotelapi"
	"reception/infras/hotelapi/mocks"
	"reception/internal/domains/room/model"
	"reception/internal/domains/room/repository"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRepository_Statuses(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	repo := repository.New(client)

	client.EXPECT().Do(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req hotelapi.Request, out any) (hotelapi.Result, error) {
			assert.Equal(t, hotelapi.ScriptRoomStatus, req.Script)
			assert.Equal(t, model.ActionRoomStatuses, req.Action)
			assert.Equal(t, hotelapi.PayloadData, req.Payload)

			raw := `[{"id":"1","room_number":101,"floor":"1","room_type":"Deluxe","status":"booked","effective_status":"occupied",
				"current_guest":{"guest_name":"Asha Rao","booking_id":"42"}}]`

			return hotelapi.Result{}, json.Unmarshal([]byte(raw), out)
		})

	rooms, err := repo.Statuses(context.Background())
	require.NoError(t, err)
	require.Len(t, rooms, 1)

	assert.Equal(t, "101", rooms[0].RoomNumber.String())
	assert.Equal(t, 1, rooms[0].Floor.Int())
	assert.Equal(t, model.StatusOccupied, rooms[0].Effective())
	require.NotNil(t, rooms[0].Guest)
	assert.Equal(t, 42, rooms[0].Guest.BookingID.Int())
}

func TestRepository_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	repo := repository.New(client)

	req := model.UpdateRequest{RoomNumber: "201", Status: model.StatusCleaning}

	client.EXPECT().Do(gomock.Any(), gomock.Any(), nil).
		DoAndReturn(func(_ context.Context, r hotelapi.Request, _ any) (hotelapi.Result, error) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, model.ActionUpdateRoomStatus, r.Action)
			assert.Equal(t, req, r.Body)

			return hotelapi.Result{Message: "ok"}, nil
		})

	res, err := repo.Update(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "ok", res.Message)
}

func TestRepository_Sync_WrapsError(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	repo := repository.New(client)

	client.EXPECT().Do(gomock.Any(), gomock.Any(), nil).Return(hotelapi.Result{}, hotelapi.ErrTransport)

	_, err := repo.Sync(context.Background())
	assert.ErrorIs(t, err, hotelapi.ErrTransport)
}

func TestRepository_Sync(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	repo := repository.New(client)

	client.EXPECT().Do(gomock.Any(), gomock.Any(), nil).
		DoAndReturn(func(_ context.Context, r hotelapi.Request, _ any) (hotelapi.Result, error) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, hotelapi.ScriptRoomStatus, r.Script)
			assert.Equal(t, model.ActionSyncRoomStatuses, r.Action)
			assert.Equal(t, hotelapi.PayloadNone, r.Payload)

			return hotelapi.Result{Message: "12 rooms synced"}, nil
		})

	res, err := repo.Sync(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "12 rooms synced", res.Message)
}
