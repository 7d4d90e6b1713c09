package service_test

import (
	"context"
	"net/http"
	"reception/config"
	"reception/infras/hotelapi"
	"reception/infras/otel/mocks"
	guestMocks "reception/internal/domains/guest/mocks"
	"reception/internal/domains/guest/model"
	"reception/internal/domains/guest/model/dto"
	"reception/internal/domains/guest/service"
	"reception/shared/cache"
	cacheMocks "reception/shared/cache/mocks"
	"reception/shared/currency"
	gDto "reception/shared/dto"
	"reception/shared/failure"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newService(t *testing.T, guests []model.Guest, err error) service.Guest {
	t.Helper()

	ctrl := gomock.NewController(t)

	repo := guestMocks.NewMockGuest(ctrl)
	repo.EXPECT().History(gomock.Any()).Return(guests, err)

	redisCache := cacheMocks.NewMockRedisCache(ctrl)
	redisCache.EXPECT().Get(gomock.Any(), "reception:guest:history", gomock.Any()).Return(cache.Nil)
	redisCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return service.New(repo, &config.Config{}, redisCache, mocks.NewOtel())
}

func history() []model.Guest {
	return []model.Guest{
		{ID: 1, Name: "Asha Rao", Phone: "9876543210", RoomNumber: "204", TotalAmount: currency.Amount(10000), PaidAmount: currency.Amount(6000)},
		{ID: 2, Name: "Rahul Sharma", Phone: "9988776655", RoomNumber: "305"},
		{ID: 3, Name: "Priya Sharma", Phone: "9123456789", RoomNumber: "101"},
	}
}

func TestService_Search(t *testing.T) {
	svc := newService(t, history(), nil)

	res, err := svc.Search(context.Background(), dto.SearchGuestsRequest{Query: "sharma", QueryParams: gDto.QueryParams{Limit: 1}})
	require.NoError(t, err)

	assert.Equal(t, 2, res.Total)
	require.Len(t, res.Guests, 1)
	assert.Equal(t, 2, res.Guests[0].ID)
	assert.Empty(t, res.Suggestion)
}

func TestService_Search_EmptyQueryLists(t *testing.T) {
	svc := newService(t, history(), nil)

	res, err := svc.Search(context.Background(), dto.SearchGuestsRequest{QueryParams: gDto.QueryParams{Limit: 2}})
	require.NoError(t, err)

	assert.Equal(t, 3, res.Total)
	require.Len(t, res.Guests, 2)
	assert.Equal(t, 4000.0, res.Guests[0].RemainingAmount)
	assert.Equal(t, "₹4,000.00", res.Guests[0].RemainingDisplay)
}

func TestService_Search_Suggests(t *testing.T) {
	svc := newService(t, history(), nil)

	res, err := svc.Search(context.Background(), dto.SearchGuestsRequest{Query: "sharmxyz"})
	require.NoError(t, err)

	assert.Empty(t, res.Guests)
	assert.Equal(t, "sharma", res.Suggestion)
}

func TestService_Search_Upstream(t *testing.T) {
	svc := newService(t, nil, hotelapi.ErrTransport)

	_, err := svc.Search(context.Background(), dto.SearchGuestsRequest{Query: "asha"})
	assert.Equal(t, http.StatusBadGateway, failure.GetCode(err))
}
