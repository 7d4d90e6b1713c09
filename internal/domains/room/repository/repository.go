package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"net/http"
	"reception/infras/hotelapi"
	"reception/internal/domains/room/model"
)

type Room interface {
	Statuses(ctx context.Context) ([]model.Room, error)
	Sync(ctx context.Context) (hotelapi.Result, error)
	Update(ctx context.Context, req model.UpdateRequest) (hotelapi.Result, error)
}

type repositoryImpl struct {
	client hotelapi.Client
}

func New(client hotelapi.Client) Room {
	return &repositoryImpl{client: client}
}

func (r *repositoryImpl) Statuses(ctx context.Context) ([]model.Room, error) {
	rooms := []model.Room{}

	_, err := r.client.Do(ctx, hotelapi.Request{
		Script:  hotelapi.ScriptRoomStatus,
		Action:  model.ActionRoomStatuses,
		Payload: hotelapi.PayloadData,
	}, &rooms)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch room statuses: %w", err)
	}

	return rooms, nil
}

func (r *repositoryImpl) Sync(ctx context.Context) (hotelapi.Result, error) {
	res, err := r.client.Do(ctx, hotelapi.Request{
		Method:  http.MethodPost,
		Script:  hotelapi.ScriptRoomStatus,
		Action:  model.ActionSyncRoomStatuses,
		Payload: hotelapi.PayloadNone,
	}, nil)
	if err != nil {
		return res, fmt.Errorf("failed to sync room statuses: %w", err)
	}

	return res, nil
}

func (r *repositoryImpl) Update(ctx context.Context, req model.UpdateRequest) (hotelapi.Result, error) {
	res, err := r.client.Do(ctx, hotelapi.Request{
		Method:  http.MethodPost,
		Script:  hotelapi.ScriptRoomStatus,
		Action:  model.ActionUpdateRoomStatus,
		Body:    req,
		Payload: hotelapi.PayloadNone,
	}, nil)
	if err != nil {
		return res, fmt.Errorf("failed to update room %s: %w", req.RoomNumber, err)
	}

	return res, nil
}
