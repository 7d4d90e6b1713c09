package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"reception/infras/hotelapi"
	"reception/internal/domains/guest/model"
)

type Guest interface {
	History(ctx context.Context) ([]model.Guest, error)
}

type repositoryImpl struct {
	client hotelapi.Client
}

func New(client hotelapi.Client) Guest {
	return &repositoryImpl{client: client}
}

func (r *repositoryImpl) History(ctx context.Context) ([]model.Guest, error) {
	guests := []model.Guest{}

	_, err := r.client.Do(ctx, hotelapi.Request{
		Script:  hotelapi.ScriptBilling,
		Action:  model.ActionGuestHistory,
		Payload: hotelapi.PayloadData,
	}, &guests)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch guest history: %w", err)
	}

	return guests, nil
}
