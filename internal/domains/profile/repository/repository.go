package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"net/http"
	"reception/infras/hotelapi"
	"reception/internal/domains/profile/model"
)

type Profile interface {
	Update(ctx context.Context, req model.UpdateRequest) (model.Staff, hotelapi.Result, error)
}

type repositoryImpl struct {
	client hotelapi.Client
}

func New(client hotelapi.Client) Profile {
	return &repositoryImpl{client: client}
}

func (r *repositoryImpl) Update(ctx context.Context, req model.UpdateRequest) (model.Staff, hotelapi.Result, error) {
	var staff model.Staff

	res, err := r.client.Do(ctx, hotelapi.Request{
		Method:  http.MethodPost,
		Script:  hotelapi.ScriptUpdateStaff,
		Body:    req,
		Payload: hotelapi.PayloadData,
	}, &staff)
	if err != nil {
		return staff, res, fmt.Errorf("failed to update profile for %s: %w", req.UserID, err)
	}

	return staff, res, nil
}
