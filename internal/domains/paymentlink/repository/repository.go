package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"net/http"
	"reception/infras/hotelapi"
	"reception/internal/domains/paymentlink/model"
)

type PaymentLink interface {
	Create(ctx context.Context, req model.CreateRequest) (model.Link, error)
}

type repositoryImpl struct {
	client hotelapi.Client
}

func New(client hotelapi.Client) PaymentLink {
	return &repositoryImpl{client: client}
}

func (r *repositoryImpl) Create(ctx context.Context, req model.CreateRequest) (model.Link, error) {
	var link model.Link

	_, err := r.client.Do(ctx, hotelapi.Request{
		Method:  http.MethodPost,
		Script:  hotelapi.ScriptRazorpay,
		Action:  model.ActionCreatePaymentLink,
		Body:    req,
		Payload: hotelapi.PayloadData,
	}, &link)
	if err != nil {
		return link, fmt.Errorf("failed to create payment link for booking %d: %w", req.BookingID, err)
	}

	return link, nil
}
