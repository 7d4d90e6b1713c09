package dto

import (
	"reception/internal/domains/paymentlink/model"
	"reception/shared/currency"
)

type CreatePaymentLinkRequest struct {
	BookingID     int     `json:"booking_id"     validate:"required,min=1"`
	Amount        float64 `json:"amount"         validate:"omitempty,gt=0"`
	CustomerName  string  `json:"customer_name"  validate:"required,max=100"`
	CustomerPhone string  `json:"customer_phone" validate:"required,phone"`
	CustomerEmail string  `json:"customer_email" validate:"omitempty,email"`
	Description   string  `json:"description"    validate:"omitempty,max=255"`
}

func (c CreatePaymentLinkRequest) ToModel(amount float64, user string) model.CreateRequest {
	return model.CreateRequest{
		BookingID:     c.BookingID,
		Amount:        amount,
		CustomerName:  c.CustomerName,
		CustomerPhone: c.CustomerPhone,
		CustomerEmail: c.CustomerEmail,
		Description:   c.Description,
		CreatedBy:     user,
	}
}

type PaymentLinkResponse struct {
	BookingID     int     `json:"booking_id"`
	LinkID        string  `json:"link_id"`
	URL           string  `json:"url"`
	Amount        float64 `json:"amount"`
	AmountDisplay string  `json:"amount_display"`
	ExpiresAt     string  `json:"expires_at,omitempty"`
	Status        string  `json:"status,omitempty"`
	CustomerName  string  `json:"customer_name"`
	CustomerPhone string  `json:"customer_phone"`
	Message       string  `json:"message"`
}

func (p *PaymentLinkResponse) FromModel(link model.Link, req model.CreateRequest, hotel string) {
	p.BookingID = req.BookingID
	p.LinkID = link.LinkID.String()
	p.URL = link.URL()

	p.Amount = link.Amount.Float()
	if p.Amount == 0 {
		p.Amount = req.Amount
	}

	p.AmountDisplay = currency.Format(p.Amount)
	p.ExpiresAt = link.ExpiresAt
	p.Status = link.Status
	p.CustomerName = req.CustomerName
	p.CustomerPhone = req.CustomerPhone
	p.Message = model.Message(req.CustomerName, hotel, p.Amount, p.URL)
}

type ShareRequest struct {
	Channel string `json:"channel" validate:"required,oneof=whatsapp sms copy"`
}
