package dto

import (
	"net/http"
	"reception/internal/domains/guest/model"
	"reception/shared/constant"
	"reception/shared/currency"
	gDto "reception/shared/dto"
	"strings"
)

type SearchGuestsRequest struct {
	Query string
	gDto.QueryParams
}

func (s *SearchGuestsRequest) FromRequest(r *http.Request) {
	s.Query = strings.TrimSpace(r.URL.Query().Get(constant.RequestParamQuery))
	s.QueryParams.FromRequest(r, true, constant.DefaultValueGuestLimit)
}

type GuestResponse struct {
	ID               int     `json:"id"`
	BookingID        int     `json:"booking_id,omitempty"`
	Name             string  `json:"name"`
	Phone            string  `json:"phone,omitempty"`
	Email            string  `json:"email,omitempty"`
	RoomNumber       string  `json:"room_number"`
	CheckIn          string  `json:"check_in"`
	CheckOut         string  `json:"check_out"`
	Status           string  `json:"status"`
	RemainingAmount  float64 `json:"remaining_amount"`
	RemainingDisplay string  `json:"remaining_display"`
	Score            int     `json:"score,omitempty"`
}

func (g *GuestResponse) FromModel(guest model.Guest, score int) {
	g.ID = guest.ID.Int()
	g.BookingID = guest.BookingID.Int()
	g.Name = guest.Name
	g.Phone = guest.Phone
	g.Email = guest.Email
	g.RoomNumber = guest.RoomNumber.String()
	g.CheckIn = guest.CheckIn
	g.CheckOut = guest.CheckOut
	g.Status = guest.Status
	g.RemainingAmount = currency.Remaining(guest.TotalAmount.Float(), guest.PaidAmount.Float())
	g.RemainingDisplay = currency.Format(g.RemainingAmount)
	g.Score = score
}

type SearchGuestsResponse struct {
	Guests     []GuestResponse `json:"guests"`
	Total      int             `json:"total"`
	Suggestion string          `json:"suggestion,omitempty"`
}
