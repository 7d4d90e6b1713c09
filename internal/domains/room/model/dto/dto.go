package dto

import (
	"net/http"
	"reception/internal/domains/room/model"
	"reception/shared"
	"reception/shared/constant"
	"reception/shared/failure"
	"reception/shared/validator"
	"strings"
	"time"
)

type ListRoomsRequest struct {
	Floor  *int   `json:"floor"`
	Status string `json:"status" validate:"omitempty,roomstatus"`
}

func (l *ListRoomsRequest) FromRequest(r *http.Request) error {
	query := r.URL.Query()

	if raw := query.Get(constant.RequestParamFloor); raw != constant.Empty {
		floor, err := shared.ConvertStringToInt(raw)
		if err != nil {
			return failure.FieldError(constant.RequestParamFloor, "floor must be a number") //nolint:wrapcheck
		}

		l.Floor = &floor
	}

	l.Status = strings.ToLower(strings.TrimSpace(query.Get(constant.RequestParamStatus)))

	return validator.ValidateStruct(l) //nolint:wrapcheck
}

func (l ListRoomsRequest) ToFilter() model.Filter {
	return model.Filter{Floor: l.Floor, Status: l.Status}
}

type GuestResponse struct {
	Name      string `json:"name"`
	Phone     string `json:"phone,omitempty"`
	BookingID int    `json:"booking_id,omitempty"`
	CheckIn   string `json:"check_in,omitempty"`
	CheckOut  string `json:"check_out,omitempty"`
}

type RoomResponse struct {
	ID              int            `json:"id"`
	RoomNumber      string         `json:"room_number"`
	Floor           int            `json:"floor"`
	RoomType        string         `json:"room_type"`
	Status          string         `json:"status"`
	EffectiveStatus string         `json:"effective_status"`
	Badge           model.Badge    `json:"badge"`
	Guest           *GuestResponse `json:"guest,omitempty"`
	UpdatedAt       string         `json:"updated_at,omitempty"`
}

func (r *RoomResponse) FromModel(room model.Room) {
	r.ID = room.ID.Int()
	r.RoomNumber = room.RoomNumber.String()
	r.Floor = room.Floor.Int()
	r.RoomType = room.RoomType
	r.Status = room.Status
	r.EffectiveStatus = room.Effective()
	r.Badge = model.BadgeFor(r.EffectiveStatus)
	r.UpdatedAt = room.UpdatedAt

	if room.Guest != nil && room.Guest.Name != constant.Empty {
		r.Guest = &GuestResponse{
			Name:      room.Guest.Name,
			Phone:     room.Guest.Phone,
			BookingID: room.Guest.BookingID.Int(),
			CheckIn:   room.Guest.CheckIn,
			CheckOut:  room.Guest.CheckOut,
		}
	}
}

type GetRoomsResponse struct {
	Rooms   []RoomResponse `json:"rooms"`
	Summary model.Summary  `json:"summary"`
	Floors  []int          `json:"floors"`
	Total   int            `json:"total"`
}

// FromModels lists the filtered rooms. Summary and floors always describe the whole hotel.
func (g *GetRoomsResponse) FromModels(all []model.Room, filter model.Filter) {
	filtered := filter.Apply(all)

	g.Rooms = make([]RoomResponse, len(filtered))
	for i, room := range filtered {
		g.Rooms[i].FromModel(room)
	}

	g.Summary = model.Summarize(all)
	g.Floors = model.Floors(all)
	g.Total = len(filtered)
}

type UpdateRoomStatusRequest struct {
	RoomNumber string `json:"room_number" validate:"required,max=20"`
	Status     string `json:"status"      validate:"required,roomstatus"`
	Notes      string `json:"notes"       validate:"omitempty,max=255"`
}

func (u UpdateRoomStatusRequest) ToModel(user string) model.UpdateRequest {
	return model.UpdateRequest{
		RoomNumber: u.RoomNumber,
		Status:     u.Status,
		Notes:      u.Notes,
		UpdatedBy:  user,
	}
}

type UpdateRoomStatusResponse struct {
	RoomNumber string      `json:"room_number"`
	Status     string      `json:"status"`
	Badge      model.Badge `json:"badge"`
	Message    string      `json:"message"`
}

type SyncResponse struct {
	Message  string    `json:"message"`
	SyncedAt time.Time `json:"synced_at"`
	Trigger  string    `json:"trigger"`
}
