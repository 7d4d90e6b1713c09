package model

import (
	"reception/shared/constant"
	gDto "reception/shared/dto"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	EntityName = "room"

	CacheKeyStatuses = "statuses"
)

// Hotel API actions.
const (
	ActionRoomStatuses     = "room_statuses"
	ActionSyncRoomStatuses = "sync_room_statuses"
	ActionUpdateRoomStatus = "update_room_status"
)

const (
	StatusAvailable   = "available"
	StatusBooked      = "booked"
	StatusOccupied    = "occupied"
	StatusCleaning    = "cleaning"
	StatusMaintenance = "maintenance"
)

type Guest struct {
	Name      string       `json:"guest_name"`
	Phone     string       `json:"guest_phone"`
	BookingID gDto.FlexInt `json:"booking_id"`
	CheckIn   string       `json:"check_in"`
	CheckOut  string       `json:"check_out"`
}

type Room struct {
	ID              gDto.FlexInt    `json:"id"`
	RoomNumber      gDto.FlexString `json:"room_number"`
	Floor           gDto.FlexInt    `json:"floor"`
	RoomType        string          `json:"room_type"`
	Status          string          `json:"status"`
	EffectiveStatus string          `json:"effective_status"`
	Guest           *Guest          `json:"current_guest"`
	UpdatedAt       string          `json:"updated_at"`
}

// Effective prefers the status derived by the server and falls back to the raw one.
func (r Room) Effective() string {
	if r.EffectiveStatus != constant.Empty {
		return strings.ToLower(r.EffectiveStatus)
	}

	return strings.ToLower(r.Status)
}

type Filter struct {
	Floor  *int
	Status string
}

func (f Filter) Match(room Room) bool {
	if f.Floor != nil && room.Floor.Int() != *f.Floor {
		return false
	}

	if f.Status != constant.Empty && room.Effective() != f.Status {
		return false
	}

	return true
}

func (f Filter) Apply(rooms []Room) []Room {
	out := make([]Room, 0, len(rooms))

	for _, room := range rooms {
		if f.Match(room) {
			out = append(out, room)
		}
	}

	return out
}

type Summary struct {
	Total       int `json:"total"`
	Available   int `json:"available"`
	Booked      int `json:"booked"`
	Occupied    int `json:"occupied"`
	Cleaning    int `json:"cleaning"`
	Maintenance int `json:"maintenance"`
	Other       int `json:"other"`
}

// Summarize counts rooms by effective status.
func Summarize(rooms []Room) Summary {
	summary := Summary{Total: len(rooms)}

	for _, room := range rooms {
		switch room.Effective() {
		case StatusAvailable:
			summary.Available++
		case StatusBooked:
			summary.Booked++
		case StatusOccupied:
			summary.Occupied++
		case StatusCleaning:
			summary.Cleaning++
		case StatusMaintenance:
			summary.Maintenance++
		default:
			summary.Other++
		}
	}

	return summary
}

// Floors returns the distinct floors in first-seen order.
func Floors(rooms []Room) []int {
	seen := map[int]struct{}{}
	floors := []int{}

	for _, room := range rooms {
		floor := room.Floor.Int()
		if _, ok := seen[floor]; ok {
			continue
		}

		seen[floor] = struct{}{}
		floors = append(floors, floor)
	}

	return floors
}

type Badge struct {
	Label string `json:"label"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

var badges = map[string]Badge{
	StatusAvailable:   {Label: "Available", Color: "green", Icon: "check-circle"},
	StatusBooked:      {Label: "Booked", Color: "blue", Icon: "calendar"},
	StatusOccupied:    {Label: "Occupied", Color: "red", Icon: "user"},
	StatusCleaning:    {Label: "Cleaning", Color: "yellow", Icon: "sparkles"},
	StatusMaintenance: {Label: "Maintenance", Color: "orange", Icon: "wrench"},
}

func BadgeFor(status string) Badge {
	if badge, ok := badges[strings.ToLower(status)]; ok {
		return badge
	}

	label := "Unknown"
	if status != constant.Empty {
		label = cases.Title(language.English).String(strings.ReplaceAll(status, "_", " "))
	}

	return Badge{Label: label, Color: "gray", Icon: "help-circle"}
}

type UpdateRequest struct {
	RoomNumber string `json:"room_number"`
	Status     string `json:"status"`
	Notes      string `json:"notes,omitempty"`
	UpdatedBy  string `json:"updated_by,omitempty"`
}
