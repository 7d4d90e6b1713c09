package model_test

import (
	"reception/internal/domains/room/model"
	gDto "reception/shared/dto"
	"testing"

	"github.com/stretchr/testify/assert"
)

func rooms() []model.Room {
	return []model.Room{
		{RoomNumber: "101", Floor: 1, Status: model.StatusAvailable},
		{RoomNumber: "102", Floor: 1, Status: model.StatusBooked, EffectiveStatus: model.StatusOccupied},
		{RoomNumber: "201", Floor: 2, Status: "Cleaning"},
		{RoomNumber: "202", Floor: 2, Status: model.StatusMaintenance},
		{RoomNumber: "203", Floor: 2, Status: "blocked"},
	}
}

func TestRoom_Effective(t *testing.T) {
	list := rooms()

	assert.Equal(t, model.StatusAvailable, list[0].Effective())
	assert.Equal(t, model.StatusOccupied, list[1].Effective())
	assert.Equal(t, model.StatusCleaning, list[2].Effective())
}

func TestFilter_Apply(t *testing.T) {
	floor := 2

	assert.Len(t, model.Filter{}.Apply(rooms()), 5)
	assert.Len(t, model.Filter{Floor: &floor}.Apply(rooms()), 3)

	occupied := model.Filter{Status: model.StatusOccupied}.Apply(rooms())
	if assert.Len(t, occupied, 1) {
		assert.Equal(t, gDto.FlexString("102"), occupied[0].RoomNumber)
	}

	assert.Empty(t, model.Filter{Floor: &floor, Status: model.StatusAvailable}.Apply(rooms()))
}

func TestSummarize(t *testing.T) {
	summary := model.Summarize(rooms())

	assert.Equal(t, model.Summary{Total: 5, Available: 1, Occupied: 1, Cleaning: 1, Maintenance: 1, Other: 1}, summary)
}

func TestFloors(t *testing.T) {
	assert.Equal(t, []int{1, 2}, model.Floors(rooms()))
}

func TestBadgeFor(t *testing.T) {
	assert.Equal(t, "green", model.BadgeFor(model.StatusAvailable).Color)
	assert.Equal(t, "wrench", model.BadgeFor("Maintenance").Icon)
	assert.Equal(t, model.Badge{Label: "Out Of Order", Color: "gray", Icon: "help-circle"}, model.BadgeFor("out_of_order"))
	assert.Equal(t, "Unknown", model.BadgeFor("").Label)
}
