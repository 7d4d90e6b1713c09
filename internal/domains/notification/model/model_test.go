package model_test

import (
	"reception/internal/domains/notification/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUnreadCount(t *testing.T) {
	items := []model.Notification{
		{ID: "1", Read: false},
		{ID: "2", Read: true},
		{ID: "3", Read: false},
	}

	assert.Equal(t, 2, model.UnreadCount(items))
	assert.Equal(t, 0, model.UnreadCount(nil))
}

func TestRelativeTime(t *testing.T) {
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		created  time.Time
		expected string
	}{
		{name: "seconds ago", created: now.Add(-30 * time.Second), expected: "just now"},
		{name: "in the future", created: now.Add(time.Minute), expected: "just now"},
		{name: "one minute", created: now.Add(-time.Minute), expected: "1m ago"},
		{name: "59 minutes", created: now.Add(-59*time.Minute - 59*time.Second), expected: "59m ago"},
		{name: "one hour", created: now.Add(-time.Hour), expected: "1h ago"},
		{name: "23 hours", created: now.Add(-23 * time.Hour), expected: "23h ago"},
		{name: "one day", created: now.Add(-24 * time.Hour), expected: "1d ago"},
		{name: "six days", created: now.Add(-6*24*time.Hour - 23*time.Hour), expected: "6d ago"},
		{name: "a week", created: now.Add(-7 * 24 * time.Hour), expected: "Oct 12, 2026"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, model.RelativeTime(tt.created, now))
		})
	}
}

func TestAppearanceFor(t *testing.T) {
	assert.Equal(t, model.Appearance{Icon: "log-in", Color: "blue"}, model.AppearanceFor(model.TypeCheckIn, model.PriorityLow))
	assert.Equal(t, model.Appearance{Icon: "alert-triangle", Color: "red"}, model.AppearanceFor(model.TypeUrgent, model.PriorityLow))
	assert.Equal(t, model.Appearance{Icon: "check-circle", Color: "green"}, model.AppearanceFor(model.TypeSuccess, model.PriorityHigh))
	assert.Equal(t, model.Appearance{Icon: "bell", Color: "gray"}, model.AppearanceFor("unknown", ""))
}
