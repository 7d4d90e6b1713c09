package model

import (
	"fmt"
	"reception/shared/constant"
	"time"
)

const EntityName = "notification"

const (
	TypeCheckIn      = "check_in"
	TypeCheckOut     = "check_out"
	TypeMaintenance  = "maintenance"
	TypeHousekeeping = "housekeeping"
	TypeUrgent       = "urgent"
	TypeInfo         = "info"
	TypeSuccess      = "success"
	TypeReminder     = "reminder"
)

const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

var (
	Types      = []string{TypeCheckIn, TypeCheckOut, TypeMaintenance, TypeHousekeeping, TypeUrgent, TypeInfo, TypeSuccess, TypeReminder}
	Priorities = []string{PriorityHigh, PriorityMedium, PriorityLow}
)

type Notification struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Priority  string    `json:"priority"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// UnreadCount is derived on every read, never stored.
func UnreadCount(items []Notification) int {
	count := 0

	for _, item := range items {
		if !item.Read {
			count++
		}
	}

	return count
}

// RelativeTime buckets elapsed time: just now, Nm ago, Nh ago, Nd ago, then the date.
func RelativeTime(created, now time.Time) string {
	elapsed := now.Sub(created)

	switch {
	case elapsed < time.Minute:
		return "just now"
	case elapsed < time.Hour:
		return fmt.Sprintf("%dm ago", int(elapsed/time.Minute))
	case elapsed < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(elapsed/time.Hour))
	case elapsed < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(elapsed/(24*time.Hour)))
	default:
		return created.Format(constant.DisplayDayFmt)
	}
}

type Appearance struct {
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

var icons = map[string]string{
	TypeCheckIn:      "log-in",
	TypeCheckOut:     "log-out",
	TypeMaintenance:  "wrench",
	TypeHousekeeping: "sparkles",
	TypeUrgent:       "alert-triangle",
	TypeInfo:         "info",
	TypeSuccess:      "check-circle",
	TypeReminder:     "clock",
}

var priorityColors = map[string]string{
	PriorityHigh:   "red",
	PriorityMedium: "yellow",
	PriorityLow:    "blue",
}

func AppearanceFor(notificationType, priority string) Appearance {
	icon, ok := icons[notificationType]
	if !ok {
		icon = "bell"
	}

	color, ok := priorityColors[priority]
	if !ok {
		color = "gray"
	}

	switch notificationType {
	case TypeUrgent:
		color = "red"
	case TypeSuccess:
		color = "green"
	}

	return Appearance{Icon: icon, Color: color}
}
