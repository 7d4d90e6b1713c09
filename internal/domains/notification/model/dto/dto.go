package dto

import (
	"reception/internal/domains/notification/model"
	"time"
)

type NotificationResponse struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"`
	Priority     string    `json:"priority"`
	Title        string    `json:"title"`
	Message      string    `json:"message"`
	Read         bool      `json:"read"`
	CreatedAt    time.Time `json:"created_at"`
	RelativeTime string    `json:"relative_time"`
	Icon         string    `json:"icon"`
	Color        string    `json:"color"`
}

func (r *NotificationResponse) FromModel(item model.Notification, now time.Time) {
	appearance := model.AppearanceFor(item.Type, item.Priority)

	r.ID = item.ID
	r.Type = item.Type
	r.Priority = item.Priority
	r.Title = item.Title
	r.Message = item.Message
	r.Read = item.Read
	r.CreatedAt = item.CreatedAt
	r.RelativeTime = model.RelativeTime(item.CreatedAt, now)
	r.Icon = appearance.Icon
	r.Color = appearance.Color
}

type GetNotificationsResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	UnreadCount   int                    `json:"unread_count"`
	Total         int                    `json:"total"`
}

func (r *GetNotificationsResponse) FromModels(items []model.Notification, now time.Time) {
	r.Notifications = make([]NotificationResponse, len(items))
	for i, item := range items {
		r.Notifications[i].FromModel(item, now)
	}

	r.UnreadCount = model.UnreadCount(items)
	r.Total = len(items)
}

// CreateNotificationRequest pushes a notification to one staff member, or to the caller when UserID is empty.
type CreateNotificationRequest struct {
	UserID   string `json:"user_id"`
	Type     string `json:"type"     validate:"required,oneof=check_in check_out maintenance housekeeping urgent info success reminder"`
	Priority string `json:"priority" validate:"required,oneof=high medium low"`
	Title    string `json:"title"    validate:"required,max=120"`
	Message  string `json:"message"  validate:"required,max=500"`
}

func (r CreateNotificationRequest) ToModel(id string, now time.Time) model.Notification {
	return model.Notification{
		ID:        id,
		Type:      r.Type,
		Priority:  r.Priority,
		Title:     r.Title,
		Message:   r.Message,
		CreatedAt: now,
	}
}

type MarkReadResponse struct {
	ID          string `json:"id,omitempty"`
	Changed     int    `json:"changed"`
	UnreadCount int    `json:"unread_count"`
}
