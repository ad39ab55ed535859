package response

import (
	"souk_marketplace/internal/domain/entities"
	"time"
)

type NotificationResponse struct {
	ID          string    `json:"id"`
	RecipientID string    `json:"recipient_id"`
	OrderID     string    `json:"order_id"`
	Kind        string    `json:"kind"`
	Message     string    `json:"message"`
	CreatedAt   time.Time `json:"created_at"`
}

type NotificationsResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
}

func FromNotification(n entities.Notification) NotificationResponse {
	return NotificationResponse{
		ID:          n.ID,
		RecipientID: n.RecipientID,
		OrderID:     n.OrderID,
		Kind:        string(n.Kind),
		Message:     n.Message,
		CreatedAt:   n.CreatedAt,
	}
}

func FromNotifications(notifications []entities.Notification) NotificationsResponse {
	out := make([]NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		out = append(out, FromNotification(n))
	}
	return NotificationsResponse{Notifications: out}
}
