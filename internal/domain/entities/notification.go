package entities

import "time"

// NotificationKind identifies the order event that produced a notification.

type NotificationKind string

const (
	NotificationOrderCreated  NotificationKind = "order_created"
	NotificationOrderAccepted NotificationKind = "order_accepted"
	NotificationOrderRejected NotificationKind = "order_rejected"
)

// Notification is an append-only audit record written as a side effect of
// order creation and lifecycle transitions. Records are never mutated.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (recipient_id-index): recipient_id, range created_at
type Notification struct {
	ID          string           `json:"id"`
	RecipientID string           `json:"recipient_id"`
	OrderID     string           `json:"order_id"`
	Kind        NotificationKind `json:"kind"`
	Message     string           `json:"message"`
	CreatedAt   time.Time        `json:"created_at"`
}
