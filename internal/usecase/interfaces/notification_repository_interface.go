package interfaces

import (
	"context"
	"souk_marketplace/internal/domain/entities"
)

// INotificationRepository abstracts the append-only notification store.

type INotificationRepository interface {
	Append(ctx context.Context, n entities.Notification) (entities.Notification, error)
	ListByRecipientID(ctx context.Context, recipientID string, limit int32) ([]entities.Notification, error)
}
