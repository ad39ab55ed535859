package usecase

import (
	"context"
	"souk_marketplace/internal/domain/entities"
	"souk_marketplace/internal/usecase/interfaces"
)

const notificationPageSize = 50

// INotificationUseCase exposes the notification read surface. Writes happen
// only as side effects inside the order use cases.

type INotificationUseCase interface {
	ListForUser(ctx context.Context, principal entities.Principal) ([]entities.Notification, error)
}

type NotificationUseCase struct {
	notifications interfaces.INotificationRepository
}

var _ INotificationUseCase = (*NotificationUseCase)(nil)

func NewNotificationUseCase(notifications interfaces.INotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{notifications: notifications}
}

// ListForUser returns up to 50 most recent notifications for the principal,
// newest first.
func (u *NotificationUseCase) ListForUser(ctx context.Context, principal entities.Principal) ([]entities.Notification, error) {
	return u.notifications.ListByRecipientID(ctx, principal.ID, notificationPageSize)
}
