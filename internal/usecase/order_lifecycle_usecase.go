package usecase

import (
	"context"
	"errors"
	"log"
	"souk_marketplace/internal/domain/entities"
	"souk_marketplace/internal/usecase/interfaces"
	"strings"
)

var (
	ErrInvalidOrderID        = errors.New("invalid order id")
	ErrOrderNotFound         = errors.New("order not found")
	ErrOrderAlreadyProcessed = errors.New("order already processed")
)

// IOrderLifecycleUseCase applies the supplier's decision to a single order.
//
// Accept/Refuse are strictly one-shot: re-invoking either on a resolved
// order fails with ErrOrderAlreadyProcessed rather than no-opping, so the
// caller learns a terminal state was already reached.

type IOrderLifecycleUseCase interface {
	Accept(ctx context.Context, principal entities.Principal, orderID string) (entities.Order, error)
	Refuse(ctx context.Context, principal entities.Principal, orderID string) (entities.Order, error)
}

type OrderLifecycleUseCase struct {
	orders        interfaces.IOrderRepository
	products      interfaces.IProductRepository
	notifications interfaces.INotificationRepository
}

var _ IOrderLifecycleUseCase = (*OrderLifecycleUseCase)(nil)

func NewOrderLifecycleUseCase(
	orders interfaces.IOrderRepository,
	products interfaces.IProductRepository,
	notifications interfaces.INotificationRepository,
) *OrderLifecycleUseCase {
	return &OrderLifecycleUseCase{orders: orders, products: products, notifications: notifications}
}

func (u *OrderLifecycleUseCase) Accept(ctx context.Context, principal entities.Principal, orderID string) (entities.Order, error) {
	return u.respond(ctx, principal, orderID, entities.OrderStatusAccepted)
}

func (u *OrderLifecycleUseCase) Refuse(ctx context.Context, principal entities.Principal, orderID string) (entities.Order, error) {
	return u.respond(ctx, principal, orderID, entities.OrderStatusRejected)
}

func (u *OrderLifecycleUseCase) respond(ctx context.Context, principal entities.Principal, orderID string, status entities.OrderStatus) (entities.Order, error) {
	if principal.Role != entities.RoleSupplier {
		return entities.Order{}, ErrForbidden
	}
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	o, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	if o.SupplierID != principal.ID {
		return entities.Order{}, ErrForbidden
	}
	if !o.Status.CanTransition(status) {
		return entities.Order{}, ErrOrderAlreadyProcessed
	}

	// The read above can race with a concurrent decision; the conditional
	// update keyed on status==new is the authoritative check.
	updated, err := u.orders.UpdateStatusIfNew(ctx, o.ID, status, status == entities.OrderStatusAccepted)
	if err != nil {
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderAlreadyProcessed
	}
	log.Printf("[order][usecase] order resolved order_id=%s supplier_id=%s status=%s", updated.ID, principal.ID, updated.Status)

	if status == entities.OrderStatusRejected {
		u.releaseItems(ctx, updated)
	}

	kind := entities.NotificationOrderAccepted
	message := "Your order has been accepted by the supplier"
	if status == entities.OrderStatusRejected {
		kind = entities.NotificationOrderRejected
		message = "Your order has been refused by the supplier"
	}
	appendNotification(ctx, u.notifications, entities.Notification{
		RecipientID: updated.ClientID,
		OrderID:     updated.ID,
		Kind:        kind,
		Message:     message,
	})

	return updated, nil
}

// releaseItems returns the stock reserved at placement time when a supplier
// refuses. The status transition is already committed; a failed release is
// logged, not surfaced.
func (u *OrderLifecycleUseCase) releaseItems(ctx context.Context, o entities.Order) {
	for _, it := range o.Items {
		if err := u.products.ReleaseStock(ctx, it.ProductID, it.Quantity); err != nil {
			log.Printf("[order][usecase] stock release failed order_id=%s product_id=%s quantity=%d err=%v", o.ID, it.ProductID, it.Quantity, err)
		}
	}
}
