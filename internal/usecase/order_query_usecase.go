package usecase

import (
	"context"
	"souk_marketplace/internal/domain/entities"
	"souk_marketplace/internal/usecase/interfaces"
)

// IOrderQueryUseCase exposes the order read surfaces.

type IOrderQueryUseCase interface {
	ListMine(ctx context.Context, principal entities.Principal) ([]entities.Order, error)
	ListReceived(ctx context.Context, principal entities.Principal) ([]entities.Order, error)
}

type OrderQueryUseCase struct {
	orders interfaces.IOrderRepository
}

var _ IOrderQueryUseCase = (*OrderQueryUseCase)(nil)

func NewOrderQueryUseCase(orders interfaces.IOrderRepository) *OrderQueryUseCase {
	return &OrderQueryUseCase{orders: orders}
}

// ListMine returns the principal's orders as buyer, newest first. Any role
// may call it; the result is always scoped to the caller.
func (u *OrderQueryUseCase) ListMine(ctx context.Context, principal entities.Principal) ([]entities.Order, error) {
	return u.orders.ListByClientID(ctx, principal.ID)
}

// ListReceived returns the orders addressed to the principal as supplier,
// newest first.
func (u *OrderQueryUseCase) ListReceived(ctx context.Context, principal entities.Principal) ([]entities.Order, error) {
	if principal.Role != entities.RoleSupplier {
		return nil, ErrForbidden
	}
	return u.orders.ListBySupplierID(ctx, principal.ID)
}
