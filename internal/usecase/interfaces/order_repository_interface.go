package interfaces

import (
	"context"
	"souk_marketplace/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB persistence for Order.
//
// The order engine must be able to:
//   - create one order per supplier group during placement
//   - resolve a single order for the ownership check
//   - flip status new->accepted/rejected as one conditional update
//   - list orders per client and per supplier, newest first
//
// UpdateStatusIfNew returns a zero-value Order when the order exists but is
// no longer "new" (the conditional check failed) so the use case can report
// a conflict instead of silently re-applying a terminal transition.

type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	UpdateStatusIfNew(ctx context.Context, id string, status entities.OrderStatus, acceptedAt bool) (entities.Order, error)
	ListByClientID(ctx context.Context, clientID string) ([]entities.Order, error)
	ListBySupplierID(ctx context.Context, supplierID string) ([]entities.Order, error)
}
