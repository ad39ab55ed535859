package interfaces

import (
	"context"
	"souk_marketplace/internal/domain/entities"
)

// IProductRepository abstracts DynamoDB persistence for Product. It doubles
// as the catalog accessor consumed by the order engine.
//
// ReserveStock is the atomic check-and-reserve primitive: it decrements the
// live quantity only when at least `quantity` units remain, as a single
// conditional update. It returns (false, nil) when stock is insufficient.
// Two concurrent placements racing for the last units can therefore never
// both succeed.
//
// ReleaseStock returns previously reserved units, used when a cart fails
// after some lines were already reserved and when a supplier refuses an
// order. Releasing against a product deleted in the meantime is a no-op.

type IProductRepository interface {
	Create(ctx context.Context, p entities.Product) (entities.Product, error)
	GetByID(ctx context.Context, id string) (entities.Product, error)
	List(ctx context.Context) ([]entities.Product, error)
	Update(ctx context.Context, p entities.Product) (entities.Product, error)
	Delete(ctx context.Context, id string) error
	ReserveStock(ctx context.Context, id string, quantity int64) (bool, error)
	ReleaseStock(ctx context.Context, id string, quantity int64) error
}
