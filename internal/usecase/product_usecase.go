package usecase

import (
	"context"
	"errors"
	"souk_marketplace/internal/domain/entities"
	"souk_marketplace/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrInvalidProductID = errors.New("invalid product id")
	ErrInvalidProduct   = errors.New("invalid product")
)

// IProductUseCase exposes supplier catalog management. The order engine does
// not go through these operations; it consumes the repository's conditional
// stock primitives directly.

type IProductUseCase interface {
	Create(ctx context.Context, principal entities.Principal, name string, unitPrice, quantity int64) (entities.Product, error)
	Update(ctx context.Context, principal entities.Principal, id, name string, unitPrice, quantity int64) (entities.Product, error)
	Delete(ctx context.Context, principal entities.Principal, id string) error
	GetByID(ctx context.Context, id string) (entities.Product, error)
	List(ctx context.Context) ([]entities.Product, error)
}

type ProductUseCase struct {
	repo interfaces.IProductRepository
}

var _ IProductUseCase = (*ProductUseCase)(nil)

func NewProductUseCase(repo interfaces.IProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

func (u *ProductUseCase) Create(ctx context.Context, principal entities.Principal, name string, unitPrice, quantity int64) (entities.Product, error) {
	if principal.Role != entities.RoleSupplier {
		return entities.Product{}, ErrForbidden
	}
	name = strings.TrimSpace(name)
	if name == "" || unitPrice < 0 || quantity < 0 {
		return entities.Product{}, ErrInvalidProduct
	}

	now := time.Now().UTC()
	p := entities.Product{
		ID:         uuid.NewString(),
		SupplierID: principal.ID,
		Name:       name,
		UnitPrice:  unitPrice,
		Quantity:   quantity,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	return u.repo.Create(ctx, p)
}

func (u *ProductUseCase) Update(ctx context.Context, principal entities.Principal, id, name string, unitPrice, quantity int64) (entities.Product, error) {
	if principal.Role != entities.RoleSupplier {
		return entities.Product{}, ErrForbidden
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Product{}, ErrInvalidProductID
	}
	name = strings.TrimSpace(name)
	if name == "" || unitPrice < 0 || quantity < 0 {
		return entities.Product{}, ErrInvalidProduct
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Product{}, err
	}
	if existing.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}
	if existing.SupplierID != principal.ID {
		return entities.Product{}, ErrForbidden
	}

	existing.Name = name
	existing.UnitPrice = unitPrice
	existing.Quantity = quantity
	existing.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, existing)
}

func (u *ProductUseCase) Delete(ctx context.Context, principal entities.Principal, id string) error {
	if principal.Role != entities.RoleSupplier {
		return ErrForbidden
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidProductID
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.ID == "" {
		return ErrProductNotFound
	}
	if existing.SupplierID != principal.ID {
		return ErrForbidden
	}
	return u.repo.Delete(ctx, id)
}

func (u *ProductUseCase) GetByID(ctx context.Context, id string) (entities.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Product{}, ErrInvalidProductID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Product{}, err
	}
	if p.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (u *ProductUseCase) List(ctx context.Context) ([]entities.Product, error) {
	return u.repo.List(ctx)
}
