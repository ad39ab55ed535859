package response

import (
	"souk_marketplace/internal/domain/entities"
	"time"
)

type ProductResponse struct {
	ID         string    `json:"id"`
	SupplierID string    `json:"supplier_id"`
	Name       string    `json:"name"`
	UnitPrice  int64     `json:"unit_price"`
	Quantity   int64     `json:"quantity"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type ProductsResponse struct {
	Products []ProductResponse `json:"products"`
}

func FromProduct(p entities.Product) ProductResponse {
	return ProductResponse{
		ID:         p.ID,
		SupplierID: p.SupplierID,
		Name:       p.Name,
		UnitPrice:  p.UnitPrice,
		Quantity:   p.Quantity,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

func FromProducts(products []entities.Product) ProductsResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, FromProduct(p))
	}
	return ProductsResponse{Products: out}
}
