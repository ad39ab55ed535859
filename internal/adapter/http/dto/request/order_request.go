package request

import (
	"math"

	"souk_marketplace/internal/usecase"
)

// OrderLineRequest is one cart line as submitted by the storefront. The
// wire names (`productId`, `quantite`) are the historical client contract
// and are kept as-is.
type OrderLineRequest struct {
	ProductID string  `json:"productId" binding:"required"`
	Quantity  float64 `json:"quantite"`
}

// PlaceOrderRequest is the payload of POST /orders.
type PlaceOrderRequest struct {
	Items []OrderLineRequest `json:"items" binding:"required"`
}

// ToCartLines converts the payload into domain cart lines. Fractional
// quantities are floored; the use case clamps anything below 1 up to 1.
func (r PlaceOrderRequest) ToCartLines() []usecase.CartLine {
	lines := make([]usecase.CartLine, 0, len(r.Items))
	for _, it := range r.Items {
		lines = append(lines, usecase.CartLine{
			ProductID: it.ProductID,
			Quantity:  int64(math.Floor(it.Quantity)),
		})
	}
	return lines
}
