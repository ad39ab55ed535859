package response

import (
	"souk_marketplace/internal/domain/entities"
	"time"
)

type OrderLineResponse struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	SupplierID  string `json:"supplier_id"`
	Quantity    int64  `json:"quantity"`
	UnitPrice   int64  `json:"unit_price"`
}

type OrderResponse struct {
	ID          string              `json:"id"`
	ClientID    string              `json:"client_id"`
	ClientName  string              `json:"client_name"`
	SupplierID  string              `json:"supplier_id"`
	Items       []OrderLineResponse `json:"items"`
	TotalAmount int64               `json:"total_amount"`
	Status      string              `json:"status"`
	AcceptedAt  *time.Time          `json:"accepted_at,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
}

// OrderStatusResponse is the slim body returned by accept/refuse.
type OrderStatusResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type OrdersResponse struct {
	Orders []OrderResponse `json:"orders"`
}

func FromOrder(o entities.Order) OrderResponse {
	items := make([]OrderLineResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderLineResponse{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			SupplierID:  it.SupplierID,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		})
	}
	return OrderResponse{
		ID:          o.ID,
		ClientID:    o.ClientID,
		ClientName:  o.ClientName,
		SupplierID:  o.SupplierID,
		Items:       items,
		TotalAmount: o.TotalAmount,
		Status:      string(o.Status),
		AcceptedAt:  o.AcceptedAt,
		CreatedAt:   o.CreatedAt,
	}
}

func FromOrders(orders []entities.Order) OrdersResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return OrdersResponse{Orders: out}
}

func FromOrderStatus(o entities.Order) OrderStatusResponse {
	return OrderStatusResponse{ID: o.ID, Status: string(o.Status)}
}
