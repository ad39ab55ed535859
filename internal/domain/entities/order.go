package entities

import "time"

// OrderStatus represents the lifecycle of a marketplace order.
//
// Domain notes:
//   - An order is created as "new" and waits for the owning supplier.
//   - "accepted" and "rejected" are terminal; a resolved order never
//     changes status again.

type OrderStatus string

const (
	OrderStatusNew      OrderStatus = "new"
	OrderStatusAccepted OrderStatus = "accepted"
	OrderStatusRejected OrderStatus = "rejected"
)

// CanTransition reports whether an order may move from one status to another.
// The only legal transitions are new->accepted and new->rejected.
func (s OrderStatus) CanTransition(to OrderStatus) bool {
	if s != OrderStatusNew {
		return false
	}
	return to == OrderStatusAccepted || to == OrderStatusRejected
}

// IsTerminal reports whether no further transition is permitted.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusAccepted || s == OrderStatusRejected
}

// OrderItem is a value snapshot of a product line taken at order-creation
// time. Name, price and supplier are copied, not referenced: a later catalog
// update must never change what the client agreed to buy.
type OrderItem struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	SupplierID  string `json:"supplier_id"`
	Quantity    int64  `json:"quantity"`
	UnitPrice   int64  `json:"unit_price"`
}

// Order is the central aggregate persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (client_id-index): client_id, range created_at
//   - GSI2 (supplier_id-index): supplier_id, range created_at
//
// Monetary representation:
//   - All amounts are integer minor units. TotalAmount is derived once at
//     creation from the item snapshots and never recomputed.
//
// Every item's SupplierID equals the order's SupplierID: a cart spanning
// several suppliers is split into one order per supplier before anything
// is persisted.
type Order struct {
	ID          string      `json:"id"`
	ClientID    string      `json:"client_id"`
	ClientName  string      `json:"client_name"`
	SupplierID  string      `json:"supplier_id"`
	Items       []OrderItem `json:"items"`
	TotalAmount int64       `json:"total_amount"`
	Status      OrderStatus `json:"status"`
	AcceptedAt  *time.Time  `json:"accepted_at,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
}

// Total sums quantity times the snapshotted unit price over all items.
func (o Order) Total() int64 {
	var total int64
	for _, it := range o.Items {
		total += it.Quantity * it.UnitPrice
	}
	return total
}
