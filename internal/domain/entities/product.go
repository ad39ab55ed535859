package entities

import "time"

// Product is a supplier-owned catalog entry.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Quantity is live stock and is mutated only through the repository's
// conditional reserve/release operations; the order engine never writes
// it with a plain read-modify-write.
type Product struct {
	ID         string    `json:"id"`
	SupplierID string    `json:"supplier_id"`
	Name       string    `json:"name"`
	UnitPrice  int64     `json:"unit_price"`
	Quantity   int64     `json:"quantity"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
