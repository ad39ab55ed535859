package request

// CreateProductRequest is the payload of POST /products. Prices are integer
// minor units.
type CreateProductRequest struct {
	Name      string `json:"name" binding:"required"`
	UnitPrice int64  `json:"unit_price"`
	Quantity  int64  `json:"quantity"`
}

// UpdateProductRequest is the payload of PUT /products/:id.
type UpdateProductRequest struct {
	Name      string `json:"name" binding:"required"`
	UnitPrice int64  `json:"unit_price"`
	Quantity  int64  `json:"quantity"`
}
