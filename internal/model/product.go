package model

// Product represents an item in the store catalogue.
//
// A product is never purged from the catalogue: deactivation flips Active
// to false and keeps the record so historical orders stay resolvable.
type Product struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	SKU      string  `json:"sku"`
	Price    float64 `json:"price"`
	Stock    int     `json:"stock"`
	Category string  `json:"category,omitempty"`
	Active   bool    `json:"active"`
}

// ProductRequest represents the payload for creating or replacing a product.
type ProductRequest struct {
	Name     string  `json:"name" validate:"required"`
	SKU      string  `json:"sku" validate:"required"`
	Price    float64 `json:"price" validate:"gte=0"`
	Stock    int     `json:"stock" validate:"gte=0"`
	Category string  `json:"category"`
	Active   *bool   `json:"active"`
}

// IsActive returns the requested active flag, defaulting to true when the
// field was omitted.
func (r *ProductRequest) IsActive() bool {
	if r.Active == nil {
		return true
	}
	return *r.Active
}
