package model

// Status is the fulfilment state of an order. There is no enforced
// transition graph: any status may be replaced by any other via an update.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

// Order represents a customer order.
type Order struct {
	ID     string `json:"id"`
	Date   string `json:"date"`
	Items  []Item `json:"items"`
	Status Status `json:"status"`
	Note   string `json:"note,omitempty"`
}

// Item is a single order line. ProductID is a lookup key only: the
// referenced product may later be deactivated or missing entirely. Price is
// captured at order-creation time so later catalogue price changes do not
// rewrite historical order value.
type Item struct {
	ProductID string  `json:"productId"`
	Qty       int     `json:"qty"`
	Price     float64 `json:"price"`
}

// OrderRequest represents the payload for creating an order.
type OrderRequest struct {
	Date   string        `json:"date" validate:"required"`
	Items  []ItemRequest `json:"items" validate:"min=1,dive"`
	Status Status        `json:"status" validate:"required,oneof=pending processing shipped delivered cancelled"`
	Note   string        `json:"note"`
}

// ItemRequest represents a single line in an order request. Price is
// optional: when omitted the current catalogue price of the product is
// captured instead.
type ItemRequest struct {
	ProductID string   `json:"productId" validate:"required"`
	Qty       int      `json:"qty" validate:"gt=0"`
	Price     *float64 `json:"price" validate:"omitempty,gte=0"`
}

// StockWarning reports a single order line whose stock debit was skipped
// because it would have driven the product's stock negative. The order
// itself is still created.
type StockWarning struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Requested int    `json:"requested"`
	Available int    `json:"available"`
}

// OrderPlacement is the outcome of placing an order: the stored order plus
// any per-line stock warnings.
type OrderPlacement struct {
	Order    Order          `json:"order"`
	Warnings []StockWarning `json:"warnings,omitempty"`
}
