package model

// PromoType is the discount style of a promotional code.
type PromoType string

const (
	PromoFixed      PromoType = "fixed"
	PromoPercentage PromoType = "percentage"
)

// Promo represents a promotional code. The start/end window is validated at
// write time only; it is never checked against the clock for automatic
// activation or expiry. The Active flag is the sole authority.
type Promo struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Type      PromoType `json:"type"`
	Value     float64   `json:"value"`
	StartDate string    `json:"startDate"`
	EndDate   string    `json:"endDate"`
	Active    bool      `json:"active"`
}

// PromoRequest represents the payload for creating or replacing a promo.
type PromoRequest struct {
	Code      string    `json:"code" validate:"required"`
	Type      PromoType `json:"type" validate:"required,oneof=fixed percentage"`
	Value     float64   `json:"value" validate:"gte=0"`
	StartDate string    `json:"startDate" validate:"required"`
	EndDate   string    `json:"endDate" validate:"required"`
	Active    bool      `json:"active"`
}
