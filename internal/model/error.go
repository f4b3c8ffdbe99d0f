package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error         string `json:"error"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON     = "INVALID_JSON"
	ErrCodeValidation      = "VALIDATION_FAILED"
	ErrCodeEmptyOrder      = "EMPTY_ORDER"
	ErrCodeInvalidQuantity = "INVALID_QUANTITY"
	ErrCodeNegativePrice   = "NEGATIVE_PRICE"
	ErrCodeNegativeStock   = "NEGATIVE_STOCK"
	ErrCodePromoDateRange  = "INVALID_PROMO_DATES"
	ErrCodeNotFound        = "NOT_FOUND"
	ErrCodeUnauthorised    = "UNAUTHORIZED"
	ErrCodeStorage         = "STORAGE_UNAVAILABLE"
	ErrCodeInternalError   = "INTERNAL_ERROR"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrEmptyOrder      = NewDomainError(ErrCodeEmptyOrder, "An order must contain at least one item")
	ErrInvalidQuantity = NewDomainError(ErrCodeInvalidQuantity, "Quantity must be greater than zero")
	ErrNegativePrice   = NewDomainError(ErrCodeNegativePrice, "Price can't be less than 0")
	ErrNegativeStock   = NewDomainError(ErrCodeNegativeStock, "Stock can't be less than 0")
	ErrPromoDateRange  = NewDomainError(ErrCodePromoDateRange, "The end date should be after the start date")
)
