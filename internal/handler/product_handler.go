package handler

import (
	"net/http"

	"backoffice/internal/model"
	"backoffice/internal/store"

	"github.com/rs/zerolog"
)

// ProductHandler handles product-related HTTP requests.
type ProductHandler struct {
	store  *store.Store
	logger zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(s *store.Store, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		store:  s,
		logger: logger.With().Str("handler", "product").Logger(),
	}
}

// List handles GET /api/products requests.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Products())
}

// Create handles POST /api/products requests.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.ProductRequest
	if err := decodeJSON(r, &req); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	product, err := h.store.AddProduct(r.Context(), req)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, product)
}

// GetByID handles GET /api/products/{id} requests.
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request, id string) {
	product := h.store.ProductByID(id)
	if product == nil {
		writeError(w, http.StatusNotFound, "product not found", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

// Update handles PUT /api/products/{id} requests. The id comes from the
// path: record ids are immutable and a body id is not accepted.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request, id string) {
	var req model.ProductRequest
	if err := decodeJSON(r, &req); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	product := model.Product{
		ID:       id,
		Name:     req.Name,
		SKU:      req.SKU,
		Price:    req.Price,
		Stock:    req.Stock,
		Category: req.Category,
		Active:   req.IsActive(),
	}

	result, err := h.store.UpdateProduct(r.Context(), product)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	if !result.Applied() {
		writeError(w, http.StatusNotFound, "product not found", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// Remove handles DELETE /api/products/{id} requests. Deletion is a soft
// deactivation and must be confirmed with ?confirm=true; without it nothing
// changes.
func (h *ProductHandler) Remove(w http.ResponseWriter, r *http.Request, id string) {
	confirmed := r.URL.Query().Get("confirm") == "true"

	result, err := h.store.DeactivateProduct(r.Context(), id, confirmed)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	switch result.Outcome {
	case model.OutcomeDeclined:
		writeError(w, http.StatusBadRequest, "confirmation required: pass confirm=true to deactivate", h.logger)
	case model.OutcomeNotFound:
		writeError(w, http.StatusNotFound, "product not found", h.logger)
	default:
		writeJSON(w, http.StatusOK, result)
	}
}
