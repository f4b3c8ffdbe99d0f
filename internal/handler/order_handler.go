package handler

import (
	"net/http"

	"backoffice/internal/model"
	"backoffice/internal/store"

	"github.com/rs/zerolog"
)

// OrderHandler handles order-related HTTP requests.
type OrderHandler struct {
	store  *store.Store
	logger zerolog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(s *store.Store, logger zerolog.Logger) *OrderHandler {
	return &OrderHandler{
		store:  s,
		logger: logger.With().Str("handler", "order").Logger(),
	}
}

// List handles GET /api/orders requests.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Orders())
}

// Create handles POST /api/orders requests. Insufficient stock on a line is
// not a failure: the order is created and the response carries the warnings.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.OrderRequest
	if err := decodeJSON(r, &req); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	placement, err := h.store.AddOrder(r.Context(), req)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, placement)
}

// GetByID handles GET /api/orders/{id} requests.
func (h *OrderHandler) GetByID(w http.ResponseWriter, r *http.Request, id string) {
	order := h.store.OrderByID(id)
	if order == nil {
		writeError(w, http.StatusNotFound, "order not found", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

// Update handles PUT /api/orders/{id} requests. The replacement is literal:
// stock is not re-derived from the new item list.
func (h *OrderHandler) Update(w http.ResponseWriter, r *http.Request, id string) {
	var req model.OrderRequest
	if err := decodeJSON(r, &req); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	order := model.Order{
		ID:     id,
		Date:   req.Date,
		Items:  h.resolveItems(req.Items),
		Status: req.Status,
		Note:   req.Note,
	}

	result, err := h.store.UpdateOrder(r.Context(), order)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	if !result.Applied() {
		writeError(w, http.StatusNotFound, "order not found", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, order)
}

// resolveItems converts request lines to stored lines, falling back to the
// current catalogue price for lines that did not pin one.
func (h *OrderHandler) resolveItems(reqItems []model.ItemRequest) []model.Item {
	items := make([]model.Item, 0, len(reqItems))
	for _, ri := range reqItems {
		price := 0.0
		if ri.Price != nil {
			price = *ri.Price
		} else if p := h.store.ProductByID(ri.ProductID); p != nil {
			price = p.Price
		}
		items = append(items, model.Item{ProductID: ri.ProductID, Qty: ri.Qty, Price: price})
	}
	return items
}

// Remove handles DELETE /api/orders/{id} requests. Orders are hard-deleted;
// stock debited at placement stays debited.
func (h *OrderHandler) Remove(w http.ResponseWriter, r *http.Request, id string) {
	result, err := h.store.RemoveOrder(r.Context(), id)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	if !result.Applied() {
		writeError(w, http.StatusNotFound, "order not found", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
