package handler

import (
	"net/http"

	"backoffice/internal/model"
	"backoffice/internal/store"

	"github.com/rs/zerolog"
)

// PromoHandler handles promo-related HTTP requests.
type PromoHandler struct {
	store  *store.Store
	logger zerolog.Logger
}

// NewPromoHandler creates a new promo handler.
func NewPromoHandler(s *store.Store, logger zerolog.Logger) *PromoHandler {
	return &PromoHandler{
		store:  s,
		logger: logger.With().Str("handler", "promo").Logger(),
	}
}

// List handles GET /api/promos requests.
func (h *PromoHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Promos())
}

// Create handles POST /api/promos requests.
func (h *PromoHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.PromoRequest
	if err := decodeJSON(r, &req); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	promo, err := h.store.AddPromo(r.Context(), req)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, promo)
}

// GetByID handles GET /api/promos/{id} requests.
func (h *PromoHandler) GetByID(w http.ResponseWriter, r *http.Request, id string) {
	promo := h.store.PromoByID(id)
	if promo == nil {
		writeError(w, http.StatusNotFound, "promo not found", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, promo)
}

// Update handles PUT /api/promos/{id} requests.
func (h *PromoHandler) Update(w http.ResponseWriter, r *http.Request, id string) {
	var req model.PromoRequest
	if err := decodeJSON(r, &req); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	promo := model.Promo{
		ID:        id,
		Code:      req.Code,
		Type:      req.Type,
		Value:     req.Value,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Active:    req.Active,
	}

	result, err := h.store.UpdatePromo(r.Context(), promo)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	if !result.Applied() {
		writeError(w, http.StatusNotFound, "promo not found", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, promo)
}

// Remove handles DELETE /api/promos/{id} requests.
func (h *PromoHandler) Remove(w http.ResponseWriter, r *http.Request, id string) {
	result, err := h.store.RemovePromo(r.Context(), id)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	if !result.Applied() {
		writeError(w, http.StatusNotFound, "promo not found", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
