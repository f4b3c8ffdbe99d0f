package handler

import (
	"net/http"
	"time"

	"backoffice/internal/dashboard"
	"backoffice/internal/model"
	"backoffice/internal/store"

	"github.com/rs/zerolog"
)

// DashboardHandler serves derived KPI and alert figures.
type DashboardHandler struct {
	store  *store.Store
	now    func() time.Time
	logger zerolog.Logger
}

// NewDashboardHandler creates a new dashboard handler. The clock is
// injectable for tests.
func NewDashboardHandler(s *store.Store, now func() time.Time, logger zerolog.Logger) *DashboardHandler {
	if now == nil {
		now = time.Now
	}
	return &DashboardHandler{
		store:  s,
		now:    now,
		logger: logger.With().Str("handler", "dashboard").Logger(),
	}
}

// Summary handles GET /api/dashboard/summary requests.
func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary := dashboard.BuildSummary(h.store.Orders(), h.store.Promos(), h.now())
	writeJSON(w, http.StatusOK, summary)
}

// AlertsResponse groups the stock alert lists.
type AlertsResponse struct {
	LowStock   []model.Product `json:"lowStock"`
	OutOfStock []model.Product `json:"outOfStock"`
}

// Alerts handles GET /api/dashboard/alerts requests.
func (h *DashboardHandler) Alerts(w http.ResponseWriter, r *http.Request) {
	products := h.store.Products()
	writeJSON(w, http.StatusOK, AlertsResponse{
		LowStock:   dashboard.LowStockAlerts(products),
		OutOfStock: dashboard.OutOfStockAlerts(products),
	})
}
