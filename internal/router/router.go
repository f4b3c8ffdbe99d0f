package router

import (
	"net/http"
	"strings"

	"backoffice/internal/handler"
	"backoffice/internal/middleware"

	"github.com/rs/zerolog"
)

// resource wires a collection path to its CRUD handler methods.
type resource struct {
	list    http.HandlerFunc
	create  http.HandlerFunc
	getByID func(w http.ResponseWriter, r *http.Request, id string)
	update  func(w http.ResponseWriter, r *http.Request, id string)
	remove  func(w http.ResponseWriter, r *http.Request, id string)
}

// New creates a new HTTP router with all routes and middleware configured.
func New(
	productHandler *handler.ProductHandler,
	orderHandler *handler.OrderHandler,
	promoHandler *handler.PromoHandler,
	dashboardHandler *handler.DashboardHandler,
	apiKey string,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	registerResource(mux, "/api/products", resource{
		list:    productHandler.List,
		create:  productHandler.Create,
		getByID: productHandler.GetByID,
		update:  productHandler.Update,
		remove:  productHandler.Remove,
	})

	registerResource(mux, "/api/orders", resource{
		list:    orderHandler.List,
		create:  orderHandler.Create,
		getByID: orderHandler.GetByID,
		update:  orderHandler.Update,
		remove:  orderHandler.Remove,
	})

	registerResource(mux, "/api/promos", resource{
		list:    promoHandler.List,
		create:  promoHandler.Create,
		getByID: promoHandler.GetByID,
		update:  promoHandler.Update,
		remove:  promoHandler.Remove,
	})

	mux.HandleFunc("/api/dashboard/summary", requireGet(dashboardHandler.Summary))
	mux.HandleFunc("/api/dashboard/alerts", requireGet(dashboardHandler.Alerts))

	// Apply middleware in order: Recovery -> Logging -> RequestID -> CORS -> APIKeyAuth
	var h http.Handler = mux
	h = middleware.APIKeyAuth(apiKey, logger)(h)
	h = middleware.CORS(h)
	h = middleware.RequestID(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)

	return h
}

// registerResource registers the collection and record routes for one
// entity (both with and without trailing slash on the collection path).
func registerResource(mux *http.ServeMux, base string, res resource) {
	collectionHandler := func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			res.list(w, r)
		case http.MethodPost:
			res.create(w, r)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	}

	recordHandler := func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, base+"/")
		if id == "" || strings.Contains(id, "/") {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}

		switch r.Method {
		case http.MethodGet:
			res.getByID(w, r, id)
		case http.MethodPut:
			res.update(w, r, id)
		case http.MethodDelete:
			res.remove(w, r, id)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	}

	mux.HandleFunc(base, collectionHandler)
	mux.HandleFunc(base+"/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == base+"/" {
			collectionHandler(w, r)
			return
		}
		recordHandler(w, r)
	})
}

// requireGet rejects non-GET methods.
func requireGet(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		next(w, r)
	}
}
