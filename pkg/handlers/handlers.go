package handlers

import (
	"log/slog"
	"net/http"

	"github.com/chris/upi-expense-tracker/pkg/api"
	"github.com/chris/upi-expense-tracker/pkg/handlers/expenses"
	wshandler "github.com/chris/upi-expense-tracker/pkg/handlers/websockets"
	"github.com/chris/upi-expense-tracker/pkg/middleware"
	"github.com/chris/upi-expense-tracker/pkg/storage"
	"github.com/chris/upi-expense-tracker/pkg/websockets"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ApiHandler implements the generated server interface.
// It composes the feature handlers that serve each group of routes.
type ApiHandler struct {
	*expenses.ExpensesHandler
}

// NewApiHandler creates a new ApiHandler.
func NewApiHandler(store storage.ApiStore, publisher websockets.Publisher, logger *slog.Logger) *ApiHandler {
	return &ApiHandler{ExpensesHandler: expenses.NewExpensesHandler(store, publisher, logger)}
}

// Make sure we conform to the interface
var _ api.ServerInterface = (*ApiHandler)(nil)

// RouterConfig carries the dependencies of the HTTP server.
type RouterConfig struct {
	Store    storage.ApiStore
	Hub      *websockets.Hub
	Verifier middleware.TokenVerifier
	Logger   *slog.Logger
}

// NewRouter mounts the API, the ledger-refresh websocket and the metrics endpoint.
func NewRouter(cfg RouterConfig) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	var publisher websockets.Publisher = &websockets.NoOpPublisher{}
	if cfg.Hub != nil {
		publisher = cfg.Hub
	}

	router := chi.NewRouter()
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.NewStructuredLogger(logger))

	router.Handle("/metrics", promhttp.Handler())

	router.Group(func(r chi.Router) {
		r.Use(middleware.BearerAuth(cfg.Verifier))
		if cfg.Hub != nil {
			r.Handle("/ws", wshandler.NewHandler(cfg.Hub, logger))
		}
		api.HandlerWithOptions(NewApiHandler(cfg.Store, publisher, logger), api.ChiServerOptions{
			BaseRouter: r,
			ErrorHandlerFunc: func(w http.ResponseWriter, r *http.Request, err error) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(`{"message":"Invalid expense ID"}`))
			},
		})
	})

	return router
}
