package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/pokerledger/internal/api/handler"
	"github.com/mcoot/pokerledger/internal/api/middleware"
	"github.com/mcoot/pokerledger/internal/services/controller"
)

// PathPrefix is where the JSON API is mounted
const PathPrefix = "/api/v1"

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger     *slog.Logger
	Controller *controller.Controller
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	ledgerHandler := handler.NewLedgerHandler(cfg.Controller, cfg.Logger)

	api := r.PathPrefix(PathPrefix).Subrouter()
	api.Use(middleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))

	api.HandleFunc("/health", ledgerHandler.Health).Methods(http.MethodGet)

	// Session routes
	api.HandleFunc("/session", ledgerHandler.GetSession).Methods(http.MethodGet)
	api.HandleFunc("/session/reset", ledgerHandler.Reset).Methods(http.MethodPost)
	api.HandleFunc("/summary", ledgerHandler.GetSummary).Methods(http.MethodGet)

	// Player routes
	api.HandleFunc("/players", ledgerHandler.AddPlayer).Methods(http.MethodPost)
	api.HandleFunc("/players/{id}", ledgerHandler.GetPlayer).Methods(http.MethodGet)
	api.HandleFunc("/players/{id}", ledgerHandler.RemovePlayer).Methods(http.MethodDelete)
	api.HandleFunc("/players/{id}/rebuys", ledgerHandler.AddRebuy).Methods(http.MethodPost)
	api.HandleFunc("/players/{id}/cashout", ledgerHandler.SetCashOut).Methods(http.MethodPut)

	return r
}
