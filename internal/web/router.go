package web

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/pokerledger/internal/middleware"
	"github.com/mcoot/pokerledger/internal/services/controller"
	"github.com/mcoot/pokerledger/internal/web/handler"
	webmiddleware "github.com/mcoot/pokerledger/internal/web/middleware"
	"github.com/mcoot/pokerledger/internal/web/sse"
)

// RouterConfig holds configuration for the web router
type RouterConfig struct {
	Logger     *slog.Logger
	Controller *controller.Controller
	Hub        *sse.Hub
	StaticDir  string // Path to static files directory
}

// NewRouter creates a new web router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	r.Use(webmiddleware.Recovery(cfg.Logger))
	r.Use(middleware.Logging(cfg.Logger))

	ledgerHandler := handler.NewLedgerHandler(cfg.Controller, cfg.Hub, cfg.Logger)

	// Static files
	if cfg.StaticDir != "" {
		staticHandler := http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir)))
		r.PathPrefix("/static/").Handler(staticHandler)
	}

	r.HandleFunc("/", ledgerHandler.Home).Methods(http.MethodGet)
	r.HandleFunc("/events", ledgerHandler.Events).Methods(http.MethodGet)

	players := r.PathPrefix("/players").Subrouter()
	players.HandleFunc("", ledgerHandler.AddPlayer).Methods(http.MethodPost)
	players.HandleFunc("/{id}/rebuy", ledgerHandler.RebuyDialog).Methods(http.MethodGet)
	players.HandleFunc("/{id}/rebuy", ledgerHandler.CloseRebuyDialog).Methods(http.MethodPost)
	players.HandleFunc("/{id}/cashout", ledgerHandler.CashOutDialog).Methods(http.MethodGet)
	players.HandleFunc("/{id}/cashout", ledgerHandler.CloseCashOutDialog).Methods(http.MethodPost)
	players.HandleFunc("/{id}/cashout/live", ledgerHandler.LiveCashOut).Methods(http.MethodPost)
	players.HandleFunc("/{id}/remove", ledgerHandler.RemovePlayer).Methods(http.MethodPost)

	r.HandleFunc("/session/reset", ledgerHandler.Reset).Methods(http.MethodPost)

	return r
}
