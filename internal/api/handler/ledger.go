package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/pokerledger/internal/api/request"
	"github.com/mcoot/pokerledger/internal/api/response"
	"github.com/mcoot/pokerledger/internal/model"
	"github.com/mcoot/pokerledger/internal/services/controller"
)

// LedgerHandler handles session and player endpoints
type LedgerHandler struct {
	controller *controller.Controller
	logger     *slog.Logger
}

// NewLedgerHandler creates a new ledger handler
func NewLedgerHandler(ctrl *controller.Controller, logger *slog.Logger) *LedgerHandler {
	return &LedgerHandler{
		controller: ctrl,
		logger:     logger.With(slog.String("component", "api-ledger")),
	}
}

// Health handles GET /api/v1/health
func (h *LedgerHandler) Health(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.Health{
		Status:  "ok",
		Players: len(h.controller.Session().Players),
	})
}

// GetSession handles GET /api/v1/session
func (h *LedgerHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, h.sessionResponse())
}

// GetSummary handles GET /api/v1/summary
func (h *LedgerHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	view := h.controller.Renderer().Summary(h.controller.Summary())
	response.JSON(w, http.StatusOK, response.SummaryFromView(view))
}

// GetPlayer handles GET /api/v1/players/{id}
func (h *LedgerHandler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	p, err := h.controller.Player(playerID(r))
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.PlayerFromModel(&p, h.controller.Renderer()))
}

// AddPlayer handles POST /api/v1/players
func (h *LedgerHandler) AddPlayer(w http.ResponseWriter, r *http.Request) {
	var req request.AddPlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.BuyIn == nil {
		WriteError(w, NewInvalidRequestError("buy_in is required"))
		return
	}

	p, err := h.controller.AddPlayer(r.Context(), req.Name, *req.BuyIn)
	if err != nil {
		h.fail(w, "add player", err)
		return
	}

	response.JSON(w, http.StatusCreated, response.PlayerFromModel(&p, h.controller.Renderer()))
}

// AddRebuy handles POST /api/v1/players/{id}/rebuys
func (h *LedgerHandler) AddRebuy(w http.ResponseWriter, r *http.Request) {
	var req request.RebuyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.Amount == nil {
		WriteError(w, NewInvalidRequestError("amount is required"))
		return
	}

	id := playerID(r)
	applied, err := h.controller.AddRebuy(r.Context(), id, *req.Amount)
	h.respondWithPlayer(w, id, applied, err, "add rebuy")
}

// SetCashOut handles PUT /api/v1/players/{id}/cashout
func (h *LedgerHandler) SetCashOut(w http.ResponseWriter, r *http.Request) {
	var req request.CashOutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	id := playerID(r)
	applied, err := h.controller.SetCashOut(r.Context(), id, req.Amount)
	h.respondWithPlayer(w, id, applied, err, "set cash-out")
}

// RemovePlayer handles DELETE /api/v1/players/{id}
func (h *LedgerHandler) RemovePlayer(w http.ResponseWriter, r *http.Request) {
	applied, err := h.controller.RemovePlayer(r.Context(), playerID(r))
	if err != nil {
		h.fail(w, "remove player", err)
		return
	}
	if !applied {
		WriteError(w, model.ErrPlayerNotFound)
		return
	}
	response.NoContent(w)
}

// Reset handles POST /api/v1/session/reset
func (h *LedgerHandler) Reset(w http.ResponseWriter, r *http.Request) {
	var req request.ResetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if err := h.controller.Reset(r.Context(), req.Confirm); err != nil {
		h.fail(w, "reset session", err)
		return
	}

	response.JSON(w, http.StatusOK, h.sessionResponse())
}

func (h *LedgerHandler) respondWithPlayer(w http.ResponseWriter, id model.PlayerID, applied bool, err error, action string) {
	if err != nil {
		h.fail(w, action, err)
		return
	}
	if !applied {
		WriteError(w, model.ErrPlayerNotFound)
		return
	}

	p, err := h.controller.Player(id)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.PlayerFromModel(&p, h.controller.Renderer()))
}

func (h *LedgerHandler) sessionResponse() response.Session {
	return response.SessionFromModel(h.controller.Session(), h.controller.Renderer())
}

// fail logs failures that are not the caller's fault before writing the error
func (h *LedgerHandler) fail(w http.ResponseWriter, action string, err error) {
	if status := apiStatus(err); status >= http.StatusInternalServerError {
		h.logger.Error("request failed",
			slog.String("action", action),
			slog.String("error", err.Error()))
	}
	WriteError(w, err)
}

func playerID(r *http.Request) model.PlayerID {
	return model.PlayerID(mux.Vars(r)["id"])
}
