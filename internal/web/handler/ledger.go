package handler

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/gorilla/mux"

	"github.com/mcoot/pokerledger/internal/model"
	"github.com/mcoot/pokerledger/internal/services/controller"
	"github.com/mcoot/pokerledger/internal/web/sse"
	"github.com/mcoot/pokerledger/internal/web/templates/components"
)

// PageTitle heads the ledger page
const PageTitle = "Poker Session"

// LedgerHandler serves the ledger page and its htmx actions.
// Every other open page is refreshed through the SSE hub; the requesting
// page also gets the same fragments in its response.
type LedgerHandler struct {
	controller *controller.Controller
	hub        *sse.Hub
	logger     *slog.Logger
}

// NewLedgerHandler creates a new LedgerHandler
func NewLedgerHandler(ctrl *controller.Controller, hub *sse.Hub, logger *slog.Logger) *LedgerHandler {
	return &LedgerHandler{
		controller: ctrl,
		hub:        hub,
		logger:     logger.With(slog.String("component", "web-ledger")),
	}
}

// Home renders the full ledger page
func (h *LedgerHandler) Home(w http.ResponseWriter, r *http.Request) {
	data := components.PageData{
		Title: PageTitle,
		Table: h.controller.Table(),
	}
	h.render(w, r, components.Page(data))
}

// Events streams live table updates
func (h *LedgerHandler) Events(w http.ResponseWriter, r *http.Request) {
	sse.ServeSSE(w, r, h.hub)
}

// AddPlayer handles the add-player form
func (h *LedgerHandler) AddPlayer(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	_, err := h.controller.SubmitAddPlayer(r.Context(), r.FormValue("name"), r.FormValue("buy_in"))
	if isInputError(err) {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if err != nil {
		h.saveFailed(w, err)
		return
	}

	var buf bytes.Buffer
	if err := components.AddPlayerForm(true).Render(r.Context(), &buf); err != nil {
		h.renderFailed(w, err)
		return
	}
	h.writeWithTable(w, r, buf.String())
}

// RebuyDialog opens the rebuy dialog for a player
func (h *LedgerHandler) RebuyDialog(w http.ResponseWriter, r *http.Request) {
	prompt, err := h.controller.RebuyPrompt(playerID(r))
	if err != nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	h.render(w, r, components.AmountDialog(prompt))
}

// CloseRebuyDialog handles either button of the rebuy dialog
func (h *LedgerHandler) CloseRebuyDialog(w http.ResponseWriter, r *http.Request) {
	h.closeDialog(w, r, h.controller.CloseRebuyDialog)
}

// CashOutDialog opens the cash-out dialog, pre-filled with the current value
func (h *LedgerHandler) CashOutDialog(w http.ResponseWriter, r *http.Request) {
	prompt, err := h.controller.CashOutPrompt(playerID(r))
	if err != nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	h.render(w, r, components.AmountDialog(prompt))
}

// CloseCashOutDialog handles either button of the cash-out dialog
func (h *LedgerHandler) CloseCashOutDialog(w http.ResponseWriter, r *http.Request) {
	h.closeDialog(w, r, h.controller.CloseCashOutDialog)
}

// LiveCashOut handles a keystroke in a row's cash-out field.
// Only the net cell and the summary come back, so the field keeps focus.
func (h *LedgerHandler) LiveCashOut(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	id := playerID(r)
	applied, err := h.controller.LiveCashOut(r.Context(), id, r.FormValue("value"))
	if err != nil {
		h.saveFailed(w, err)
		return
	}
	if !applied {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	p, err := h.controller.Player(id)
	if err != nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	renderer := h.controller.Renderer()
	html, err := sse.RenderNetPatch(r.Context(), renderer.NetCell(&p), renderer.Summary(h.controller.Summary()))
	if err != nil {
		h.renderFailed(w, err)
		return
	}
	writeHTML(w, html)
}

// RemovePlayer removes a player straight away
func (h *LedgerHandler) RemovePlayer(w http.ResponseWriter, r *http.Request) {
	applied, err := h.controller.RemovePlayer(r.Context(), playerID(r))
	if err != nil {
		h.saveFailed(w, err)
		return
	}
	if !applied {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	h.writeWithTable(w, r, "")
}

// Reset wipes the session. The page asks first and sends confirm=yes.
func (h *LedgerHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	err := h.controller.Reset(r.Context(), r.FormValue("confirm") == "yes")
	if errors.Is(err, model.ErrResetNotConfirmed) {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if err != nil {
		h.saveFailed(w, err)
		return
	}
	h.writeWithTable(w, r, "")
}

// dialogCloser applies how a dialog was closed
type dialogCloser func(ctx context.Context, id model.PlayerID, result controller.DialogResult) (bool, error)

func (h *LedgerHandler) closeDialog(w http.ResponseWriter, r *http.Request, finish dialogCloser) {
	if err := r.ParseForm(); err != nil {
		h.render(w, r, components.DialogSlot())
		return
	}

	result := controller.Cancelled
	if r.FormValue("action") == "confirm" {
		result = controller.Confirm(r.FormValue("amount"))
	}

	applied, err := finish(r.Context(), playerID(r), result)
	if err != nil && !isInputError(err) {
		h.saveFailed(w, err)
		return
	}

	var buf bytes.Buffer
	if err := components.DialogSlot().Render(r.Context(), &buf); err != nil {
		h.renderFailed(w, err)
		return
	}
	if !applied {
		writeHTML(w, buf.String())
		return
	}
	h.writeWithTable(w, r, buf.String())
}

// writeWithTable writes html followed by the out-of-band table redraw
func (h *LedgerHandler) writeWithTable(w http.ResponseWriter, r *http.Request, html string) {
	tableHTML, err := sse.RenderTableUpdate(r.Context(), h.controller.Table())
	if err != nil {
		h.renderFailed(w, err)
		return
	}
	writeHTML(w, html+tableHTML)
}

func (h *LedgerHandler) render(w http.ResponseWriter, r *http.Request, c templ.Component) {
	var buf bytes.Buffer
	if err := c.Render(r.Context(), &buf); err != nil {
		h.renderFailed(w, err)
		return
	}
	writeHTML(w, buf.String())
}

func (h *LedgerHandler) renderFailed(w http.ResponseWriter, err error) {
	h.logger.Error("render failed", slog.Any("error", err))
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}

// saveFailed reports a write-through failure; the change is already live in memory
func (h *LedgerHandler) saveFailed(w http.ResponseWriter, err error) {
	h.logger.Error("session not saved", slog.Any("error", err))
	http.Error(w, "Could not save session", http.StatusInternalServerError)
}

func writeHTML(w http.ResponseWriter, html string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(html))
}

func playerID(r *http.Request) model.PlayerID {
	return model.PlayerID(mux.Vars(r)["id"])
}

// isInputError reports whether err is a rejected form value
func isInputError(err error) bool {
	return errors.Is(err, model.ErrInvalidAmount) || errors.Is(err, model.ErrInvalidName)
}
