// Package controller turns user actions into session mutations and keeps
// the attached surface in step: a full redraw after structural changes,
// a single net-cell patch plus summary while a cash-out is being typed.
package controller

import (
	"context"
	"log/slog"
	"strings"

	"github.com/mcoot/pokerledger/internal/model"
	"github.com/mcoot/pokerledger/internal/services/session"
	"github.com/mcoot/pokerledger/internal/services/summary"
	"github.com/mcoot/pokerledger/internal/services/table"
)

// ResetConfirmMessage is the question asked before a reset
const ResetConfirmMessage = "Reset current session? This cannot be undone."

// Controller handles user actions against one session
type Controller struct {
	session  *session.Model
	renderer *table.Renderer
	surface  table.Surface
	logger   *slog.Logger
}

// New creates a Controller. A nil surface discards refreshes.
func New(sessionModel *session.Model, renderer *table.Renderer, surface table.Surface, logger *slog.Logger) *Controller {
	if surface == nil {
		surface = table.Surfaces(nil)
	}
	return &Controller{
		session:  sessionModel,
		renderer: renderer,
		surface:  surface,
		logger:   logger.With(slog.String("component", "controller")),
	}
}

// Renderer returns the renderer used for every refresh
func (c *Controller) Renderer() *table.Renderer {
	return c.renderer
}

// Session returns a copy of the current session
func (c *Controller) Session() *model.Session {
	return c.session.Snapshot()
}

// Summary returns the current aggregate figures
func (c *Controller) Summary() model.Summary {
	return summary.Calculate(c.session.Snapshot())
}

// Table returns the current display projection
func (c *Controller) Table() table.Table {
	return c.renderer.Build(c.session.Snapshot())
}

// Player returns one player, or ErrPlayerNotFound
func (c *Controller) Player(id model.PlayerID) (model.Player, error) {
	return c.session.Player(id)
}

// Refresh redraws the attached surface from scratch
func (c *Controller) Refresh(ctx context.Context) {
	c.surface.ShowTable(ctx, c.Table())
}

// AddPlayer validates and adds a player with an initial buy-in
func (c *Controller) AddPlayer(ctx context.Context, name string, buyIn float64) (model.Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Player{}, model.ErrInvalidName
	}
	if !model.ValidAmount(buyIn) {
		return model.Player{}, model.ErrInvalidAmount
	}

	event, err := c.session.AddPlayer(ctx, name, buyIn)
	c.afterCommit(ctx, event, model.RefreshFull)
	if err != nil {
		return model.Player{}, err
	}
	return c.session.Player(event.PlayerID)
}

// SubmitAddPlayer handles the add-player form with the buy-in still as text
func (c *Controller) SubmitAddPlayer(ctx context.Context, name, buyInText string) (model.Player, error) {
	if strings.TrimSpace(name) == "" {
		return model.Player{}, model.ErrInvalidName
	}
	buyIn, err := model.ParseNonNegativeAmount(buyInText)
	if err != nil {
		return model.Player{}, err
	}
	return c.AddPlayer(ctx, name, buyIn)
}

// AddRebuy appends a validated rebuy. Reports false for an unknown player.
func (c *Controller) AddRebuy(ctx context.Context, id model.PlayerID, amount float64) (bool, error) {
	if !model.ValidAmount(amount) {
		return false, model.ErrInvalidAmount
	}
	event, err := c.session.AddRebuy(ctx, id, amount)
	c.afterCommit(ctx, event, model.RefreshFull)
	return event != nil, err
}

// SetCashOut commits a cash-out, or clears it when amount is nil, then redraws.
// A present amount must be finite and not negative.
func (c *Controller) SetCashOut(ctx context.Context, id model.PlayerID, amount *float64) (bool, error) {
	if amount != nil && !model.ValidAmount(*amount) {
		return false, model.ErrInvalidAmount
	}
	event, err := c.session.SetCashOut(ctx, id, amount)
	c.afterCommit(ctx, event, model.RefreshFull)
	return event != nil, err
}

// LiveCashOut handles one keystroke in a row's cash-out field.
// Empty text clears the cash-out; text that is not a finite number is ignored.
// The row is not redrawn, only its net cell and the summary.
func (c *Controller) LiveCashOut(ctx context.Context, id model.PlayerID, text string) (bool, error) {
	var amount *float64
	if strings.TrimSpace(text) != "" {
		v, err := model.ParseAmount(text)
		if err != nil {
			c.logger.Debug("live cash-out input ignored", slog.String("player_id", string(id)))
			return false, nil
		}
		amount = &v
	}

	event, err := c.session.SetCashOut(ctx, id, amount)
	c.afterCommit(ctx, event, model.RefreshPatch)
	return event != nil, err
}

// RemovePlayer removes a player immediately. Reports false for an unknown player.
func (c *Controller) RemovePlayer(ctx context.Context, id model.PlayerID) (bool, error) {
	event, err := c.session.RemovePlayer(ctx, id)
	c.afterCommit(ctx, event, model.RefreshFull)
	return event != nil, err
}

// Reset wipes the session once the user has confirmed.
// Without confirmation nothing changes and ErrResetNotConfirmed is returned.
func (c *Controller) Reset(ctx context.Context, confirmed bool) error {
	if !confirmed {
		return model.ErrResetNotConfirmed
	}
	event, err := c.session.Reset(ctx)
	c.afterCommit(ctx, event, model.RefreshFull)
	return err
}

// afterCommit brings the surface up to date once a mutation has been applied.
// It runs even when the save failed since memory already holds the change.
func (c *Controller) afterCommit(ctx context.Context, event *model.Event, refresh model.Refresh) {
	if event == nil {
		return
	}

	switch refresh {
	case model.RefreshPatch:
		snap := c.session.Snapshot()
		if p := snap.GetPlayer(event.PlayerID); p != nil {
			c.surface.PatchNet(ctx, c.renderer.NetCell(p))
		}
		c.surface.ShowSummary(ctx, c.renderer.Summary(summary.Calculate(snap)))
	default:
		c.surface.ShowTable(ctx, c.Table())
	}
}
